package sem

// Op is an operator that the semantic rules distinguish between.
type Op int

// Enumeration of operators.
const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv

	OpLt
	OpLtEq
	OpGt
	OpGtEq
	OpEq
	OpNotEq

	OpAnd
	OpOr

	OpNeg
	OpNot
)

var opStrings = map[Op]string{
	OpAdd:   "+",
	OpSub:   "-",
	OpMul:   "*",
	OpDiv:   "/",
	OpLt:    "<",
	OpLtEq:  "<=",
	OpGt:    ">",
	OpGtEq:  ">=",
	OpEq:    "==",
	OpNotEq: "!=",
	OpAnd:   "&&",
	OpOr:    "||",
	OpNeg:   "-",
	OpNot:   "!",
}

func (op Op) String() string {
	return opStrings[op]
}

// IsArithmetic returns whether the operator produces a value of the wider of
// its operand types rather than an int truth value.
func (op Op) IsArithmetic() bool {
	return op <= OpDiv || op == OpNeg
}
