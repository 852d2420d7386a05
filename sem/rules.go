package sem

import (
	"math"

	"atomc/depm"
	"atomc/report"
	"atomc/types"
)

// VarRef returns the attributes of an identifier used as a value.
func VarRef(sym *depm.Symbol, span *report.TextSpan) (*RetVal, error) {
	switch sym.Class {
	case depm.ClassFunc, depm.ClassExtFunc:
		return nil, report.Raise(span, "a function can only be called: `%s`", sym.Name)
	case depm.ClassStruct:
		return nil, report.Raise(span, "`%s` is a structure, not a value", sym.Name)
	}

	return &RetVal{Type: sym.Type, IsLVal: true}, nil
}

// CheckCallee checks that a symbol followed by an argument list can be called.
func CheckCallee(sym *depm.Symbol, span *report.TextSpan) error {
	if !sym.IsFunc() {
		return report.Raise(span, "only a function can be called: `%s` is not a function", sym.Name)
	}

	return nil
}

// Call checks the arguments of a call against the callee's parameters and
// returns the attributes of the call's result.  argSpans holds the position of
// each argument and closeSpan the position of the closing parenthesis.
func Call(fn *depm.Symbol, args []*RetVal, argSpans []*report.TextSpan, closeSpan *report.TextSpan) (*RetVal, error) {
	for i, arg := range args {
		if i >= fn.Args.Len() {
			return nil, report.Raise(argSpans[i], "too many arguments in call to `%s`", fn.Name)
		}

		param := fn.Args.At(i)
		if err := types.Cast(param.Type, arg.Type); err != nil {
			return nil, report.Raise(argSpans[i], "invalid argument %d in call to `%s`: %s", i+1, fn.Name, err)
		}
	}

	if len(args) < fn.Args.Len() {
		return nil, report.Raise(closeSpan, "too few arguments in call to `%s`", fn.Name)
	}

	return rvalue(fn.Type), nil
}

// Index returns the attributes of an array element access.
func Index(base, index *RetVal, span *report.TextSpan) (*RetVal, error) {
	if !base.Type.IsArray() {
		return nil, report.Raise(span, "only an array can be indexed")
	}

	if err := types.Cast(types.NewScalar(types.TBInt), index.Type); err != nil {
		return nil, report.Raise(span, "invalid index: %s", err)
	}

	return &RetVal{Type: base.Type.Elem(), IsLVal: true}, nil
}

// Member returns the attributes of a struct field access.
func Member(base *RetVal, name string, span *report.TextSpan) (*RetVal, error) {
	if !base.Type.IsStruct() {
		return nil, report.Raise(span, "a field can only be selected from a struct")
	}

	structSym := depm.StructOf(base.Type)
	member, ok := structSym.Members.Find(name)
	if !ok {
		return nil, report.Raise(span, "struct %s does not have a member %s", structSym.Name, name)
	}

	return &RetVal{Type: member.Type, IsLVal: true}, nil
}

// Assign returns the attributes of an assignment.
func Assign(dst, src *RetVal, span *report.TextSpan) (*RetVal, error) {
	if !dst.IsLVal {
		return nil, report.Raise(span, "cannot assign to a non-lvalue")
	}

	if dst.Type.IsArray() || src.Type.IsArray() {
		return nil, report.Raise(span, "arrays cannot be assigned")
	}

	if err := types.Cast(dst.Type, src.Type); err != nil {
		return nil, report.Raise(span, "invalid assignment: %s", err)
	}

	return rvalue(dst.Type), nil
}

// Unary returns the attributes of a unary operation.
func Unary(op Op, operand *RetVal, span *report.TextSpan) (*RetVal, error) {
	if err := checkOperand(op, operand, span); err != nil {
		return nil, err
	}

	if op == OpNot {
		return rvalue(types.NewScalar(types.TBInt)), nil
	}

	return rvalue(operand.Type), nil
}

// Binary returns the attributes of a binary operation.
func Binary(op Op, lhs, rhs *RetVal, span *report.TextSpan) (*RetVal, error) {
	if err := checkOperand(op, lhs, span); err != nil {
		return nil, err
	}

	if err := checkOperand(op, rhs, span); err != nil {
		return nil, err
	}

	if op.IsArithmetic() {
		return rvalue(types.Promote(lhs.Type, rhs.Type)), nil
	}

	// Comparisons and logical operators yield int.
	return rvalue(types.NewScalar(types.TBInt)), nil
}

// checkOperand checks that a value may be an operand of an operator.
func checkOperand(op Op, operand *RetVal, span *report.TextSpan) error {
	switch {
	case operand.Type.IsArray():
		return report.Raise(span, "operator `%s` cannot be applied to an array", op)
	case operand.Type.Base == types.TBStruct:
		return report.Raise(span, "operator `%s` cannot be applied to a structure", op)
	case operand.Type.IsVoid():
		return report.Raise(span, "operator `%s` cannot be applied to a void value", op)
	}

	return nil
}

// ExplicitCast returns the attributes of a cast expression `(to)operand`.  The
// constant-ness of the operand is kept and its value converted.
func ExplicitCast(to types.Type, operand *RetVal, span *report.TextSpan) (*RetVal, error) {
	if to.Base == types.TBStruct {
		return nil, report.Raise(span, "cannot convert to a struct type")
	}

	if operand.Type.Base == types.TBStruct {
		return nil, report.Raise(span, "cannot convert a struct")
	}

	if err := types.Cast(to, operand.Type); err != nil {
		return nil, report.Raise(span, "invalid cast: %s", err)
	}

	rv := &RetVal{Type: to, IsCtVal: operand.IsCtVal, CtVal: operand.CtVal}
	if rv.IsCtVal && !to.IsArray() {
		rv.CtVal = convertCtVal(operand.CtVal, to.Base)
	}

	return rv, nil
}

// Condition checks the controlling expression of an if, while, or for.
func Condition(cond *RetVal, span *report.TextSpan) error {
	switch {
	case cond.Type.IsVoid():
		return report.Raise(span, "a void value cannot be used as a condition")
	case cond.Type.IsArray():
		return report.Raise(span, "an array cannot be used as a condition")
	case cond.Type.Base == types.TBStruct:
		return report.Raise(span, "a structure cannot be used as a condition")
	}

	return nil
}

// ReturnValue checks a value returned from the function fn.
func ReturnValue(fn *depm.Symbol, val *RetVal, span *report.TextSpan) error {
	if fn.Type.IsVoid() {
		return report.Raise(span, "a void function cannot return a value")
	}

	if err := types.Cast(fn.Type, val.Type); err != nil {
		return report.Raise(span, "invalid return value: %s", err)
	}

	return nil
}

// ArraySize checks the size expression of an array declarator and returns the
// number of elements.
func ArraySize(size *RetVal, span *report.TextSpan) (int, error) {
	if !size.IsCtVal {
		return 0, report.Raise(span, "array size is not a constant")
	}

	if size.CtVal.Kind != CtInt {
		return 0, report.Raise(span, "array size is not an integer")
	}

	if size.CtVal.Int < 1 {
		return 0, report.Raise(span, "array size must be positive")
	} else if size.CtVal.Int > math.MaxInt32 {
		return 0, report.Raise(span, "array size is too large")
	}

	return int(size.CtVal.Int), nil
}
