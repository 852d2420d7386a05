package sem

import (
	"fmt"

	"atomc/types"
)

// CtKind is the kind of a compile-time constant value.
type CtKind int

// Enumeration of constant kinds.
const (
	CtNone CtKind = iota
	CtInt
	CtDouble
	CtChar
	CtString
)

// CtVal is a value known during analysis.
type CtVal struct {
	Kind CtKind

	Int    int64
	Double float64
	Char   byte
	Str    string
}

func (cv CtVal) String() string {
	switch cv.Kind {
	case CtInt:
		return fmt.Sprint(cv.Int)
	case CtDouble:
		return fmt.Sprint(cv.Double)
	case CtChar:
		return fmt.Sprintf("%q", rune(cv.Char))
	case CtString:
		return fmt.Sprintf("%q", cv.Str)
	}

	return "<none>"
}

// RetVal is the set of attributes synthesized for an expression: its type,
// whether it designates a storage location, and whether its value is known
// during analysis.
type RetVal struct {
	Type types.Type

	// IsLVal is set only for variable references, array elements and struct
	// member accesses.
	IsLVal bool

	// IsCtVal is set only for literals and values derived from them without
	// any operator being applied.
	IsCtVal bool

	// CtVal is the constant value.  It is only meaningful if IsCtVal is set.
	CtVal CtVal
}

// rvalue returns a plain value of the given type: not an lvalue, not a
// constant.
func rvalue(t types.Type) *RetVal {
	return &RetVal{Type: t}
}

// IntLit returns the attributes of an integer literal.
func IntLit(v int64) *RetVal {
	return &RetVal{
		Type:    types.NewScalar(types.TBInt),
		IsCtVal: true,
		CtVal:   CtVal{Kind: CtInt, Int: v},
	}
}

// DoubleLit returns the attributes of a real literal.
func DoubleLit(v float64) *RetVal {
	return &RetVal{
		Type:    types.NewScalar(types.TBDouble),
		IsCtVal: true,
		CtVal:   CtVal{Kind: CtDouble, Double: v},
	}
}

// CharLit returns the attributes of a character literal.
func CharLit(v byte) *RetVal {
	return &RetVal{
		Type:    types.NewScalar(types.TBChar),
		IsCtVal: true,
		CtVal:   CtVal{Kind: CtChar, Char: v},
	}
}

// StringLit returns the attributes of a string literal: an unsized char array.
func StringLit(v string) *RetVal {
	return &RetVal{
		Type:    types.NewArray(types.NewScalar(types.TBChar), types.Unsized),
		IsCtVal: true,
		CtVal:   CtVal{Kind: CtString, Str: v},
	}
}

// convertCtVal converts a numeric constant to the given numeric base.
func convertCtVal(cv CtVal, base types.TypeBase) CtVal {
	var i int64
	var d float64

	switch cv.Kind {
	case CtInt:
		i, d = cv.Int, float64(cv.Int)
	case CtDouble:
		i, d = int64(cv.Double), cv.Double
	case CtChar:
		i, d = int64(cv.Char), float64(cv.Char)
	default:
		return cv
	}

	switch base {
	case types.TBInt:
		return CtVal{Kind: CtInt, Int: i}
	case types.TBDouble:
		return CtVal{Kind: CtDouble, Double: d}
	case types.TBChar:
		return CtVal{Kind: CtChar, Char: byte(i)}
	}

	return cv
}
