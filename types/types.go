package types

import "fmt"

// TypeBase is the base of a value type.  This must be one of the enumerated
// type bases.
type TypeBase int

// Enumeration of type bases.
const (
	TBInt TypeBase = iota
	TBDouble
	TBChar
	TBStruct
	TBVoid
)

// Repr returns the name of the type base as it is written in source.
func (tb TypeBase) Repr() string {
	switch tb {
	case TBInt:
		return "int"
	case TBDouble:
		return "double"
	case TBChar:
		return "char"
	case TBStruct:
		return "struct"
	case TBVoid:
		return "void"
	}

	// unreachable
	return fmt.Sprintf("<type base %d>", int(tb))
}

// StructRef identifies the declaration of a struct.  Struct types are nominal:
// two struct types are the same type only if they refer to the identical
// declaration.
type StructRef interface {
	StructName() string
}

// Enumeration of special element counts.
const (
	// Scalar indicates a type that is not an array.
	Scalar = -1

	// Unsized indicates an array with no declared size.
	Unsized = 0
)

// Type is a value type.
type Type struct {
	// Base is the type base: for arrays, this is the element base.
	Base TypeBase

	// Struct is the declaring struct.  It is non-nil iff Base is TBStruct.
	Struct StructRef

	// NElements is Scalar for non-arrays, Unsized for arrays with no declared
	// size and the number of elements otherwise.
	NElements int
}

// NewScalar returns a scalar type with the given non-struct base.
func NewScalar(base TypeBase) Type {
	return Type{Base: base, NElements: Scalar}
}

// NewStruct returns a scalar struct type declared by ref.
func NewStruct(ref StructRef) Type {
	return Type{Base: TBStruct, Struct: ref, NElements: Scalar}
}

// NewArray returns an array of n elements of the base of elem.
func NewArray(elem Type, n int) Type {
	elem.NElements = n
	return elem
}

// IsArray returns whether the type is an array type.
func (t Type) IsArray() bool {
	return t.NElements >= 0
}

// IsStruct returns whether the type is a scalar struct type.
func (t Type) IsStruct() bool {
	return t.Base == TBStruct && !t.IsArray()
}

// IsVoid returns whether the type is void.
func (t Type) IsVoid() bool {
	return t.Base == TBVoid
}

// IsNumeric returns whether the type is a scalar char, int, or double.
func (t Type) IsNumeric() bool {
	if t.IsArray() {
		return false
	}

	switch t.Base {
	case TBInt, TBDouble, TBChar:
		return true
	}

	return false
}

// Elem returns the element type of an array type.
func (t Type) Elem() Type {
	t.NElements = Scalar
	return t
}

// Equals returns whether two types are identical.
func (t Type) Equals(other Type) bool {
	return t.Base == other.Base && t.Struct == other.Struct && t.NElements == other.NElements
}

// Repr returns the type as it would be written in source.
func (t Type) Repr() string {
	var base string
	if t.Base == TBStruct && t.Struct != nil {
		base = "struct " + t.Struct.StructName()
	} else {
		base = t.Base.Repr()
	}

	switch {
	case t.NElements == Unsized:
		return base + "[]"
	case t.NElements > 0:
		return fmt.Sprintf("%s[%d]", base, t.NElements)
	default:
		return base
	}
}

// -----------------------------------------------------------------------------

// rank orders the numeric bases from narrowest to widest.
var rank = map[TypeBase]int{
	TBChar:   0,
	TBInt:    1,
	TBDouble: 2,
}

// Promote returns the result type of an arithmetic operation on two numeric
// scalars: the wider of the two.
func Promote(a, b Type) Type {
	if rank[a.Base] >= rank[b.Base] {
		return NewScalar(a.Base)
	}

	return NewScalar(b.Base)
}
