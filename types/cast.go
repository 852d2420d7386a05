package types

import "fmt"

// CastErrorKind is the reason a cast failed.
type CastErrorKind int

// Enumeration of cast error kinds.
const (
	// ArrayMismatch is an array converted to a non-array or vice versa.
	ArrayMismatch CastErrorKind = iota

	// ElemMismatch is an array converted to an array of another element type.
	ElemMismatch

	// IncompatibleStruct is a struct converted to a different struct.
	IncompatibleStruct

	// VoidValue is a void value used in a conversion.
	VoidValue

	// IncompatibleTypes covers all other invalid conversions: eg. a struct
	// converted to an int.
	IncompatibleTypes
)

// CastError is returned when a value of one type cannot be converted to
// another.
type CastError struct {
	Kind      CastErrorKind
	Src, Dest Type
}

func (ce *CastError) Error() string {
	switch ce.Kind {
	case ArrayMismatch:
		if ce.Src.IsArray() {
			return "an array can be converted only to another array"
		}

		return "a scalar cannot be converted to an array"
	case ElemMismatch:
		return fmt.Sprintf("an array of %s cannot be converted to an array of %s", ce.Src.Elem().Repr(), ce.Dest.Elem().Repr())
	case IncompatibleStruct:
		return "a structure cannot be converted to another one"
	case VoidValue:
		return "a void value cannot be converted"
	}

	return fmt.Sprintf("incompatible types: cannot convert %s to %s", ce.Src.Repr(), ce.Dest.Repr())
}

// Cast checks whether a value of type src can be converted to dest.  It
// returns nil if it can and a *CastError otherwise.
func Cast(dest, src Type) error {
	if src.IsVoid() || dest.IsVoid() {
		return &CastError{Kind: VoidValue, Src: src, Dest: dest}
	}

	if src.IsArray() != dest.IsArray() {
		return &CastError{Kind: ArrayMismatch, Src: src, Dest: dest}
	}

	if src.IsArray() {
		if src.Base != dest.Base || src.Struct != dest.Struct {
			return &CastError{Kind: ElemMismatch, Src: src, Dest: dest}
		}

		return nil
	}

	if src.IsStruct() && dest.IsStruct() {
		if src.Struct != dest.Struct {
			return &CastError{Kind: IncompatibleStruct, Src: src, Dest: dest}
		}

		return nil
	}

	// Among the numeric types, all conversions are legal.
	if src.IsNumeric() && dest.IsNumeric() {
		return nil
	}

	return &CastError{Kind: IncompatibleTypes, Src: src, Dest: dest}
}
