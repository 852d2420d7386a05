package depm

import (
	"atomc/report"
	"atomc/types"
)

// SymbolClass is the kind of thing a symbol names.
type SymbolClass int

// Enumeration of symbol classes.
const (
	ClassVar SymbolClass = iota
	ClassFunc
	ClassExtFunc
	ClassStruct
)

func (sc SymbolClass) String() string {
	switch sc {
	case ClassVar:
		return "var"
	case ClassFunc:
		return "func"
	case ClassExtFunc:
		return "extfunc"
	default:
		return "struct"
	}
}

// MemoryKind is where a variable lives.  It is only meaningful for variables.
type MemoryKind int

// Enumeration of memory kinds.
const (
	MemGlobal MemoryKind = iota
	MemArg
	MemLocal
)

func (mk MemoryKind) String() string {
	switch mk {
	case MemGlobal:
		return "global"
	case MemArg:
		return "arg"
	default:
		return "local"
	}
}

// Symbol represents a named declaration: a variable, a function, or a struct.
type Symbol struct {
	// The name of the symbol.
	Name string

	// The class of the symbol.
	Class SymbolClass

	// Where a variable symbol lives.  Struct members are left at MemGlobal.
	Memory MemoryKind

	// The type of the symbol.  For functions this is the return type.  For
	// structs it is the struct type the declaration introduces.
	Type types.Type

	// The scope depth at which the symbol was declared.
	Depth int

	// Args is the positional parameter list of a function.  It is nil for all
	// other symbols.
	Args *SymbolTable

	// Members holds the fields of a struct.  It is nil for all other symbols.
	Members *SymbolTable

	// Where the symbol was defined.  This is nil for built-ins.
	DefSpan *report.TextSpan
}

// StructName implements types.StructRef.
func (s *Symbol) StructName() string {
	return s.Name
}

// IsFunc returns whether the symbol can be called.
func (s *Symbol) IsFunc() bool {
	return s.Class == ClassFunc || s.Class == ClassExtFunc
}

// NewStruct creates a struct symbol with an empty member table.
func NewStruct(name string, span *report.TextSpan) *Symbol {
	sym := &Symbol{
		Name:    name,
		Class:   ClassStruct,
		Members: NewSymbolTable(),
		DefSpan: span,
	}
	sym.Type = types.NewStruct(sym)

	return sym
}

// NewFunc creates a function symbol with an empty parameter list.
func NewFunc(name string, class SymbolClass, retType types.Type, span *report.TextSpan) *Symbol {
	return &Symbol{
		Name:    name,
		Class:   class,
		Type:    retType,
		Args:    NewSymbolTable(),
		DefSpan: span,
	}
}

// NewVar creates a variable symbol.
func NewVar(name string, mem MemoryKind, typ types.Type, depth int, span *report.TextSpan) *Symbol {
	return &Symbol{
		Name:    name,
		Class:   ClassVar,
		Memory:  mem,
		Type:    typ,
		Depth:   depth,
		DefSpan: span,
	}
}

// StructOf returns the struct symbol declaring a struct type or nil if the
// type is not a struct type.
func StructOf(t types.Type) *Symbol {
	if t.Base != types.TBStruct {
		return nil
	}

	sym, _ := t.Struct.(*Symbol)
	return sym
}
