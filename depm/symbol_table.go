package depm

// SymbolTable is an insertion-ordered list of symbols.  Lookups scan from the
// most recent declaration backwards so inner declarations shadow outer ones.
// Scopes are left by truncating the table back to the length it had when the
// scope was entered.
type SymbolTable struct {
	symbols []*Symbol
}

// NewSymbolTable creates a new, empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{}
}

// Add appends a symbol to the table and returns it.
func (st *SymbolTable) Add(sym *Symbol) *Symbol {
	st.symbols = append(st.symbols, sym)
	return sym
}

// Find returns the most recently declared symbol with the given name.  The
// returned symbol may be mutated in place.
func (st *SymbolTable) Find(name string) (*Symbol, bool) {
	for i := len(st.symbols) - 1; i >= 0; i-- {
		if st.symbols[i].Name == name {
			return st.symbols[i], true
		}
	}

	return nil, false
}

// Len returns the number of symbols in the table.
func (st *SymbolTable) Len() int {
	return len(st.symbols)
}

// At returns the n-th symbol in declaration order.
func (st *SymbolTable) At(n int) *Symbol {
	return st.symbols[n]
}

// Symbols returns the symbols in declaration order.
func (st *SymbolTable) Symbols() []*Symbol {
	return append([]*Symbol(nil), st.symbols...)
}

// Truncate discards every symbol declared at or after position n.
func (st *SymbolTable) Truncate(n int) {
	if n < 0 {
		n = 0
	}

	if n < len(st.symbols) {
		// Clear the discarded slots so the symbols can be collected.
		for i := n; i < len(st.symbols); i++ {
			st.symbols[i] = nil
		}

		st.symbols = st.symbols[:n]
	}
}

// IndexOf returns the position of the given symbol or -1 if the symbol is not
// in the table.  Symbols are compared by identity, not by name.
func (st *SymbolTable) IndexOf(sym *Symbol) int {
	for i, s := range st.symbols {
		if s == sym {
			return i
		}
	}

	return -1
}

// DeleteSymbolsAfter discards every symbol declared after marker.  The marker
// itself is kept.  It returns false if marker is not in the table.
func (st *SymbolTable) DeleteSymbolsAfter(marker *Symbol) bool {
	n := st.IndexOf(marker)
	if n == -1 {
		return false
	}

	st.Truncate(n + 1)
	return true
}
