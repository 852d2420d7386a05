package depm

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"atomc/util"

	"github.com/kr/pretty"
	"github.com/pterm/pterm"
)

// SymbolView is a flat, pointer-free rendering of a symbol used for dumps and
// test comparisons.
type SymbolView struct {
	Name    string
	Class   string
	Memory  string
	Type    string
	Depth   int
	Args    []SymbolView
	Members []SymbolView
}

// View renders a symbol table as a list of symbol views in declaration order.
func View(st *SymbolTable) []SymbolView {
	if st == nil {
		return nil
	}

	return util.Map(st.Symbols(), viewSymbol)
}

// viewSymbol renders a single symbol.
func viewSymbol(sym *Symbol) SymbolView {
	sv := SymbolView{
		Name:    sym.Name,
		Class:   sym.Class.String(),
		Type:    sym.Type.Repr(),
		Depth:   sym.Depth,
		Args:    View(sym.Args),
		Members: View(sym.Members),
	}

	if sym.Class == ClassVar {
		sv.Memory = sym.Memory.String()
	}

	return sv
}

// DebugString renders the table with kr/pretty for debugging.
func DebugString(st *SymbolTable) string {
	return pretty.Sprint(View(st))
}

// Dump writes the table as a formatted table.  Built-in functions are skipped
// unless withBuiltins is set.
func Dump(w io.Writer, st *SymbolTable, withBuiltins bool) error {
	data := pterm.TableData{{"Name", "Class", "Memory", "Type", "Depth", "Details"}}

	symbols := st.Symbols()
	if !withBuiltins {
		symbols = util.Filter(symbols, func(sym *Symbol) bool {
			return sym.Class != ClassExtFunc
		})
	}

	for _, sym := range symbols {
		sv := viewSymbol(sym)
		data = append(data, []string{
			sv.Name,
			sv.Class,
			sv.Memory,
			sv.Type,
			strconv.Itoa(sv.Depth),
			details(sym),
		})
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, out)
	return err
}

// details renders the parameter list of a function or the fields of a struct.
func details(sym *Symbol) string {
	declString := func(s *Symbol) string {
		return s.Type.Repr() + " " + s.Name
	}

	switch {
	case sym.Args != nil:
		return "(" + strings.Join(util.Map(sym.Args.Symbols(), declString), ", ") + ")"
	case sym.Members != nil:
		return "{" + strings.Join(util.Map(sym.Members.Symbols(), declString), "; ") + "}"
	}

	return ""
}
