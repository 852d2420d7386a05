package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"atomc/common"
	"atomc/depm"
	"atomc/report"

	"github.com/peterh/liner"
)

const (
	promptMain = "atomc> "
	promptCont = "...... "
)

const replHelp = `Enter AtomC declarations to add them to the session.  Declarations that are
not complete yet continue on the next line.

Commands:
  :symbols   print the symbols declared in the session
  :reset     discard every declaration
  :help      print this text
  :quit      leave the session
`

// replSession is the state of an interactive session: all the declarations
// accepted so far.  Each submission is checked together with them so that
// later declarations can use earlier ones.
type replSession struct {
	// source is the text of every accepted declaration.
	source string

	// symbols is the symbol table of source.  It is nil until the first
	// declaration is accepted.
	symbols *depm.SymbolTable
}

// submit checks input as a continuation of the session.  If input is accepted,
// it becomes part of the session.  The returned flag is false if input ended
// in the middle of a declaration: the caller should read more input and submit
// all of it again.
func (rs *replSession) submit(input string) (bool, error) {
	candidate := rs.source + input + "\n"

	p, err := checkSource(candidate)
	if err != nil {
		if p != nil && p.FailedAtEOF() {
			return false, nil
		}

		return true, err
	}

	rs.source = candidate
	rs.symbols = p.Symbols()
	return true, nil
}

// reset discards every declaration of the session.
func (rs *replSession) reset() {
	rs.source = ""
	rs.symbols = nil
}

// dumpSymbols writes the session's symbols to w.
func (rs *replSession) dumpSymbols(w io.Writer) error {
	if rs.symbols == nil {
		_, err := fmt.Fprintln(w, "no declarations")
		return err
	}

	return depm.Dump(w, rs.symbols, false)
}

// -----------------------------------------------------------------------------

// runREPL runs an interactive session until the user quits or input ends.
func runREPL() {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, common.HistoryFileName)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}

	fmt.Printf("atomc v%s: type :help for help\n", common.AtomCVersion)

	rs := &replSession{}
	for {
		input, ok := readInput(ln, rs)
		if !ok {
			fmt.Println()
			break
		}

		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			continue
		}

		ln.AppendHistory(strings.ReplaceAll(input, "\n", " "))

		if strings.HasPrefix(trimmed, ":") && handleREPLCommand(rs, trimmed) {
			break
		}
	}

	if f, err := os.Create(histPath); err == nil {
		ln.WriteHistory(f)
		f.Close()
	}
}

// readInput reads lines until they form complete declarations, a command, or
// an error.  Errors are reported as they are found.  The returned flag is
// false if the user ended the session.
func readInput(ln *liner.State, rs *replSession) (string, bool) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}

		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		} else if err != nil {
			// Ctrl+C abandons the current input.
			return "", true
		}

		if b.Len() == 0 && strings.HasPrefix(strings.TrimSpace(line), ":") {
			return line, true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if strings.TrimSpace(b.String()) == "" {
			return "", true
		}

		complete, err := rs.submit(b.String())
		if !complete {
			continue
		}

		if err != nil {
			if cerr, ok := report.AsCompileError(err); ok {
				report.ReportCompileError("<repl>", rs.source+b.String()+"\n", cerr)
			} else {
				report.ReportStdError("<repl>", err)
			}
		}

		return b.String(), true
	}
}

// handleREPLCommand runs a `:` command.  It returns true if the session should
// end.
func handleREPLCommand(rs *replSession, line string) bool {
	switch strings.Fields(line)[0] {
	case ":quit", ":exit":
		return true
	case ":symbols":
		if err := rs.dumpSymbols(os.Stdout); err != nil {
			report.ReportStdError("<repl>", err)
		}
	case ":reset":
		rs.reset()
		fmt.Println("session reset")
	case ":help":
		fmt.Print(replHelp)
	default:
		fmt.Println("unknown command: type :help for help")
	}

	return false
}
