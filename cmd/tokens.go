package cmd

import (
	"fmt"
	"io"

	"atomc/syntax"

	"github.com/pterm/pterm"
)

// dumpTokens writes a token stream as a table: one row per token.
func dumpTokens(w io.Writer, toks []*syntax.Token) error {
	data := pterm.TableData{{"Position", "Kind", "Value"}}

	for _, tok := range toks {
		data = append(data, []string{
			tok.Span.String(),
			syntax.TokenKindName(tok.Kind),
			fmt.Sprintf("%q", tok.Value),
		})
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, out)
	return err
}
