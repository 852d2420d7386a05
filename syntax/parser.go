package syntax

import (
	"atomc/depm"
	"atomc/report"
)

// NOTE: All parsing functions (that are not utility/API functions) are
// commented with the EBNF notation of the grammar they parse.

// Parser is the parser for an AtomC source file.  It performs syntax analysis
// and semantic analysis in a single pass: declarations are added to the symbol
// table as soon as they are recognized and every expression is type checked as
// it is parsed.  The parser is a backtracking recursive descent parser: each
// production either matches and consumes all of its tokens, does not match and
// leaves the parser exactly where it started (returning false), or fails with
// an error that aborts the whole unit.  Parsers are created once per file.
type Parser struct {
	// toks is the token stream being parsed.  It always ends in an EOF token.
	toks []*Token

	// pos is the index of the token the parser is positioned on.
	pos int

	// symbols is the symbol table for the unit.
	symbols *depm.SymbolTable

	// depth is the current scope depth: 0 at the top level.
	depth int

	// contexts is the stack of enclosing declarations.  The top of the stack
	// determines where variable declarations are placed.
	contexts []declContext

	// loopDepth is the number of loops enclosing the current statement.
	loopDepth int

	// warnings is the list of warnings produced so far.
	warnings []*report.CompileError

	// failedAtEOF indicates that parsing failed because the input ended.
	failedAtEOF bool
}

// declContext is an enclosing declaration: at most one of its fields is set.
type declContext struct {
	structSym *depm.Symbol
	funcSym   *depm.Symbol
}

// NewParser creates a new parser over a token stream.  If the stream is not
// terminated by an EOF token, one is added.
func NewParser(toks []*Token) *Parser {
	if len(toks) == 0 || toks[len(toks)-1].Kind != TOK_EOF {
		eof := &Token{Kind: TOK_EOF, Span: &report.TextSpan{StartLine: 1, StartCol: 1, EndLine: 1, EndCol: 1}}
		if len(toks) > 0 {
			last := toks[len(toks)-1].Span
			eof.Span = &report.TextSpan{StartLine: last.EndLine, StartCol: last.EndCol, EndLine: last.EndLine, EndCol: last.EndCol}
		}

		toks = append(toks, eof)
	}

	return &Parser{
		toks:    toks,
		symbols: depm.NewSymbolTable(),
	}
}

// Symbols returns the unit's symbol table.
func (p *Parser) Symbols() *depm.SymbolTable {
	return p.symbols
}

// Warnings returns the warnings produced while parsing.
func (p *Parser) Warnings() []*report.CompileError {
	return p.warnings
}

// Pos returns the index of the token the parser is positioned on.
func (p *Parser) Pos() int {
	return p.pos
}

// AtEOF returns whether the parser has consumed every token before EOF.
func (p *Parser) AtEOF() bool {
	return p.got(TOK_EOF)
}

// FailedAtEOF returns whether parsing failed because the input ended before a
// production was complete.  An interactive front end uses this to decide
// whether to ask for more input.
func (p *Parser) FailedAtEOF() bool {
	return p.failedAtEOF
}

// -----------------------------------------------------------------------------

// tok returns the token the parser is positioned on.
func (p *Parser) tok() *Token {
	return p.toks[p.pos]
}

// next moves the parser forward one token.  The parser never moves past the
// EOF token.
func (p *Parser) next() {
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
}

// got returns true if the parser is on a token of a given kind.
func (p *Parser) got(kind int) bool {
	return p.tok().Kind == kind
}

// gotOneOf returns if the parser's current token kind is one of given kinds.
func (p *Parser) gotOneOf(kinds ...int) bool {
	for _, kind := range kinds {
		if p.tok().Kind == kind {
			return true
		}
	}

	return false
}

// assert checks if the parser is on a token of a given kind and rejects the
// token if not.
func (p *Parser) assert(kind int) error {
	if p.got(kind) {
		return nil
	}

	if p.got(TOK_EOF) {
		p.failedAtEOF = true
	}

	return p.errorOn(p.tok(), "expected %s but got %s", TokenKindName(kind), describe(p.tok()))
}

// assertAndNext performs an assert operation and moves the parser forward.
func (p *Parser) assertAndNext(kind int) error {
	if err := p.assert(kind); err != nil {
		return err
	}

	p.next()
	return nil
}

// describe returns how a token is referred to in error messages.
func describe(tok *Token) string {
	switch tok.Kind {
	case TOK_EOF:
		return "end of file"
	case TOK_STRINGLIT:
		return "string constant"
	case TOK_CHARLIT:
		return "character constant"
	}

	return "`" + tok.Value + "`"
}

// -----------------------------------------------------------------------------

// reject returns an unexpected token error on the current token.
func (p *Parser) reject() error {
	if p.got(TOK_EOF) {
		p.failedAtEOF = true
		return p.errorOn(p.tok(), "unexpected end of file")
	}

	return p.errorOn(p.tok(), "unexpected token: %s", describe(p.tok()))
}

// errorOn returns an error on a given token.  The function takes a message and
// arguments to format into it.
func (p *Parser) errorOn(tok *Token, msg string, a ...interface{}) error {
	return report.Raise(tok.Span, msg, a...)
}

// warnOn records a warning on a given token.  The function takes a message and
// arguments to format into it.
func (p *Parser) warnOn(tok *Token, msg string, a ...interface{}) {
	p.warnings = append(p.warnings, report.Warn(tok.Span, msg, a...))
}

// -----------------------------------------------------------------------------

// mark is a saved parser state.  Rewinding to a mark restores the cursor and
// discards every symbol registered since the mark was taken.
type mark struct {
	pos      int
	nsymbols int

	structSym *depm.Symbol
	nmembers  int

	funcSym *depm.Symbol
	nargs   int

	depth     int
	ncontexts int
}

// mark saves the current parser state.
func (p *Parser) mark() mark {
	m := mark{
		pos:       p.pos,
		nsymbols:  p.symbols.Len(),
		depth:     p.depth,
		ncontexts: len(p.contexts),
	}

	if m.structSym = p.currentStruct(); m.structSym != nil {
		m.nmembers = m.structSym.Members.Len()
	}

	if m.funcSym = p.currentFunc(); m.funcSym != nil {
		m.nargs = m.funcSym.Args.Len()
	}

	return m
}

// rewind restores the parser to a mark.
func (p *Parser) rewind(m mark) {
	p.pos = m.pos
	p.symbols.Truncate(m.nsymbols)
	p.depth = m.depth
	p.contexts = p.contexts[:m.ncontexts]

	if m.structSym != nil {
		m.structSym.Members.Truncate(m.nmembers)
	}

	if m.funcSym != nil {
		m.funcSym.Args.Truncate(m.nargs)
	}
}

// -----------------------------------------------------------------------------

// pushContext enters a struct or function declaration.
func (p *Parser) pushContext(ctx declContext) {
	p.contexts = append(p.contexts, ctx)
}

// popContext leaves the innermost struct or function declaration.
func (p *Parser) popContext() {
	p.contexts = p.contexts[:len(p.contexts)-1]
}

// currentStruct returns the struct whose body is being parsed, if any.
func (p *Parser) currentStruct() *depm.Symbol {
	if len(p.contexts) == 0 {
		return nil
	}

	return p.contexts[len(p.contexts)-1].structSym
}

// currentFunc returns the function whose body is being parsed, if any.
func (p *Parser) currentFunc() *depm.Symbol {
	if len(p.contexts) == 0 {
		return nil
	}

	return p.contexts[len(p.contexts)-1].funcSym
}
