package syntax

import (
	"bufio"
	"io"
	"strings"

	"atomc/report"
)

// Lexer turns AtomC source text into tokens one at a time.
type Lexer struct {
	file    *bufio.Reader
	tokBuff *strings.Builder

	line, col           int
	startLine, startCol int
}

// NewLexer creates a lexer positioned at the start of file.
func NewLexer(file *bufio.Reader) *Lexer {
	return &Lexer{
		file:    file,
		tokBuff: &strings.Builder{},
		line:    1,
		col:     1,
	}
}

// Tokenize lexes the whole of r and returns its tokens.  The last token is
// always an EOF token.
func Tokenize(r io.Reader) ([]*Token, error) {
	l := NewLexer(bufio.NewReader(r))

	var toks []*Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}

		toks = append(toks, tok)

		if tok.Kind == TOK_EOF {
			return toks, nil
		}
	}
}

// NextToken skips whitespace and comments and lexes the token after them.
// Once the input is exhausted it returns EOF tokens.
func (l *Lexer) NextToken() (*Token, error) {
	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if c == -1 {
			break
		}

		switch c {
		case '\n', '\t', ' ', '\r', '\v', '\f':
			l.skip()
		case '/':
			if tok, err := l.lexCommentOrDiv(); tok != nil || err != nil {
				return tok, err
			}
		case '\'':
			return l.lexCharLit()
		case '"':
			return l.lexStringLit()
		default:
			if isDecimalDigit(c) {
				return l.lexNumericLit()
			} else if isFirstIdentChar(c) {
				return l.lexIdentOrKeyword()
			} else {
				return l.lexPunctOrOper()
			}
		}
	}

	l.mark()
	return l.makeToken(TOK_EOF), nil
}

// -----------------------------------------------------------------------------

// symbolPatterns holds the spelling of every operator and punctuation token.
var symbolPatterns = map[string]int{
	"+": TOK_PLUS,
	"-": TOK_MINUS,
	"*": TOK_STAR,
	// `/` is lexed by lexCommentOrDiv.
	".": TOK_DOT,

	"&&": TOK_LAND,
	"||": TOK_LOR,
	"!":  TOK_NOT,

	"=":  TOK_ASSIGN,
	"==": TOK_EQ,
	"!=": TOK_NEQ,
	"<":  TOK_LT,
	"<=": TOK_LTEQ,
	">":  TOK_GT,
	">=": TOK_GTEQ,

	"(": TOK_LPAREN,
	")": TOK_RPAREN,
	"[": TOK_LBRACKET,
	"]": TOK_RBRACKET,
	"{": TOK_LBRACE,
	"}": TOK_RBRACE,
	",": TOK_COMMA,
	";": TOK_SEMI,
}

// lexPunctOrOper lexes a punctuation or operator symbol.  Two character
// symbols take precedence over one character symbols.
func (l *Lexer) lexPunctOrOper() (*Token, error) {
	l.mark()

	c, err := l.eat()
	if err != nil {
		return nil, err
	}

	next, err := l.peek()
	if err != nil {
		return nil, err
	}

	if next != -1 {
		if kind, ok := symbolPatterns[string(c)+string(next)]; ok {
			l.eat()
			return l.makeToken(kind), nil
		}
	}

	if kind, ok := symbolPatterns[string(c)]; ok {
		return l.makeToken(kind), nil
	}

	if c == '&' || c == '|' {
		return nil, report.Raise(l.getSpan(), "unknown operator `%c`: did you mean `%c%c`?", c, c, c)
	}

	return nil, report.Raise(l.getSpan(), "unknown character `%c`", c)
}

// -----------------------------------------------------------------------------

// keywordPatterns holds the reserved words.
var keywordPatterns = map[string]int{
	"break":  TOK_BREAK,
	"char":   TOK_CHAR,
	"double": TOK_DOUBLE,
	"else":   TOK_ELSE,
	"for":    TOK_FOR,
	"if":     TOK_IF,
	"int":    TOK_INT,
	"return": TOK_RETURN,
	"struct": TOK_STRUCT,
	"void":   TOK_VOID,
	"while":  TOK_WHILE,
}

// lexIdentOrKeyword lexes a word: a keyword if it is reserved, an identifier
// otherwise.
func (l *Lexer) lexIdentOrKeyword() (*Token, error) {
	l.mark()
	l.eat()

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if !isFirstIdentChar(c) && !isDecimalDigit(c) {
			break
		}

		l.eat()
	}

	var kind int
	if _kind, ok := keywordPatterns[l.tokBuff.String()]; ok {
		kind = _kind
	} else {
		kind = TOK_IDENT
	}

	return l.makeToken(kind), nil
}

// -----------------------------------------------------------------------------

// lexNumericLit lexes an integer or real literal.  Integers may be decimal,
// octal (leading `0`) or hexadecimal (leading `0x`).  Reals have a fractional
// part, an exponent, or both.
func (l *Lexer) lexNumericLit() (*Token, error) {
	l.mark()
	first, err := l.eat()
	if err != nil {
		return nil, err
	}

	if first == '0' {
		c, err := l.peek()
		if err != nil {
			return nil, err
		}

		if c == 'x' || c == 'X' {
			l.eat()

			n, err := l.eatDigits(isHexDigit)
			if err != nil {
				return nil, err
			} else if n == 0 {
				return nil, report.Raise(l.getSpan(), "incomplete hexadecimal literal")
			}

			return l.makeToken(TOK_INTLIT), nil
		}
	}

	if _, err := l.eatDigits(isDecimalDigit); err != nil {
		return nil, err
	}

	isReal := false

	c, err := l.peek()
	if err != nil {
		return nil, err
	}

	if c == '.' {
		l.eat()
		isReal = true

		n, err := l.eatDigits(isDecimalDigit)
		if err != nil {
			return nil, err
		} else if n == 0 {
			return nil, report.Raise(l.getSpan(), "expected digits after decimal point")
		}

		if c, err = l.peek(); err != nil {
			return nil, err
		}
	}

	if c == 'e' || c == 'E' {
		l.eat()
		isReal = true

		if c, err = l.peek(); err != nil {
			return nil, err
		} else if c == '+' || c == '-' {
			l.eat()
		}

		n, err := l.eatDigits(isDecimalDigit)
		if err != nil {
			return nil, err
		} else if n == 0 {
			return nil, report.Raise(l.getSpan(), "incomplete exponent in real literal")
		}
	}

	if isReal {
		return l.makeToken(TOK_REALLIT), nil
	}

	// A leading zero makes the literal octal.
	if value := l.tokBuff.String(); len(value) > 1 && value[0] == '0' {
		for _, d := range value[1:] {
			if d > '7' {
				return nil, report.Raise(l.getSpan(), "invalid digit `%c` in octal literal", d)
			}
		}
	}

	return l.makeToken(TOK_INTLIT), nil
}

// eatDigits consumes digits for as long as isDigit accepts them and returns
// how many were consumed.
func (l *Lexer) eatDigits(isDigit func(rune) bool) (int, error) {
	n := 0
	for {
		c, err := l.peek()
		if err != nil {
			return n, err
		} else if c == -1 || !isDigit(c) {
			return n, nil
		}

		l.eat()
		n++
	}
}

// -----------------------------------------------------------------------------

// lexStringLit lexes a string literal.
func (l *Lexer) lexStringLit() (*Token, error) {
	l.mark()
	l.skip()

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		}

		switch c {
		case -1:
			return nil, report.Raise(l.getSpan(), "unclosed string literal")
		case '"':
			l.skip()
			return l.makeToken(TOK_STRINGLIT), nil
		case '\\':
			l.skip()
			if err = l.eatEscapeSequence(); err != nil {
				return nil, err
			}
		case '\n':
			return nil, report.Raise(l.getSpan(), "string literal cannot contain a newline")
		default:
			l.eat()
		}
	}
}

// lexCharLit lexes a character literal.
func (l *Lexer) lexCharLit() (*Token, error) {
	l.mark()
	l.skip()

	c, err := l.peek()
	if err != nil {
		return nil, err
	}

	switch c {
	case -1:
		return nil, report.Raise(l.getSpan(), "unclosed character literal")
	case '\'':
		l.skip()
		return nil, report.Raise(l.getSpan(), "empty character literal")
	case '\n':
		return nil, report.Raise(l.getSpan(), "character literal cannot contain a newline")
	case '\\':
		l.skip()
		if err = l.eatEscapeSequence(); err != nil {
			return nil, err
		}
	default:
		if c > 0xff {
			l.eat()
			return nil, report.Raise(l.getSpan(), "character literal must be a single byte")
		}

		l.eat()
	}

	c, err = l.skip()
	if err != nil {
		return nil, err
	} else if c == -1 {
		return nil, report.Raise(l.getSpan(), "unclosed character literal")
	} else if c != '\'' {
		return nil, report.Raise(l.getSpan(), "character literal cannot contain multiple characters")
	}

	return l.makeToken(TOK_CHARLIT), nil
}

// escapeSequences maps the character following a `\` to the character the
// escape sequence stands for.
var escapeSequences = map[rune]rune{
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
	'\'': '\'',
	'?':  '?',
	'"':  '"',
	'\\': '\\',
	'0':  0,
}

// eatEscapeSequence consumes an escape sequence and writes the character it
// stands for to the token buffer.  This assumes the leading `\` has already
// been skipped.
func (l *Lexer) eatEscapeSequence() error {
	c, err := l.skip()
	if err != nil {
		return err
	}

	if c == -1 {
		return report.Raise(l.getSpan(), "expected escape sequence not end of file")
	}

	decoded, ok := escapeSequences[c]
	if !ok {
		return report.Raise(l.getSpan(), "unknown escape sequence: `\\%c`", c)
	}

	l.tokBuff.WriteRune(decoded)
	return nil
}

// -----------------------------------------------------------------------------

// lexCommentOrDiv lexes a comment or a division token.  Comments produce no
// token.
func (l *Lexer) lexCommentOrDiv() (*Token, error) {
	l.mark()
	l.skip()

	c, err := l.peek()
	if err != nil {
		return nil, err
	}

	switch c {
	case '/':
		for ; err == nil && c != '\n' && c != -1; c, err = l.skip() {
		}

		return nil, err
	case '*':
		l.skip()

		var prev rune
		for {
			c, err = l.skip()
			if err != nil {
				return nil, err
			} else if c == -1 {
				return nil, report.Raise(l.getSpan(), "unclosed block comment")
			} else if prev == '*' && c == '/' {
				return nil, nil
			}

			prev = c
		}
	default:
		tok := l.makeToken(TOK_DIV)
		tok.Value = "/"
		return tok, nil
	}
}

// -----------------------------------------------------------------------------

// mark records the current position as the start of the next token.
func (l *Lexer) mark() {
	l.startLine = l.line
	l.startCol = l.col
}

// makeToken builds a token of the given kind from the buffered text and
// clears the buffer.
func (l *Lexer) makeToken(kind int) *Token {
	value := l.tokBuff.String()
	l.tokBuff.Reset()

	return &Token{
		Kind:  kind,
		Value: value,
		Span:  l.getSpan(),
	}
}

// getSpan returns the span from the last mark to the current position.
func (l *Lexer) getSpan() *report.TextSpan {
	return &report.TextSpan{
		StartLine: l.startLine,
		StartCol:  l.startCol,
		EndLine:   l.line,
		EndCol:    l.col,
	}
}

// -----------------------------------------------------------------------------

// read consumes one rune and advances the position past it.  At the end of
// input it returns -1.
func (l *Lexer) read() (rune, error) {
	c, _, err := l.file.ReadRune()
	if err == io.EOF {
		return -1, nil
	} else if err != nil {
		return 0, err
	}

	l.updatePos(c)
	return c, nil
}

// eat consumes one rune and appends it to the token text.
func (l *Lexer) eat() (rune, error) {
	c, err := l.read()
	if err == nil && c != -1 {
		l.tokBuff.WriteRune(c)
	}

	return c, err
}

// skip consumes one rune without adding it to the token text.
func (l *Lexer) skip() (rune, error) {
	return l.read()
}

// peek returns the next rune without consuming it, or -1 at the end of input.
func (l *Lexer) peek() (rune, error) {
	c, _, err := l.file.ReadRune()
	if err == io.EOF {
		return -1, nil
	} else if err != nil {
		return 0, err
	}

	return c, l.file.UnreadRune()
}

// updatePos updates the lexer's position based on input character.  Every
// character other than a newline counts as a single column.
func (l *Lexer) updatePos(c rune) {
	if c == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
}

// -----------------------------------------------------------------------------

// isDecimalDigit reports whether c is in 0-9.
func isDecimalDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

// isHexDigit returns whether c is a hexadecimal digit.
func isHexDigit(c rune) bool {
	return isDecimalDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// isFirstIdentChar returns whether c could be the first character of an
// identifier.
func isFirstIdentChar(c rune) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}
