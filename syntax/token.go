package syntax

import "atomc/report"

// Token represents a single lexical token.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// The string value of the token.  For character and string literals, this
	// is the decoded value: quotes are trimmed and escapes are replaced.
	Value string

	// The text span over which the token exists.
	Span *report.TextSpan
}

// Enumeration of token kinds.
const (
	TOK_IDENT = iota

	TOK_BREAK
	TOK_CHAR
	TOK_DOUBLE
	TOK_ELSE
	TOK_FOR
	TOK_IF
	TOK_INT
	TOK_RETURN
	TOK_STRUCT
	TOK_VOID
	TOK_WHILE

	TOK_INTLIT
	TOK_REALLIT
	TOK_CHARLIT
	TOK_STRINGLIT

	TOK_COMMA
	TOK_SEMI
	TOK_LPAREN
	TOK_RPAREN
	TOK_LBRACKET
	TOK_RBRACKET
	TOK_LBRACE
	TOK_RBRACE

	TOK_PLUS
	TOK_MINUS
	TOK_STAR
	TOK_DIV
	TOK_DOT
	TOK_LAND
	TOK_LOR
	TOK_NOT
	TOK_ASSIGN
	TOK_EQ
	TOK_NEQ
	TOK_LT
	TOK_LTEQ
	TOK_GT
	TOK_GTEQ

	TOK_EOF
)

// tokenNames holds the display name of each token kind.
var tokenNames = map[int]string{
	TOK_IDENT:     "identifier",
	TOK_INTLIT:    "integer constant",
	TOK_REALLIT:   "real constant",
	TOK_CHARLIT:   "character constant",
	TOK_STRINGLIT: "string constant",
	TOK_EOF:       "end of file",
}

func init() {
	for pattern, kind := range keywordPatterns {
		tokenNames[kind] = "`" + pattern + "`"
	}

	for pattern, kind := range symbolPatterns {
		tokenNames[kind] = "`" + pattern + "`"
	}

	tokenNames[TOK_DIV] = "`/`"
}

// TokenKindName returns a human readable name for a token kind.
func TokenKindName(kind int) string {
	if name, ok := tokenNames[kind]; ok {
		return name
	}

	return "<unknown token>"
}
