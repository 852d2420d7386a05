package report

import "fmt"

// TextSpan represents a range or "span" of source text.  Line and column
// numbers are one-indexed.  The starting position is the position of the first
// character in the span; the ending column is one past the last character.
type TextSpan struct {
	// The line and column beginning the text span.
	StartLine, StartCol int

	// The line and column ending the text span.
	EndLine, EndCol int
}

// NewSpanOver returns a new text span which spans over and between the two
// given text spans.
func NewSpanOver(start, end *TextSpan) *TextSpan {
	return &TextSpan{
		StartLine: start.StartLine,
		StartCol:  start.StartCol,
		EndLine:   end.EndLine,
		EndCol:    end.EndCol,
	}
}

func (ts *TextSpan) String() string {
	return fmt.Sprintf("%d:%d", ts.StartLine, ts.StartCol)
}
