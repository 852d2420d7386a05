package report

import (
	"errors"
	"fmt"
)

// CompileError is a diagnostic produced while checking a single source file.
// The file is known by whoever handles the error, so only the position within
// it is recorded.  Warnings use the same record with IsWarning set.
type CompileError struct {
	// The error message.
	Message string

	// The span over which the error occurs.  This may be nil.
	Span *TextSpan

	// Whether this diagnostic is a warning rather than an error.
	IsWarning bool
}

func (ce *CompileError) Error() string {
	if ce.Span == nil {
		return ce.Message
	}

	return fmt.Sprintf("%d:%d: %s", ce.Span.StartLine, ce.Span.StartCol, ce.Message)
}

// Line returns the line of the diagnostic or 0 if it has no position.
func (ce *CompileError) Line() int {
	if ce.Span == nil {
		return 0
	}

	return ce.Span.StartLine
}

// Column returns the column of the diagnostic or 0 if it has no position.
func (ce *CompileError) Column() int {
	if ce.Span == nil {
		return 0
	}

	return ce.Span.StartCol
}

// Raise creates a new compile error.
func Raise(span *TextSpan, msg string, args ...interface{}) *CompileError {
	return &CompileError{Message: fmt.Sprintf(msg, args...), Span: span}
}

// Warn creates a new compile warning.
func Warn(span *TextSpan, msg string, args ...interface{}) *CompileError {
	return &CompileError{Message: fmt.Sprintf(msg, args...), Span: span, IsWarning: true}
}

// AsCompileError unwraps err into a compile error if it is one.
func AsCompileError(err error) (*CompileError, bool) {
	var cerr *CompileError
	if errors.As(err, &cerr) {
		return cerr, true
	}

	return nil, false
}
