// Package calc implements the sandboxed expression evaluator behind the
// calculator API: a restricted lexer/parser for arithmetic and
// catalogue-function calls, a tree interpreter bound to an immutable
// function catalogue, and the canonical result formatter.
package calc

import "fmt"

// Kind classifies an evaluation failure for the API surface.
type Kind string

const (
	// KindValidation marks bad input domains the user can fix.
	KindValidation Kind = "validation_error"
	// KindMath marks division by zero and numeric overflow.
	KindMath Kind = "math_error"
	// KindGeneral marks unknown names, wrong arity, type mismatches, and
	// anything else indicating a malformed expression.
	KindGeneral Kind = "general_error"
)

// Error is an evaluation failure carrying its taxonomy kind. All kinds map
// to HTTP 400 at the API layer.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func errValidation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func errMath(format string, args ...any) *Error {
	return &Error{Kind: KindMath, Message: fmt.Sprintf(format, args...)}
}

func errGeneral(format string, args ...any) *Error {
	return &Error{Kind: KindGeneral, Message: fmt.Sprintf(format, args...)}
}

// errDivisionByZero and errOverflow are the two math_error cases.
func errDivisionByZero() *Error {
	return errMath("Division by zero")
}

func errOverflow() *Error {
	return errMath("Numeric overflow - result too large")
}
