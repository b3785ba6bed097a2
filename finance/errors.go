package finance

import "fmt"

// ValidationError reports a domain violation in a formula's inputs.
// The calculator surfaces these as validation errors rather than
// general evaluation failures.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func errValidation(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}
