package schema

import (
	"errors"
	"fmt"
)

// Generation-time error kinds. All are fatal to generation and must reach
// whoever requested it.
var (
	ErrUnsupportedShape = errors.New("unsupported record shape")
	ErrDuplicateField   = errors.New("duplicate field name")
	ErrMissingErrorType = errors.New("missing error type")
)

// Error ties a generation-time failure to the record (and field) it concerns.
// It unwraps to one of the kind sentinels above.
type Error struct {
	Kind   error
	Record string
	Field  string
	Detail string
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Record, e.Kind)

	if e.Field != "" {
		msg += fmt.Sprintf(" (field %s)", e.Field)
	}

	if e.Detail != "" {
		msg += ": " + e.Detail
	}

	return msg
}

// Unwrap returns the kind sentinel for errors.Is checks.
func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, record, field, detail string) *Error {
	return &Error{
		Kind:   kind,
		Record: record,
		Field:  field,
		Detail: detail,
	}
}
