// Package person is a worked example of staging validation: a record parsed
// from free-form input where every field is validated independently and all
// failures are reported at once.
package person

import (
	"fmt"
	"strings"
)

// Args is the record being validated.
type Args struct {
	Name string
	Age  uint32
}

// String returns a human-readable description of the record.
func (a Args) String() string {
	return fmt.Sprintf("`%s` is %d years old", a.Name, a.Age)
}

// ErrorKind discriminates the validation errors for Args.
type ErrorKind int

const (
	KindParse ErrorKind = iota
	KindInvalidName
	KindNameAgeMismatch
	KindAgeTooHigh
	KindMultiple
)

// Error is the per-field validation error for Args. KindMultiple is the
// aggregate produced by CombineErrors when more than one error occurred.
type Error struct {
	Kind  ErrorKind
	Cause error   // underlying parse failure, when Kind is KindParse
	Errs  []Error // collected errors, when Kind is KindMultiple
}

// Error implements the error interface.
func (e Error) Error() string {
	switch e.Kind {
	case KindParse:
		return "parse error: " + e.Cause.Error()
	case KindInvalidName:
		return "invalid name"
	case KindNameAgeMismatch:
		return "name and age do not match each other"
	case KindAgeTooHigh:
		return "age too high"
	case KindMultiple:
		var sb strings.Builder
		for i, err := range e.Errs {
			fmt.Fprintf(&sb, "%d: %s\n", i+1, err)
		}

		return sb.String()
	default:
		return "unknown error"
	}
}

// CombineErrors reduces the collected errors of one conversion into a single
// Error. A singleton passes through untouched; anything longer is wrapped as
// KindMultiple in collection order.
func CombineErrors(errs []Error) Error {
	if len(errs) == 1 {
		return errs[0]
	}

	return Error{Kind: KindMultiple, Errs: append([]Error(nil), errs...)}
}
