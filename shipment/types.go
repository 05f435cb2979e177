// Package shipment is the second staging example: a record with a dedicated
// aggregate error type and no unassociated-error collection.
package shipment

import "strings"

// Manifest describes one outbound shipment.
type Manifest struct {
	Carrier  string
	Pieces   int
	WeightKg float64
}

// FieldError is the per-field validation error for Manifest.
type FieldError struct {
	Field string
	Msg   string
}

// Error implements the error interface.
func (e FieldError) Error() string {
	return e.Field + ": " + e.Msg
}

// ManifestError aggregates every FieldError of one validation attempt.
type ManifestError struct {
	Errs []FieldError
}

// Error implements the error interface.
func (e *ManifestError) Error() string {
	parts := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		parts[i] = err.Error()
	}

	return "invalid manifest: " + strings.Join(parts, "; ")
}

// NewManifestError wraps the collected errors in collection order. Unlike
// person.CombineErrors it wraps even a singleton; the aggregate shape is the
// reducer's choice.
func NewManifestError(errs []FieldError) *ManifestError {
	return &ManifestError{Errs: append([]FieldError(nil), errs...)}
}
