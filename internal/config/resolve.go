package config

import (
	"errors"

	"staging-generator/internal/analyze"
	"staging-generator/internal/diagnostic"
	"staging-generator/internal/schema"
)

// Resolve validates the config against the type graph and builds one
// StructSpec per record, in config order. On any error diagnostic no specs
// are returned; generation is all-or-nothing.
func Resolve(f *File, graph *analyze.TypeGraph) ([]*schema.StructSpec, *diagnostic.Diagnostics) {
	res := Validate(f, graph)
	if res.HasErrors() {
		return nil, res
	}

	specs := make([]*schema.StructSpec, 0, len(f.Records))

	for i := range f.Records {
		r := &f.Records[i]

		spec, err := schema.Build(graph.Lookup(r.Type), r.Options())
		if err != nil {
			res.AddError(schemaErrorCode(err), err.Error(), r.Type, "")
			continue
		}

		specs = append(specs, spec)
	}

	if res.HasErrors() {
		return nil, res
	}

	return specs, res
}

// schemaErrorCode maps schema error kinds to diagnostic codes.
func schemaErrorCode(err error) string {
	switch {
	case errors.Is(err, schema.ErrUnsupportedShape):
		return "unsupported_shape"
	case errors.Is(err, schema.ErrDuplicateField):
		return "duplicate_field"
	case errors.Is(err, schema.ErrMissingErrorType):
		return "missing_error_type"
	default:
		return "schema_error"
	}
}
