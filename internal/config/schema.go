package config

import (
	"staging-generator/internal/schema"
)

// File represents the root of a YAML staging configuration file.
type File struct {
	// Version of the config schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Packages are Go package patterns loaded into the type graph.
	Packages []string `yaml:"packages"`

	// Records lists the record definitions to generate staging types for.
	Records []RecordDef `yaml:"records"`
}

// RecordDef selects one record type and carries its generation options.
type RecordDef struct {
	// Type references the record type as "pkgname.Type" or "import/path.Type".
	Type string `yaml:"type"`

	// Name overrides the generated staging type's identifier.
	// Defaults to "<Type>Staging".
	Name string `yaml:"name,omitempty"`

	// Error is the per-field error type, spelled as it would be inside the
	// record's package. Required.
	Error string `yaml:"error"`

	// FinalError is the aggregated error type the reducer returns.
	// Defaults to Error.
	FinalError string `yaml:"final_error,omitempty"`

	// Reduce names the consumer-supplied reduction function
	// func([]Error) FinalError in the record's package.
	Reduce string `yaml:"reduce,omitempty"`

	// Runtime overrides the import path generated code resolves the staging
	// runtime from.
	Runtime string `yaml:"runtime,omitempty"`

	// CollectAdditionalErrors adds the AdditionalErrors collection to the
	// staging shape.
	CollectAdditionalErrors bool `yaml:"collect_additional_errors,omitempty"`
}

// Options converts the definition into schema options. Defaulting is left to
// schema.Build.
func (r *RecordDef) Options() schema.Options {
	return schema.Options{
		StagingName:             r.Name,
		ErrorType:               r.Error,
		FinalErrorType:          r.FinalError,
		Reduce:                  r.Reduce,
		Runtime:                 r.Runtime,
		CollectAdditionalErrors: r.CollectAdditionalErrors,
	}
}
