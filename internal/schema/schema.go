package schema

import (
	"staging-generator/internal/analyze"
	"staging-generator/internal/common"
)

// Defaults applied by Build when the corresponding option is unset.
const (
	DefaultStagingSuffix = "Staging"
	DefaultReduce        = "CombineErrors"
	DefaultRuntime       = "staging-generator/staging"
)

// FieldSpec describes one record field. The declared type is opaque to the
// generator and passed through unmodified, together with the imports needed
// to spell it outside its declaring file.
type FieldSpec struct {
	Name    string
	Type    string
	Imports []analyze.Import
}

// Options are the per-record generation options from the config surface.
// Zero values mean "use the default".
type Options struct {
	// StagingName overrides the generated staging type's identifier.
	StagingName string
	// ErrorType is the per-field error type. Required.
	ErrorType string
	// FinalErrorType is the aggregated error type; defaults to ErrorType.
	FinalErrorType string
	// Reduce names the consumer function reducing []ErrorType to
	// FinalErrorType.
	Reduce string
	// Runtime is the import path of the staging runtime package.
	Runtime string
	// CollectAdditionalErrors adds the unassociated-error collection to the
	// staging shape.
	CollectAdditionalErrors bool
}

// StructSpec is a validated, fully defaulted description of one record.
// Constructed once by Build and never mutated afterwards.
type StructSpec struct {
	// Name is the identifier of the final record type.
	Name string
	// PkgName and PkgPath identify the package the record (and its generated
	// staging code) lives in; Dir is where generated files are written.
	PkgName string
	PkgPath string
	Dir     string
	// Fields in declaration order. Never empty.
	Fields []FieldSpec

	StagingName             string
	ErrorType               string
	FinalErrorType          string
	Reduce                  string
	Runtime                 string
	CollectAdditionalErrors bool
}

// Build validates and normalizes a record description into a StructSpec.
// It is pure: no side effects, deterministic for identical input.
func Build(desc *analyze.RecordDescription, opts Options) (*StructSpec, error) {
	if desc == nil {
		return nil, newError(ErrUnsupportedShape, "", "", "no record description")
	}

	record := desc.ID.String()

	if desc.Kind != analyze.TypeKindStruct {
		return nil, newError(ErrUnsupportedShape, record, "",
			"type is a "+desc.Kind.String()+", want a flat named-field struct")
	}

	if common.IsEmpty(desc.Fields) {
		return nil, newError(ErrUnsupportedShape, record, "", "record has no fields")
	}

	if opts.ErrorType == "" {
		return nil, newError(ErrMissingErrorType, record, "",
			"the error option is required and has no default")
	}

	spec := &StructSpec{
		Name:                    desc.ID.Name,
		PkgName:                 desc.PkgName,
		PkgPath:                 desc.ID.PkgPath,
		Dir:                     desc.Dir,
		StagingName:             opts.StagingName,
		ErrorType:               opts.ErrorType,
		FinalErrorType:          opts.FinalErrorType,
		Reduce:                  opts.Reduce,
		Runtime:                 opts.Runtime,
		CollectAdditionalErrors: opts.CollectAdditionalErrors,
	}

	seen := make(map[string]bool, len(desc.Fields))

	for _, field := range desc.Fields {
		if field.Embedded {
			return nil, newError(ErrUnsupportedShape, record, field.Name,
				"embedded fields are not supported")
		}

		if seen[field.Name] {
			return nil, newError(ErrDuplicateField, record, field.Name, "")
		}

		seen[field.Name] = true

		spec.Fields = append(spec.Fields, FieldSpec{
			Name:    field.Name,
			Type:    field.Type,
			Imports: field.Imports,
		})
	}

	applyDefaults(spec)

	return spec, nil
}

// applyDefaults fills in default values for unset options.
func applyDefaults(spec *StructSpec) {
	if spec.StagingName == "" {
		spec.StagingName = spec.Name + DefaultStagingSuffix
	}

	if spec.FinalErrorType == "" {
		spec.FinalErrorType = spec.ErrorType
	}

	if spec.Reduce == "" {
		spec.Reduce = DefaultReduce
	}

	if spec.Runtime == "" {
		spec.Runtime = DefaultRuntime
	}
}
