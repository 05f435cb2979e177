package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staging-generator/internal/analyze"
	"staging-generator/internal/config"
	"staging-generator/internal/diagnostic"
)

// testGraph builds a small type graph by hand. Without go/types information
// only structural checks run, which is exactly what these tests cover.
func testGraph() *analyze.TypeGraph {
	g := analyze.NewTypeGraph()

	argsID := analyze.RecordID{PkgPath: "staging-generator/person", Name: "Args"}
	statusID := analyze.RecordID{PkgPath: "staging-generator/person", Name: "Status"}

	g.Packages["staging-generator/person"] = &analyze.PackageInfo{
		Path:    "staging-generator/person",
		Name:    "person",
		Records: []analyze.RecordID{argsID, statusID},
	}

	g.Records[argsID] = &analyze.RecordDescription{
		ID:      argsID,
		Kind:    analyze.TypeKindStruct,
		PkgName: "person",
		Fields: []analyze.FieldDecl{
			{Name: "Name", Type: "string", Exported: true},
			{Name: "Age", Type: "uint32", Exported: true},
		},
	}

	g.Records[statusID] = &analyze.RecordDescription{
		ID:      statusID,
		Kind:    analyze.TypeKindBasic,
		PkgName: "person",
	}

	return g
}

func errorCodes(d *diagnostic.Diagnostics) []string {
	codes := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		codes = append(codes, e.Code)
	}

	return codes
}

func validFile() *config.File {
	return &config.File{
		Version:  "1",
		Packages: []string{"./person"},
		Records: []config.RecordDef{
			{Type: "person.Args", Error: "Error"},
		},
	}
}

func TestValidate_Valid(t *testing.T) {
	t.Parallel()

	res := config.Validate(validFile(), testGraph())

	assert.True(t, res.IsValid())
	assert.NoError(t, res.Error())
}

func TestValidate_NilInputs(t *testing.T) {
	t.Parallel()

	res := config.Validate(nil, testGraph())
	assert.Contains(t, errorCodes(res), "config_is_nil")

	res = config.Validate(validFile(), nil)
	assert.Contains(t, errorCodes(res), "graph_is_nil")
}

func TestValidate_Findings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.File)
		code   string
	}{
		{
			name:   "no packages",
			mutate: func(f *config.File) { f.Packages = nil },
			code:   "no_packages",
		},
		{
			name: "record type missing",
			mutate: func(f *config.File) {
				f.Records = append(f.Records, config.RecordDef{Error: "Error"})
			},
			code: "record_type_missing",
		},
		{
			name: "record type not found",
			mutate: func(f *config.File) {
				f.Records[0].Type = "person.Nope"
			},
			code: "record_type_not_found",
		},
		{
			name: "duplicate record",
			mutate: func(f *config.File) {
				f.Records = append(f.Records, f.Records[0])
			},
			code: "duplicate_record",
		},
		{
			name: "record not a struct",
			mutate: func(f *config.File) {
				f.Records[0].Type = "person.Status"
			},
			code: "record_not_a_struct",
		},
		{
			name: "error type missing",
			mutate: func(f *config.File) {
				f.Records[0].Error = ""
			},
			code: "error_type_missing",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := validFile()
			tt.mutate(f)

			res := config.Validate(f, testGraph())
			assert.Contains(t, errorCodes(res), tt.code)
		})
	}
}

func TestValidate_UnknownVersionWarns(t *testing.T) {
	t.Parallel()

	f := validFile()
	f.Version = "2"

	res := config.Validate(f, testGraph())

	assert.True(t, res.IsValid())
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "unknown_version", res.Warnings[0].Code)
}

func TestResolve(t *testing.T) {
	t.Parallel()

	specs, res := config.Resolve(validFile(), testGraph())

	require.True(t, res.IsValid(), "unexpected diagnostics: %v", res.Errors)
	require.Len(t, specs, 1)

	assert.Equal(t, "Args", specs[0].Name)
	assert.Equal(t, "ArgsStaging", specs[0].StagingName)
	assert.Equal(t, "Error", specs[0].ErrorType)
}

func TestResolve_SchemaErrorSurfaces(t *testing.T) {
	t.Parallel()

	graph := testGraph()
	id := analyze.RecordID{PkgPath: "staging-generator/person", Name: "Args"}
	graph.Records[id].Fields[0].Embedded = true

	specs, res := config.Resolve(validFile(), graph)

	assert.Nil(t, specs)
	assert.Contains(t, errorCodes(res), "unsupported_shape")
}

func TestResolve_StopsOnValidationErrors(t *testing.T) {
	t.Parallel()

	f := validFile()
	f.Records[0].Type = "person.Nope"

	specs, res := config.Resolve(f, testGraph())

	assert.Nil(t, specs)
	assert.True(t, res.HasErrors())
}
