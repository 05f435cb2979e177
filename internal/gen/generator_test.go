package gen_test

import (
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staging-generator/internal/analyze"
	"staging-generator/internal/gen"
	"staging-generator/internal/schema"
)

func personSpec(t *testing.T) *schema.StructSpec {
	t.Helper()

	spec, err := schema.Build(&analyze.RecordDescription{
		ID:      analyze.RecordID{PkgPath: "staging-generator/person", Name: "Args"},
		Kind:    analyze.TypeKindStruct,
		PkgName: "person",
		Fields: []analyze.FieldDecl{
			{Name: "Name", Type: "string", Exported: true},
			{Name: "Age", Type: "uint32", Exported: true},
		},
	}, schema.Options{
		ErrorType:               "Error",
		CollectAdditionalErrors: true,
	})
	require.NoError(t, err)

	return spec
}

func TestGenerator_Generate_PersonArgs(t *testing.T) {
	t.Parallel()

	g := gen.NewGenerator(gen.DefaultGeneratorConfig())

	files, err := g.Generate([]*schema.StructSpec{personSpec(t)})
	require.NoError(t, err)
	require.Len(t, files, 1)

	assert.Equal(t, "args_staging.go", files[0].Filename)

	content := string(files[0].Content)

	assert.Contains(t, content, "// Code generated by staging-generator. DO NOT EDIT.")
	assert.Contains(t, content, "package person")
	assert.Contains(t, content, `staging "staging-generator/staging"`)
	assert.Contains(t, content, "type ArgsStaging struct {")
	assert.Contains(t, content, "Name staging.Outcome[string, Error]")
	assert.Contains(t, content, "Age  staging.Outcome[uint32, Error]")
	assert.Contains(t, content, "AdditionalErrors []Error")
	assert.Contains(t, content, "func (s ArgsStaging) TryConvert() (Args, error) {")
	assert.Contains(t, content, "errs := append([]Error(nil), s.AdditionalErrors...)")
	assert.Contains(t, content, "return zero, CombineErrors(errs)")

	// Field errors must be collected in declaration order.
	assert.Less(t,
		strings.Index(content, "s.Name.Err()"),
		strings.Index(content, "s.Age.Err()"))
}

func TestGenerator_Generate_Deterministic(t *testing.T) {
	t.Parallel()

	g := gen.NewGenerator(gen.DefaultGeneratorConfig())

	first, err := g.Generate([]*schema.StructSpec{personSpec(t)})
	require.NoError(t, err)

	second, err := g.Generate([]*schema.StructSpec{personSpec(t)})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerator_Generate_WithoutAdditionalErrors(t *testing.T) {
	t.Parallel()

	spec, err := schema.Build(&analyze.RecordDescription{
		ID:      analyze.RecordID{PkgPath: "staging-generator/shipment", Name: "Manifest"},
		Kind:    analyze.TypeKindStruct,
		PkgName: "shipment",
		Fields: []analyze.FieldDecl{
			{Name: "Carrier", Type: "string", Exported: true},
			{Name: "Pieces", Type: "int", Exported: true},
			{Name: "WeightKg", Type: "float64", Exported: true},
		},
	}, schema.Options{
		ErrorType:      "FieldError",
		FinalErrorType: "*ManifestError",
		Reduce:         "NewManifestError",
	})
	require.NoError(t, err)

	g := gen.NewGenerator(gen.DefaultGeneratorConfig())

	files, err := g.Generate([]*schema.StructSpec{spec})
	require.NoError(t, err)
	require.Len(t, files, 1)

	content := string(files[0].Content)

	assert.Contains(t, content, "var errs []FieldError")
	assert.Contains(t, content, "return zero, NewManifestError(errs)")
	assert.NotContains(t, content, "AdditionalErrors")

	spew.Dump(files[0].Filename)
}

func TestGenerator_Generate_FieldTypeImports(t *testing.T) {
	t.Parallel()

	spec, err := schema.Build(&analyze.RecordDescription{
		ID:      analyze.RecordID{PkgPath: "staging-generator/shipment", Name: "Window"},
		Kind:    analyze.TypeKindStruct,
		PkgName: "shipment",
		Fields: []analyze.FieldDecl{
			{
				Name:     "Departure",
				Type:     "time.Time",
				Exported: true,
				Imports:  []analyze.Import{{Alias: "time", Path: "time"}},
			},
		},
	}, schema.Options{ErrorType: "FieldError"})
	require.NoError(t, err)

	g := gen.NewGenerator(gen.DefaultGeneratorConfig())

	files, err := g.Generate([]*schema.StructSpec{spec})
	require.NoError(t, err)
	require.Len(t, files, 1)

	content := string(files[0].Content)

	assert.Contains(t, content, `time "time"`)
	assert.Contains(t, content, "Departure staging.Outcome[time.Time, FieldError]")
}

func TestGenerator_Generate_NoComments(t *testing.T) {
	t.Parallel()

	g := gen.NewGenerator(gen.GeneratorConfig{GenerateComments: false})

	files, err := g.Generate([]*schema.StructSpec{personSpec(t)})
	require.NoError(t, err)
	require.Len(t, files, 1)

	content := string(files[0].Content)

	assert.NotContains(t, content, "// ArgsStaging holds")
	assert.NotContains(t, content, "// TryConvert reduces")
	// The AdditionalErrors comment is part of the shape, not a doc comment.
	assert.Contains(t, content, "AdditionalErrors []Error")
}
