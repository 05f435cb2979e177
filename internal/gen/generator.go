package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"

	"staging-generator/internal/common"
	"staging-generator/internal/schema"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		GenerateComments: true,
	}
}

// Generator generates staging Go code from validated struct specs.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the directory the file belongs in (the record's package dir).
	Dir string
	// Filename is the name of the file (e.g., "args_staging.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate generates one staging file per spec, in spec order.
// Output is a pure function of the specs: deterministic for identical input.
func (g *Generator) Generate(specs []*schema.StructSpec) ([]GeneratedFile, error) {
	var files []GeneratedFile

	for _, spec := range specs {
		file, err := g.generateRecord(spec)
		if err != nil {
			return nil, fmt.Errorf("generating %s.%s: %w", spec.PkgPath, spec.Name, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// generateRecord generates the staging file for a single record.
func (g *Generator) generateRecord(spec *schema.StructSpec) (*GeneratedFile, error) {
	data := g.buildTemplateData(spec)

	var buf bytes.Buffer
	if err := stagingTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	// Format the generated code
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid debugging.
		// This is intentionally non-fatal for the write attempt.
		if spec.Dir != "" {
			_ = writeDebugUnformatted(spec.Dir, data.Filename, buf.Bytes())
		}
		// Return unformatted code for debugging
		return &GeneratedFile{
			Dir:      spec.Dir,
			Filename: data.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Dir:      spec.Dir,
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

// templateData holds all data needed for the staging template.
type templateData struct {
	PackageName             string
	Filename                string
	Imports                 []importSpec
	RecordName              string
	StagingName             string
	ErrorType               string
	Reduce                  string
	Fields                  []fieldData
	CollectAdditionalErrors bool
	GenerateComments        bool
}

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}

// fieldData represents one staging slot in the template.
type fieldData struct {
	Name     string
	SlotType string
	Var      string
}

// buildTemplateData constructs the template data from a struct spec.
func (g *Generator) buildTemplateData(spec *schema.StructSpec) *templateData {
	data := &templateData{
		PackageName:             spec.PkgName,
		Filename:                g.filename(spec),
		RecordName:              spec.Name,
		StagingName:             spec.StagingName,
		ErrorType:               spec.ErrorType,
		Reduce:                  spec.Reduce,
		CollectAdditionalErrors: spec.CollectAdditionalErrors,
		GenerateComments:        g.config.GenerateComments,
	}

	runtimeAlias := common.PkgAlias(spec.Runtime)

	// Collect imports: the runtime package plus whatever the field types need.
	imports := map[string]importSpec{
		spec.Runtime: {Alias: runtimeAlias, Path: spec.Runtime},
	}

	for i, field := range spec.Fields {
		for _, imp := range field.Imports {
			imports[imp.Path] = importSpec{Alias: imp.Alias, Path: imp.Path}
		}

		data.Fields = append(data.Fields, fieldData{
			Name:     field.Name,
			SlotType: fmt.Sprintf("%s.Outcome[%s, %s]", runtimeAlias, field.Type, spec.ErrorType),
			Var:      fmt.Sprintf("v%d", i),
		})
	}

	// Convert imports map to sorted slice for deterministic output.
	for _, imp := range imports {
		data.Imports = append(data.Imports, imp)
	}

	sort.Slice(data.Imports, func(i, j int) bool {
		return data.Imports[i].Path < data.Imports[j].Path
	})

	return data
}

func (g *Generator) filename(spec *schema.StructSpec) string {
	return strings.ToLower(spec.Name) + "_staging.go"
}
