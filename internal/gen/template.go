package gen

import "text/template"

// Template for the staging file. Field errors are appended strictly after
// the seeded additional errors and in declaration order; the reduce call is
// the only failure exit.
var stagingTemplate = template.Must(template.New("staging").Parse(`// Code generated by staging-generator. DO NOT EDIT.

package {{.PackageName}}

{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}
{{if .GenerateComments}}// {{.StagingName}} holds one fallible slot per {{.RecordName}} field{{if .CollectAdditionalErrors}}, plus
// errors not tied to any single field{{end}}.
{{end}}type {{.StagingName}} struct {
{{range .Fields}}	{{.Name}} {{.SlotType}}
{{end}}{{if .CollectAdditionalErrors}}
	// AdditionalErrors collects errors that cannot be attributed to one field.
	AdditionalErrors []{{.ErrorType}}
{{end}}}

{{if .GenerateComments}}// TryConvert reduces a fully populated {{.StagingName}} into {{.RecordName}}.
// On failure it returns the result of {{.Reduce}} over every collected error:
// {{if .CollectAdditionalErrors}}additional errors first, in their original order, then field errors in
// declaration order{{else}}field errors in declaration order{{end}}. On success {{.Reduce}} is not invoked.
{{end}}func (s {{.StagingName}}) TryConvert() ({{.RecordName}}, error) {
{{if .CollectAdditionalErrors}}	errs := append([]{{.ErrorType}}(nil), s.AdditionalErrors...)
{{else}}	var errs []{{.ErrorType}}
{{end}}
{{range .Fields}}	{{.Var}}, ok := s.{{.Name}}.Get()
	if !ok {
		errs = append(errs, s.{{.Name}}.Err())
	}

{{end}}	if len(errs) > 0 {
		var zero {{.RecordName}}
		return zero, {{.Reduce}}(errs)
	}

	return {{.RecordName}}{
{{range .Fields}}		{{.Name}}: {{.Var}},
{{end}}	}, nil
}
`))
