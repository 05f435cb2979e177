package config

import (
	"fmt"

	"staging-generator/internal/analyze"
	"staging-generator/internal/common"
	"staging-generator/internal/diagnostic"
)

// Validate validates a config against the given type graph. This is a
// structural validation step: it proves what it can from type information and
// leaves value-level concerns to the generated code's compiler run.
func Validate(f *File, graph *analyze.TypeGraph) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("config_is_nil", "config file is nil", "", "")
		return res
	}

	if graph == nil {
		res.AddError("graph_is_nil", "type graph is nil", "", "")
		return res
	}

	if f.Version != "1" {
		res.AddWarning("unknown_version", fmt.Sprintf("unknown config version %q", f.Version), "", "")
	}

	if common.IsEmpty(f.Packages) {
		res.AddError("no_packages", "config lists no packages to load", "", "")
	}

	if common.IsEmpty(f.Records) {
		res.AddWarning("no_records", "config lists no records; nothing to generate", "", "")
	}

	seen := map[string]struct{}{}

	for i := range f.Records {
		r := &f.Records[i]

		if r.Type == "" {
			res.AddError("record_type_missing", fmt.Sprintf("record %d has no type", i), "", "")
			continue
		}

		if _, ok := seen[r.Type]; ok {
			res.AddError("duplicate_record", fmt.Sprintf("record %q defined twice", r.Type), r.Type, "")
			continue
		}

		seen[r.Type] = struct{}{}

		rec := graph.Lookup(r.Type)
		if rec == nil {
			res.AddError("record_type_not_found", fmt.Sprintf("record type %q not found", r.Type), r.Type, "")
			continue
		}

		if rec.Kind != analyze.TypeKindStruct {
			res.AddError("record_not_a_struct",
				fmt.Sprintf("record type %q is a %s", r.Type, rec.Kind), r.Type, "")
			continue
		}

		pkg := graph.Packages[rec.ID.PkgPath]

		validateErrorTypes(res, r, pkg)
		validateReducer(res, r, pkg)
	}

	return res
}
