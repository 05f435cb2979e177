package config

import (
	"fmt"
	"go/types"
	"unicode"

	"staging-generator/internal/analyze"
	"staging-generator/internal/diagnostic"
	"staging-generator/internal/schema"
)

var errorIface = types.Universe.Lookup("error").Type().Underlying().(*types.Interface)

// isBareIdent reports whether a type expression is a plain identifier.
// Qualified or composite expressions (pkg.T, *T, []T) are not resolvable
// against a single package scope and are left for the compiler to check.
func isBareIdent(expr string) bool {
	if expr == "" {
		return false
	}

	for i, r := range expr {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}

		if i > 0 && unicode.IsDigit(r) {
			continue
		}

		return false
	}

	return true
}

// validateErrorTypes checks the error and final_error options against the
// record's package scope.
func validateErrorTypes(res *diagnostic.Diagnostics, r *RecordDef, pkg *analyze.PackageInfo) {
	if r.Error == "" {
		res.AddError("error_type_missing", "the error option is required", r.Type, "")
		return
	}

	if pkg == nil || pkg.Types == nil {
		return
	}

	if isBareIdent(r.Error) && !pkg.LookupType(r.Error) {
		res.AddError("error_type_not_found",
			fmt.Sprintf("error type %q not found in package %s", r.Error, pkg.Path), r.Type, "")
	}

	if r.FinalError != "" && isBareIdent(r.FinalError) && !pkg.LookupType(r.FinalError) {
		res.AddError("final_error_not_found",
			fmt.Sprintf("final error type %q not found in package %s", r.FinalError, pkg.Path), r.Type, "")
	}
}

// validateReducer checks that the reduction function exists in the record's
// package with the signature func([]Error) FinalError, and that FinalError
// implements the error interface.
func validateReducer(res *diagnostic.Diagnostics, r *RecordDef, pkg *analyze.PackageInfo) {
	if pkg == nil || pkg.Types == nil {
		return
	}

	name := r.Reduce
	if name == "" {
		name = schema.DefaultReduce
	}

	sig := pkg.LookupFunc(name)
	if sig == nil {
		res.AddError("reduce_not_found",
			fmt.Sprintf("reduce function %q not found in package %s", name, pkg.Path), r.Type, "")
		return
	}

	if sig.Params().Len() != 1 || sig.Results().Len() != 1 || sig.Variadic() {
		res.AddError("reduce_signature_mismatch",
			fmt.Sprintf("reduce function %q must take one slice and return one value", name), r.Type, "")
		return
	}

	qual := types.RelativeTo(pkg.Types)

	param, ok := sig.Params().At(0).Type().(*types.Slice)
	if !ok {
		res.AddError("reduce_signature_mismatch",
			fmt.Sprintf("reduce function %q must take a slice argument", name), r.Type, "")
		return
	}

	if got := types.TypeString(param.Elem(), qual); r.Error != "" && got != r.Error {
		res.AddError("reduce_signature_mismatch",
			fmt.Sprintf("reduce function %q takes []%s, record collects %s", name, got, r.Error),
			r.Type, "")
	}

	result := sig.Results().At(0).Type()
	if !types.Implements(result, errorIface) {
		res.AddError("final_error_not_error",
			fmt.Sprintf("reduce result %s does not implement error", types.TypeString(result, qual)),
			r.Type, "")
	}

	wantFinal := r.FinalError
	if wantFinal == "" {
		wantFinal = r.Error
	}

	if got := types.TypeString(result, qual); wantFinal != "" && got != wantFinal {
		res.AddError("reduce_signature_mismatch",
			fmt.Sprintf("reduce function %q returns %s, record expects %s", name, got, wantFinal),
			r.Type, "")
	}
}
