package analyze

import (
	"fmt"
	"go/types"
	"path/filepath"
	"sort"

	"golang.org/x/tools/go/packages"

	"staging-generator/internal/common"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	graph *TypeGraph
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		graph: NewTypeGraph(),
	}
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./person",
// "staging-generator/shipment").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		if err := a.processPackage(pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// processPackage extracts exported named types from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) error {
	pkgInfo := &PackageInfo{
		Path:  pkg.PkgPath,
		Name:  pkg.Name,
		Types: pkg.Types,
	}

	if first, ok := common.First(pkg.GoFiles); ok {
		pkgInfo.Dir = filepath.Dir(first)
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		// Only process type names (not variables, constants, functions)
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok {
			continue
		}

		if !typeName.Exported() {
			continue
		}

		id := RecordID{
			PkgPath: pkg.PkgPath,
			Name:    name,
		}

		rec := a.describeType(id, typeName.Type(), pkg.Types)
		rec.PkgName = pkg.Name
		rec.Dir = pkgInfo.Dir

		a.graph.Records[id] = rec
		pkgInfo.Records = append(pkgInfo.Records, id)
	}

	a.graph.Packages[pkg.PkgPath] = pkgInfo

	return nil
}

// describeType builds a RecordDescription for a named type. Struct fields are
// described in declaration order with type strings rendered relative to the
// declaring package.
func (a *Analyzer) describeType(id RecordID, t types.Type, pkg *types.Package) *RecordDescription {
	rec := &RecordDescription{
		ID:   id,
		Kind: classify(t.Underlying()),
	}

	st, ok := t.Underlying().(*types.Struct)
	if !ok {
		return rec
	}

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)

		imports := make(map[string]Import)
		qualifier := func(other *types.Package) string {
			if other == pkg {
				return ""
			}

			imports[other.Path()] = Import{
				Alias: other.Name(),
				Path:  other.Path(),
			}

			return other.Name()
		}

		decl := FieldDecl{
			Name:     field.Name(),
			Type:     types.TypeString(field.Type(), qualifier),
			Embedded: field.Embedded(),
			Exported: field.Exported(),
		}

		for _, imp := range imports {
			decl.Imports = append(decl.Imports, imp)
		}

		sort.Slice(decl.Imports, func(x, y int) bool {
			return decl.Imports[x].Path < decl.Imports[y].Path
		})

		rec.Fields = append(rec.Fields, decl)
	}

	return rec
}

// classify maps an underlying go/types.Type to a TypeKind.
func classify(t types.Type) TypeKind {
	switch t.(type) {
	case *types.Struct:
		return TypeKindStruct
	case *types.Interface:
		return TypeKindInterface
	case *types.Basic:
		return TypeKindBasic
	default:
		return TypeKindOther
	}
}
