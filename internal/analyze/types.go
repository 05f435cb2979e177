package analyze

import (
	"go/types"
	"path"
	"strings"

	"staging-generator/internal/common"
)

// RecordID uniquely identifies a named type by its package path and name.
type RecordID struct {
	PkgPath string // e.g., "staging-generator/person"
	Name    string // e.g., "Args"
}

// String returns a human-readable representation of the RecordID.
func (r RecordID) String() string {
	if r.PkgPath == "" {
		return r.Name
	}

	return r.PkgPath + "." + r.Name
}

// TypeKind classifies a named type just enough to validate staging configs.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindStruct             // flat or nested struct type
	TypeKindInterface          // interface type
	TypeKindBasic              // named basic type (string, int, ...)
	TypeKindOther              // slice, map, func, channel, union, ...
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindStruct:
		return "struct"
	case TypeKindInterface:
		return "interface"
	case TypeKindBasic:
		return "basic"
	case TypeKindOther:
		return "other"
	default:
		return common.UnknownStr
	}
}

// Import is one import statement a rendered type string depends on.
type Import struct {
	Alias string
	Path  string
}

// FieldDecl describes one struct field. Order of appearance matches
// declaration order in source, which is semantically significant downstream.
type FieldDecl struct {
	Name     string
	Type     string // source rendering relative to the declaring package
	Embedded bool
	Exported bool
	Imports  []Import // imports needed to spell Type
}

// RecordDescription describes one named type from a loaded package.
// Fields is populated only for struct kinds.
type RecordDescription struct {
	ID      RecordID
	Kind    TypeKind
	PkgName string
	Dir     string // directory the package sources live in
	Fields  []FieldDecl
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Records maps RecordID to its description for all exported named types.
	Records map[RecordID]*RecordDescription
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Records:  make(map[RecordID]*RecordDescription),
		Packages: make(map[string]*PackageInfo),
	}
}

// Lookup resolves a type reference of the form "pkgname.Type" or
// "import/path.Type" to a description, or nil if it cannot be resolved
// unambiguously.
func (g *TypeGraph) Lookup(ref string) *RecordDescription {
	idx := strings.LastIndex(ref, ".")
	if idx <= 0 || idx == len(ref)-1 {
		return nil
	}

	pkgRef, name := ref[:idx], ref[idx+1:]

	// Exact import path match wins.
	if pkg, ok := g.Packages[pkgRef]; ok {
		return g.Records[RecordID{PkgPath: pkg.Path, Name: name}]
	}

	// Otherwise match by package name or path base; must be unique.
	var found *RecordDescription

	for _, pkg := range g.Packages {
		if pkg.Name != pkgRef && path.Base(pkg.Path) != pkgRef {
			continue
		}

		rec, ok := g.Records[RecordID{PkgPath: pkg.Path, Name: name}]
		if !ok {
			continue
		}

		if found != nil {
			return nil // ambiguous
		}

		found = rec
	}

	return found
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path    string         // import path
	Name    string         // package name
	Dir     string         // directory containing the package sources
	Types   *types.Package // type information for scope lookups
	Records []RecordID     // named types defined in this package
}

// LookupFunc returns the signature of a package-level function, or nil if no
// such function exists in the package scope.
func (p *PackageInfo) LookupFunc(name string) *types.Signature {
	if p.Types == nil {
		return nil
	}

	fn, ok := p.Types.Scope().Lookup(name).(*types.Func)
	if !ok {
		return nil
	}

	return fn.Type().(*types.Signature)
}

// LookupType reports whether a named type exists in the package scope.
func (p *PackageInfo) LookupType(name string) bool {
	if p.Types == nil {
		return false
	}

	_, ok := p.Types.Scope().Lookup(name).(*types.TypeName)

	return ok
}
