package analyze

import (
	"context"
	"errors"
	"fmt"
	"go/types"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and flattens their structs. Patterns are
// resolved in the current directory.
type Analyzer struct {
	catalog *Catalog
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		catalog: NewCatalog(),
	}
}

// LoadPackages loads the specified packages and adds their exported structs
// to the catalog. Patterns are standard Go package patterns
// (e.g., "./store", "mapper-generator/warehouse", "./...").
func (a *Analyzer) LoadPackages(ctx context.Context, patterns ...string) (*Catalog, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode:    LoadMode,
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
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg)
	}

	return a.catalog, nil
}

// processPackage extracts the exported structs of a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		named, ok := typeName.Type().(*types.Named)
		if !ok {
			continue
		}

		st, ok := named.Underlying().(*types.Struct)
		if !ok {
			continue
		}

		id := TypeID{PkgPath: pkg.PkgPath, Name: name}
		a.catalog.Structs[id] = &Struct{
			ID:     id,
			Fields: flatten(st, named),
		}
	}

	a.catalog.Packages[pkg.PkgPath] = pkgInfo
}

// flatten lists the fields accessible on st by selector, in declaration
// order with promoted fields placed where their embedded field is declared.
func flatten(st *types.Struct, self *types.Named) []Field {
	var all []Field

	onPath := map[*types.Named]bool{}
	if self != nil {
		onPath[self] = true
	}

	walk(st, nil, onPath, &all)

	// Keep the shallowest occurrence of each name; a tie at that depth makes
	// the selector ambiguous and the name inaccessible.
	shallowest := make(map[string]int)
	count := make(map[string]int)

	for _, f := range all {
		d, seen := shallowest[f.Name]

		switch {
		case !seen || f.Depth() < d:
			shallowest[f.Name] = f.Depth()
			count[f.Name] = 1
		case f.Depth() == d:
			count[f.Name]++
		}
	}

	fields := make([]Field, 0, len(shallowest))

	for _, f := range all {
		if f.Depth() == shallowest[f.Name] && count[f.Name] == 1 {
			fields = append(fields, f)
		}
	}

	return fields
}

func walk(st *types.Struct, via []string, onPath map[*types.Named]bool, out *[]Field) {
	for i := range st.NumFields() {
		v := st.Field(i)

		if v.Embedded() {
			if named, inner := embeddedStruct(v.Type()); inner != nil {
				if onPath[named] {
					continue
				}

				onPath[named] = true
				walk(inner, append(append([]string{}, via...), v.Name()), onPath, out)
				delete(onPath, named)

				continue
			}
		}

		if !v.Exported() {
			continue
		}

		*out = append(*out, Field{Name: v.Name(), Via: via})
	}
}

// embeddedStruct unwraps an embedded T or *T whose underlying type is a
// struct.
func embeddedStruct(t types.Type) (*types.Named, *types.Struct) {
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}

	named, ok := t.(*types.Named)
	if !ok {
		return nil, nil
	}

	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return nil, nil
	}

	return named, st
}
