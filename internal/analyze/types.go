package analyze

import (
	"fmt"
	"sort"
	"strings"

	"mapper-generator/internal/common"
	"mapper-generator/internal/plan"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "mapper-generator/store"
	Name    string // e.g., "Order"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Field describes one accessible field of a flattened struct.
type Field struct {
	Name string // Go field name
	// Via lists the embedded fields the field is promoted through, outermost
	// first. It is empty for fields declared directly on the struct.
	Via []string
}

// Depth is the embedding depth of the field (0 when declared directly).
func (f Field) Depth() int {
	return len(f.Via)
}

// Struct is a named struct type with its flattened fields.
type Struct struct {
	ID     TypeID
	Fields []Field
}

// FieldNames returns the field names in flattened declaration order.
func (s *Struct) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}

	return names
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path string // Import path
	Name string // Package name, qualifying its types in generated code
}

// Catalog holds every exported struct of the loaded packages.
type Catalog struct {
	Structs  map[TypeID]*Struct
	Packages map[string]*PackageInfo
}

// NewCatalog creates a new empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		Structs:  make(map[TypeID]*Struct),
		Packages: make(map[string]*PackageInfo),
	}
}

// Find looks a struct up by name. The name may be bare ("Order"), qualified
// by package name ("store.Order") or by import path
// ("mapper-generator/store.Order"). A bare or package-qualified name that
// matches structs of several packages is an error.
func (c *Catalog) Find(name string) (*Struct, error) {
	qualifier, typeName := "", name
	if i := strings.LastIndex(name, "."); i >= 0 {
		qualifier, typeName = name[:i], name[i+1:]
	}

	var found []*Struct

	for id, s := range c.Structs {
		if id.Name != typeName {
			continue
		}

		if qualifier == "" || qualifier == id.PkgPath || qualifier == c.packageName(id.PkgPath) {
			found = append(found, s)
		}
	}

	switch len(found) {
	case 0:
		loaded := make([]string, 0, len(c.Packages))
		for path := range c.Packages {
			loaded = append(loaded, path)
		}

		sort.Strings(loaded)

		return nil, fmt.Errorf("struct %s not found in %s", name, strings.Join(loaded, ", "))
	case 1:
		return found[0], nil
	default:
		ids := make([]string, len(found))
		for i, s := range found {
			ids[i] = s.ID.String()
		}

		sort.Strings(ids)

		return nil, fmt.Errorf("struct %s is ambiguous: %s", name, strings.Join(ids, ", "))
	}
}

// TypeRef returns the mapping side for the struct called name. The type name
// keeps the qualification the caller used, reduced to the package alias.
func (c *Catalog) TypeRef(name string) (plan.TypeRef, error) {
	s, err := c.Find(name)
	if err != nil {
		return plan.TypeRef{}, err
	}

	refName := s.ID.Name
	if strings.Contains(name, ".") {
		refName = c.packageName(s.ID.PkgPath) + "." + s.ID.Name
	}

	return plan.TypeRef{Name: refName, Fields: s.FieldNames()}, nil
}

// packageName returns the name code outside pkgPath refers to the package by.
func (c *Catalog) packageName(pkgPath string) string {
	if info, ok := c.Packages[pkgPath]; ok && info.Name != "" {
		return info.Name
	}

	return common.PkgAlias(pkgPath)
}
