// Package analyze discovers the field lists of Go struct types.
//
// It uses golang.org/x/tools/go/packages with go/types to load packages and
// flattens every exported struct into the ordered list of field names a
// mapping request needs.
//
// Flattening follows Go's selector rules:
//   - fields of embedded structs (by value or pointer) are promoted in place
//     of the embedded field, in declaration order
//   - a field declared at a shallower depth shadows promoted fields of the
//     same name
//   - two promoted fields of the same name at the same depth cancel out
//   - unexported fields are skipped
//
// Key types:
//   - TypeID: package import path + type name
//   - Struct: a loaded struct with its flattened fields
//   - Catalog: every struct of the loaded packages, searchable by name
package analyze
