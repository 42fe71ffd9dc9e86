// Package gen renders a resolved mapping plan as the text of one method.
//
// Two dialects are supported:
//   - java: text/template output with get/set accessors and Lombok style
//     builders (Type.builder()...build())
//   - go: github.com/dave/jennifer output, gofmt formatted, with Get/Set
//     methods and NewTypeBuilder()...Build() chains
//
// Codegen patterns (both dialects):
//   - Builder style: one chained call per destination field, then a
//     finalize call, returned directly
//   - Direct style: a local destination value, one mutator call per
//     destination field, then a return of the local
//   - In-place: a method of the destination type that reads from its
//     receiver instead of a source parameter
//   - Unmapped fields: a "/* TODO Add mapping for <field> */" placeholder
//     argument so the call is still present
//
// Fields are always rendered in destination declaration order and output is
// byte-for-byte deterministic.
package gen
