// Package plan turns a mapping request into a MappingPlan consumed by code
// generation.
//
// Resolution pipeline:
//  1. Validate the request (method name, type names, field lists, options)
//  2. Resolve every destination field against the source fields
//  3. Emit diagnostics (empty destination, duplicates, unmapped fields,
//     fuzzy match explanations with runner-up candidates)
//
// Validation happens before any matching, so a plan is never built from a
// partially valid request.
package plan
