// Package diagnostic provides structured warnings, errors, and
// "why this mapped" explanations for the mapper generator.
//
// Key capabilities:
//   - Validation errors naming the offending request field
//   - Empty destination and unmapped field warnings
//   - Duplicate field warnings
//   - Fuzzy match explanations with runner-up candidates
package diagnostic
