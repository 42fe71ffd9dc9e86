// Package match resolves destination field names against source field names.
//
// Matching is purely name based. A destination field resolves to an exact
// source field when one shares its name; under the flexible policy it
// otherwise resolves to the source field with the smallest Levenshtein
// distance, the earliest one in source order winning ties. Everything else
// is left unmapped.
//
// Key functions:
//   - Levenshtein: computes edit distance between strings, rune by rune
//   - RankCandidates: orders source fields by distance to a destination field
//   - Resolve: produces one Resolution per destination field
package match
