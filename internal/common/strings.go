package common

import "strings"

// UnknownStr is the String() value of enum values outside their declared range.
const UnknownStr = "unknown"

// IsBlank reports whether s is empty or only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// SplitList splits a comma separated list, trimming blanks and dropping empty
// entries. It returns nil for an empty input.
func SplitList(s string) []string {
	var out []string

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}

	return out
}
