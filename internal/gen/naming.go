package gen

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capitalize title-cases the first rune of s and leaves the rest untouched.
// The transform is locale-invariant: it uses the root locale, never the
// process default, so output is identical on every machine.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	// Casers are stateful and must not be shared between goroutines.
	return cases.Title(language.Und).String(s[:size]) + s[size:]
}

// lcFirst lower-cases the first rune of s.
func lcFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToLower(r)) + s[size:]
}

// UnmappedMarker is the placeholder emitted for a destination field without
// a source field.
func UnmappedMarker(field string) string {
	return "/* TODO Add mapping for " + field + " */"
}

// AccessorName returns the getter for a field ("name" -> "getName" in Java,
// "GetName" in Go).
func AccessorName(field string, goDialect bool) string {
	if goDialect {
		return "Get" + Capitalize(field)
	}

	return "get" + Capitalize(field)
}

// MutatorName returns the setter for a field ("name" -> "setName" in Java,
// "SetName" in Go).
func MutatorName(field string, goDialect bool) string {
	if goDialect {
		return "Set" + Capitalize(field)
	}

	return "set" + Capitalize(field)
}

// splitQualified splits "pkg.Type" into "pkg." and "Type".
func splitQualified(typeName string) (qualifier, name string) {
	i := strings.LastIndex(typeName, ".")
	if i < 0 {
		return "", typeName
	}

	return typeName[:i+1], typeName[i+1:]
}

// goBuilderConstructor returns the constructor of a Go builder
// ("store.Order" -> "store.NewOrderBuilder").
func goBuilderConstructor(typeName string) string {
	qualifier, name := splitQualified(typeName)

	return qualifier + "New" + Capitalize(name) + "Builder"
}

// goReceiverName returns the conventional receiver name for a Go type
// ("store.Order" -> "o"). Types not starting with a letter get "r".
func goReceiverName(typeName string) string {
	_, name := splitQualified(typeName)

	r, _ := utf8.DecodeRuneInString(name)
	if !unicode.IsLetter(r) {
		return "r"
	}

	return lcFirst(string(r))
}
