package options

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Style,Policy,Dialect -linecomment -output=options_string.go

// Style selects how the generated method constructs the destination.
type Style int

const (
	StyleBuilder Style = iota // builder
	StyleDirect               // direct
)

// Policy selects how destination fields are matched against source fields.
type Policy int

const (
	PolicyStrict   Policy = iota // strict
	PolicyFlexible               // flexible
)

// Dialect is the language the generated method is written in.
type Dialect int

const (
	DialectJava Dialect = iota // java
	DialectGo                  // go
)

// ParseStyle parses a style name. "setter" is accepted as an alias of "direct".
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "builder", "fluent":
		return StyleBuilder, nil
	case "direct", "setter", "mutator":
		return StyleDirect, nil
	default:
		return 0, fmt.Errorf("unknown style %q (want builder or direct)", s)
	}
}

// ParsePolicy parses a matching policy name.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict", "exact":
		return PolicyStrict, nil
	case "flexible", "fuzzy":
		return PolicyFlexible, nil
	default:
		return 0, fmt.Errorf("unknown policy %q (want strict or flexible)", s)
	}
}

// ParseDialect parses a dialect name.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "java":
		return DialectJava, nil
	case "go", "golang":
		return DialectGo, nil
	default:
		return 0, fmt.Errorf("unknown dialect %q (want java or go)", s)
	}
}

// Valid reports whether s is one of the declared styles.
func (s Style) Valid() bool { return s == StyleBuilder || s == StyleDirect }

// Valid reports whether p is one of the declared policies.
func (p Policy) Valid() bool { return p == PolicyStrict || p == PolicyFlexible }

// Valid reports whether d is one of the declared dialects.
func (d Dialect) Valid() bool { return d == DialectJava || d == DialectGo }

// MarshalText implements encoding.TextMarshaler.
func (s Style) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Style) UnmarshalText(text []byte) error {
	v, err := ParseStyle(string(text))
	if err != nil {
		return err
	}

	*s = v

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Policy) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Policy) UnmarshalText(text []byte) error {
	v, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}

	*p = v

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Dialect) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Dialect) UnmarshalText(text []byte) error {
	v, err := ParseDialect(string(text))
	if err != nil {
		return err
	}

	*d = v

	return nil
}
