package plan

import (
	"mapper-generator/internal/diagnostic"
	"mapper-generator/internal/match"
	"mapper-generator/internal/options"
)

// TypeRef names a record type together with its field list.
type TypeRef struct {
	// Name is the type name as it appears in generated code (e.g. "OrderDto"
	// or "store.Order").
	Name string `json:"name" yaml:"name"`
	// Fields holds the public field names in declaration order, inherited
	// or embedded fields flattened in.
	Fields []string `json:"fields" yaml:"fields"`
}

// Request fully determines one generated method.
type Request struct {
	// Method is the generated method name, used verbatim.
	Method string `json:"method" yaml:"method"`
	// Source is the type values are read from.
	Source TypeRef `json:"source" yaml:"source"`
	// Destination is the type being populated.
	Destination TypeRef `json:"destination" yaml:"destination"`
	// Style selects builder or direct mutator construction.
	Style options.Style `json:"style" yaml:"style"`
	// Policy selects exact-only or nearest-name matching.
	Policy options.Policy `json:"policy" yaml:"policy"`
	// Dialect selects the generated language.
	Dialect options.Dialect `json:"dialect" yaml:"dialect"`
	// InPlace makes the method a member of the destination type reading
	// from the receiver instead of a source parameter.
	InPlace bool `json:"in_place" yaml:"in_place"`
}

// MappingPlan is the output of resolution and the input of rendering.
type MappingPlan struct {
	// Request is the validated request the plan was built from.
	Request Request
	// Resolutions holds one entry per destination field, in destination order.
	Resolutions match.Resolutions
	// Diagnostics contains warnings and explanations from resolution.
	Diagnostics diagnostic.Diagnostics
}
