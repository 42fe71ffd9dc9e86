package mcpserver

import (
	"mapper-generator/internal/options"
	"mapper-generator/internal/plan"
)

type typeInput struct {
	Name   string   `json:"name"             jsonschema:"Type name as written in generated code, e.g. UserDto or store.Order"`
	Fields []string `json:"fields,omitempty" jsonschema:"Public field names in declaration order, inherited or embedded fields included"`
}

type requestInput struct {
	Method      string    `json:"method"             jsonschema:"Name of the generated method, used verbatim"`
	Source      typeInput `json:"source"             jsonschema:"The type values are read from"`
	Destination typeInput `json:"destination"        jsonschema:"The type being populated"`
	Style       string    `json:"style,omitempty"    jsonschema:"builder (default) or direct"`
	Policy      string    `json:"policy,omitempty"   jsonschema:"strict (default, exact names only) or flexible (nearest name by edit distance)"`
	Dialect     string    `json:"dialect,omitempty"  jsonschema:"java (default) or go"`
	InPlace     bool      `json:"in_place,omitempty" jsonschema:"Generate a member of the destination type reading from its receiver"`
}

// toRequest parses the option names of in.
func (in requestInput) toRequest() (plan.Request, error) {
	style, err := options.ParseStyle(in.Style)
	if err != nil {
		return plan.Request{}, err
	}

	policy, err := options.ParsePolicy(in.Policy)
	if err != nil {
		return plan.Request{}, err
	}

	dialect, err := options.ParseDialect(in.Dialect)
	if err != nil {
		return plan.Request{}, err
	}

	return plan.Request{
		Method:      in.Method,
		Source:      plan.TypeRef{Name: in.Source.Name, Fields: in.Source.Fields},
		Destination: plan.TypeRef{Name: in.Destination.Name, Fields: in.Destination.Fields},
		Style:       style,
		Policy:      policy,
		Dialect:     dialect,
		InPlace:     in.InPlace,
	}, nil
}
