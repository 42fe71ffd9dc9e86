package mapping

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"mapper-generator/internal/options"
)

// CurrentVersion is the only request file version understood.
const CurrentVersion = "1"

// File is the top-level structure of a request file.
type File struct {
	// Version is the schema version (defaults to "1").
	Version string `yaml:"version"`
	// Defaults apply to every request that does not override them.
	Defaults Defaults `yaml:"defaults,omitempty"`
	// Requests lists the methods to generate, in output order.
	Requests []Entry `yaml:"requests"`
}

// Defaults holds options shared by the requests of a file.
type Defaults struct {
	Style   *options.Style   `yaml:"style,omitempty"`
	Policy  *options.Policy  `yaml:"policy,omitempty"`
	Dialect *options.Dialect `yaml:"dialect,omitempty"`
	InPlace *bool            `yaml:"in_place,omitempty"`
	// Packages are the Go package patterns fields are discovered from.
	Packages []string `yaml:"packages,omitempty"`
}

// Entry is one requested method. Unset options fall back to Defaults.
type Entry struct {
	Method      string           `yaml:"method"`
	Source      TypeSpec         `yaml:"source"`
	Destination TypeSpec         `yaml:"destination"`
	Style       *options.Style   `yaml:"style,omitempty"`
	Policy      *options.Policy  `yaml:"policy,omitempty"`
	Dialect     *options.Dialect `yaml:"dialect,omitempty"`
	InPlace     *bool            `yaml:"in_place,omitempty"`
}

// TypeSpec names one side of a mapping. A nil Fields list means the fields
// are discovered.
type TypeSpec struct {
	Name   string   `yaml:"name"`
	Fields []string `yaml:"fields"`
}

// Discovered reports whether the field list has to be discovered.
func (t TypeSpec) Discovered() bool {
	return t.Fields == nil
}

// UnmarshalYAML implements custom YAML unmarshaling for TypeSpec.
// Accepts:
//   - Single string: "store.Order"
//   - Map: {name: store.Order, fields: [ID, Status]}
func (t *TypeSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var name string

		err := node.Decode(&name)
		if err != nil {
			return err
		}

		*t = TypeSpec{Name: name}

		return nil

	case yaml.MappingNode:
		type plain TypeSpec

		var p plain

		err := node.Decode(&p)
		if err != nil {
			return err
		}

		*t = TypeSpec(p)

		return nil

	default:
		return fmt.Errorf("line %d: expected type name or {name, fields} map", node.Line)
	}
}

// MarshalYAML implements custom YAML marshaling for TypeSpec.
// Outputs the bare name when fields are discovered, otherwise a map.
func (t TypeSpec) MarshalYAML() (any, error) {
	if t.Discovered() {
		return t.Name, nil
	}

	type plain TypeSpec

	return plain(t), nil
}
