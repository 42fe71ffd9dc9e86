package mapping

import (
	"fmt"

	"mapper-generator/internal/common"
	"mapper-generator/internal/options"
	"mapper-generator/internal/plan"
)

// FieldResolver discovers the field list of a named type.
// *analyze.Catalog satisfies it.
type FieldResolver interface {
	TypeRef(name string) (plan.TypeRef, error)
}

// BuildRequests turns the entries of f into mapping requests, applying defaults.
// Types without an explicit field list are looked up with resolver, which
// may be nil when every type lists its fields.
func (f *File) BuildRequests(resolver FieldResolver) ([]plan.Request, error) {
	reqs := make([]plan.Request, 0, len(f.Requests))

	for i, e := range f.Requests {
		src, err := resolveSpec(e.Source, resolver)
		if err != nil {
			return nil, fmt.Errorf("request %d (%s): source: %w", i, e.Method, err)
		}

		dst, err := resolveSpec(e.Destination, resolver)
		if err != nil {
			return nil, fmt.Errorf("request %d (%s): destination: %w", i, e.Method, err)
		}

		reqs = append(reqs, plan.Request{
			Method:      e.Method,
			Source:      src,
			Destination: dst,
			Style:       pick(e.Style, f.Defaults.Style, options.StyleBuilder),
			Policy:      pick(e.Policy, f.Defaults.Policy, options.PolicyStrict),
			Dialect:     pick(e.Dialect, f.Defaults.Dialect, options.DialectJava),
			InPlace:     pick(e.InPlace, f.Defaults.InPlace, false),
		})
	}

	return reqs, nil
}

// NeedsDiscovery reports whether any type of f lacks an explicit field list.
func (f *File) NeedsDiscovery() bool {
	for _, e := range f.Requests {
		if e.Source.Discovered() || e.Destination.Discovered() {
			return true
		}
	}

	return false
}

func resolveSpec(spec TypeSpec, resolver FieldResolver) (plan.TypeRef, error) {
	// A blank name is left for request validation to report.
	if !spec.Discovered() || common.IsBlank(spec.Name) {
		return plan.TypeRef{Name: spec.Name, Fields: spec.Fields}, nil
	}

	if resolver == nil {
		return plan.TypeRef{}, fmt.Errorf("type %q has no field list and no packages to discover it from", spec.Name)
	}

	ref, err := resolver.TypeRef(spec.Name)
	if err != nil {
		return plan.TypeRef{}, err
	}

	return ref, nil
}

// pick returns the first set value of v and def, falling back to zero.
func pick[T any](v, def *T, zero T) T {
	if v != nil {
		return *v
	}

	if def != nil {
		return *def
	}

	return zero
}

// Freeze returns a request file holding reqs with every option and field
// list written out, so that loading it again needs no discovery.
func Freeze(reqs []plan.Request) *File {
	f := &File{
		Version:  CurrentVersion,
		Requests: make([]Entry, 0, len(reqs)),
	}

	for _, req := range reqs {
		f.Requests = append(f.Requests, Entry{
			Method:      req.Method,
			Source:      frozenSpec(req.Source),
			Destination: frozenSpec(req.Destination),
			Style:       &req.Style,
			Policy:      &req.Policy,
			Dialect:     &req.Dialect,
			InPlace:     &req.InPlace,
		})
	}

	return f
}

func frozenSpec(ref plan.TypeRef) TypeSpec {
	fields := ref.Fields
	if fields == nil {
		fields = []string{}
	}

	return TypeSpec{Name: ref.Name, Fields: fields}
}
