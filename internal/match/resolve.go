package match

import (
	"mapper-generator/internal/common"
	"mapper-generator/internal/options"
)

// Kind classifies how a destination field was resolved.
type Kind int

const (
	KindUnmapped Kind = iota // no source field selected
	KindExact                // a source field with the identical name exists
	KindFuzzy                // nearest source field by edit distance
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindUnmapped:
		return "unmapped"
	case KindExact:
		return "exact"
	case KindFuzzy:
		return "fuzzy"
	default:
		return common.UnknownStr
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Resolution is the outcome of matching one destination field.
type Resolution struct {
	// Destination is the destination field name.
	Destination string `json:"destination" yaml:"destination"`
	// Kind tells whether Source is an exact match, a fuzzy match or absent.
	Kind Kind `json:"kind" yaml:"kind"`
	// Source is the selected source field; empty when Kind is KindUnmapped.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	// Distance is the edit distance between Destination and Source.
	Distance int `json:"distance" yaml:"distance"`
}

// Mapped reports whether a source field was selected.
func (r Resolution) Mapped() bool {
	return r.Kind == KindExact || r.Kind == KindFuzzy
}

// Resolutions holds one Resolution per destination field, in destination order.
type Resolutions []Resolution

// Lookup returns the resolution of the named destination field.
// When the destination list held duplicates, the first occurrence wins.
func (rs Resolutions) Lookup(dest string) (Resolution, bool) {
	for _, r := range rs {
		if r.Destination == dest {
			return r, true
		}
	}

	return Resolution{}, false
}

// Count returns how many resolutions have the given kind.
func (rs Resolutions) Count(kind Kind) int {
	n := 0

	for _, r := range rs {
		if r.Kind == kind {
			n++
		}
	}

	return n
}

// Resolve matches every destination field against the source fields.
//
// A destination name present verbatim among the sources is always Exact.
// Under PolicyFlexible a non-exact name resolves to the nearest source by
// edit distance, first in source order on ties. Everything else, including
// every field when sources is empty, is Unmapped.
func Resolve(destination, sources []string, policy options.Policy) Resolutions {
	sourceSet := make(map[string]struct{}, len(sources))
	for _, s := range sources {
		sourceSet[s] = struct{}{}
	}

	out := make(Resolutions, 0, len(destination))

	for _, d := range destination {
		if _, ok := sourceSet[d]; ok {
			out = append(out, Resolution{Destination: d, Kind: KindExact, Source: d})

			continue
		}

		if policy == options.PolicyFlexible {
			if best, ok := Nearest(d, sources); ok {
				out = append(out, Resolution{
					Destination: d,
					Kind:        KindFuzzy,
					Source:      best.Source,
					Distance:    best.Distance,
				})

				continue
			}
		}

		out = append(out, Resolution{Destination: d, Kind: KindUnmapped})
	}

	return out
}
