package plan

import (
	"fmt"

	"mapper-generator/internal/common"
	"mapper-generator/internal/diagnostic"
	"mapper-generator/internal/match"
)

// ResolutionConfig holds configuration for the resolution process.
type ResolutionConfig struct {
	// MaxFields caps the length of each field list (0 = unlimited). It bounds
	// the O(n*m) cost of flexible matching.
	MaxFields int
	// MaxSuggestions is the number of runner-up candidates listed in fuzzy
	// match explanations.
	MaxSuggestions int
}

// DefaultConfig returns the default resolution configuration.
func DefaultConfig() ResolutionConfig {
	return ResolutionConfig{
		MaxFields:      512,
		MaxSuggestions: 2,
	}
}

// Resolver validates requests and resolves their field lists.
// It holds no per-request state and is safe for concurrent use.
type Resolver struct {
	config ResolutionConfig
}

// NewResolver creates a new Resolver.
func NewResolver(config ResolutionConfig) *Resolver {
	return &Resolver{config: config}
}

// Resolve validates req and matches its destination fields against its
// source fields. A validation failure is returned as a *ValidationError and
// no plan is produced.
func (r *Resolver) Resolve(req Request) (*MappingPlan, error) {
	if err := Validate(req, r.config.MaxFields); err != nil {
		return nil, err
	}

	p := &MappingPlan{
		Request:     req,
		Resolutions: match.Resolve(req.Destination.Fields, req.Source.Fields, req.Policy),
	}

	r.diagnose(p)

	return p, nil
}

// diagnose records the non-fatal findings of a resolved plan.
func (r *Resolver) diagnose(p *MappingPlan) {
	req := p.Request
	diags := &p.Diagnostics

	if len(req.Destination.Fields) == 0 {
		diags.AddWarning(diagnostic.CodeEmptyDestination,
			fmt.Sprintf("destination type %s has no fields; the generated method is empty", req.Destination.Name),
			req.Method, "destination.fields")
	}

	for _, dup := range common.Duplicates(req.Destination.Fields) {
		diags.AddWarning(diagnostic.CodeDuplicateField,
			fmt.Sprintf("destination field %q is listed more than once", dup), req.Method, dup)
	}

	for _, dup := range common.Duplicates(req.Source.Fields) {
		diags.AddWarning(diagnostic.CodeDuplicateField,
			fmt.Sprintf("source field %q is listed more than once; the first occurrence is used", dup),
			req.Method, dup)
	}

	for _, res := range p.Resolutions {
		switch res.Kind {
		case match.KindUnmapped:
			reason := fmt.Sprintf("no source field named %q", res.Destination)
			if len(req.Source.Fields) == 0 {
				reason = fmt.Sprintf("source type %s has no fields", req.Source.Name)
			}

			diags.AddWarning(diagnostic.CodeUnmappedField,
				reason+"; a placeholder was generated", req.Method, res.Destination)

		case match.KindFuzzy:
			r.diagnoseFuzzy(p, res)

		case match.KindExact:
		}
	}
}

// diagnoseFuzzy explains a fuzzy match: its similarity, the runner-up
// candidates, and whether source order broke a tie.
func (r *Resolver) diagnoseFuzzy(p *MappingPlan, res match.Resolution) {
	req := p.Request
	ranked := match.RankCandidates(res.Destination, req.Source.Fields)
	chosen := ranked[0]

	p.Diagnostics.AddInfo(diagnostic.CodeFuzzyMatch,
		fmt.Sprintf("mapped from %q (distance %d, similarity %.2f)",
			chosen.Source, chosen.Distance, chosen.Similarity(res.Destination)),
		req.Method, res.Destination, r.runnersUp(ranked)...)

	if ranked.IsAmbiguous() && ranked[1].Source != chosen.Source {
		p.Diagnostics.AddInfo(diagnostic.CodeAmbiguousMatch,
			fmt.Sprintf("%q and %q are both at distance %d; the first in source order was chosen",
				chosen.Source, ranked[1].Source, chosen.Distance),
			req.Method, res.Destination)
	}
}

// runnersUp lists the candidates ranked after the chosen source field.
func (r *Resolver) runnersUp(ranked match.CandidateList) []string {
	if r.config.MaxSuggestions <= 0 {
		return nil
	}

	var out []string

	for _, c := range ranked.Top(r.config.MaxSuggestions + 1)[1:] {
		out = append(out, fmt.Sprintf("%s (distance %d)", c.Source, c.Distance))
	}

	return out
}
