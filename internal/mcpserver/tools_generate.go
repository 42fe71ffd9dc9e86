package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"mapper-generator/internal/diagnostic"
	"mapper-generator/internal/match"
	"mapper-generator/internal/plan"
)

type resolutionOutput struct {
	Destination string `json:"destination"`
	Kind        string `json:"kind"`
	Source      string `json:"source,omitempty"`
	Distance    int    `json:"distance"`
}

type diagnosticOutput struct {
	Severity    string   `json:"severity"`
	Code        string   `json:"code"`
	Message     string   `json:"message"`
	Field       string   `json:"field,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

type resolveOutput struct {
	Exact       int                `json:"exact"`
	Fuzzy       int                `json:"fuzzy"`
	Unmapped    int                `json:"unmapped"`
	Resolutions []resolutionOutput `json:"resolutions"`
	Diagnostics []diagnosticOutput `json:"diagnostics"`
}

type generateOutput struct {
	Method      string             `json:"method"`
	Resolutions []resolutionOutput `json:"resolutions"`
	Diagnostics []diagnosticOutput `json:"diagnostics"`
}

func (t *tools) handleGenerate(_ context.Context, _ *mcp.CallToolRequest, input requestInput) (*mcp.CallToolResult, generateOutput, error) {
	req, err := input.toRequest()
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	res, err := t.engine.Generate(req)
	if err != nil {
		return errResult(err), generateOutput{
			Resolutions: []resolutionOutput{},
			Diagnostics: validationOutput(req.Method, err),
		}, nil
	}

	t.logger.Debug().Str("tool", "generate_mapper").Str("method", req.Method).Msg("generated")

	resolved := newResolveOutput(res.Plan)

	return nil, generateOutput{
		Method:      res.Method,
		Resolutions: resolved.Resolutions,
		Diagnostics: resolved.Diagnostics,
	}, nil
}

func (t *tools) handleResolve(_ context.Context, _ *mcp.CallToolRequest, input requestInput) (*mcp.CallToolResult, resolveOutput, error) {
	req, err := input.toRequest()
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}

	p, err := t.engine.Resolve(req)
	if err != nil {
		return errResult(err), resolveOutput{
			Resolutions: []resolutionOutput{},
			Diagnostics: validationOutput(req.Method, err),
		}, nil
	}

	return nil, newResolveOutput(p), nil
}

func newResolveOutput(p *plan.MappingPlan) resolveOutput {
	out := resolveOutput{
		Exact:       p.Resolutions.Count(match.KindExact),
		Fuzzy:       p.Resolutions.Count(match.KindFuzzy),
		Unmapped:    p.Resolutions.Count(match.KindUnmapped),
		Resolutions: make([]resolutionOutput, 0, len(p.Resolutions)),
		Diagnostics: []diagnosticOutput{},
	}

	for _, r := range p.Resolutions {
		out.Resolutions = append(out.Resolutions, resolutionOutput{
			Destination: r.Destination,
			Kind:        r.Kind.String(),
			Source:      r.Source,
			Distance:    r.Distance,
		})
	}

	for _, d := range p.Diagnostics.All() {
		out.Diagnostics = append(out.Diagnostics, newDiagnosticOutput(d))
	}

	return out
}

// validationOutput reports a validation failure in the diagnostics shape of
// successful calls.
func validationOutput(method string, err error) []diagnosticOutput {
	out := []diagnosticOutput{}

	diags, ok := plan.ValidationDiagnostics(method, err)
	if !ok {
		return out
	}

	for _, d := range diags.All() {
		out = append(out, newDiagnosticOutput(d))
	}

	return out
}

func newDiagnosticOutput(d diagnostic.Diagnostic) diagnosticOutput {
	return diagnosticOutput{
		Severity:    d.Severity.String(),
		Code:        d.Code,
		Message:     d.Message,
		Field:       d.Field,
		Suggestions: d.Suggestions,
	}
}
