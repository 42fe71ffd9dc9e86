package plan

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapper-generator/internal/diagnostic"
	"mapper-generator/internal/match"
	"mapper-generator/internal/options"
)

func baseRequest() Request {
	return Request{
		Method:      "toDto",
		Source:      TypeRef{Name: "User", Fields: []string{"id", "name", "email"}},
		Destination: TypeRef{Name: "UserDto", Fields: []string{"id", "fullName", "mail"}},
	}
}

func TestResolver_Resolve(t *testing.T) {
	req := baseRequest()
	req.Policy = options.PolicyFlexible

	p, err := NewResolver(DefaultConfig()).Resolve(req)
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, req, p.Request)
	require.Len(t, p.Resolutions, 3)
	assert.Equal(t, match.KindExact, p.Resolutions[0].Kind)
	assert.Equal(t, match.KindFuzzy, p.Resolutions[1].Kind)
	assert.Equal(t, "name", p.Resolutions[1].Source)
	assert.Equal(t, match.KindFuzzy, p.Resolutions[2].Kind)
	assert.Equal(t, "email", p.Resolutions[2].Source)

	fuzzy := p.Diagnostics.WithCode(diagnostic.CodeFuzzyMatch)
	require.Len(t, fuzzy, 2)
	assert.Equal(t, "fullName", fuzzy[0].Field)
	assert.Equal(t, "toDto", fuzzy[0].Method)
	assert.Contains(t, fuzzy[0].Message, `"name"`)
	assert.Len(t, fuzzy[0].Suggestions, 2)
	assert.False(t, p.Diagnostics.HasWarnings())
}

func TestResolver_FuzzyExplanation(t *testing.T) {
	req := baseRequest()
	req.Policy = options.PolicyFlexible
	req.Destination.Fields = []string{"fullName"}

	p, err := NewResolver(DefaultConfig()).Resolve(req)
	require.NoError(t, err)

	fuzzy := p.Diagnostics.WithCode(diagnostic.CodeFuzzyMatch)
	require.Len(t, fuzzy, 1)
	assert.Equal(t, `mapped from "name" (distance 5, similarity 0.38)`, fuzzy[0].Message)
	assert.Equal(t, []string{"email (distance 7)", "id (distance 8)"}, fuzzy[0].Suggestions)
	assert.Empty(t, p.Diagnostics.WithCode(diagnostic.CodeAmbiguousMatch))
}

func TestResolver_AmbiguousFuzzyMatch(t *testing.T) {
	req := baseRequest()
	req.Policy = options.PolicyFlexible
	req.Source.Fields = []string{"id", "name"}
	req.Destination.Fields = []string{"email"}

	p, err := NewResolver(DefaultConfig()).Resolve(req)
	require.NoError(t, err)
	assert.Equal(t, "id", p.Resolutions[0].Source)

	ambiguous := p.Diagnostics.WithCode(diagnostic.CodeAmbiguousMatch)
	require.Len(t, ambiguous, 1)
	assert.Equal(t, "email", ambiguous[0].Field)
	assert.Equal(t, diagnostic.DiagnosticInfo, ambiguous[0].Severity)
	assert.Contains(t, ambiguous[0].Message, `"id" and "name" are both at distance 4`)

	// A repeated source name is not a tie between different fields.
	req.Source.Fields = []string{"id", "id"}

	p, err = NewResolver(DefaultConfig()).Resolve(req)
	require.NoError(t, err)
	assert.Empty(t, p.Diagnostics.WithCode(diagnostic.CodeAmbiguousMatch))
}

func TestResolver_StrictUnmappedWarnings(t *testing.T) {
	p, err := NewResolver(DefaultConfig()).Resolve(baseRequest())
	require.NoError(t, err)

	unmapped := p.Diagnostics.WithCode(diagnostic.CodeUnmappedField)
	require.Len(t, unmapped, 2)
	assert.Equal(t, "fullName", unmapped[0].Field)
	assert.Equal(t, "mail", unmapped[1].Field)
	assert.Contains(t, unmapped[0].Message, "placeholder")
	assert.Empty(t, p.Diagnostics.WithCode(diagnostic.CodeFuzzyMatch))
}

func TestResolver_EmptySourceReason(t *testing.T) {
	req := baseRequest()
	req.Policy = options.PolicyFlexible
	req.Source.Fields = nil

	p, err := NewResolver(DefaultConfig()).Resolve(req)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Resolutions.Count(match.KindUnmapped))

	unmapped := p.Diagnostics.WithCode(diagnostic.CodeUnmappedField)
	require.Len(t, unmapped, 3)
	assert.Contains(t, unmapped[0].Message, "source type User has no fields")
}

func TestResolver_EmptyDestinationWarning(t *testing.T) {
	req := baseRequest()
	req.Destination.Fields = nil

	p, err := NewResolver(DefaultConfig()).Resolve(req)
	require.NoError(t, err)
	assert.Empty(t, p.Resolutions)

	empty := p.Diagnostics.WithCode(diagnostic.CodeEmptyDestination)
	require.Len(t, empty, 1)
	assert.Equal(t, diagnostic.DiagnosticWarning, empty[0].Severity)
	assert.True(t, p.Diagnostics.IsValid())
}

func TestResolver_DuplicateWarnings(t *testing.T) {
	req := baseRequest()
	req.Destination.Fields = []string{"id", "id"}
	req.Source.Fields = []string{"id", "name", "name"}

	p, err := NewResolver(DefaultConfig()).Resolve(req)
	require.NoError(t, err)
	require.Len(t, p.Resolutions, 2)

	dups := p.Diagnostics.WithCode(diagnostic.CodeDuplicateField)
	require.Len(t, dups, 2)
	assert.Equal(t, "id", dups[0].Field)
	assert.Equal(t, "name", dups[1].Field)
}

func TestResolver_NoSuggestionsWhenDisabled(t *testing.T) {
	req := baseRequest()
	req.Policy = options.PolicyFlexible

	p, err := NewResolver(ResolutionConfig{}).Resolve(req)
	require.NoError(t, err)

	for _, d := range p.Diagnostics.WithCode(diagnostic.CodeFuzzyMatch) {
		assert.Empty(t, d.Suggestions)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
		field  string
	}{
		{"blank method", func(r *Request) { r.Method = "  " }, "method"},
		{"missing source", func(r *Request) { r.Source.Name = "" }, "source.name"},
		{"missing destination", func(r *Request) { r.Destination.Name = "\t" }, "destination.name"},
		{"bad style", func(r *Request) { r.Style = options.Style(9) }, "style"},
		{"bad policy", func(r *Request) { r.Policy = options.Policy(-1) }, "policy"},
		{"bad dialect", func(r *Request) { r.Dialect = options.Dialect(5) }, "dialect"},
		{"empty source field", func(r *Request) { r.Source.Fields = []string{"id", ""} }, "source.fields[1]"},
		{"empty destination field", func(r *Request) { r.Destination.Fields = []string{" "} }, "destination.fields[0]"},
		{"comment terminator in field", func(r *Request) { r.Destination.Fields = []string{"id", "x*/y"} }, "destination.fields[1]"},
		{"too many fields", func(r *Request) {
			r.Destination.Fields = strings.Split(strings.Repeat("f,", 4)+"f", ",")
		}, "destination.fields"},
		{"go method not identifier", func(r *Request) {
			r.Dialect = options.DialectGo
			r.Method = "to dto"
		}, "method"},
		{"go type not identifier", func(r *Request) {
			r.Dialect = options.DialectGo
			r.Source.Name = "a.b.C"
		}, "source.name"},
		{"go keyword destination", func(r *Request) {
			r.Dialect = options.DialectGo
			r.Destination.Name = "func"
		}, "destination.name"},
		{"go field not identifier", func(r *Request) {
			r.Dialect = options.DialectGo
			r.Destination.Fields = []string{"ID", "full-name"}
		}, "destination.fields[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest()
			tt.mutate(&req)

			err := Validate(req, 4)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidate_Accepts(t *testing.T) {
	assert.NoError(t, Validate(baseRequest(), 0))

	req := baseRequest()
	req.Dialect = options.DialectGo
	req.Source.Name = "store.Customer"
	req.Destination.Name = "CustomerDTO"
	req.Method = "ToDTO"
	assert.NoError(t, Validate(req, 3))

	// Java names are not checked beyond being non-blank.
	req = baseRequest()
	req.Method = "to-dto"
	assert.NoError(t, Validate(req, 0))
}

func TestValidationDiagnostics(t *testing.T) {
	req := baseRequest()
	req.Source.Name = " "

	_, err := NewResolver(DefaultConfig()).Resolve(req)
	require.Error(t, err)

	diags, ok := ValidationDiagnostics(req.Method, fmt.Errorf("request 0: %w", err))
	require.True(t, ok)
	assert.True(t, diags.HasErrors())
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeValidation, diags.Errors[0].Code)
	assert.Equal(t, "source.name", diags.Errors[0].Field)
	assert.Equal(t, "toDto", diags.Errors[0].Method)
	assert.EqualError(t, diags.Error(), "[toDto] source.name: [validation] source type name is required")

	_, ok = ValidationDiagnostics("m", errors.New("boom"))
	assert.False(t, ok)
}

func TestResolver_ValidationStopsResolution(t *testing.T) {
	req := baseRequest()
	req.Method = ""

	p, err := NewResolver(DefaultConfig()).Resolve(req)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrValidation)
}
