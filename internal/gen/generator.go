package gen

import (
	"fmt"

	"mapper-generator/internal/match"
	"mapper-generator/internal/options"
	"mapper-generator/internal/plan"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// SourceParam is the name of the source parameter of non in-place methods.
	SourceParam string
	// LocalVar is the name of the destination variable in direct style.
	LocalVar string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		SourceParam: "source",
		LocalVar:    "dest",
	}
}

// Generator renders mapping plans. It holds no per-call state and is safe
// for concurrent use.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	def := DefaultGeneratorConfig()
	if config.SourceParam == "" {
		config.SourceParam = def.SourceParam
	}

	if config.LocalVar == "" {
		config.LocalVar = def.LocalVar
	}

	return &Generator{config: config}
}

// fieldCall is one per-field call of the generated body.
type fieldCall struct {
	// Selector is the builder call name (the destination field name).
	Selector string
	// Mutator is the setter name used in direct style.
	Mutator string
	// Arg is the access expression, or the placeholder comment when unmapped.
	Arg string
	// Mapped is false when Arg is a placeholder.
	Mapped bool
}

// Generate renders p as a single method.
func (g *Generator) Generate(p *plan.MappingPlan) (string, error) {
	if p == nil {
		return "", fmt.Errorf("generating method: nil plan")
	}

	switch p.Request.Dialect {
	case options.DialectJava:
		return g.generateJava(p)
	case options.DialectGo:
		return g.generateGo(p)
	default:
		return "", fmt.Errorf("generating %s: unsupported dialect %s", p.Request.Method, p.Request.Dialect)
	}
}

// fieldCalls builds the per-field calls in destination order.
func (g *Generator) fieldCalls(p *plan.MappingPlan, receiver string) []fieldCall {
	goDialect := p.Request.Dialect == options.DialectGo

	calls := make([]fieldCall, 0, len(p.Resolutions))
	for _, res := range p.Resolutions {
		calls = append(calls, fieldCall{
			Selector: res.Destination,
			Mutator:  MutatorName(res.Destination, goDialect),
			Arg:      g.accessExpr(res, p.Request.InPlace, receiver, goDialect),
			Mapped:   res.Mapped(),
		})
	}

	return calls
}

// accessExpr returns how the resolved source value is read: a field of the
// receiver when in place, an accessor call on the source parameter otherwise.
func (g *Generator) accessExpr(res match.Resolution, inPlace bool, receiver string, goDialect bool) string {
	if !res.Mapped() {
		return UnmappedMarker(res.Destination)
	}

	if inPlace {
		return receiver + "." + res.Source
	}

	return g.config.SourceParam + "." + AccessorName(res.Source, goDialect) + "()"
}
