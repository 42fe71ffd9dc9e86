package gen

import (
	"bytes"
	"fmt"

	"github.com/dave/jennifer/jen"

	"mapper-generator/internal/options"
	"mapper-generator/internal/plan"
)

func (g *Generator) generateGo(p *plan.MappingPlan) (string, error) {
	req := p.Request
	receiver := goReceiverName(req.Destination.Name)
	calls := g.fieldCalls(p, receiver)

	fn := jen.Func()
	if req.InPlace {
		fn = fn.Params(jen.Id(receiver).Op("*").Id(req.Destination.Name)).Id(req.Method).Params()
	} else {
		fn = fn.Id(req.Method).Params(jen.Id(g.config.SourceParam).Op("*").Id(req.Source.Name))
	}

	fn = fn.Op("*").Id(req.Destination.Name)

	if req.Style == options.StyleBuilder {
		fn = fn.Block(g.goBuilderBody(req, calls)...)
	} else {
		fn = fn.Block(g.goDirectBody(req, calls)...)
	}

	var buf bytes.Buffer
	if err := fn.Render(&buf); err != nil {
		return "", fmt.Errorf("formatting %s: %w", req.Method, err)
	}

	buf.WriteByte('\n')

	return buf.String(), nil
}

// goBuilderBody renders
//
//	return NewDstBuilder().
//		Field(source.GetField()).
//		Build()
func (g *Generator) goBuilderBody(req plan.Request, calls []fieldCall) []jen.Code {
	chain := jen.Id(goBuilderConstructor(req.Destination.Name)).Call()
	for _, c := range calls {
		chain = chain.Op(".").Line().Id(c.Selector).Call(goArg(c))
	}

	chain = chain.Op(".").Line().Id("Build").Call()

	return []jen.Code{jen.Return(chain)}
}

// goDirectBody renders
//
//	dest := &Dst{}
//	dest.SetField(source.GetField())
//	return dest
func (g *Generator) goDirectBody(req plan.Request, calls []fieldCall) []jen.Code {
	local := g.config.LocalVar

	body := make([]jen.Code, 0, len(calls)+2)
	body = append(body, jen.Id(local).Op(":=").Op("&").Id(req.Destination.Name).Values())

	for _, c := range calls {
		body = append(body, jen.Id(local).Dot(c.Mutator).Call(goArg(c)))
	}

	return append(body, jen.Return(jen.Id(local)))
}

// goArg renders an access expression, or the placeholder as a raw comment.
func goArg(c fieldCall) jen.Code {
	if !c.Mapped {
		return jen.Comment(c.Arg)
	}

	return jen.Id(c.Arg)
}
