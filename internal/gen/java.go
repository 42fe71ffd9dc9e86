package gen

import (
	"bytes"
	"fmt"
	"text/template"

	"mapper-generator/internal/options"
	"mapper-generator/internal/plan"
)

// javaData holds all data needed for the Java method template.
type javaData struct {
	Method  string
	Source  string
	Dest    string
	Param   string
	Var     string
	InPlace bool
	Builder bool
	Fields  []fieldCall
}

func (g *Generator) generateJava(p *plan.MappingPlan) (string, error) {
	req := p.Request

	data := javaData{
		Method:  req.Method,
		Source:  req.Source.Name,
		Dest:    req.Destination.Name,
		Param:   g.config.SourceParam,
		Var:     g.config.LocalVar,
		InPlace: req.InPlace,
		Builder: req.Style == options.StyleBuilder,
		Fields:  g.fieldCalls(p, "this"),
	}

	var buf bytes.Buffer
	if err := javaTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}

var javaTemplate = template.Must(template.New("java").Parse(
	`{{if .InPlace}}public {{.Dest}} {{.Method}}(){{else}}public static {{.Dest}} {{.Method}}({{.Source}} {{.Param}}){{end}} {
{{- if .Builder}}
    return {{.Dest}}.builder()
{{- range .Fields}}
        .{{.Selector}}({{.Arg}})
{{- end}}
        .build();
{{- else}}
    {{.Dest}} {{.Var}} = new {{.Dest}}();
{{- range .Fields}}
    {{$.Var}}.{{.Mutator}}({{.Arg}});
{{- end}}
    return {{.Var}};
{{- end}}
}
`))
