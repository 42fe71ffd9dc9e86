package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"text/tabwriter"

	"mapper-generator/internal/diagnostic"
	"mapper-generator/internal/engine"
	"mapper-generator/internal/gen"
	"mapper-generator/internal/match"
	"mapper-generator/internal/plan"
)

func setupGenFlags(e *cliEnv) (*flag.FlagSet, *requestFlags, *string, *bool) {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	fs.SetOutput(e.stderr)

	flags := addRequestFlags(fs)
	output := fs.String("o", "", "append the method to this file instead of printing it")
	explain := fs.Bool("explain", false, "print resolution diagnostics to stderr")

	fs.Usage = func() {
		out := fs.Output()
		_, _ = fmt.Fprintf(out, "Usage: mapper-generator gen [flags]\n\n")
		_, _ = fmt.Fprintf(out, "Generate one mapping method.\n\n")
		_, _ = fmt.Fprintf(out, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(out, "\nExamples:\n")
		_, _ = fmt.Fprintf(out, "  mapper-generator gen -method toDto -src User -dst UserDto -src-fields id,name -dst-fields id,fullName -policy flexible\n")
		_, _ = fmt.Fprintf(out, "  mapper-generator gen -dialect go -method ToWarehouse -src store.Customer -dst warehouse.Customer -pkg ./store,./warehouse\n")
	}

	return fs, flags, output, explain
}

func (e *cliEnv) handleGen(ctx context.Context, args []string) error {
	fs, flags, output, explain := setupGenFlags(e)

	if ok, err := parseFlags(fs, args); !ok {
		return err
	}

	req, err := flags.request(ctx, fs)
	if err != nil {
		return err
	}

	res, err := engine.New(e.cfg.Engine()).Generate(req)
	if err != nil {
		return err
	}

	if *explain {
		e.printDiagnostics(res.Plan.Diagnostics)
	} else {
		e.logDiagnostics(req.Method, res.Plan.Diagnostics)
	}

	if *output != "" {
		if err := gen.WriteOutput(*output, res.Method, true); err != nil {
			return err
		}

		e.logger.Info().Str("method", req.Method).Str("file", *output).Msg("method written")

		return nil
	}

	_, err = fmt.Fprint(e.stdout, res.Method)

	return err
}

func (e *cliEnv) handleResolve(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	fs.SetOutput(e.stderr)

	flags := addRequestFlags(fs)
	asJSON := fs.Bool("json", false, "print resolutions and diagnostics as JSON")

	fs.Usage = func() {
		out := fs.Output()
		_, _ = fmt.Fprintf(out, "Usage: mapper-generator resolve [flags]\n\n")
		_, _ = fmt.Fprintf(out, "Show how each destination field resolves without generating code.\n\n")
		_, _ = fmt.Fprintf(out, "Flags:\n")
		fs.PrintDefaults()
	}

	if ok, err := parseFlags(fs, args); !ok {
		return err
	}

	req, err := flags.request(ctx, fs)
	if err != nil {
		return err
	}

	p, err := engine.New(e.cfg.Engine()).Resolve(req)

	if *asJSON {
		return e.printResolveJSON(req.Method, p, err)
	}

	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(e.stdout, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "DESTINATION\tKIND\tSOURCE\tDISTANCE")

	for _, r := range p.Resolutions {
		source, distance := "-", "-"
		if r.Mapped() {
			source, distance = r.Source, fmt.Sprint(r.Distance)
		}

		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Destination, r.Kind, source, distance)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	e.printDiagnostics(p.Diagnostics)

	return nil
}

// printResolveJSON prints the resolutions and diagnostics of p. A validation
// failure is printed as an error diagnostic and then returned.
func (e *cliEnv) printResolveJSON(method string, p *plan.MappingPlan, err error) error {
	resolutions := match.Resolutions{}

	var diags diagnostic.Diagnostics

	if err != nil {
		var ok bool
		if diags, ok = plan.ValidationDiagnostics(method, err); !ok {
			return err
		}
	} else {
		if p.Resolutions != nil {
			resolutions = p.Resolutions
		}

		diags = p.Diagnostics
	}

	enc := json.NewEncoder(e.stdout)
	enc.SetIndent("", "  ")

	if encErr := enc.Encode(map[string]any{
		"resolutions": resolutions,
		"diagnostics": diags.All(),
	}); encErr != nil {
		return encErr
	}

	if diags.HasErrors() {
		return diags.Error()
	}

	return nil
}
