package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"mapper-generator/internal/analyze"
	"mapper-generator/internal/common"
	"mapper-generator/internal/diagnostic"
	"mapper-generator/internal/engine"
	"mapper-generator/internal/gen"
	"mapper-generator/internal/mapping"
)

// batchFlags contains flags for the batch command
type batchFlags struct {
	file    string
	output  string
	workers int
	pkg     string
	explain bool
	freeze  string
}

func (e *cliEnv) handleBatch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	fs.SetOutput(e.stderr)

	flags := &batchFlags{}
	fs.StringVar(&flags.file, "f", "", "YAML request file (required)")
	fs.StringVar(&flags.output, "o", "", "write all methods to this file instead of printing them")
	fs.IntVar(&flags.workers, "workers", e.cfg.Workers, "number of requests generated in parallel")
	fs.StringVar(&flags.pkg, "pkg", "", "comma separated Go package patterns; overrides defaults.packages")
	fs.BoolVar(&flags.explain, "explain", false, "print resolution diagnostics to stderr")
	fs.StringVar(&flags.freeze, "freeze", "", "also write the requests with discovered field lists to this YAML file")

	fs.Usage = func() {
		out := fs.Output()
		_, _ = fmt.Fprintf(out, "Usage: mapper-generator batch -f requests.yaml [flags]\n\n")
		_, _ = fmt.Fprintf(out, "Generate every request of a YAML request file, in file order.\n\n")
		_, _ = fmt.Fprintf(out, "Flags:\n")
		fs.PrintDefaults()
	}

	if ok, err := parseFlags(fs, args); !ok {
		return err
	}

	if flags.file == "" {
		fs.Usage()
		return fmt.Errorf("batch command requires -f")
	}

	file, err := mapping.LoadFile(flags.file)
	if err != nil {
		return err
	}

	var resolver mapping.FieldResolver

	if file.NeedsDiscovery() {
		patterns := file.Defaults.Packages
		if flags.pkg != "" {
			patterns = common.SplitList(flags.pkg)
		}

		if len(patterns) == 0 {
			patterns = []string{"./..."}
		}

		catalog, err := analyze.NewAnalyzer().LoadPackages(ctx, patterns...)
		if err != nil {
			return fmt.Errorf("discovering fields: %w", err)
		}

		resolver = catalog
	}

	reqs, err := file.BuildRequests(resolver)
	if err != nil {
		return err
	}

	cfg := e.cfg.Engine()
	cfg.Workers = flags.workers

	results, err := engine.New(cfg).GenerateAll(ctx, reqs)
	if err != nil {
		return err
	}

	methods := make([]string, 0, len(results))

	var diags diagnostic.Diagnostics

	for _, res := range results {
		diags.Merge(res.Plan.Diagnostics)
		methods = append(methods, res.Method)
	}

	if flags.explain {
		e.printDiagnostics(diags)
	} else {
		e.logDiagnostics(flags.file, diags)
	}

	if flags.freeze != "" {
		if err := mapping.WriteFile(mapping.Freeze(reqs), flags.freeze); err != nil {
			return err
		}

		e.logger.Info().Str("file", flags.freeze).Msg("requests frozen")
	}

	text := strings.Join(methods, "\n")

	e.logger.Info().Int("methods", len(methods)).Str("file", flags.file).Msg("batch generated")

	if flags.output != "" {
		return gen.WriteOutput(flags.output, text, false)
	}

	_, err = fmt.Fprint(e.stdout, text)

	return err
}
