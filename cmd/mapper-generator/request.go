package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"mapper-generator/internal/analyze"
	"mapper-generator/internal/common"
	"mapper-generator/internal/config"
	"mapper-generator/internal/diagnostic"
	"mapper-generator/internal/options"
	"mapper-generator/internal/plan"
)

// cliEnv carries what every command needs.
type cliEnv struct {
	cfg    config.Config
	logger zerolog.Logger
	stdout io.Writer
	stderr io.Writer
}

// requestFlags contains the flags describing one mapping request.
type requestFlags struct {
	method    string
	style     string
	policy    string
	dialect   string
	inPlace   bool
	src       string
	dst       string
	srcFields string
	dstFields string
	pkg       string
}

func addRequestFlags(fs *flag.FlagSet) *requestFlags {
	flags := &requestFlags{}

	fs.StringVar(&flags.method, "method", "", "name of the generated method (required)")
	fs.StringVar(&flags.style, "style", "builder", "construction style: builder or direct")
	fs.StringVar(&flags.policy, "policy", "strict", "matching policy: strict or flexible")
	fs.StringVar(&flags.dialect, "dialect", "java", "generated language: java or go")
	fs.BoolVar(&flags.inPlace, "in-place", false, "generate a member of the destination type reading from its receiver")
	fs.StringVar(&flags.src, "src", "", "source type name (required)")
	fs.StringVar(&flags.dst, "dst", "", "destination type name (required)")
	fs.StringVar(&flags.srcFields, "src-fields", "", "comma separated source fields; discovered from -pkg when not set")
	fs.StringVar(&flags.dstFields, "dst-fields", "", "comma separated destination fields; discovered from -pkg when not set")
	fs.StringVar(&flags.pkg, "pkg", "./...", "comma separated Go package patterns to discover fields from")

	return flags
}

// request builds the mapping request. A type whose field flag was not given
// at all has its fields discovered from the Go packages; an explicitly empty
// flag means a type without fields.
func (f *requestFlags) request(ctx context.Context, fs *flag.FlagSet) (plan.Request, error) {
	style, err := options.ParseStyle(f.style)
	if err != nil {
		return plan.Request{}, err
	}

	policy, err := options.ParsePolicy(f.policy)
	if err != nil {
		return plan.Request{}, err
	}

	dialect, err := options.ParseDialect(f.dialect)
	if err != nil {
		return plan.Request{}, err
	}

	set := map[string]bool{}
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	var catalog *analyze.Catalog

	side := func(name, fields, flagName string) (plan.TypeRef, error) {
		if set[flagName] || common.IsBlank(name) {
			list := common.SplitList(fields)
			if list == nil {
				list = []string{}
			}

			return plan.TypeRef{Name: name, Fields: list}, nil
		}

		if catalog == nil {
			catalog, err = analyze.NewAnalyzer().LoadPackages(ctx, common.SplitList(f.pkg)...)
			if err != nil {
				return plan.TypeRef{}, fmt.Errorf("discovering fields of %s: %w", name, err)
			}
		}

		return catalog.TypeRef(name)
	}

	src, err := side(f.src, f.srcFields, "src-fields")
	if err != nil {
		return plan.Request{}, err
	}

	dst, err := side(f.dst, f.dstFields, "dst-fields")
	if err != nil {
		return plan.Request{}, err
	}

	return plan.Request{
		Method:      f.method,
		Source:      src,
		Destination: dst,
		Style:       style,
		Policy:      policy,
		Dialect:     dialect,
		InPlace:     f.inPlace,
	}, nil
}

// parseFlags parses args, treating -h as success.
func parseFlags(fs *flag.FlagSet, args []string) (bool, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return false, nil
		}

		return false, err
	}

	if fs.NArg() > 0 {
		fs.Usage()
		return false, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	return true, nil
}

func (e *cliEnv) printDiagnostics(diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		_, _ = fmt.Fprintf(e.stderr, "%s: %s\n", d.Severity, d)
	}
}

// logDiagnostics summarizes the warnings of target, a method or request file.
func (e *cliEnv) logDiagnostics(target string, diags diagnostic.Diagnostics) {
	if !diags.HasWarnings() {
		return
	}

	e.logger.Warn().
		Str("target", target).
		Int("warnings", len(diags.Warnings)).
		Int("unmapped", len(diags.WithCode(diagnostic.CodeUnmappedField))).
		Msg("generated with warnings; run with -explain for details")
}
