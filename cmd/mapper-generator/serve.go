package main

import (
	"context"
	"flag"
	"fmt"

	"mapper-generator/internal/engine"
	"mapper-generator/internal/mcpserver"
	"mapper-generator/internal/server"
)

func (e *cliEnv) handleServe(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(e.stderr)

	cfg := e.cfg
	fs.StringVar(&cfg.Host, "host", cfg.Host, "listen host")
	fs.IntVar(&cfg.Port, "port", cfg.Port, "listen port")

	fs.Usage = func() {
		out := fs.Output()
		_, _ = fmt.Fprintf(out, "Usage: mapper-generator serve [flags]\n\n")
		_, _ = fmt.Fprintf(out, "Serve GET /health, POST /v1/generate and POST /v1/resolve.\n\n")
		_, _ = fmt.Fprintf(out, "Flags:\n")
		fs.PrintDefaults()
	}

	if ok, err := parseFlags(fs, args); !ok {
		return err
	}

	return server.Run(ctx, cfg, engine.New(cfg.Engine()), e.logger)
}

func (e *cliEnv) handleMCP(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.SetOutput(e.stderr)

	fs.Usage = func() {
		out := fs.Output()
		_, _ = fmt.Fprintf(out, "Usage: mapper-generator mcp\n\n")
		_, _ = fmt.Fprintf(out, "Serve the generate_mapper and resolve_fields tools over stdio.\n")
	}

	if ok, err := parseFlags(fs, args); !ok {
		return err
	}

	e.logger.Info().Str("version", version).Msg("mcp server starting")

	return mcpserver.Run(ctx, engine.New(e.cfg.Engine()), version, e.logger)
}
