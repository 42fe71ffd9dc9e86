// Package main provides the CLI entrypoint for mapper-generator.
//
// mapper-generator writes the mapping method between two record types:
//   - Resolves each destination field against the source fields (exact
//     names, or nearest name by edit distance under the flexible policy)
//   - Renders a builder or setter based method in Java or Go
//   - Marks unmapped fields with a TODO placeholder instead of dropping them
//   - Serves the same operation over HTTP and MCP
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"mapper-generator/internal/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 1
	}

	cfg := config.Load()
	logger := config.SetupLogger(cfg, stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := &cliEnv{cfg: cfg, logger: logger, stdout: stdout, stderr: stderr}

	var err error

	switch command := args[0]; command {
	case "version", "-v", "--version":
		_, _ = fmt.Fprintf(stdout, "mapper-generator %s\n", version)
	case "help", "-h", "--help":
		printUsage(stdout)
	case "gen":
		err = env.handleGen(ctx, args[1:])
	case "resolve":
		err = env.handleResolve(ctx, args[1:])
	case "batch":
		err = env.handleBatch(ctx, args[1:])
	case "serve":
		err = env.handleServe(ctx, args[1:])
	case "mcp":
		err = env.handleMCP(ctx, args[1:])
	default:
		_, _ = fmt.Fprintf(stderr, "Unknown command: %s\n\n", command)
		printUsage(stderr)

		return 1
	}

	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func printUsage(w io.Writer) {
	_, _ = fmt.Fprint(w, `Usage: mapper-generator <command> [flags]

Commands:
  gen       generate one mapping method
  resolve   show how destination fields resolve against source fields
  batch     generate every request of a YAML request file
  serve     serve the generator over HTTP
  mcp       serve the generator as MCP tools over stdio
  version   print the version

Run "mapper-generator <command> -h" for the flags of a command.
Settings are read from MAPPER_* environment variables (MAPPER_LOG_LEVEL,
MAPPER_LOG_FILE, MAPPER_MAX_FIELDS, MAPPER_WORKERS, MAPPER_HOST, MAPPER_PORT).
`)
}
