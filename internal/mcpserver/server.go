// Package mcpserver implements an MCP (Model Context Protocol) server that
// exposes mapper generation as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"mapper-generator/internal/engine"
)

const serverInstructions = `mapper-generator MCP server: generates a mapping method that copies the fields of a source type into a destination type.

Fields are matched by exact name; with policy=flexible a field without an exact match takes the nearest source field by edit distance. Unmatched fields get a "/* TODO Add mapping for <field> */" placeholder instead of being dropped.

Use resolve_fields first to review how each destination field resolves, then generate_mapper to get the method text. Limits (MAPPER_MAX_FIELDS) are configured through MAPPER_* environment variables.`

// tools binds the tool handlers to an engine.
type tools struct {
	engine *engine.Engine
	logger zerolog.Logger
}

// NewServer creates an MCP server with every tool registered.
func NewServer(eng *engine.Engine, version string, logger zerolog.Logger) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "mapper-generator", Version: version},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server, &tools{engine: eng, logger: logger})

	return server
}

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context, eng *engine.Engine, version string, logger zerolog.Logger) error {
	return NewServer(eng, version, logger).Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server, t *tools) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_mapper",
		Description: "Generate a mapping method from a source type to a destination type given their field lists. Style builder (default) chains one builder call per destination field; style direct assigns each field through a setter. Dialect java (default) or go. in_place=true makes the method a member of the destination type reading from its receiver. Returns the method text plus per-field resolutions and diagnostics.",
	}, t.handleGenerate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve_fields",
		Description: "Resolve every destination field against the source fields without generating code. Each field is exact, fuzzy (policy=flexible only, with its edit distance) or unmapped. Diagnostics list unmapped and duplicate fields and the runner-up candidates of fuzzy matches.",
	}, t.handleResolve)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
