package engine

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"mapper-generator/internal/gen"
	"mapper-generator/internal/plan"
)

// Config holds configuration for the engine.
type Config struct {
	Resolution plan.ResolutionConfig
	Generator  gen.GeneratorConfig
	// Workers bounds the parallelism of GenerateAll (<= 0 means 1).
	Workers int
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		Resolution: plan.DefaultConfig(),
		Generator:  gen.DefaultGeneratorConfig(),
		Workers:    4,
	}
}

// Result is one generated method together with the plan it was rendered from.
type Result struct {
	// Method is the complete method text.
	Method string `json:"method"`
	// Plan carries the resolutions and diagnostics.
	Plan *plan.MappingPlan `json:"-"`
}

// Engine validates, resolves and renders mapping requests.
type Engine struct {
	resolver  *plan.Resolver
	generator *gen.Generator
	workers   int
}

// New creates a new Engine.
func New(config Config) *Engine {
	workers := config.Workers
	if workers <= 0 {
		workers = 1
	}

	return &Engine{
		resolver:  plan.NewResolver(config.Resolution),
		generator: gen.NewGenerator(config.Generator),
		workers:   workers,
	}
}

// Resolve validates req and resolves its fields without rendering.
func (e *Engine) Resolve(req plan.Request) (*plan.MappingPlan, error) {
	return e.resolver.Resolve(req)
}

// Generate validates req, resolves it and renders the method.
func (e *Engine) Generate(req plan.Request) (*Result, error) {
	p, err := e.resolver.Resolve(req)
	if err != nil {
		return nil, err
	}

	method, err := e.generator.Generate(p)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", req.Method, err)
	}

	return &Result{Method: method, Plan: p}, nil
}

// GenerateAll generates every request using at most the configured number of
// workers. Results are in request order. The first failure cancels the
// remaining work and is returned annotated with the request index.
func (e *Engine) GenerateAll(ctx context.Context, reqs []plan.Request) ([]*Result, error) {
	results := make([]*Result, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i, req := range reqs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := e.Generate(req)
			if err != nil {
				return fmt.Errorf("request %d (%s): %w", i, req.Method, err)
			}

			results[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Generate runs a single request through an engine with the default
// configuration.
func Generate(req plan.Request) (*Result, error) {
	return New(DefaultConfig()).Generate(req)
}
