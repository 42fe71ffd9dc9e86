// Package server exposes the generator over HTTP.
//
// Endpoints:
//   - GET  /health       liveness
//   - POST /v1/generate  plan.Request JSON in, method text with resolutions
//     and diagnostics out
//   - POST /v1/resolve   plan.Request JSON in, resolutions and diagnostics out
//
// Validation failures answer 422 with the offending request field.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"mapper-generator/internal/config"
	"mapper-generator/internal/engine"
)

// NewRouter builds the HTTP handler tree.
func NewRouter(cfg config.Config, eng *engine.Engine, logger zerolog.Logger) *chi.Mux {
	h := NewHandlers(eng, logger)
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> limit
	r.Use(Recover(logger))
	r.Use(RequestID())
	r.Use(Logging(logger))
	r.Use(LimitBytes(cfg.MaxBodyBytes()))

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/generate", h.Generate)
		r.Post("/resolve", h.Resolve)
	})

	return r
}

// Run serves until ctx is canceled, then shuts down gracefully.
func Run(ctx context.Context, cfg config.Config, eng *engine.Engine, logger zerolog.Logger) error {
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           NewRouter(cfg, eng, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		logger.Info().Str("addr", cfg.Addr()).Msg("server starting")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
