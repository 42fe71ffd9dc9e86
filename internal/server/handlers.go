package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"mapper-generator/internal/diagnostic"
	"mapper-generator/internal/engine"
	"mapper-generator/internal/match"
	"mapper-generator/internal/plan"
)

type errorResponse struct {
	Error       string                  `json:"error"`
	Field       string                  `json:"field,omitempty"`
	Diagnostics []diagnostic.Diagnostic `json:"diagnostics,omitempty"`
}

type resolveResponse struct {
	Resolutions match.Resolutions       `json:"resolutions"`
	Diagnostics []diagnostic.Diagnostic `json:"diagnostics"`
}

type generateResponse struct {
	Method string `json:"method"`
	resolveResponse
}

// Handlers serves the generation endpoints.
type Handlers struct {
	engine *engine.Engine
	logger zerolog.Logger
}

// NewHandlers creates handlers backed by eng.
func NewHandlers(eng *engine.Engine, logger zerolog.Logger) *Handlers {
	return &Handlers{engine: eng, logger: logger}
}

// Health reports liveness.
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Generate renders the method for a JSON plan.Request.
func (h *Handlers) Generate(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	res, err := h.engine.Generate(req)
	if err != nil {
		h.fail(w, r, req.Method, err)
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{
		Method:          res.Method,
		resolveResponse: newResolveResponse(res.Plan),
	})
}

// Resolve returns the field resolutions for a JSON plan.Request without
// rendering.
func (h *Handlers) Resolve(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	p, err := h.engine.Resolve(req)
	if err != nil {
		h.fail(w, r, req.Method, err)
		return
	}

	writeJSON(w, http.StatusOK, newResolveResponse(p))
}

func newResolveResponse(p *plan.MappingPlan) resolveResponse {
	resolutions := p.Resolutions
	if resolutions == nil {
		resolutions = match.Resolutions{}
	}

	return resolveResponse{
		Resolutions: resolutions,
		Diagnostics: p.Diagnostics.All(),
	}
}

func (h *Handlers) decode(w http.ResponseWriter, r *http.Request) (plan.Request, bool) {
	var req plan.Request

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "request body too large"})
			return req, false
		}

		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad request body: " + err.Error()})

		return req, false
	}

	return req, true
}

func (h *Handlers) fail(w http.ResponseWriter, r *http.Request, method string, err error) {
	if diags, ok := plan.ValidationDiagnostics(method, err); ok {
		invalid := diags.Errors[0]
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:       err.Error(),
			Field:       invalid.Field,
			Diagnostics: diags.All(),
		})

		return
	}

	h.logger.Error().Str("rid", GetRequestID(r)).Err(err).Msg("generation failed")
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
