// Package v1handler implements the version 1 HTTP API: batch submission,
// domain administration and candidate listing.
package v1handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"fundscout/internal/candidates"
	"fundscout/internal/ingest"
	"fundscout/internal/registry"
	"fundscout/pkg/logger"
	"fundscout/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// DefaultLimit is the page size used when a list request does not specify one.
const DefaultLimit = 20

// Deps carries the service-layer dependencies of the v1 handlers.
type Deps struct {
	Ingestor   ingest.Ingestor
	Registry   registry.Registry
	Candidates candidates.Creator
}

// Handler serves the v1 API routes.
type Handler struct {
	deps Deps
}

// New constructs a Handler with the given dependencies.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Router returns the chi router with all v1 routes mounted.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()

	r.Post("/search-results", h.SubmitSearchResults)

	r.Get("/domains/{domain}", h.GetDomain)
	r.Post("/domains/{domain}/blacklist", h.BlacklistDomain)
	r.Post("/domains/{domain}/no-funds", h.MarkNoFundsThisYear)

	r.Get("/sessions/{sessionID}/candidates", h.ListSessionCandidates)

	return r
}

// errorResponse is the JSON body returned for every failed request.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps semantic error kinds to HTTP status codes. Errors without a
// recognized kind are reported as internal without leaking their message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, serrors.ErrBadRequest):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, serrors.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, serrors.ErrConflict):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, serrors.ErrUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
	default:
		logger.Error(r.Context(), "request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
