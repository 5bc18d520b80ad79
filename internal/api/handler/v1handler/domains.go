package v1handler

import (
	"encoding/json"
	"net/http"
	"time"

	"fundscout/pkg/domain"
	"fundscout/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// GetDomain returns the registry record for a domain. The path segment is
// either a normalized domain name or a domain record UUID.
func (h *Handler) GetDomain(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "domain")

	var (
		d   *domain.Domain
		err error
	)
	if id, parseErr := uuid.Parse(key); parseErr == nil {
		d, err = h.deps.Registry.DomainByID(r.Context(), domain.DomainID(id))
	} else {
		d, err = h.deps.Registry.DomainByName(r.Context(), key)
	}
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	if d == nil {
		h.writeError(w, r, serrors.With(serrors.ErrNotFound, "domain %q is not registered", key))

		return
	}

	writeJSON(w, http.StatusOK, d)
}

// BlacklistDomainRequest carries the audit fields of a blacklist action.
type BlacklistDomainRequest struct {
	Reason  string    `json:"reason"`
	ActorID uuid.UUID `json:"actorId"`
}

// BlacklistDomain permanently excludes a domain from processing, registering
// it first when it was never seen.
func (h *Handler) BlacklistDomain(w http.ResponseWriter, r *http.Request) {
	var req BlacklistDomainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}

	d, err := h.deps.Registry.BlacklistDomain(r.Context(),
		chi.URLParam(r, "domain"),
		req.Reason,
		domain.UserID(req.ActorID))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, d)
}

// MarkNoFundsRequest flags a funder as exhausted for a year. Year defaults to
// the current year when omitted.
type MarkNoFundsRequest struct {
	Year  int    `json:"year,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// MarkNoFundsThisYear marks a known funder as having no funds available for
// the given year. The domain must already be registered.
func (h *Handler) MarkNoFundsThisYear(w http.ResponseWriter, r *http.Request) {
	var req MarkNoFundsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}
	if req.Year == 0 {
		req.Year = time.Now().Year()
	}

	d, err := h.deps.Registry.MarkNoFundsThisYear(r.Context(),
		chi.URLParam(r, "domain"),
		req.Year,
		req.Notes)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, d)
}
