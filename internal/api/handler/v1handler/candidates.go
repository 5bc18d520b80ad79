package v1handler

import (
	"net/http"
	"strconv"

	"fundscout/pkg/domain"
	"fundscout/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CandidateList is one page of candidates for a discovery session.
type CandidateList struct {
	Items []domain.Candidate `json:"items"`
	// NextCursor pages further into the session when non-empty.
	NextCursor string `json:"nextCursor,omitempty"`
}

// ListSessionCandidates returns the candidates created for a discovery
// session, newest first, paginated by an opaque cursor.
func (h *Handler) ListSessionCandidates(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid session ID"))

		return
	}

	limit := uint(DefaultLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || parsed == 0 {
			h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "invalid limit %q", raw))

			return
		}
		limit = uint(parsed)
	}

	items, nextCursor, err := h.deps.Candidates.SessionCandidates(r.Context(),
		domain.SessionID(sessionID),
		r.URL.Query().Get("cursor"),
		limit)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if items == nil {
		items = []domain.Candidate{}
	}

	writeJSON(w, http.StatusOK, CandidateList{Items: items, NextCursor: nextCursor})
}
