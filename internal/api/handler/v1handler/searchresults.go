package v1handler

import (
	"encoding/json"
	"net/http"

	"fundscout/pkg/domain"
	"fundscout/pkg/serrors"

	"github.com/google/uuid"
)

// SubmitSearchResultsRequest is the payload for submitting one batch of raw
// search results for a discovery session.
type SubmitSearchResultsRequest struct {
	SessionID uuid.UUID             `json:"sessionId"`
	Results   []domain.SearchResult `json:"results"`
}

// SubmitSearchResultsResponse reports whether the batch was enqueued. Enqueued
// is false when an identical batch was already queued recently.
type SubmitSearchResultsResponse struct {
	Enqueued bool `json:"enqueued"`
}

// SubmitSearchResults accepts a batch of search results and hands it to the
// background processing queue.
func (h *Handler) SubmitSearchResults(w http.ResponseWriter, r *http.Request) {
	var req SubmitSearchResultsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}

	enqueued, err := h.deps.Ingestor.Submit(r.Context(), domain.SessionID(req.SessionID), req.Results)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusAccepted, SubmitSearchResultsResponse{Enqueued: enqueued})
}
