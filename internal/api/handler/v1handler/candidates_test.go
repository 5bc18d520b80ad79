package v1handler_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"fundscout/internal/api/handler/v1handler"
	"fundscout/pkg/domain"
)

func TestListSessionCandidates(t *testing.T) {
	router, deps := newTestHandler(t)

	sessionID := uuid.New()
	items := []domain.Candidate{{
		ID:                 domain.CandidateID(uuid.New()),
		DiscoverySessionID: domain.SessionID(sessionID),
		SourceURL:          "https://grants.ministry.gov/call-2026",
		ConfidenceScore:    85,
		Status:             domain.CandidateStatusPendingReview,
	}}

	deps.candidates.EXPECT().
		SessionCandidates(gomock.Any(), domain.SessionID(sessionID), "", uint(v1handler.DefaultLimit)).
		Return(items, "2026-03-10T12:00:00Z", nil)

	rec := doJSON(t, router, http.MethodGet, "/sessions/"+sessionID.String()+"/candidates", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[v1handler.CandidateList](t, rec)
	require.Len(t, got.Items, 1)
	require.Equal(t, domain.Score(85), got.Items[0].ConfidenceScore)
	require.Equal(t, "2026-03-10T12:00:00Z", got.NextCursor)
}

func TestListSessionCandidates_CursorAndLimit(t *testing.T) {
	router, deps := newTestHandler(t)

	sessionID := uuid.New()
	deps.candidates.EXPECT().
		SessionCandidates(gomock.Any(), domain.SessionID(sessionID), "2026-03-10T12:00:00Z", uint(5)).
		Return(nil, "", nil)

	rec := doJSON(t, router, http.MethodGet,
		"/sessions/"+sessionID.String()+"/candidates?cursor=2026-03-10T12%3A00%3A00Z&limit=5", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[v1handler.CandidateList](t, rec)
	require.NotNil(t, got.Items)
	require.Empty(t, got.Items)
	require.Empty(t, got.NextCursor)
}

func TestListSessionCandidates_InvalidSessionID(t *testing.T) {
	router, _ := newTestHandler(t)

	rec := doJSON(t, router, http.MethodGet, "/sessions/not-a-uuid/candidates", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListSessionCandidates_InvalidLimit(t *testing.T) {
	router, _ := newTestHandler(t)

	rec := doJSON(t, router, http.MethodGet,
		"/sessions/"+uuid.NewString()+"/candidates?limit=0", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
