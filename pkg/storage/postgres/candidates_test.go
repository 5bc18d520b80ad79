package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"fundscout/pkg/domain"
	"fundscout/pkg/storage/postgres"
)

func storeTestDomain(t *testing.T, pgSQL *postgres.PgSQL, name string) domain.Domain {
	t.Helper()

	stored, err := pgSQL.StoreDomains(context.Background(), domain.Domain{
		Name:   name,
		Status: domain.DomainStatusDiscovered,
	})
	require.NoError(t, err)
	require.Len(t, stored, 1)

	return stored[0]
}

func TestPgSQL_StoreCandidates(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	d := storeTestDomain(t, pgSQL, "candidates.example")
	sessionID := domain.SessionID(uuid.New())

	t.Run("store single candidate", func(t *testing.T) {
		t.Parallel()

		res, err := pgSQL.StoreCandidates(ctx, domain.Candidate{
			DomainID:           d.ID,
			DiscoverySessionID: sessionID,
			SourceURL:          "https://candidates.example/grants",
			OrganizationName:   "Example Foundation",
			Description:        "Grants for local NGOs",
			ConfidenceScore:    85,
			Status:             domain.CandidateStatusPendingReview,
		})
		require.NoError(t, err)
		require.Len(t, res, 1)
		require.Equal(t, domain.Score(85), res[0].ConfidenceScore)
		require.Equal(t, domain.CandidateStatusPendingReview, res[0].Status)
		require.NotEqual(t, uuid.Nil, uuid.UUID(res[0].ID))
		require.False(t, res[0].CreatedAt.IsZero())
	})

	t.Run("store empty candidates", func(t *testing.T) {
		t.Parallel()

		res, err := pgSQL.StoreCandidates(ctx)
		require.NoError(t, err)
		require.Empty(t, res)
	})
}

func TestPgSQL_CandidatesBySession(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	d := storeTestDomain(t, pgSQL, "paging.example")
	sessionID := domain.SessionID(uuid.New())

	for i := range 5 {
		_, err := pgSQL.StoreCandidates(ctx, domain.Candidate{
			DomainID:           d.ID,
			DiscoverySessionID: sessionID,
			SourceURL:          fmt.Sprintf("https://paging.example/call-%d", i),
			ConfidenceScore:    domain.Score(60 + i),
			Status:             domain.CandidateStatusPendingReview,
		})
		require.NoError(t, err)
		// created_at drives the cursor ordering
		time.Sleep(10 * time.Millisecond)
	}

	t.Run("first page carries a cursor", func(t *testing.T) {
		page, err := pgSQL.CandidatesBySession(ctx, sessionID, time.Time{}, 2)
		require.NoError(t, err)
		require.Len(t, page.Candidates, 2)
		require.NotNil(t, page.NextCursor)
		// newest first
		require.Equal(t, "https://paging.example/call-4", page.Candidates[0].SourceURL)
	})

	t.Run("walking pages reaches the oldest candidate", func(t *testing.T) {
		var (
			cursor time.Time
			seen   []string
		)
		for {
			page, err := pgSQL.CandidatesBySession(ctx, sessionID, cursor, 2)
			require.NoError(t, err)
			for _, c := range page.Candidates {
				seen = append(seen, c.SourceURL)
			}
			if page.NextCursor == nil {
				break
			}
			cursor = *page.NextCursor
		}

		require.Len(t, seen, 5)
		require.Equal(t, "https://paging.example/call-0", seen[len(seen)-1])
	})

	t.Run("other session is empty", func(t *testing.T) {
		page, err := pgSQL.CandidatesBySession(ctx, domain.SessionID(uuid.New()), time.Time{}, 10)
		require.NoError(t, err)
		require.Empty(t, page.Candidates)
		require.Nil(t, page.NextCursor)
	})
}
