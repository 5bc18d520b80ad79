package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"fundscout/pkg/domain"
)

func TestPgSQL_StoreDomains(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	sessionID := domain.SessionID(uuid.New())

	t.Run("store single domain", func(t *testing.T) {
		t.Parallel()

		d := domain.Domain{
			Name:               "funder.org",
			Status:             domain.DomainStatusDiscovered,
			DiscoverySessionID: sessionID,
		}

		res, err := pgSQL.StoreDomains(ctx, d)
		require.NoError(t, err)
		require.Len(t, res, 1)
		require.Equal(t, "funder.org", res[0].Name)
		require.Equal(t, domain.DomainStatusDiscovered, res[0].Status)
		require.NotEqual(t, uuid.Nil, uuid.UUID(res[0].ID))
		require.False(t, res[0].DiscoveredAt.IsZero())
	})

	t.Run("store multiple domains", func(t *testing.T) {
		t.Parallel()

		res, err := pgSQL.StoreDomains(ctx,
			domain.Domain{Name: "ministry.gov", Status: domain.DomainStatusDiscovered, DiscoverySessionID: sessionID},
			domain.Domain{Name: "stiftung.de", Status: domain.DomainStatusDiscovered, DiscoverySessionID: sessionID},
		)
		require.NoError(t, err)
		require.Len(t, res, 2)
	})

	t.Run("store empty domains", func(t *testing.T) {
		t.Parallel()

		res, err := pgSQL.StoreDomains(ctx)
		require.NoError(t, err)
		require.Empty(t, res)
	})

	t.Run("duplicate name violates uniqueness", func(t *testing.T) {
		t.Parallel()

		d := domain.Domain{Name: "dup.example", Status: domain.DomainStatusDiscovered}
		_, err := pgSQL.StoreDomains(ctx, d)
		require.NoError(t, err)

		_, err = pgSQL.StoreDomains(ctx, d)
		require.Error(t, err)
	})
}

func TestPgSQL_DomainLookups(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	stored, err := pgSQL.StoreDomains(ctx, domain.Domain{
		Name:   "lookup.example",
		Status: domain.DomainStatusDiscovered,
	})
	require.NoError(t, err)
	require.Len(t, stored, 1)

	t.Run("by name", func(t *testing.T) {
		t.Parallel()

		d, err := pgSQL.DomainByName(ctx, "lookup.example")
		require.NoError(t, err)
		require.NotNil(t, d)
		require.Equal(t, stored[0].ID, d.ID)
	})

	t.Run("by name miss returns nil", func(t *testing.T) {
		t.Parallel()

		d, err := pgSQL.DomainByName(ctx, "missing.example")
		require.NoError(t, err)
		require.Nil(t, d)
	})

	t.Run("by id", func(t *testing.T) {
		t.Parallel()

		d, err := pgSQL.DomainByID(ctx, stored[0].ID)
		require.NoError(t, err)
		require.NotNil(t, d)
		require.Equal(t, "lookup.example", d.Name)
	})

	t.Run("by id miss returns nil", func(t *testing.T) {
		t.Parallel()

		d, err := pgSQL.DomainByID(ctx, domain.DomainID(uuid.New()))
		require.NoError(t, err)
		require.Nil(t, d)
	})
}

func TestPgSQL_SaveDomain(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	stored, err := pgSQL.StoreDomains(ctx, domain.Domain{
		Name:   "save.example",
		Status: domain.DomainStatusDiscovered,
	})
	require.NoError(t, err)
	require.Len(t, stored, 1)

	d := stored[0]
	best := domain.Score(85)
	d.Status = domain.DomainStatusProcessedHighQuality
	d.BestConfidenceScore = &best
	d.HighQualityCandidateCount = 1
	d.ProcessingCount = 1
	d.LastProcessedAt = time.Now().UTC()

	saved, err := pgSQL.SaveDomain(ctx, d)
	require.NoError(t, err)
	require.NotNil(t, saved)
	require.Equal(t, domain.DomainStatusProcessedHighQuality, saved.Status)
	require.NotNil(t, saved.BestConfidenceScore)
	require.Equal(t, best, *saved.BestConfidenceScore)
	require.Equal(t, 1, saved.HighQualityCandidateCount)
	require.False(t, saved.LastProcessedAt.IsZero())

	t.Run("missing record returns nil", func(t *testing.T) {
		t.Parallel()

		ghost := domain.Domain{ID: domain.DomainID(uuid.New()), Name: "ghost.example"}
		res, err := pgSQL.SaveDomain(ctx, ghost)
		require.NoError(t, err)
		require.Nil(t, res)
	})
}

func TestPgSQL_DomainsReadyForRetry(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	now := time.Now().UTC()

	stored, err := pgSQL.StoreDomains(ctx,
		domain.Domain{Name: "ready.example", Status: domain.DomainStatusDiscovered},
		domain.Domain{Name: "later.example", Status: domain.DomainStatusDiscovered},
		domain.Domain{Name: "healthy.example", Status: domain.DomainStatusDiscovered},
	)
	require.NoError(t, err)
	require.Len(t, stored, 3)

	ready := stored[0]
	ready.Status = domain.DomainStatusProcessingFailed
	ready.FailureCount = 1
	ready.RetryAfter = now.Add(-time.Minute)
	_, err = pgSQL.SaveDomain(ctx, ready)
	require.NoError(t, err)

	later := stored[1]
	later.Status = domain.DomainStatusProcessingFailed
	later.FailureCount = 1
	later.RetryAfter = now.Add(time.Hour)
	_, err = pgSQL.SaveDomain(ctx, later)
	require.NoError(t, err)

	res, err := pgSQL.DomainsReadyForRetry(ctx, now)
	require.NoError(t, err)
	require.Len(t, res, 1)
	require.Equal(t, "ready.example", res[0].Name)
}
