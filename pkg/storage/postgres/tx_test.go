package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"fundscout/pkg/domain"
	"fundscout/pkg/storage"
	"fundscout/pkg/storage/postgres"
)

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	// Should be a *postgres.PgSQL with underlying *sql.Tx
	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	// Error: begin when already in tx
	_, err = inner.Begin(ctx)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, txStorage.Rollback())
}

func TestPgSQL_CommitRollback_OutsideTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
}

func TestPgSQL_Rollback_DiscardsWrites(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = txStorage.StoreDomains(ctx, domain.Domain{
		Name:   "rollback.example",
		Status: domain.DomainStatusDiscovered,
	})
	require.NoError(t, err)
	require.NoError(t, txStorage.Rollback())

	d, err := pg.DomainByName(ctx, "rollback.example")
	require.NoError(t, err)
	require.Nil(t, d)
}

func TestPgSQL_WithTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		err := pg.WithTx(ctx, func(s storage.AllStorage) error {
			_, err := s.StoreDomains(ctx, domain.Domain{
				Name:   "committed.example",
				Status: domain.DomainStatusDiscovered,
			})

			return err
		})
		require.NoError(t, err)

		d, err := pg.DomainByName(ctx, "committed.example")
		require.NoError(t, err)
		require.NotNil(t, d)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		cbErr := errors.New("boom")
		err := pg.WithTx(ctx, func(s storage.AllStorage) error {
			_, storeErr := s.StoreDomains(ctx, domain.Domain{
				Name:   "aborted.example",
				Status: domain.DomainStatusDiscovered,
			})
			require.NoError(t, storeErr)

			return cbErr
		})
		require.ErrorIs(t, err, cbErr)

		d, err := pg.DomainByName(ctx, "aborted.example")
		require.NoError(t, err)
		require.Nil(t, d)
	})
}
