// Package ingest accepts batches of raw search results and hands them to the
// background processing queue. Validation happens here so configuration
// errors and oversized batches surface to the submitter, not inside a worker.
package ingest

//go:generate mockgen -package mockingest -source=ingestor.go -destination=mock/mockingest.go *

import (
	"context"
	"fmt"
	"time"

	"fundscout/internal/config"
	"fundscout/pkg/domain"
	"fundscout/pkg/logger"
	"fundscout/pkg/serrors"
	"fundscout/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options configure batch validation and queue behavior.
type Options struct {
	// MaxBatchSize caps the number of results accepted in one submission.
	MaxBatchSize int
	// MaxAttempts is the retry budget for a processing job.
	MaxAttempts int
	// DedupWindow is the period during which an identical batch is treated
	// as a duplicate submission.
	DedupWindow time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxBatchSize: cfg.Ingest.MaxBatchSize,
		MaxAttempts:  cfg.Ingest.MaxAttempts,
		DedupWindow:  cfg.Ingest.DedupWindow,
	}
}

// Ingestor validates and enqueues search result batches for processing.
type Ingestor interface {
	// Submit enqueues a batch for the given session. The boolean result
	// reports whether a job was actually enqueued (false when an identical
	// batch was already queued within the dedup window).
	Submit(ctx context.Context, sessionID domain.SessionID, results []domain.SearchResult) (bool, error)
}

type ingestor struct {
	options Options
	storage storage.Storage
}

// New creates an Ingestor on top of the given storage.
func New(st storage.Storage, options Options) Ingestor {
	return ingestor{options: options, storage: st}
}

func (i ingestor) Submit(ctx context.Context,
	sessionID domain.SessionID,
	results []domain.SearchResult) (bool, error) {
	if uuid.UUID(sessionID) == uuid.Nil {
		return false, serrors.With(serrors.ErrBadRequest, "missing session ID")
	}
	if len(results) == 0 {
		return false, serrors.With(serrors.ErrBadRequest, "empty batch")
	}
	if len(results) > i.options.MaxBatchSize {
		return false, serrors.With(serrors.ErrBadRequest,
			"batch of %d results exceeds limit of %d", len(results), i.options.MaxBatchSize)
	}
	for _, result := range results {
		if result.URL == "" {
			return false, serrors.With(serrors.ErrBadRequest, "result with empty URL")
		}
	}

	var added bool
	if err := i.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		added, err = tx.AddJob(ctx, JobArgs{
			SessionID:       sessionID,
			Results:         results,
			maxAttempts:     i.options.MaxAttempts,
			uniqueJobPeriod: i.options.DedupWindow,
		}, nil)
		if err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		return false, fmt.Errorf("could not submit batch: %w", err)
	}

	logger.Info(ctx, "batch submitted",
		zap.Stringer("sessionID", uuid.UUID(sessionID)),
		zap.Int("results", len(results)),
		zap.Bool("enqueued", added))

	return added, nil
}
