// Package worker runs the background job side of the service: it consumes
// queued search result batches and feeds them through the processing
// pipeline.
package worker

import (
	"context"
	"fmt"

	"fundscout/internal/ingest"
	"fundscout/internal/processor"
	"fundscout/pkg/logger"
	"fundscout/pkg/metrics"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// SearchResultsWorker is a River worker that processes one submitted batch
// per job. Returning an error lets River retry the job with its own backoff;
// malformed individual results never fail the job since the pipeline absorbs
// them into statistics.
type SearchResultsWorker struct {
	river.WorkerDefaults[ingest.JobArgs]

	processor processor.Processor
	pipeline  *metrics.Pipeline
}

// NewSearchResultsWorker constructs a SearchResultsWorker. pipeline may be
// nil when metrics are not wired, e.g. in tests.
func NewSearchResultsWorker(p processor.Processor, pipeline *metrics.Pipeline) *SearchResultsWorker {
	return &SearchResultsWorker{processor: p, pipeline: pipeline}
}

// Work processes a single batch job.
func (w *SearchResultsWorker) Work(ctx context.Context, job *river.Job[ingest.JobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	stats, err := w.processor.Process(ctx, job.Args.SessionID, job.Args.Results)
	if err != nil {
		logger.Error(ctx, "error processing search results", zap.Error(err))

		return fmt.Errorf("could not process search results: %w", err)
	}

	if w.pipeline != nil {
		w.pipeline.RecordBatch(ctx, stats)
	}

	logger.Info(ctx, "batch processed",
		zap.Int("total", stats.TotalResults),
		zap.Int("candidates", stats.HighConfidenceCreated))

	return nil
}
