// Package metrics holds shared metric helpers and the pipeline outcome
// instruments recorded by the background worker.
package metrics

import (
	"context"
	"fmt"

	"fundscout/pkg/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Pipeline records per-batch processing outcomes. Results are labeled with
// the pipeline stage outcome so skip reasons stay distinguishable.
type Pipeline struct {
	batches    metric.Int64Counter
	results    metric.Int64Counter
	candidates metric.Int64Counter
}

// NewPipeline creates the pipeline instruments on the given meter.
func NewPipeline(meter metric.Meter) (*Pipeline, error) {
	batches, err := meter.Int64Counter("discovery_batches_total",
		metric.WithDescription("Number of processed search result batches"))
	if err != nil {
		return nil, fmt.Errorf("could not create batches counter: %w", err)
	}

	results, err := meter.Int64Counter("discovery_results_total",
		metric.WithDescription("Number of processed search results by outcome"))
	if err != nil {
		return nil, fmt.Errorf("could not create results counter: %w", err)
	}

	candidates, err := meter.Int64Counter("discovery_candidates_created_total",
		metric.WithDescription("Number of review candidates created"))
	if err != nil {
		return nil, fmt.Errorf("could not create candidates counter: %w", err)
	}

	return &Pipeline{batches: batches, results: results, candidates: candidates}, nil
}

// RecordBatch records one batch summary.
func (p *Pipeline) RecordBatch(ctx context.Context, stats domain.ProcessingStatistics) {
	p.batches.Add(ctx, 1)

	outcomes := map[string]int{
		"spam_filtered":   stats.SpamTLDFiltered,
		"duplicate":       stats.DuplicatesSkipped,
		"blacklisted":     stats.BlacklistedSkipped,
		"ineligible":      stats.IneligibleSkipped,
		"invalid_url":     stats.InvalidURLsSkipped,
		"high_confidence": stats.HighConfidenceCreated,
		"low_confidence":  stats.LowConfidenceCreated,
	}
	for outcome, count := range outcomes {
		if count == 0 {
			continue
		}

		p.results.Add(ctx, int64(count),
			metric.WithAttributes(attribute.String("outcome", outcome)))
	}

	p.candidates.Add(ctx, int64(stats.HighConfidenceCreated))
}
