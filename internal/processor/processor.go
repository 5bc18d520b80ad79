// Package processor orchestrates the per-batch search result pipeline:
// domain extraction, spam filtering, batch deduplication, registry
// eligibility, confidence scoring and threshold-gated candidate creation.
package processor

//go:generate mockgen -package mockprocessor -source=processor.go -destination=mock/mockprocessor.go *

import (
	"context"
	"fmt"

	"fundscout/internal/candidates"
	"fundscout/internal/config"
	"fundscout/internal/registry"
	"fundscout/internal/scoring"
	"fundscout/pkg/domain"
	"fundscout/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options configure the pipeline policy.
type Options struct {
	// ConfidenceThreshold is the minimum score that creates a candidate.
	ConfidenceThreshold domain.Score
	// SpamSuffixes is the low-trust suffix set filtered before any other
	// stage.
	SpamSuffixes []string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		ConfidenceThreshold: domain.ScoreFromFloat(cfg.Discovery.ConfidenceThreshold),
		SpamSuffixes:        cfg.Discovery.SpamTLDs,
	}
}

// Processor runs batches of search results through the discovery pipeline.
type Processor interface {
	// Process evaluates one batch for a discovery session and returns the
	// batch statistics. Malformed per-result input is counted and logged,
	// never returned as an error; an error reports an infrastructure failure
	// that aborted the batch.
	Process(ctx context.Context,
		sessionID domain.SessionID,
		results []domain.SearchResult) (domain.ProcessingStatistics, error)
}

type processor struct {
	options    Options
	spam       scoring.SuffixSet
	scorer     *scoring.Scorer
	registry   registry.Registry
	candidates candidates.Creator
}

// New creates a Processor wired to the given registry, candidate creator and
// scorer.
func New(reg registry.Registry,
	creator candidates.Creator,
	scorer *scoring.Scorer,
	options Options) Processor {
	return processor{
		options:    options,
		spam:       scoring.NewSuffixSet(options.SpamSuffixes),
		scorer:     scorer,
		registry:   reg,
		candidates: creator,
	}
}

func (p processor) Process(ctx context.Context,
	sessionID domain.SessionID,
	results []domain.SearchResult) (domain.ProcessingStatistics, error) {
	ctx = logger.WithFields(ctx, zap.Stringer("sessionID", uuid.UUID(sessionID)))
	logger.Info(ctx, "processing search results", zap.Int("count", len(results)))

	bc := newBatchContext(sessionID)

	for _, result := range results {
		if err := p.processOne(ctx, bc, result); err != nil {
			return bc.statistics(len(results)), fmt.Errorf("could not process result %q: %w", result.URL, err)
		}
	}

	stats := bc.statistics(len(results))
	logger.Info(ctx, "processing complete",
		zap.Int("total", stats.TotalResults),
		zap.Int("spamFiltered", stats.SpamTLDFiltered),
		zap.Int("duplicates", stats.DuplicatesSkipped),
		zap.Int("blacklisted", stats.BlacklistedSkipped),
		zap.Int("ineligible", stats.IneligibleSkipped),
		zap.Int("invalidURLs", stats.InvalidURLsSkipped),
		zap.Int("highConfidence", stats.HighConfidenceCreated),
		zap.Int("lowConfidence", stats.LowConfidenceCreated))

	return stats, nil
}

// processOne runs one result through the pipeline stages, short-circuiting at
// the first disqualifying stage. Cheap checks come first; the spam filter
// runs before dedup so a spam domain never consumes a seen slot or touches
// quality history.
func (p processor) processOne(ctx context.Context, bc *batchContext, result domain.SearchResult) error {
	name, err := registry.ExtractDomainName(result.URL)
	if err != nil {
		bc.invalidURLs++
		logger.Warn(ctx, "could not extract domain from URL",
			zap.String("url", result.URL), zap.Error(err))

		return nil
	}

	if p.spam.Contains(name) {
		bc.spamFiltered++
		logger.Debug(ctx, "spam suffix filtered", zap.String("url", result.URL))

		return nil
	}

	if !bc.markSeen(name) {
		bc.duplicates++
		logger.Debug(ctx, "duplicate domain skipped", zap.String("domain", name))

		return nil
	}

	eligibility, err := p.registry.ShouldProcess(ctx, name)
	if err != nil {
		return err
	}

	if !eligibility.Process {
		bc.recordSkip(eligibility.Status)

		return nil
	}

	d, err := p.registry.RegisterDomain(ctx, name, bc.sessionID)
	if err != nil {
		return err
	}

	score := p.scorer.Score(result, name)

	if score >= p.options.ConfidenceThreshold {
		if _, err := p.candidates.CreateFromResult(ctx, result, d.ID, bc.sessionID, score); err != nil {
			return err
		}
		bc.highConfidence++

		return p.registry.UpdateQuality(ctx, d.ID, score, true)
	}

	// No candidate below the threshold, but quality history must reflect
	// every attempt: the low counter drives eventual demotion.
	bc.lowConfidence++

	return p.registry.UpdateQuality(ctx, d.ID, score, false)
}
