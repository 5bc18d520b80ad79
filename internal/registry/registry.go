package registry

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

// lowQualityDemotionCount is the number of low-confidence outcomes after
// which a domain with no high-quality history is demoted and never
// reprocessed.
const lowQualityDemotionCount = 3

// defaultBackoff is the retry schedule used when none is configured:
// 1h, 4h, 1d, then 1w capped. Deliberately coarse rather than strictly
// exponential, to bound worst-case staleness.
var defaultBackoff = []time.Duration{
	time.Hour,
	4 * time.Hour,
	24 * time.Hour,
	7 * 24 * time.Hour,
}

// Options configure lifecycle policy: the failure backoff schedule and the
// high-quality recheck cooldown.
type Options struct {
	// Backoff is the retry schedule; entry N applies after the Nth
	// consecutive failure, the last entry caps the delay.
	Backoff []time.Duration
	// RecheckPeriod is the cooldown before a PROCESSED_HIGH_QUALITY domain
	// becomes eligible again. Zero disables the cooldown.
	RecheckPeriod time.Duration
	// Now returns the current time. Defaults to time.Now; injectable so
	// backoff and year-rollover decisions are testable.
	Now func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Backoff:       cfg.Discovery.FailureBackoff,
		RecheckPeriod: cfg.Discovery.HighQualityRecheck,
	}
}

// registry is the concrete implementation of the Registry interface backed by
// the domain repository.
type registry struct {
	options Options
	storage storage.Storage
}

// New creates a Registry on top of the given storage.
func New(st storage.Storage, options Options) Registry {
	if len(options.Backoff) == 0 {
		options.Backoff = defaultBackoff
	}
	if options.Now == nil {
		options.Now = time.Now
	}

	return registry{options: options, storage: st}
}

func (r registry) ShouldProcess(ctx context.Context, name string) (Eligibility, error) {
	d, err := r.storage.DomainByName(ctx, name)
	if err != nil {
		return Eligibility{}, fmt.Errorf("could not get domain: %w", err)
	}

	if d == nil {
		// Never seen before, always eligible.
		return Eligibility{Process: true}, nil
	}

	eligibility := Eligibility{Status: d.Status}
	now := r.options.Now()

	switch d.Status {
	case domain.DomainStatusBlacklisted:
		logger.Debug(ctx, "skipping blacklisted domain",
			zap.String("domain", name), zap.String("reason", d.BlacklistReason))

	case domain.DomainStatusProcessedLowQuality:
		logger.Debug(ctx, "skipping low-quality domain",
			zap.String("domain", name),
			zap.Int("highQualityCount", d.HighQualityCandidateCount),
			zap.Int("lowQualityCount", d.LowQualityCandidateCount))

	case domain.DomainStatusNoFundsThisYear:
		if d.NoFundsYear != 0 && d.NoFundsYear >= now.Year() {
			logger.Debug(ctx, "skipping domain with no funds this year",
				zap.String("domain", name), zap.Int("year", d.NoFundsYear))

			break
		}

		logger.Info(ctx, "re-checking domain for new year",
			zap.String("domain", name), zap.Int("markedYear", d.NoFundsYear))
		eligibility.Process = true

	case domain.DomainStatusProcessingFailed:
		if !d.RetryAfter.IsZero() && now.Before(d.RetryAfter) {
			logger.Debug(ctx, "skipping failed domain until backoff elapses",
				zap.String("domain", name), zap.Time("retryAfter", d.RetryAfter))

			break
		}

		logger.Info(ctx, "retrying failed domain",
			zap.String("domain", name), zap.Int("failureCount", d.FailureCount))
		eligibility.Process = true

	case domain.DomainStatusProcessedHighQuality:
		if r.options.RecheckPeriod > 0 &&
			!d.LastProcessedAt.IsZero() &&
			now.Before(d.LastProcessedAt.Add(r.options.RecheckPeriod)) {
			logger.Debug(ctx, "skipping high-quality domain inside recheck cooldown",
				zap.String("domain", name), zap.Time("lastProcessedAt", d.LastProcessedAt))

			break
		}

		eligibility.Process = true

	case domain.DomainStatusDiscovered, domain.DomainStatusProcessing:
		eligibility.Process = true

	default:
		eligibility.Process = true
	}

	return eligibility, nil
}

func (r registry) RegisterDomain(ctx context.Context,
	name string,
	sessionID domain.SessionID) (*domain.Domain, error) {
	existing, err := r.storage.DomainByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("could not get domain: %w", err)
	}

	if existing != nil {
		return existing, nil
	}

	stored, err := r.storage.StoreDomains(ctx, domain.Domain{
		Name:               name,
		Status:             domain.DomainStatusDiscovered,
		DiscoverySessionID: sessionID,
	})
	if err != nil {
		// A concurrent session may have registered the name between the
		// lookup and the insert. The existing record wins.
		if raced, lookupErr := r.storage.DomainByName(ctx, name); lookupErr == nil && raced != nil {
			return raced, nil
		}

		return nil, fmt.Errorf("could not store domain: %w", err)
	}

	logger.Info(ctx, "registered new domain",
		zap.String("domain", name), zap.Stringer("sessionID", uuid.UUID(sessionID)))

	return &stored[0], nil
}

func (r registry) UpdateQuality(ctx context.Context,
	id domain.DomainID,
	score domain.Score,
	highQuality bool) error {
	d, err := r.storage.DomainByID(ctx, id)
	if err != nil {
		return fmt.Errorf("could not get domain: %w", err)
	}

	if d == nil {
		// Soft lookup, typically a racy post-hoc update.
		return nil
	}

	if d.BestConfidenceScore == nil || score > *d.BestConfidenceScore {
		d.BestConfidenceScore = &score
	}

	if highQuality {
		d.HighQualityCandidateCount++
		// A blacklist is absolute: quality outcomes never resurrect it.
		if !d.Blacklisted() {
			d.Status = domain.DomainStatusProcessedHighQuality
		}
	} else {
		d.LowQualityCandidateCount++
		// A domain with any historical high-quality hit is never auto-demoted.
		if !d.Blacklisted() &&
			d.HighQualityCandidateCount == 0 && d.LowQualityCandidateCount >= lowQualityDemotionCount {
			d.Status = domain.DomainStatusProcessedLowQuality
			logger.Info(ctx, "demoting domain to low quality",
				zap.String("domain", d.Name),
				zap.Int("lowQualityCount", d.LowQualityCandidateCount))
		}
	}

	d.ProcessingCount++
	d.LastProcessedAt = r.options.Now()

	if _, err := r.storage.SaveDomain(ctx, *d); err != nil {
		return fmt.Errorf("could not save domain: %w", err)
	}

	logger.Debug(ctx, "updated domain quality",
		zap.String("domain", d.Name),
		zap.Stringer("bestScore", d.BestConfidenceScore),
		zap.Int("highQualityCount", d.HighQualityCandidateCount),
		zap.Int("lowQualityCount", d.LowQualityCandidateCount))

	return nil
}

func (r registry) RecordProcessingFailure(ctx context.Context, id domain.DomainID, reason string) error {
	d, err := r.storage.DomainByID(ctx, id)
	if err != nil {
		return fmt.Errorf("could not get domain: %w", err)
	}

	if d == nil {
		return nil
	}

	d.FailureCount++
	d.FailureReason = reason
	if !d.Blacklisted() {
		d.Status = domain.DomainStatusProcessingFailed
	}
	d.RetryAfter = r.options.Now().Add(r.backoffFor(d.FailureCount))

	if _, err := r.storage.SaveDomain(ctx, *d); err != nil {
		return fmt.Errorf("could not save domain: %w", err)
	}

	logger.Warn(ctx, "domain processing failed",
		zap.String("domain", d.Name),
		zap.Int("failureCount", d.FailureCount),
		zap.String("reason", reason),
		zap.Time("retryAfter", d.RetryAfter))

	return nil
}

func (r registry) BlacklistDomain(ctx context.Context,
	name, reason string,
	actor domain.UserID) (*domain.Domain, error) {
	now := r.options.Now()

	d, err := r.storage.DomainByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("could not get domain: %w", err)
	}

	if d == nil {
		stored, err := r.storage.StoreDomains(ctx, domain.Domain{
			Name:            name,
			Status:          domain.DomainStatusBlacklisted,
			BlacklistedBy:   actor,
			BlacklistedAt:   now,
			BlacklistReason: reason,
		})
		if err != nil {
			return nil, fmt.Errorf("could not store domain: %w", err)
		}

		d = &stored[0]
	} else {
		// Existing counters and history are preserved; only the blacklist
		// fields change.
		d.Status = domain.DomainStatusBlacklisted
		d.BlacklistedBy = actor
		d.BlacklistedAt = now
		d.BlacklistReason = reason

		saved, err := r.storage.SaveDomain(ctx, *d)
		if err != nil {
			return nil, fmt.Errorf("could not save domain: %w", err)
		}
		if saved != nil {
			d = saved
		}
	}

	logger.Warn(ctx, "domain blacklisted",
		zap.String("domain", name),
		zap.Stringer("actor", uuid.UUID(actor)),
		zap.String("reason", reason))

	return d, nil
}

func (r registry) MarkNoFundsThisYear(ctx context.Context,
	name string,
	year int,
	notes string) (*domain.Domain, error) {
	d, err := r.storage.DomainByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("could not get domain: %w", err)
	}

	if d == nil {
		// An annotation on known data, not an implicit registration.
		return nil, serrors.With(serrors.ErrNotFound, "domain not found: %s", name)
	}

	if !d.Blacklisted() {
		d.Status = domain.DomainStatusNoFundsThisYear
	}
	d.NoFundsYear = year
	d.Notes = notes

	saved, err := r.storage.SaveDomain(ctx, *d)
	if err != nil {
		return nil, fmt.Errorf("could not save domain: %w", err)
	}
	if saved != nil {
		d = saved
	}

	logger.Info(ctx, "domain marked as having no funds",
		zap.String("domain", name), zap.Int("year", year))

	return d, nil
}

func (r registry) DomainByName(ctx context.Context, name string) (*domain.Domain, error) {
	d, err := r.storage.DomainByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("could not get domain: %w", err)
	}

	return d, nil
}

func (r registry) DomainByID(ctx context.Context, id domain.DomainID) (*domain.Domain, error) {
	d, err := r.storage.DomainByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get domain: %w", err)
	}

	return d, nil
}

// backoffFor returns the retry delay for the given consecutive failure count.
// Counts beyond the schedule are capped at the last entry.
func (r registry) backoffFor(failureCount int) time.Duration {
	if failureCount < 1 {
		failureCount = 1
	}
	if failureCount > len(r.options.Backoff) {
		failureCount = len(r.options.Backoff)
	}

	return r.options.Backoff[failureCount-1]
}
