package processor

import "fundscout/pkg/domain"

// batchContext carries all per-batch mutable state: the batch-local set of
// seen domains and the outcome counters. One instance is scoped to a single
// Process call and never shared, so concurrent batches cannot race on it.
type batchContext struct {
	sessionID domain.SessionID
	seen      map[string]struct{}

	invalidURLs    int
	spamFiltered   int
	duplicates     int
	blacklisted    int
	ineligible     int
	highConfidence int
	lowConfidence  int
}

func newBatchContext(sessionID domain.SessionID) *batchContext {
	return &batchContext{
		sessionID: sessionID,
		seen:      make(map[string]struct{}),
	}
}

// markSeen records the domain as seen in this batch and reports whether this
// was its first occurrence.
func (bc *batchContext) markSeen(name string) bool {
	if _, ok := bc.seen[name]; ok {
		return false
	}
	bc.seen[name] = struct{}{}

	return true
}

// recordSkip categorizes a registry skip by the lifecycle state that caused
// it, so blacklist skips stay distinguishable in the statistics.
func (bc *batchContext) recordSkip(status domain.DomainStatus) {
	if status == domain.DomainStatusBlacklisted {
		bc.blacklisted++

		return
	}

	bc.ineligible++
}

// statistics builds the immutable batch summary.
func (bc *batchContext) statistics(total int) domain.ProcessingStatistics {
	return domain.ProcessingStatistics{
		TotalResults:          total,
		SpamTLDFiltered:       bc.spamFiltered,
		DuplicatesSkipped:     bc.duplicates,
		BlacklistedSkipped:    bc.blacklisted,
		IneligibleSkipped:     bc.ineligible,
		InvalidURLsSkipped:    bc.invalidURLs,
		HighConfidenceCreated: bc.highConfidence,
		LowConfidenceCreated:  bc.lowConfidence,
	}
}
