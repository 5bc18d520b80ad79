package domain

import (
	"time"

	"github.com/google/uuid"
)

// DomainID uniquely identifies a registered domain.
// It wraps uuid.UUID to provide type safety at the domain layer.
type DomainID uuid.UUID

// SessionID identifies the discovery session that produced a batch of search
// results. Sessions themselves are owned by an upstream collaborator.
type SessionID uuid.UUID

// UserID identifies an operator performing administrative actions such as
// blacklisting a domain.
type UserID uuid.UUID

// DomainStatus is the lifecycle state of a registered domain.
type DomainStatus string

const (
	// DomainStatusDiscovered marks a domain that has been seen but never scored.
	DomainStatusDiscovered DomainStatus = "DISCOVERED"
	// DomainStatusProcessing marks a domain currently being scored. It is not a
	// lock; concurrent processing of the same domain is accepted.
	DomainStatusProcessing DomainStatus = "PROCESSING"
	// DomainStatusProcessedHighQuality marks a domain with at least one
	// high-confidence outcome ever. Eligible for periodic re-checks.
	DomainStatusProcessedHighQuality DomainStatus = "PROCESSED_HIGH_QUALITY"
	// DomainStatusProcessedLowQuality marks a domain with three or more
	// low-confidence outcomes and no high-quality history. Never reprocessed.
	DomainStatusProcessedLowQuality DomainStatus = "PROCESSED_LOW_QUALITY"
	// DomainStatusNoFundsThisYear marks a legitimate funder explicitly flagged
	// as exhausted for a given year; eligible again once the year passes.
	DomainStatusNoFundsThisYear DomainStatus = "NO_FUNDS_THIS_YEAR"
	// DomainStatusProcessingFailed marks a technical failure; eligible again
	// after the retry backoff elapses.
	DomainStatusProcessingFailed DomainStatus = "PROCESSING_FAILED"
	// DomainStatusBlacklisted marks a manually excluded domain. Overrides
	// everything else; never reprocessed.
	DomainStatusBlacklisted DomainStatus = "BLACKLISTED"
)

// Domain is the registry record for one normalized host name. Records are
// created on first encounter and never deleted: quality history must persist
// to drive future reprocessing decisions.
type Domain struct {
	// ID is the unique identifier of the domain record.
	ID DomainID `json:"id"`
	// Name is the normalized host name (lower-cased, www. and port stripped).
	// Globally unique and immutable once created.
	Name string `json:"name"`
	// Status is the current lifecycle state.
	Status DomainStatus `json:"status"`

	// DiscoveredAt is when the domain was first encountered.
	DiscoveredAt time.Time `json:"discoveredAt"`
	// DiscoverySessionID references the session that first found this domain.
	DiscoverySessionID SessionID `json:"discoverySessionId"`
	// LastProcessedAt is when search results from this domain were last scored.
	// Zero when the domain has never been processed.
	LastProcessedAt time.Time `json:"lastProcessedAt,omitzero"`
	// ProcessingCount is the total number of scoring attempts recorded.
	ProcessingCount int `json:"processingCount"`

	// BestConfidenceScore is the highest score any result from this domain has
	// ever received. Nil when unscored; only ever moves upward.
	BestConfidenceScore *Score `json:"bestConfidenceScore,omitempty"`
	// HighQualityCandidateCount counts scoring outcomes at or above the
	// confidence threshold. Monotonically non-decreasing.
	HighQualityCandidateCount int `json:"highQualityCandidateCount"`
	// LowQualityCandidateCount counts scoring outcomes below the confidence
	// threshold. Monotonically non-decreasing.
	LowQualityCandidateCount int `json:"lowQualityCandidateCount"`

	// BlacklistedBy is the operator who blacklisted this domain, if any.
	BlacklistedBy UserID `json:"-"`
	// BlacklistedAt is when the domain was blacklisted; zero when it never was.
	BlacklistedAt time.Time `json:"-"`
	// BlacklistReason is the human-provided reason for the blacklist.
	BlacklistReason string `json:"blacklistReason,omitempty"`

	// NoFundsYear is the year for which the domain was marked as having no
	// funds available. Zero when never marked.
	NoFundsYear int `json:"noFundsYear,omitempty"`
	// Notes holds free-form operator annotations.
	Notes string `json:"notes,omitempty"`

	// FailureCount is the number of consecutive technical processing failures.
	// Never negative; reset only by a brand-new registration.
	FailureCount int `json:"failureCount"`
	// FailureReason is the reason recorded with the most recent failure.
	FailureReason string `json:"failureReason,omitempty"`
	// RetryAfter is the earliest time a failed domain becomes eligible again.
	RetryAfter time.Time `json:"retryAfter,omitzero"`
}

// Blacklisted reports whether the domain is excluded from processing.
func (d *Domain) Blacklisted() bool {
	return d.Status == DomainStatusBlacklisted
}
