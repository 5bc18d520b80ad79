// Package registry owns the domain lifecycle: registration, reprocessing
// eligibility, quality history, failure backoff, blacklisting and the annual
// "no funds" marker. Every mutation is a read-modify-write on one domain
// record; concurrent sessions touching the same domain resolve by
// last-writer-wins rather than locking.
package registry

//go:generate mockgen -package mockregistry -source=interface.go -destination=mock/mockregistry.go *

import (
	"context"

	"fundscout/pkg/domain"
)

// Eligibility is the outcome of a reprocessing decision. When Process is
// false, Status carries the lifecycle state that caused the skip so callers
// can categorize it: a blacklist skip is reported differently from a
// quality-history or backoff skip.
type Eligibility struct {
	// Process reports whether the domain should be processed now.
	Process bool
	// Status is the current lifecycle state of the domain. Empty for domains
	// not yet registered.
	Status domain.DomainStatus
}

// Registry defines the domain lifecycle operations.
type Registry interface {
	// ShouldProcess decides whether results from the named domain should be
	// scored now. Unknown domains are always eligible.
	ShouldProcess(ctx context.Context, name string) (Eligibility, error)
	// RegisterDomain registers a domain for the given discovery session.
	// Idempotent: an already-registered domain is returned unchanged.
	RegisterDomain(ctx context.Context, name string, sessionID domain.SessionID) (*domain.Domain, error)
	// UpdateQuality records one scoring outcome against the domain's quality
	// history. Soft lookup: a missing domain is a silent no-op.
	UpdateQuality(ctx context.Context, id domain.DomainID, score domain.Score, highQuality bool) error
	// RecordProcessingFailure records a technical failure and schedules the
	// retry backoff. Soft lookup: a missing domain is a silent no-op.
	RecordProcessingFailure(ctx context.Context, id domain.DomainID, reason string) error
	// BlacklistDomain excludes a domain from processing permanently, creating
	// the record if it does not exist yet. Blacklisting always succeeds on a
	// reachable store: it is a safety action.
	BlacklistDomain(ctx context.Context, name, reason string, actor domain.UserID) (*domain.Domain, error)
	// MarkNoFundsThisYear flags a known funder as exhausted for the given
	// year. Hard lookup: fails with serrors.ErrNotFound when the domain does
	// not already exist.
	MarkNoFundsThisYear(ctx context.Context, name string, year int, notes string) (*domain.Domain, error)
	// DomainByName fetches a domain record by name, nil when not found.
	DomainByName(ctx context.Context, name string) (*domain.Domain, error)
	// DomainByID fetches a domain record by ID, nil when not found.
	DomainByID(ctx context.Context, id domain.DomainID) (*domain.Domain, error)
}
