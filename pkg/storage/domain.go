package storage

import (
	"context"
	"fundscout/pkg/domain"
	"time"
)

// DomainStorage defines repository operations for domain registry records.
// Every mutation is atomic with respect to a single domain row; the registry
// deliberately tolerates last-writer-wins between concurrent sessions, so no
// cross-row transactions or row locks are required here.
type DomainStorage interface {
	// StoreDomains inserts one or more domain records and returns the stored
	// rows as they exist in the database (including generated fields).
	// Inserting an already-registered name fails with a uniqueness violation;
	// callers that need idempotency check DomainByName first.
	StoreDomains(ctx context.Context, domains ...domain.Domain) ([]domain.Domain, error)
	// DomainByName fetches a domain record by its normalized name.
	// Returns nil when not found.
	DomainByName(ctx context.Context, name string) (*domain.Domain, error)
	// DomainByID fetches a domain record by ID. Returns nil when not found.
	DomainByID(ctx context.Context, id domain.DomainID) (*domain.Domain, error)
	// SaveDomain performs a full-row update of the record identified by d.ID
	// and returns the updated row, or nil when the record does not exist.
	SaveDomain(ctx context.Context, d domain.Domain) (*domain.Domain, error)
	// DomainsReadyForRetry returns failed domains whose retry_after has passed
	// at the given time, oldest first.
	DomainsReadyForRetry(ctx context.Context, now time.Time) ([]domain.Domain, error)
}
