package postgres

import (
	"context"
	"fmt"
	"fundscout/pkg/domain"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	domainsTable = "domains"
)

func (p *PgSQL) StoreDomains(ctx context.Context, domains ...domain.Domain) ([]domain.Domain, error) {
	if len(domains) == 0 {
		return nil, nil
	}

	var result []PgDomain
	if err := p.Builder.Insert(domainsTable).
		Rows(domainsToPg(domains)).
		Returning(&PgDomain{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store domains into pg: %w", err)
	}

	return pgDomainsToDomain(result), nil
}

// DomainByName fetches a domain record by its normalized name.
func (p *PgSQL) DomainByName(ctx context.Context, name string) (*domain.Domain, error) {
	var row PgDomain
	found, err := p.Builder.From(domainsTable).
		Where(goqu.I("domain_name").Eq(name)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not get domain by name from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DomainByID fetches a domain record by its ID.
func (p *PgSQL) DomainByID(ctx context.Context, id domain.DomainID) (*domain.Domain, error) {
	var row PgDomain
	found, err := p.Builder.From(domainsTable).
		Where(goqu.I("domain_id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not get domain by id from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// SaveDomain writes back every mutable field of an existing record in one
// statement. Identity fields (name, discovery metadata) never change after
// registration. Returns nil when the record no longer exists.
func (p *PgSQL) SaveDomain(ctx context.Context, d domain.Domain) (*domain.Domain, error) {
	var pg PgDomain
	pg.FromDomain(d)

	rec := goqu.Record{
		"status":                       pg.Status,
		"last_processed_at":            pg.LastProcessedAt,
		"processing_count":             pg.ProcessingCount,
		"best_confidence_score":        pg.BestConfidenceScore,
		"high_quality_candidate_count": pg.HighQualityCandidateCount,
		"low_quality_candidate_count":  pg.LowQualityCandidateCount,
		"blacklisted_by":               pg.BlacklistedBy,
		"blacklisted_at":               pg.BlacklistedAt,
		"blacklist_reason":             pg.BlacklistReason,
		"no_funds_year":                pg.NoFundsYear,
		"notes":                        pg.Notes,
		"failure_count":                pg.FailureCount,
		"failure_reason":               pg.FailureReason,
		"retry_after":                  pg.RetryAfter,
	}

	var row PgDomain
	found, err := p.Builder.Update(domainsTable).
		Set(rec).
		Where(goqu.I("domain_id").Eq(pg.ID)).
		Returning(&PgDomain{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not save domain in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DomainsReadyForRetry returns failed domains whose retry window has passed,
// oldest retry_after first.
func (p *PgSQL) DomainsReadyForRetry(ctx context.Context, now time.Time) ([]domain.Domain, error) {
	var rows []PgDomain
	if err := p.Builder.From(domainsTable).
		Where(
			goqu.I("status").Eq(string(domain.DomainStatusProcessingFailed)),
			goqu.I("retry_after").IsNotNull(),
			goqu.I("retry_after").Lte(now),
		).
		Order(goqu.I("retry_after").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not get domains ready for retry from pg: %w", err)
	}

	return pgDomainsToDomain(rows), nil
}
