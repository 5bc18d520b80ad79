package postgres

import (
	"database/sql"
	"fundscout/pkg/domain"
	"time"

	"github.com/google/uuid"
)

// Scores are persisted as smallint hundredths so that stored values stay
// exact and comparable without numeric/float conversions.

type PgDomain struct {
	ID     uuid.UUID `db:"domain_id" goqu:"skipinsert"`
	Name   string    `db:"domain_name"`
	Status string    `db:"status"`

	DiscoveredAt       time.Time     `db:"discovered_at"   goqu:"skipinsert"`
	DiscoverySessionID uuid.NullUUID `db:"discovery_session_id"`
	LastProcessedAt    sql.NullTime  `db:"last_processed_at"`
	ProcessingCount    int           `db:"processing_count"`

	BestConfidenceScore       sql.NullInt16 `db:"best_confidence_score"`
	HighQualityCandidateCount int           `db:"high_quality_candidate_count"`
	LowQualityCandidateCount  int           `db:"low_quality_candidate_count"`

	BlacklistedBy   uuid.NullUUID  `db:"blacklisted_by"`
	BlacklistedAt   sql.NullTime   `db:"blacklisted_at"`
	BlacklistReason sql.NullString `db:"blacklist_reason"`

	NoFundsYear sql.NullInt32  `db:"no_funds_year"`
	Notes       sql.NullString `db:"notes"`

	FailureCount  int            `db:"failure_count"`
	FailureReason sql.NullString `db:"failure_reason"`
	RetryAfter    sql.NullTime   `db:"retry_after"`
}

func (p *PgDomain) ToDomain() *domain.Domain {
	d := &domain.Domain{
		ID:                        domain.DomainID(p.ID),
		Name:                      p.Name,
		Status:                    domain.DomainStatus(p.Status),
		DiscoveredAt:              p.DiscoveredAt,
		DiscoverySessionID:        domain.SessionID(p.DiscoverySessionID.UUID),
		LastProcessedAt:           p.LastProcessedAt.Time,
		ProcessingCount:           p.ProcessingCount,
		HighQualityCandidateCount: p.HighQualityCandidateCount,
		LowQualityCandidateCount:  p.LowQualityCandidateCount,
		BlacklistedBy:             domain.UserID(p.BlacklistedBy.UUID),
		BlacklistedAt:             p.BlacklistedAt.Time,
		BlacklistReason:           p.BlacklistReason.String,
		NoFundsYear:               int(p.NoFundsYear.Int32),
		Notes:                     p.Notes.String,
		FailureCount:              p.FailureCount,
		FailureReason:             p.FailureReason.String,
		RetryAfter:                p.RetryAfter.Time,
	}
	if p.BestConfidenceScore.Valid {
		score := domain.Score(p.BestConfidenceScore.Int16)
		d.BestConfidenceScore = &score
	}

	return d
}

func (p *PgDomain) FromDomain(d domain.Domain) {
	*p = PgDomain{
		ID:     uuid.UUID(d.ID),
		Name:   d.Name,
		Status: string(d.Status),

		DiscoveredAt: d.DiscoveredAt,
		DiscoverySessionID: uuid.NullUUID{
			UUID:  uuid.UUID(d.DiscoverySessionID),
			Valid: uuid.UUID(d.DiscoverySessionID) != uuid.Nil,
		},
		LastProcessedAt: sql.NullTime{
			Time:  d.LastProcessedAt,
			Valid: !d.LastProcessedAt.IsZero(),
		},
		ProcessingCount: d.ProcessingCount,

		HighQualityCandidateCount: d.HighQualityCandidateCount,
		LowQualityCandidateCount:  d.LowQualityCandidateCount,

		BlacklistedBy: uuid.NullUUID{
			UUID:  uuid.UUID(d.BlacklistedBy),
			Valid: uuid.UUID(d.BlacklistedBy) != uuid.Nil,
		},
		BlacklistedAt: sql.NullTime{
			Time:  d.BlacklistedAt,
			Valid: !d.BlacklistedAt.IsZero(),
		},
		BlacklistReason: sql.NullString{
			String: d.BlacklistReason,
			Valid:  d.BlacklistReason != "",
		},

		NoFundsYear: sql.NullInt32{
			Int32: int32(d.NoFundsYear), //nolint: gosec
			Valid: d.NoFundsYear != 0,
		},
		Notes: sql.NullString{
			String: d.Notes,
			Valid:  d.Notes != "",
		},

		FailureCount: d.FailureCount,
		FailureReason: sql.NullString{
			String: d.FailureReason,
			Valid:  d.FailureReason != "",
		},
		RetryAfter: sql.NullTime{
			Time:  d.RetryAfter,
			Valid: !d.RetryAfter.IsZero(),
		},
	}
	if d.BestConfidenceScore != nil {
		p.BestConfidenceScore = sql.NullInt16{
			Int16: int16(*d.BestConfidenceScore), //nolint: gosec
			Valid: true,
		}
	}
}

func domainsToPg(domains []domain.Domain) []PgDomain {
	out := make([]PgDomain, len(domains))
	for i := range out {
		out[i].FromDomain(domains[i])
	}

	return out
}

func pgDomainsToDomain(rows []PgDomain) []domain.Domain {
	out := make([]domain.Domain, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row.ToDomain())
	}

	return out
}

type PgCandidate struct {
	ID                 uuid.UUID `db:"candidate_id" goqu:"skipinsert"`
	DomainID           uuid.UUID `db:"domain_id"`
	DiscoverySessionID uuid.UUID `db:"discovery_session_id"`

	SourceURL        string         `db:"source_url"`
	OrganizationName sql.NullString `db:"organization_name"`
	Description      sql.NullString `db:"description"`
	ConfidenceScore  int16          `db:"confidence_score"`
	Status           string         `db:"status"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgCandidate) ToDomain() *domain.Candidate {
	return &domain.Candidate{
		ID:                 domain.CandidateID(p.ID),
		DomainID:           domain.DomainID(p.DomainID),
		DiscoverySessionID: domain.SessionID(p.DiscoverySessionID),
		SourceURL:          p.SourceURL,
		OrganizationName:   p.OrganizationName.String,
		Description:        p.Description.String,
		ConfidenceScore:    domain.Score(p.ConfidenceScore),
		Status:             domain.CandidateStatus(p.Status),
		CreatedAt:          p.CreatedAt,
	}
}

func (p *PgCandidate) FromDomain(c domain.Candidate) {
	*p = PgCandidate{
		ID:                 uuid.UUID(c.ID),
		DomainID:           uuid.UUID(c.DomainID),
		DiscoverySessionID: uuid.UUID(c.DiscoverySessionID),
		SourceURL:          c.SourceURL,
		OrganizationName: sql.NullString{
			String: c.OrganizationName,
			Valid:  c.OrganizationName != "",
		},
		Description: sql.NullString{
			String: c.Description,
			Valid:  c.Description != "",
		},
		ConfidenceScore: int16(c.ConfidenceScore), //nolint: gosec
		Status:          string(c.Status),
		CreatedAt:       c.CreatedAt,
	}
}

func candidatesToPg(candidates []domain.Candidate) []PgCandidate {
	out := make([]PgCandidate, len(candidates))
	for i := range out {
		out[i].FromDomain(candidates[i])
	}

	return out
}

func pgCandidatesToDomain(rows []PgCandidate) []domain.Candidate {
	out := make([]domain.Candidate, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row.ToDomain())
	}

	return out
}
