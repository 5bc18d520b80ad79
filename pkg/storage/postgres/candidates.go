package postgres

import (
	"context"
	"fmt"
	"fundscout/pkg/domain"
	"fundscout/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	candidatesTable = "candidates"
)

func (p *PgSQL) StoreCandidates(ctx context.Context, candidates ...domain.Candidate) ([]domain.Candidate, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	var result []PgCandidate
	if err := p.Builder.Insert(candidatesTable).
		Rows(candidatesToPg(candidates)).
		Returning(&PgCandidate{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store candidates into pg: %w", err)
	}

	return pgCandidatesToDomain(result), nil
}

// CandidatesBySession returns a page of candidates for a session created
// before the optional cursor, ordered by created_at DESC, id DESC.
func (p *PgSQL) CandidatesBySession(ctx context.Context,
	sessionID domain.SessionID,
	cursor time.Time,
	limit uint) (storage.SessionCandidates, error) {
	w := []goqu.Expression{
		goqu.I("discovery_session_id").Eq(uuid.UUID(sessionID)),
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	ds := p.Builder.From(candidatesTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("candidate_id").Desc()).
		Limit(fetch)

	var rows []PgCandidate
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.SessionCandidates{}, fmt.Errorf("could not get session candidates from pg: %w", err)
	}

	page := storage.SessionCandidates{}
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		next := rows[len(rows)-1].CreatedAt
		page.NextCursor = &next
	}
	page.Candidates = pgCandidatesToDomain(rows)

	return page, nil
}
