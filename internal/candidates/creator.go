// Package candidates creates funding-source candidates for human review.
// The processing pipeline hands over every search result that clears the
// confidence threshold; everything after creation belongs to the review
// workflow.
package candidates

//go:generate mockgen -package mockcandidates -source=creator.go -destination=mock/mockcandidates.go *

import (
	"context"
	"fmt"
	"time"

	"fundscout/pkg/domain"
	"fundscout/pkg/logger"
	"fundscout/pkg/serrors"
	"fundscout/pkg/storage"

	"go.uber.org/zap"
)

// Creator turns a high-confidence search result into a persisted candidate.
type Creator interface {
	// CreateFromResult creates a PENDING_REVIEW candidate for the given
	// result and returns the stored record.
	CreateFromResult(ctx context.Context,
		result domain.SearchResult,
		domainID domain.DomainID,
		sessionID domain.SessionID,
		score domain.Score) (*domain.Candidate, error)
	// SessionCandidates returns a page of candidates for a session, newest
	// first, with cursor-based pagination.
	SessionCandidates(ctx context.Context,
		sessionID domain.SessionID,
		cursor string,
		limit uint) ([]domain.Candidate, string, error)
}

// creator is the storage-backed Creator implementation.
type creator struct {
	storage storage.Storage
}

// New creates a Creator on top of the given storage.
func New(st storage.Storage) Creator {
	return creator{storage: st}
}

func (c creator) CreateFromResult(ctx context.Context,
	result domain.SearchResult,
	domainID domain.DomainID,
	sessionID domain.SessionID,
	score domain.Score) (*domain.Candidate, error) {
	stored, err := c.storage.StoreCandidates(ctx, domain.Candidate{
		DomainID:           domainID,
		DiscoverySessionID: sessionID,
		SourceURL:          result.URL,
		OrganizationName:   result.Title,
		Description:        result.Snippet,
		ConfidenceScore:    score,
		Status:             domain.CandidateStatusPendingReview,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store candidate: %w", err)
	}

	logger.Debug(ctx, "created candidate",
		zap.String("url", result.URL),
		zap.Stringer("score", score))

	return &stored[0], nil
}

func (c creator) SessionCandidates(ctx context.Context,
	sessionID domain.SessionID,
	cursor string,
	limit uint) ([]domain.Candidate, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := c.storage.CandidatesBySession(ctx, sessionID, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get candidates: %w", err)
	}

	nextCursor := ""
	if page.NextCursor != nil {
		nextCursor = page.NextCursor.Format(time.RFC3339)
	}

	return page.Candidates, nextCursor, nil
}
