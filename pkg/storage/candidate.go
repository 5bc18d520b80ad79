package storage

import (
	"context"
	"fundscout/pkg/domain"
	"time"
)

// SessionCandidates groups a page of candidates for a discovery session
// together with an optional NextCursor used for pagination.
type SessionCandidates struct {
	// Candidates contains the current page of candidate records.
	Candidates []domain.Candidate
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// CandidateStorage defines repository operations for review candidates.
// This core only creates candidates; the review workflow owns everything
// after that.
type CandidateStorage interface {
	// StoreCandidates inserts one or more candidates and returns the stored
	// rows as they exist in the database (including generated fields).
	StoreCandidates(ctx context.Context, candidates ...domain.Candidate) ([]domain.Candidate, error)
	// CandidatesBySession returns a page of candidates created before the
	// optional cursor time for the given session, newest first.
	CandidatesBySession(ctx context.Context,
		sessionID domain.SessionID,
		cursor time.Time,
		limit uint) (SessionCandidates, error)
}
