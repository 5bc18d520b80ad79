package domain

import (
	"time"

	"github.com/google/uuid"
)

// CandidateID uniquely identifies a funding-source candidate.
type CandidateID uuid.UUID

// CandidateStatus is the lifecycle state of a candidate. This core only ever
// creates candidates pending review; the review workflow owns the rest of the
// lifecycle.
type CandidateStatus string

// CandidateStatusPendingReview marks a newly created candidate awaiting
// human review.
const CandidateStatusPendingReview CandidateStatus = "PENDING_REVIEW"

// Candidate is a funding opportunity proposed for human review. One is
// created for every search result whose confidence score clears the
// configured threshold.
type Candidate struct {
	// ID is the unique identifier of the candidate.
	ID CandidateID `json:"id"`
	// DomainID references the registry record of the candidate's domain.
	DomainID DomainID `json:"domainId"`
	// DiscoverySessionID references the session whose batch produced this candidate.
	DiscoverySessionID SessionID `json:"discoverySessionId"`

	// SourceURL is the search result URL the candidate was created from.
	SourceURL string `json:"sourceUrl"`
	// OrganizationName is taken from the search result title.
	OrganizationName string `json:"organizationName"`
	// Description is taken from the search result snippet.
	Description string `json:"description"`
	// ConfidenceScore is the score that cleared the threshold.
	ConfidenceScore Score `json:"confidenceScore"`
	// Status is the candidate's lifecycle state.
	Status CandidateStatus `json:"status"`

	// CreatedAt is when the candidate was created.
	CreatedAt time.Time `json:"createdAt"`
}
