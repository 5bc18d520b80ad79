package ingest

import (
	"time"

	"fundscout/pkg/domain"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs carries one submitted batch of search results to the background
// processing worker. The full argument payload acts as the uniqueness key so
// an identical batch re-submitted within the dedup window is not enqueued
// twice.
type JobArgs struct {
	// SessionID is the discovery session the batch belongs to.
	SessionID domain.SessionID `json:"sessionId"`
	// Results is the raw batch handed to the pipeline.
	Results []domain.SearchResult `json:"results"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
	// uniqueJobPeriod defines the lookback window during which a job with the
	// same arguments is considered a duplicate across the specified states.
	uniqueJobPeriod time.Duration
}

// Kind returns the River job kind used to register and dispatch the
// processing worker.
func (args JobArgs) Kind() string { return "ProcessSearchResultsJob" }

// InsertOpts returns the River options that control how the job is enqueued,
// including retry attempts and the uniqueness constraint that absorbs
// duplicate batch submissions.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniqueJobPeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
