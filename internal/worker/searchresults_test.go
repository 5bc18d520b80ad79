package worker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"fundscout/internal/ingest"
	mockprocessor "fundscout/internal/processor/mock"
	"fundscout/internal/worker"
	"fundscout/pkg/domain"
	"fundscout/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(id int64, sessionID domain.SessionID, results []domain.SearchResult) *river.Job[ingest.JobArgs] {
	return &river.Job[ingest.JobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   ingest.JobArgs{SessionID: sessionID, Results: results},
	}
}

func TestSearchResultsWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	proc := mockprocessor.NewMockProcessor(ctrl)
	w := worker.NewSearchResultsWorker(proc, nil)

	sessionID := domain.SessionID(uuid.New())
	results := []domain.SearchResult{{URL: "https://funder.org/grants"}}

	proc.EXPECT().Process(gomock.Any(), sessionID, results).
		Return(domain.ProcessingStatistics{TotalResults: 1, HighConfidenceCreated: 1}, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, sessionID, results)))
}

func TestSearchResultsWorker_Work_ProcessorErrorRetriable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	proc := mockprocessor.NewMockProcessor(ctrl)
	w := worker.NewSearchResultsWorker(proc, nil)

	sessionID := domain.SessionID(uuid.New())
	procErr := errors.New("database unavailable")

	proc.EXPECT().Process(gomock.Any(), sessionID, gomock.Any()).
		Return(domain.ProcessingStatistics{}, procErr)

	err := w.Work(context.Background(), makeJob(2, sessionID, []domain.SearchResult{{URL: "https://x.org/"}}))
	require.Error(t, err)
	require.ErrorIs(t, err, procErr)

	// Infrastructure errors must stay plain so River retries the job rather
	// than cancelling it.
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr)
}
