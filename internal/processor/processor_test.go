package processor_test

import (
	"context"
	"testing"

	mockcandidates "fundscout/internal/candidates/mock"
	"fundscout/internal/processor"
	"fundscout/internal/registry"
	mockregistry "fundscout/internal/registry/mock"
	"fundscout/internal/scoring"
	"fundscout/pkg/domain"
	"fundscout/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

var testSpamSuffixes = []string{"tk", "ml", "ga", "cf", "gq", "xyz", "top", "icu", "buzz", "loan", "click", "cam", "pw"}

func newTestProcessor(t *testing.T) (*mockregistry.MockRegistry, *mockcandidates.MockCreator, processor.Processor) {
	t.Helper()

	ctrl := gomock.NewController(t)
	reg := mockregistry.NewMockRegistry(ctrl)
	creator := mockcandidates.NewMockCreator(ctrl)

	scorer := scoring.NewScorer(scoring.NewCredibilityService(), scoring.ScorerOptions{
		FundingKeywords:      []string{"grant", "grants", "funding", "scholarship", "scholarships"},
		GeographyKeywords:    []string{"bulgaria", "bulgarian", "europe", "european"},
		OrganizationKeywords: []string{"ministry", "foundation", "university", "agency"},
	})

	p := processor.New(reg, creator, scorer, processor.Options{
		ConfidenceThreshold: 60,
		SpamSuffixes:        testSpamSuffixes,
	})

	return reg, creator, p
}

func TestProcessor_EmptyBatch(t *testing.T) {
	_, _, p := newTestProcessor(t)

	stats, err := p.Process(context.Background(), domain.SessionID(uuid.New()), nil)
	require.NoError(t, err)
	require.Equal(t, domain.ProcessingStatistics{}, stats)
}

func TestProcessor_InvalidURLCountedAndSkipped(t *testing.T) {
	_, _, p := newTestProcessor(t)

	stats, err := p.Process(context.Background(), domain.SessionID(uuid.New()), []domain.SearchResult{
		{URL: "not a url at all"},
		{URL: "file:///etc/hosts"},
	})
	require.NoError(t, err)
	require.Equal(t, 2, stats.TotalResults)
	require.Equal(t, 2, stats.InvalidURLsSkipped)
	require.Zero(t, stats.HighConfidenceCreated)
}

func TestProcessor_SpamFilterPrecedesDedup(t *testing.T) {
	_, _, p := newTestProcessor(t)

	// Two results on the same spam-suffix domain: both must be counted as
	// spam-filtered, neither as a duplicate, and the registry is never
	// consulted.
	stats, err := p.Process(context.Background(), domain.SessionID(uuid.New()), []domain.SearchResult{
		{URL: "https://freegrants.xyz/offer1"},
		{URL: "https://freegrants.xyz/offer2"},
	})
	require.NoError(t, err)
	require.Equal(t, 2, stats.SpamTLDFiltered)
	require.Zero(t, stats.DuplicatesSkipped)
}

func TestProcessor_BatchLocalDedup(t *testing.T) {
	reg, creator, p := newTestProcessor(t)
	sessionID := domain.SessionID(uuid.New())
	domainID := domain.DomainID(uuid.New())

	reg.EXPECT().ShouldProcess(gomock.Any(), "funder.org").
		Return(registry.Eligibility{Process: true}, nil)
	reg.EXPECT().RegisterDomain(gomock.Any(), "funder.org", sessionID).
		Return(&domain.Domain{ID: domainID, Name: "funder.org"}, nil)
	creator.EXPECT().CreateFromResult(gomock.Any(), gomock.Any(), domainID, sessionID, gomock.Any()).
		Return(&domain.Candidate{}, nil)
	reg.EXPECT().UpdateQuality(gomock.Any(), domainID, gomock.Any(), true).Return(nil)

	stats, err := p.Process(context.Background(), sessionID, []domain.SearchResult{
		{URL: "https://funder.org/grants", Title: "Grants for European universities"},
		{URL: "https://funder.org/about", Title: "About us"},
		{URL: "https://www.funder.org/grants", Title: "Grants again"},
	})
	require.NoError(t, err)
	require.Equal(t, 2, stats.DuplicatesSkipped)
	require.Equal(t, 1, stats.HighConfidenceCreated)
}

func TestProcessor_SkipCategorization(t *testing.T) {
	reg, _, p := newTestProcessor(t)
	sessionID := domain.SessionID(uuid.New())

	reg.EXPECT().ShouldProcess(gomock.Any(), "scamfarm.com").
		Return(registry.Eligibility{Process: false, Status: domain.DomainStatusBlacklisted}, nil)
	reg.EXPECT().ShouldProcess(gomock.Any(), "tired.org").
		Return(registry.Eligibility{Process: false, Status: domain.DomainStatusProcessedLowQuality}, nil)
	reg.EXPECT().ShouldProcess(gomock.Any(), "flaky.org").
		Return(registry.Eligibility{Process: false, Status: domain.DomainStatusProcessingFailed}, nil)

	stats, err := p.Process(context.Background(), sessionID, []domain.SearchResult{
		{URL: "https://scamfarm.com/"},
		{URL: "https://tired.org/"},
		{URL: "https://flaky.org/"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, stats.BlacklistedSkipped)
	require.Equal(t, 2, stats.IneligibleSkipped)
	require.Zero(t, stats.HighConfidenceCreated)
	require.Zero(t, stats.LowConfidenceCreated)
}

func TestProcessor_ThresholdGate(t *testing.T) {
	reg, creator, p := newTestProcessor(t)
	sessionID := domain.SessionID(uuid.New())

	highID := domain.DomainID(uuid.New())
	lowID := domain.DomainID(uuid.New())

	reg.EXPECT().ShouldProcess(gomock.Any(), "ministry.gov").
		Return(registry.Eligibility{Process: true}, nil)
	reg.EXPECT().RegisterDomain(gomock.Any(), "ministry.gov", sessionID).
		Return(&domain.Domain{ID: highID, Name: "ministry.gov"}, nil)
	// Baseline 0.50 + gov 0.20 + funding title 0.15 = 0.85.
	creator.EXPECT().CreateFromResult(gomock.Any(), gomock.Any(), highID, sessionID, domain.Score(85)).
		Return(&domain.Candidate{}, nil)
	reg.EXPECT().UpdateQuality(gomock.Any(), highID, domain.Score(85), true).Return(nil)

	reg.EXPECT().ShouldProcess(gomock.Any(), "nothing-here.coolnewtld").
		Return(registry.Eligibility{Process: true}, nil)
	reg.EXPECT().RegisterDomain(gomock.Any(), "nothing-here.coolnewtld", sessionID).
		Return(&domain.Domain{ID: lowID, Name: "nothing-here.coolnewtld"}, nil)
	// Baseline only: 0.50 < 0.60, no candidate, history still updated.
	reg.EXPECT().UpdateQuality(gomock.Any(), lowID, domain.Score(50), false).Return(nil)

	stats, err := p.Process(context.Background(), sessionID, []domain.SearchResult{
		{URL: "https://ministry.gov/grants", Title: "Grant opportunities"},
		{URL: "https://nothing-here.coolnewtld/page"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, stats.HighConfidenceCreated)
	require.Equal(t, 1, stats.LowConfidenceCreated)
}

func TestProcessor_EndToEndBatch(t *testing.T) {
	reg, creator, p := newTestProcessor(t)
	sessionID := domain.SessionID(uuid.New())
	govID := domain.DomainID(uuid.New())

	// example.edu was demoted in an earlier session; its second occurrence in
	// the batch is a duplicate and never reaches the registry.
	reg.EXPECT().ShouldProcess(gomock.Any(), "example.edu").
		Return(registry.Eligibility{Process: false, Status: domain.DomainStatusProcessedLowQuality}, nil)
	reg.EXPECT().ShouldProcess(gomock.Any(), "scamfarm.com").
		Return(registry.Eligibility{Process: false, Status: domain.DomainStatusBlacklisted}, nil)

	reg.EXPECT().ShouldProcess(gomock.Any(), "grants.ministry.gov").
		Return(registry.Eligibility{Process: true}, nil)
	reg.EXPECT().RegisterDomain(gomock.Any(), "grants.ministry.gov", sessionID).
		Return(&domain.Domain{ID: govID, Name: "grants.ministry.gov"}, nil)
	creator.EXPECT().CreateFromResult(gomock.Any(), gomock.Any(), govID, sessionID, domain.Score(85)).
		Return(&domain.Candidate{}, nil)
	reg.EXPECT().UpdateQuality(gomock.Any(), govID, domain.Score(85), true).Return(nil)

	stats, err := p.Process(context.Background(), sessionID, []domain.SearchResult{
		{URL: "https://freegrants.xyz/win"},
		{URL: "https://example.edu/scholarships"},
		{URL: "https://example.edu/fellowships"},
		{URL: "https://scamfarm.com/grants"},
		{URL: "https://grants.ministry.gov/open-calls", Title: "Grant opportunities"},
	})
	require.NoError(t, err)
	require.Equal(t, domain.ProcessingStatistics{
		TotalResults:          5,
		SpamTLDFiltered:       1,
		DuplicatesSkipped:     1,
		BlacklistedSkipped:    1,
		IneligibleSkipped:     1,
		HighConfidenceCreated: 1,
		LowConfidenceCreated:  0,
	}, stats)
}
