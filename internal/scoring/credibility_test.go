package scoring_test

import (
	"testing"

	"fundscout/internal/scoring"

	"github.com/stretchr/testify/require"
)

func TestCredibilityService_SuffixScore(t *testing.T) {
	svc := scoring.NewCredibilityService()

	cases := []struct {
		name  string
		want  int
		about string
	}{
		{"ministry.gov.bg", 20, "second-level government suffix"},
		{"grants.europa.eu", 20, "EU institution suffix"},
		{"sofia-university.edu", 20, "education suffix"},
		{"helpinghands.foundation", 20, "validated nonprofit suffix"},
		{"opensociety.org", 15, "traditional nonprofit suffix"},
		{"kultura.bg", 15, "target-region country code"},
		{"bildung.de", 15, "target-region country code"},
		{"community.fund", 15, "funding-specific suffix"},
		{"grantdirectory.com", 8, "generic business suffix"},
		{"listing.info", 8, "generic business suffix"},
		{"startup.io", 0, "cheap unrestricted suffix"},
		{"freebie.tk", -30, "free throwaway suffix"},
		{"prizepool.xyz", -20, "cheap phishing favorite"},
		{"quickcash.loan", -25, "loan suffix"},
		{"deals.shop", -10, "commerce suffix"},
		{"example.coolnewtld", 0, "unknown suffix"},
		{"localhost", 0, "no suffix at all"},
		{"", 0, "empty name"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, svc.SuffixScore(tc.name), tc.about)
		})
	}
}

func TestCredibilityService_SuffixScoreNormalizesCase(t *testing.T) {
	svc := scoring.NewCredibilityService()

	require.Equal(t, 20, svc.SuffixScore("Ministry.GOV.BG"))
	require.Equal(t, -30, svc.SuffixScore("FREEBIE.TK"))
}

func TestCredibilityService_IsLowTrustSuffix(t *testing.T) {
	svc := scoring.NewCredibilityService()

	require.True(t, svc.IsLowTrustSuffix("freebie.tk"))
	require.True(t, svc.IsLowTrustSuffix("prizepool.buzz"))
	require.False(t, svc.IsLowTrustSuffix("opensociety.org"))
	require.False(t, svc.IsLowTrustSuffix("localhost"))
}

func TestCredibilityService_IsInstitutional(t *testing.T) {
	svc := scoring.NewCredibilityService()

	require.True(t, svc.IsInstitutional("ministry.gov.bg"))
	require.True(t, svc.IsInstitutional("sofia-university.edu"))
	require.False(t, svc.IsInstitutional("opensociety.org"))
	require.False(t, svc.IsInstitutional("freebie.tk"))
}

func TestSuffixSet(t *testing.T) {
	set := scoring.NewSuffixSet([]string{"tk", ".XYZ", " top ", ""})

	require.True(t, set.Contains("freebie.tk"))
	require.True(t, set.Contains("prizepool.xyz"))
	require.True(t, set.Contains("PRIZEPOOL.TOP"))
	require.False(t, set.Contains("opensociety.org"))
	require.False(t, set.Contains(""))
}
