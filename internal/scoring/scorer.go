package scoring

import (
	"strings"

	"fundscout/pkg/domain"
)

// Signal weights, in hundredths. Description matches weigh less than title
// matches since snippets are noisier.
const (
	titleKeywordWeight  = 15
	descKeywordWeight   = 10
	geographyWeight     = 15
	organizationWeight  = 15
	compoundBoostWeight = 15

	// compoundSignalCount is the number of independent signal families that
	// must fire before the compound boost rewards convergent evidence.
	compoundSignalCount = 3
)

// ScorerOptions carries the configured keyword families.
type ScorerOptions struct {
	// FundingKeywords matched against title and snippet separately.
	FundingKeywords []string
	// GeographyKeywords matched against title or snippet.
	GeographyKeywords []string
	// OrganizationKeywords matched against title or snippet.
	OrganizationKeywords []string
}

// Scorer is a deterministic, side-effect-free confidence estimator for search
// results. It starts from a fixed baseline, adds the domain-suffix credibility
// contribution and one delta per matching keyword family, applies a compound
// boost when enough independent families fire, and clamps the result into the
// valid score range.
type Scorer struct {
	credibility *CredibilityService

	funding      []string
	geography    []string
	organization []string
}

// NewScorer returns a Scorer using the given credibility service and keyword
// configuration. Keywords are matched case-insensitively as substrings.
func NewScorer(credibility *CredibilityService, options ScorerOptions) *Scorer {
	return &Scorer{
		credibility:  credibility,
		funding:      lowerAll(options.FundingKeywords),
		geography:    lowerAll(options.GeographyKeywords),
		organization: lowerAll(options.OrganizationKeywords),
	}
}

// Score calculates the confidence score for a search result whose URL
// resolved to the given normalized domain name. Blank title and snippet yield
// the baseline plus the suffix contribution only.
func (s *Scorer) Score(result domain.SearchResult, domainName string) domain.Score {
	score := int(domain.ScoreBaseline) + s.credibility.SuffixScore(domainName)

	title := strings.ToLower(result.Title)
	snippet := strings.ToLower(result.Snippet)

	signals := 0

	if containsAny(title, s.funding) {
		score += titleKeywordWeight
		signals++
	}

	if containsAny(snippet, s.funding) {
		score += descKeywordWeight
		signals++
	}

	if containsAny(title, s.geography) || containsAny(snippet, s.geography) {
		score += geographyWeight
		signals++
	}

	if containsAny(title, s.organization) || containsAny(snippet, s.organization) {
		score += organizationWeight
		signals++
	}

	if signals >= compoundSignalCount {
		score += compoundBoostWeight
	}

	return domain.Score(score).Clamp()
}

func containsAny(text string, keywords []string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}

	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}

	return false
}

func lowerAll(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword == "" {
			continue
		}

		out = append(out, keyword)
	}

	return out
}
