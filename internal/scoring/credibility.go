// Package scoring estimates how likely a search result points at a genuine
// funding opportunity. The score combines domain-suffix credibility with
// keyword signals over the result text.
package scoring

import (
	"strings"
)

// Suffix credibility tiers. Institutional suffixes raise the score, known
// throwaway suffixes lower it. Weights are hundredths, same unit as
// domain.Score.
const (
	tier1Weight = 20
	tier2Weight = 15
	tier3Weight = 8
)

// tier1Suffixes holds validated nonprofit, government and education suffixes.
var tier1Suffixes = map[string]struct{}{
	"ngo":        {},
	"ong":        {},
	"foundation": {},
	"charity":    {},
	"gov":        {},
	"edu":        {},
}

// tier1SecondLevel holds institutional second-level suffixes that must be
// matched before the final label, e.g. "ministry.gov.bg" is government even
// though its final label "bg" is only tier 2.
var tier1SecondLevel = map[string]struct{}{
	"gov.bg": {}, "gov.ro": {}, "gov.pl": {}, "gov.cz": {}, "gov.de": {}, "gov.fr": {},
	"edu.bg": {}, "edu.ro": {}, "edu.pl": {}, "edu.cz": {},
	"ac.bg": {}, "ac.ro": {}, "ac.pl": {}, "ac.cz": {},
	"europa.eu": {},
}

// tier2Suffixes holds traditional nonprofit suffixes, EU and target-region
// country codes, and funding-specific suffixes.
var tier2Suffixes = map[string]struct{}{
	"org": {},
	"eu":  {},
	"bg":  {}, "ro": {}, "pl": {}, "cz": {}, "de": {}, "fr": {},
	"gr": {}, "hu": {}, "at": {}, "it": {}, "es": {},
	"fund": {}, "gives": {},
}

// tier3Suffixes holds generic business suffixes.
var tier3Suffixes = map[string]struct{}{
	"com":       {},
	"net":       {},
	"info":      {},
	"education": {},
}

// tier4Suffixes holds cheap unrestricted suffixes, worth nothing either way.
var tier4Suffixes = map[string]struct{}{
	"biz": {},
	"co":  {},
	"io":  {},
	"me":  {},
}

// tier5Suffixes maps spam and phishing suffixes to their penalty, in
// hundredths.
var tier5Suffixes = map[string]int{
	// Freenom free domains.
	"tk": -30, "ml": -30, "ga": -30, "cf": -30, "gq": -30,
	// Cheap phishing favorites.
	"xyz": -20, "top": -20, "icu": -20, "buzz": -20,
	"loan": -25,
	"click": -15, "cam": -15, "pw": -15,
	"shop": -10,
}

// CredibilityService maps domain-suffix signals to a scoring contribution.
type CredibilityService struct{}

// NewCredibilityService returns a new CredibilityService.
func NewCredibilityService() *CredibilityService {
	return &CredibilityService{}
}

// SuffixScore returns the credibility contribution for a normalized domain
// name, in hundredths. Institutional suffixes score up to +20, spam suffixes
// down to -30, unknown suffixes score zero.
func (c *CredibilityService) SuffixScore(name string) int {
	labels := splitLabels(name)
	if len(labels) < 2 {
		return 0
	}

	// Second-level institutional suffixes win over the final label.
	secondLevel := labels[len(labels)-2] + "." + labels[len(labels)-1]
	if _, ok := tier1SecondLevel[secondLevel]; ok {
		return tier1Weight
	}

	suffix := labels[len(labels)-1]
	if _, ok := tier1Suffixes[suffix]; ok {
		return tier1Weight
	}
	if _, ok := tier2Suffixes[suffix]; ok {
		return tier2Weight
	}
	if _, ok := tier3Suffixes[suffix]; ok {
		return tier3Weight
	}
	if _, ok := tier4Suffixes[suffix]; ok {
		return 0
	}
	if penalty, ok := tier5Suffixes[suffix]; ok {
		return penalty
	}

	return 0
}

// IsLowTrustSuffix reports whether the domain name ends in a known spam or
// phishing suffix.
func (c *CredibilityService) IsLowTrustSuffix(name string) bool {
	labels := splitLabels(name)
	if len(labels) < 2 {
		return false
	}

	_, ok := tier5Suffixes[labels[len(labels)-1]]

	return ok
}

// IsInstitutional reports whether the domain name carries a tier 1 suffix
// (government, education or a validated nonprofit registry).
func (c *CredibilityService) IsInstitutional(name string) bool {
	return c.SuffixScore(name) == tier1Weight
}

func splitLabels(name string) []string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil
	}

	return strings.Split(name, ".")
}

// SuffixSet is a configured set of domain suffixes matched against the final
// label of a domain name. The processor uses it for the spam-suffix filter.
type SuffixSet map[string]struct{}

// NewSuffixSet builds a SuffixSet from configured suffixes. Leading dots and
// case are normalized.
func NewSuffixSet(suffixes []string) SuffixSet {
	set := make(SuffixSet, len(suffixes))
	for _, suffix := range suffixes {
		suffix = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(suffix), "."))
		if suffix == "" {
			continue
		}

		set[suffix] = struct{}{}
	}

	return set
}

// Contains reports whether the domain name's final label is in the set.
func (s SuffixSet) Contains(name string) bool {
	labels := splitLabels(name)
	if len(labels) == 0 {
		return false
	}

	_, ok := s[labels[len(labels)-1]]

	return ok
}
