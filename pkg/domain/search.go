package domain

// SearchResult is one raw hit from an external search engine. It is read-only
// input to the processing pipeline.
type SearchResult struct {
	// URL is the result link as returned by the engine.
	URL string `json:"url"`
	// Title is the result title; may be empty.
	Title string `json:"title,omitempty"`
	// Snippet is the result description text; may be empty.
	Snippet string `json:"snippet,omitempty"`
	// Engine names the search engine that produced the result.
	Engine string `json:"engine,omitempty"`
	// Query is the search query that produced the result.
	Query string `json:"query,omitempty"`
}

// ProcessingStatistics is the immutable summary of one processed batch.
// The skip counters partition every result that did not reach the scorer;
// every scored result lands in exactly one of the created counters.
type ProcessingStatistics struct {
	// TotalResults is the number of results in the batch.
	TotalResults int `json:"totalResults"`
	// SpamTLDFiltered counts results dropped by the spam-TLD filter.
	SpamTLDFiltered int `json:"spamTldFiltered"`
	// DuplicatesSkipped counts results whose domain was already seen earlier
	// in the same batch.
	DuplicatesSkipped int `json:"duplicatesSkipped"`
	// BlacklistedSkipped counts results on blacklisted domains.
	BlacklistedSkipped int `json:"blacklistedSkipped"`
	// IneligibleSkipped counts results skipped by the registry for any reason
	// other than a blacklist (low-quality history, no funds this year,
	// failure backoff).
	IneligibleSkipped int `json:"ineligibleSkipped"`
	// InvalidURLsSkipped counts results whose URL had no extractable domain.
	InvalidURLsSkipped int `json:"invalidUrlsSkipped"`
	// HighConfidenceCreated counts results that cleared the confidence
	// threshold and produced a candidate.
	HighConfidenceCreated int `json:"highConfidenceCreated"`
	// LowConfidenceCreated counts scored results below the threshold. No
	// candidate is created for them, but domain quality history is updated.
	LowConfidenceCreated int `json:"lowConfidenceCreated"`
}
