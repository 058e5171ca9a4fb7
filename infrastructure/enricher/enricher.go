// Package enricher implements the built-in metadata enrichers: sentiment,
// keyword extraction, readability scoring, and length classification.
//
// All enrichers are stateless and deterministic over the record's setup and
// punchline text. Thresholds and term lists live in Settings; nothing is
// hard-coded at the point of use.
package enricher

// Enrichment envelope keys, one per built-in enricher.
const (
	NameSentiment   = "sentiment_analysis"
	NameKeywords    = "keyword_extraction"
	NameReadability = "readability_scoring"
	NameLength      = "length_classification"
)
