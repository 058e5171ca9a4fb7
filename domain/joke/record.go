// Package joke provides domain types for joke records and their sinks.
package joke

import (
	"github.com/punchlabs/punchup/domain/enrichment"
)

// Record is a single joke with its enrichment envelope. Immutable value
// object: mutation only ever appends or overwrites keys under the enrichment
// envelope, and does so by returning a new Record.
type Record struct {
	id         string
	setup      string
	punchline  string
	sourceURL  string
	enrichment map[string]enrichment.Result
}

// NewRecord creates a Record with an empty enrichment envelope.
func NewRecord(id, setup, punchline, sourceURL string) Record {
	return Record{
		id:         id,
		setup:      setup,
		punchline:  punchline,
		sourceURL:  sourceURL,
		enrichment: map[string]enrichment.Result{},
	}
}

// ReconstructRecord recreates a Record from persistence, including any
// previously stored enrichments.
func ReconstructRecord(id, setup, punchline, sourceURL string, results map[string]enrichment.Result) Record {
	return Record{
		id:         id,
		setup:      setup,
		punchline:  punchline,
		sourceURL:  sourceURL,
		enrichment: copyEnvelope(results),
	}
}

// ID returns the unique record identifier.
func (r Record) ID() string { return r.id }

// Setup returns the joke setup text.
func (r Record) Setup() string { return r.setup }

// Punchline returns the joke punchline text.
func (r Record) Punchline() string { return r.punchline }

// SourceURL returns the URL the joke was collected from.
func (r Record) SourceURL() string { return r.sourceURL }

// CombinedText returns the setup and punchline joined by a single space.
// The joining space is always present, even when one side is empty.
func (r Record) CombinedText() string {
	return r.setup + " " + r.punchline
}

// Enrichment returns a copy of the enrichment envelope.
func (r Record) Enrichment() map[string]enrichment.Result {
	return copyEnvelope(r.enrichment)
}

// Result returns the enrichment stored under name, if present.
func (r Record) Result(name string) (enrichment.Result, bool) {
	res, ok := r.enrichment[name]
	return res, ok
}

// WithEnrichment returns a new Record with result stored under name,
// overwriting any previous result for that name. The receiver is unchanged.
func (r Record) WithEnrichment(name string, result enrichment.Result) Record {
	envelope := copyEnvelope(r.enrichment)
	envelope[name] = result
	r.enrichment = envelope
	return r
}

func copyEnvelope(envelope map[string]enrichment.Result) map[string]enrichment.Result {
	out := make(map[string]enrichment.Result, len(envelope))
	for k, v := range envelope {
		out[k] = v
	}
	return out
}
