// Package service defines domain service contracts implemented by
// infrastructure.
package service

import (
	"github.com/punchlabs/punchup/domain/enrichment"
	"github.com/punchlabs/punchup/domain/joke"
)

// Enricher produces one kind of derived metadata for a record.
//
// Implementations are stateless and deterministic: Enrich is a pure function
// of the record's setup and punchline text, never mutates its input, and
// never errors on empty text fields (empty string is valid input). On
// failure it returns an *enrichment.Error carrying the enricher name and
// record id.
type Enricher interface {
	// Name returns the key under which results are stored in the record's
	// enrichment envelope, e.g. "sentiment_analysis".
	Name() string

	// Enrich computes the metadata for one record.
	Enrich(record joke.Record) (enrichment.Result, error)
}
