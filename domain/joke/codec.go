package joke

import (
	"encoding/json"

	"github.com/punchlabs/punchup/domain/enrichment"
)

// recordLine is the wire representation of a Record: one JSON object per
// line. joke_id maps to the internal id. On output the input fields are
// preserved verbatim and the enrichment envelope is always present.
type recordLine struct {
	JokeID     string                       `json:"joke_id"`
	Setup      string                       `json:"setup"`
	Punchline  string                       `json:"punchline"`
	SourceURL  string                       `json:"source_url"`
	Enrichment map[string]enrichment.Result `json:"enrichment"`
}

// ParseLine decodes one input line into a Record. Invalid JSON and an
// absent, non-string, or empty joke_id all yield a *ParseError.
func ParseLine(line []byte) (Record, error) {
	var wire recordLine
	if err := json.Unmarshal(line, &wire); err != nil {
		return Record{}, &ParseError{Cause: err}
	}
	if wire.JokeID == "" {
		return Record{}, &ParseError{Cause: ErrMissingJokeID}
	}
	return ReconstructRecord(wire.JokeID, wire.Setup, wire.Punchline, wire.SourceURL, wire.Enrichment), nil
}

// MarshalRecord encodes a Record as a single JSON line (without a trailing
// newline). Map keys marshal in sorted order, so repeated runs over the same
// record produce byte-identical output.
func MarshalRecord(r Record) ([]byte, error) {
	return json.Marshal(toWire(r))
}

// MarshalRecordIndent encodes a Record as indented JSON for human-readable
// output such as the summary's sample record.
func MarshalRecordIndent(r Record) ([]byte, error) {
	return json.MarshalIndent(toWire(r), "", "  ")
}

func toWire(r Record) recordLine {
	return recordLine{
		JokeID:     r.ID(),
		Setup:      r.Setup(),
		Punchline:  r.Punchline(),
		SourceURL:  r.SourceURL(),
		Enrichment: r.Enrichment(),
	}
}
