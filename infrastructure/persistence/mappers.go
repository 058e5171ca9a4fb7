package persistence

import (
	"encoding/json"

	"github.com/punchlabs/punchup/domain/enrichment"
	"github.com/punchlabs/punchup/domain/joke"
)

// JokeMapper maps between domain joke records and JokeModel rows. The
// enrichment envelope crosses the boundary as JSON text; an envelope that
// cannot be decoded maps to an empty one rather than poisoning the read.
type JokeMapper struct{}

// ToDomain converts a JokeModel to a domain Record.
func (m JokeMapper) ToDomain(e JokeModel) joke.Record {
	var envelope map[string]enrichment.Result
	if e.Enrichment != "" {
		if err := json.Unmarshal([]byte(e.Enrichment), &envelope); err != nil {
			envelope = nil
		}
	}
	return joke.ReconstructRecord(e.ID, e.Setup, e.Punchline, e.SourceURL, envelope)
}

// ToModel converts a domain Record to a JokeModel.
func (m JokeMapper) ToModel(r joke.Record) JokeModel {
	envelope := "{}"
	if data, err := json.Marshal(r.Enrichment()); err == nil {
		envelope = string(data)
	}
	return JokeModel{
		ID:         r.ID(),
		Setup:      r.Setup(),
		Punchline:  r.Punchline(),
		SourceURL:  r.SourceURL(),
		Enrichment: envelope,
	}
}
