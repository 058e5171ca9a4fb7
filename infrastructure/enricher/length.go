package enricher

import (
	"unicode/utf8"

	"github.com/punchlabs/punchup/domain/enrichment"
	"github.com/punchlabs/punchup/domain/joke"
)

// Length buckets records by combined word count. Buckets are inclusive on
// their lower boundary: a count equal to ShortMaxWords is medium, one equal
// to MediumMaxWords is still medium.
type Length struct {
	shortMax  int
	mediumMax int
}

// NewLength creates a Length enricher from settings.
func NewLength(settings Settings) *Length {
	return &Length{
		shortMax:  settings.ShortMaxWords,
		mediumMax: settings.MediumMaxWords,
	}
}

// Name returns the enrichment envelope key.
func (e *Length) Name() string { return NameLength }

// Enrich emits the combined word and character counts, the length bucket,
// and the per-part word counts.
func (e *Length) Enrich(record joke.Record) (enrichment.Result, error) {
	combined := record.CombinedText()
	wc := wordCount(combined)

	return enrichment.Result{
		"word_count":           wc,
		"character_count":      utf8.RuneCountInString(combined),
		"length_category":      e.category(wc),
		"setup_word_count":     wordCount(record.Setup()),
		"punchline_word_count": wordCount(record.Punchline()),
	}, nil
}

func (e *Length) category(wc int) string {
	switch {
	case wc < e.shortMax:
		return "short"
	case wc <= e.mediumMax:
		return "medium"
	default:
		return "long"
	}
}
