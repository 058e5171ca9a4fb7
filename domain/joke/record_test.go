package joke

import (
	"testing"

	"github.com/punchlabs/punchup/domain/enrichment"
	"github.com/stretchr/testify/assert"
)

func TestNewRecord(t *testing.T) {
	r := NewRecord("001", "Why do programmers prefer dark mode?", "Because light attracts bugs!", "https://example.com")

	assert.Equal(t, "001", r.ID())
	assert.Equal(t, "Why do programmers prefer dark mode?", r.Setup())
	assert.Equal(t, "Because light attracts bugs!", r.Punchline())
	assert.Equal(t, "https://example.com", r.SourceURL())
	assert.Empty(t, r.Enrichment())
}

func TestRecord_CombinedText_JoinsWithSpace(t *testing.T) {
	r := NewRecord("1", "setup", "punchline", "")
	assert.Equal(t, "setup punchline", r.CombinedText())
}

func TestRecord_CombinedText_EmptySidesKeepSpace(t *testing.T) {
	assert.Equal(t, " punchline", NewRecord("1", "", "punchline", "").CombinedText())
	assert.Equal(t, "setup ", NewRecord("1", "setup", "", "").CombinedText())
	assert.Equal(t, " ", NewRecord("1", "", "", "").CombinedText())
}

func TestRecord_WithEnrichment_DoesNotMutateReceiver(t *testing.T) {
	original := NewRecord("1", "s", "p", "")
	enriched := original.WithEnrichment("length_classification", enrichment.Result{"word_count": 2})

	assert.Empty(t, original.Enrichment())
	assert.Len(t, enriched.Enrichment(), 1)

	res, ok := enriched.Result("length_classification")
	assert.True(t, ok)
	assert.Equal(t, 2, res["word_count"])
}

func TestRecord_WithEnrichment_OverwritesSameName(t *testing.T) {
	r := NewRecord("1", "s", "p", "").
		WithEnrichment("sentiment_analysis", enrichment.Result{"sentiment": "neutral"}).
		WithEnrichment("sentiment_analysis", enrichment.Result{"sentiment": "positive"})

	res, ok := r.Result("sentiment_analysis")
	assert.True(t, ok)
	assert.Equal(t, "positive", res["sentiment"])
	assert.Len(t, r.Enrichment(), 1)
}

func TestRecord_Enrichment_ReturnsCopy(t *testing.T) {
	r := NewRecord("1", "s", "p", "").
		WithEnrichment("length_classification", enrichment.Result{"word_count": 2})

	envelope := r.Enrichment()
	delete(envelope, "length_classification")

	_, ok := r.Result("length_classification")
	assert.True(t, ok)
}

func TestReconstructRecord_KeepsStoredEnrichments(t *testing.T) {
	stored := map[string]enrichment.Result{
		"length_classification": {"word_count": float64(10)},
	}
	r := ReconstructRecord("001", "s", "p", "https://example.com", stored)

	res, ok := r.Result("length_classification")
	assert.True(t, ok)
	assert.Equal(t, float64(10), res["word_count"])
}
