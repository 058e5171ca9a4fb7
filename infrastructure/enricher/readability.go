package enricher

import (
	"strings"
	"unicode/utf8"

	"github.com/punchlabs/punchup/domain/enrichment"
	"github.com/punchlabs/punchup/domain/joke"
)

// Readability scores the combined text with the Flesch-Kincaid grade-level
// formula. The grade is clamped at zero; empty text scores zero across the
// board and classifies as "easy".
type Readability struct {
	easyMax     float64
	moderateMax float64
}

// NewReadability creates a Readability enricher from settings.
func NewReadability(settings Settings) *Readability {
	return &Readability{
		easyMax:     settings.EasyMaxGrade,
		moderateMax: settings.ModerateMaxGrade,
	}
}

// Name returns the enrichment envelope key.
func (e *Readability) Name() string { return NameReadability }

// Enrich computes the grade, its level bucket, and the word and sentence
// statistics the formula was fed.
func (e *Readability) Enrich(record joke.Record) (enrichment.Result, error) {
	text := record.CombinedText()
	words := strings.Fields(text)
	sentences := sentenceCount(text)

	syllables := 0
	runes := 0
	for _, w := range words {
		syllables += syllableCount(w)
		runes += utf8.RuneCountInString(w)
	}

	grade := 0.0
	if len(words) > 0 && sentences > 0 {
		wordsPerSentence := float64(len(words)) / float64(sentences)
		syllablesPerWord := float64(syllables) / float64(len(words))
		grade = 0.39*wordsPerSentence + 11.8*syllablesPerWord - 15.59
		if grade < 0 {
			grade = 0
		}
	}

	// The average depends only on there being words; punctuation-only text
	// has words but no sentences.
	avgWordLength := 0.0
	if len(words) > 0 {
		avgWordLength = float64(runes) / float64(len(words))
	}

	return enrichment.Result{
		"flesch_kincaid_grade": round2(grade),
		"word_count":           len(words),
		"sentence_count":       sentences,
		"average_word_length":  round2(avgWordLength),
		"readability_level":    e.level(grade),
	}, nil
}

func (e *Readability) level(grade float64) string {
	switch {
	case grade <= e.easyMax:
		return "easy"
	case grade <= e.moderateMax:
		return "moderate"
	default:
		return "difficult"
	}
}
