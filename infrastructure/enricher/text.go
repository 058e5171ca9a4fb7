package enricher

import (
	"math"
	"strings"
	"unicode"
)

// wordCount counts whitespace-separated words, matching the splitting rule
// used for densities and length buckets.
func wordCount(text string) int {
	return len(strings.Fields(text))
}

// tokens lowercases the text, splits on whitespace, and trims punctuation
// from the edges of each token. Interior punctuation survives, so "don't"
// stays intact, and so do trailing symbol characters of terms like "c++"
// and "c#".
func tokens(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if t := trimToken(f); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func trimToken(tok string) string {
	return strings.TrimFunc(tok, func(r rune) bool {
		if r == '+' || r == '#' {
			return false
		}
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// sentenceCount counts sentences using a terminal-punctuation heuristic:
// the text is split on runs of '.', '!', and '?', and each segment that
// contains anything beyond whitespace counts as one sentence. Text without
// terminal punctuation counts as a single sentence.
func sentenceCount(text string) int {
	segments := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	count := 0
	for _, seg := range segments {
		if strings.TrimSpace(seg) != "" {
			count++
		}
	}
	return count
}

// syllableCount estimates syllables by counting vowel groups (aeiouy), with
// a one-syllable floor and an adjustment for a trailing silent 'e'.
func syllableCount(word string) int {
	word = strings.ToLower(word)
	count := 0
	onVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune("aeiouy", r)
		if isVowel && !onVowel {
			count++
		}
		onVowel = isVowel
	}
	if strings.HasSuffix(word, "e") {
		count--
	}
	if count < 1 {
		return 1
	}
	return count
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
