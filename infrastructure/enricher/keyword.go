package enricher

import (
	"sort"
	"strings"

	"github.com/punchlabs/punchup/domain/enrichment"
	"github.com/punchlabs/punchup/domain/joke"
)

// Keywords matches taxonomy terms against the record's token stream. Terms
// match whole tokens only, so "go" does not fire inside "algorithm";
// multi-word terms like "data structure" match contiguous token runs.
type Keywords struct {
	taxonomy map[string][]string
	topCount int
}

// NewKeywords creates a Keywords enricher from settings.
func NewKeywords(settings Settings) *Keywords {
	return &Keywords{
		taxonomy: settings.Taxonomy,
		topCount: settings.TopKeywordCount,
	}
}

// Name returns the enrichment envelope key.
func (e *Keywords) Name() string { return NameKeywords }

// termMatch holds one matched taxonomy term with its occurrence statistics.
type termMatch struct {
	term      string
	count     int
	firstSeen int
}

// Enrich emits the matched terms grouped by category (every category key is
// always present, possibly empty), the ranked top_keywords list, the count of
// distinct matched terms, and the keyword density over the combined word
// count.
func (e *Keywords) Enrich(record joke.Record) (enrichment.Result, error) {
	combined := record.CombinedText()
	toks := tokens(combined)

	byCategory := map[string][]string{}
	var matches []termMatch
	seen := map[string]struct{}{}

	categories := make([]string, 0, len(e.taxonomy))
	for category := range e.taxonomy {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		var categoryMatches []termMatch
		for _, term := range e.taxonomy[category] {
			count, first := countTerm(toks, term)
			if count == 0 {
				continue
			}
			categoryMatches = append(categoryMatches, termMatch{term: term, count: count, firstSeen: first})
			// Terms shared by several categories (docker, kubernetes) are
			// listed under each category but ranked and counted once.
			if _, dup := seen[term]; dup {
				continue
			}
			seen[term] = struct{}{}
			matches = append(matches, termMatch{term: term, count: count, firstSeen: first})
		}
		// Category lists follow the order terms appear in the text, not the
		// order the taxonomy declares them.
		sort.SliceStable(categoryMatches, func(i, j int) bool {
			return categoryMatches[i].firstSeen < categoryMatches[j].firstSeen
		})
		matched := []string{}
		for _, m := range categoryMatches {
			matched = append(matched, m.term)
		}
		byCategory[category] = matched
	}

	// Rank by occurrence count, breaking ties by first appearance in the
	// text so the ordering is stable across runs.
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].count != matches[j].count {
			return matches[i].count > matches[j].count
		}
		return matches[i].firstSeen < matches[j].firstSeen
	})

	top := []string{}
	for _, m := range matches {
		if len(top) == e.topCount {
			break
		}
		top = append(top, m.term)
	}

	// Density stays in [0, 1] even when a tuning file installs a taxonomy
	// dense enough to match more terms than there are words.
	density := 0.0
	if words := wordCount(combined); words > 0 {
		density = float64(len(matches)) / float64(words)
		if density > 1 {
			density = 1
		}
	}

	return enrichment.Result{
		"keywords_by_category": byCategory,
		"top_keywords":         top,
		"total_keywords":       len(matches),
		"keyword_density":      round3(density),
	}, nil
}

// countTerm counts non-overlapping occurrences of a taxonomy term in the
// token stream and reports the token index of its first occurrence (-1 when
// absent). Multi-word terms must appear as a contiguous run.
func countTerm(toks []string, term string) (count, firstSeen int) {
	parts := strings.Fields(term)
	if len(parts) == 0 {
		return 0, -1
	}

	firstSeen = -1
	for i := 0; i+len(parts) <= len(toks); i++ {
		if !runMatches(toks, i, parts) {
			continue
		}
		count++
		if firstSeen < 0 {
			firstSeen = i
		}
		i += len(parts) - 1
	}
	return count, firstSeen
}

func runMatches(toks []string, start int, parts []string) bool {
	for k, p := range parts {
		if toks[start+k] != p {
			return false
		}
	}
	return true
}
