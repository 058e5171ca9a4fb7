package enricher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchlabs/punchup/domain/joke"
)

func TestKeywords_Enrich_MatchesWholeTokensOnly(t *testing.T) {
	e := NewKeywords(DefaultSettings())

	// "go" must not fire inside "going", and "java" not inside "javascript".
	record := joke.NewRecord("1", "We are going home to write javascript", "", "")
	result, err := e.Enrich(record)
	require.NoError(t, err)

	byCategory := result["keywords_by_category"].(map[string][]string)
	assert.Equal(t, []string{"javascript"}, byCategory["languages"])
	assert.Equal(t, 1, result["total_keywords"])
}

func TestKeywords_Enrich_AllCategoriesAlwaysPresent(t *testing.T) {
	e := NewKeywords(DefaultSettings())

	result, err := e.Enrich(joke.NewRecord("1", "nothing matches here", "", ""))
	require.NoError(t, err)

	byCategory := result["keywords_by_category"].(map[string][]string)
	require.Len(t, byCategory, 3)
	assert.Empty(t, byCategory["languages"])
	assert.Empty(t, byCategory["concepts"])
	assert.Empty(t, byCategory["tools"])
	assert.Equal(t, []string{}, result["top_keywords"])
	assert.Equal(t, 0, result["total_keywords"])
	assert.Equal(t, 0.0, result["keyword_density"])
}

func TestKeywords_Enrich_MultiWordTermMatchesContiguousRun(t *testing.T) {
	e := NewKeywords(DefaultSettings())

	record := joke.NewRecord("1", "My favourite data structure is a stack", "", "")
	result, err := e.Enrich(record)
	require.NoError(t, err)

	byCategory := result["keywords_by_category"].(map[string][]string)
	assert.Contains(t, byCategory["concepts"], "data structure")

	// The same words separated by others do not match.
	record = joke.NewRecord("1", "data without structure", "", "")
	result, err = e.Enrich(record)
	require.NoError(t, err)

	byCategory = result["keywords_by_category"].(map[string][]string)
	assert.NotContains(t, byCategory["concepts"], "data structure")
}

func TestKeywords_Enrich_SymbolLanguageNames(t *testing.T) {
	e := NewKeywords(DefaultSettings())

	record := joke.NewRecord("1", "I write C++ at work", "and C# at home", "")
	result, err := e.Enrich(record)
	require.NoError(t, err)

	byCategory := result["keywords_by_category"].(map[string][]string)
	assert.Equal(t, []string{"c++", "c#"}, byCategory["languages"])
}

func TestKeywords_Enrich_TopKeywordsRankedByOccurrence(t *testing.T) {
	e := NewKeywords(DefaultSettings())

	record := joke.NewRecord("1", "python python java", "python java ruby", "")
	result, err := e.Enrich(record)
	require.NoError(t, err)

	assert.Equal(t, []string{"python", "java", "ruby"}, result["top_keywords"])
	assert.Equal(t, 3, result["total_keywords"])
}

func TestKeywords_Enrich_TopKeywordsCapped(t *testing.T) {
	settings := DefaultSettings()
	settings.TopKeywordCount = 2

	e := NewKeywords(settings)
	record := joke.NewRecord("1", "python java ruby rust swift", "", "")
	result, err := e.Enrich(record)
	require.NoError(t, err)

	assert.Len(t, result["top_keywords"], 2)
	assert.Equal(t, 5, result["total_keywords"])
}

func TestKeywords_Enrich_SharedTermCountedOnce(t *testing.T) {
	e := NewKeywords(DefaultSettings())

	// docker belongs to both the concepts and tools categories.
	record := joke.NewRecord("1", "docker ate my lunch", "", "")
	result, err := e.Enrich(record)
	require.NoError(t, err)

	byCategory := result["keywords_by_category"].(map[string][]string)
	assert.Contains(t, byCategory["concepts"], "docker")
	assert.Contains(t, byCategory["tools"], "docker")
	assert.Equal(t, 1, result["total_keywords"])
	assert.Equal(t, []string{"docker"}, result["top_keywords"])
}

func TestKeywords_Enrich_DensityOverCombinedWordCount(t *testing.T) {
	e := NewKeywords(DefaultSettings())

	// 2 distinct terms over 4 words.
	record := joke.NewRecord("1", "python beats java today", "", "")
	result, err := e.Enrich(record)
	require.NoError(t, err)

	assert.Equal(t, 0.5, result["keyword_density"])
}

func TestKeywords_Enrich_DensityClampedToOne(t *testing.T) {
	settings := DefaultSettings()
	settings.Taxonomy = map[string][]string{
		"phrases": {"pair programming", "pair", "programming"},
	}

	e := NewKeywords(settings)
	result, err := e.Enrich(joke.NewRecord("1", "pair programming", "", ""))
	require.NoError(t, err)

	assert.Equal(t, 1.0, result["keyword_density"])
}

func TestKeywords_Name(t *testing.T) {
	assert.Equal(t, "keyword_extraction", NewKeywords(DefaultSettings()).Name())
}
