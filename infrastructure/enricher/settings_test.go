package enricher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTuningFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadTuning_EmptyPathReturnsDefaults(t *testing.T) {
	settings, err := LoadTuning("")
	require.NoError(t, err)

	assert.Equal(t, DefaultSettings().PositivePolarity, settings.PositivePolarity)
	assert.Equal(t, DefaultSettings().ShortMaxWords, settings.ShortMaxWords)
	assert.NotEmpty(t, settings.Taxonomy)
	assert.NotEmpty(t, settings.Lexicon)
}

func TestLoadTuning_OverridesThresholds(t *testing.T) {
	path := writeTuningFile(t, `
sentiment:
  positive_polarity: 0.5
  negative_polarity: -0.5
keywords:
  top_count: 3
readability:
  easy_max_grade: 4
  moderate_max_grade: 8
length:
  short_max_words: 10
  medium_max_words: 20
`)

	settings, err := LoadTuning(path)
	require.NoError(t, err)

	assert.Equal(t, 0.5, settings.PositivePolarity)
	assert.Equal(t, -0.5, settings.NegativePolarity)
	assert.Equal(t, 3, settings.TopKeywordCount)
	assert.Equal(t, 4.0, settings.EasyMaxGrade)
	assert.Equal(t, 8.0, settings.ModerateMaxGrade)
	assert.Equal(t, 10, settings.ShortMaxWords)
	assert.Equal(t, 20, settings.MediumMaxWords)
}

func TestLoadTuning_PartialOverrideKeepsOtherDefaults(t *testing.T) {
	path := writeTuningFile(t, "length:\n  short_max_words: 7\n")

	settings, err := LoadTuning(path)
	require.NoError(t, err)

	assert.Equal(t, 7, settings.ShortMaxWords)
	assert.Equal(t, DefaultMediumMaxWords, settings.MediumMaxWords)
	assert.Equal(t, DefaultPositivePolarity, settings.PositivePolarity)
}

func TestLoadTuning_ReplacesTaxonomy(t *testing.T) {
	path := writeTuningFile(t, `
keywords:
  taxonomy:
    animals:
      - cat
      - dog
`)

	settings, err := LoadTuning(path)
	require.NoError(t, err)

	require.Len(t, settings.Taxonomy, 1)
	assert.Equal(t, []string{"cat", "dog"}, settings.Taxonomy["animals"])
}

func TestLoadTuning_MergesLexiconEntries(t *testing.T) {
	path := writeTuningFile(t, `
sentiment:
  lexicon:
    splendid:
      polarity: 0.9
      subjectivity: 0.8
    funny:
      polarity: -1
      subjectivity: 1
`)

	settings, err := LoadTuning(path)
	require.NoError(t, err)

	assert.Equal(t, Valence{Polarity: 0.9, Subjectivity: 0.8}, settings.Lexicon["splendid"])
	// Existing entries can be overridden.
	assert.Equal(t, Valence{Polarity: -1, Subjectivity: 1}, settings.Lexicon["funny"])
	// The rest of the built-in lexicon stays.
	assert.Contains(t, settings.Lexicon, "terrible")
}

func TestLoadTuning_MissingFileIsAnError(t *testing.T) {
	_, err := LoadTuning(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read tuning file")
}

func TestLoadTuning_MalformedYAMLIsAnError(t *testing.T) {
	path := writeTuningFile(t, "length: [not a mapping")

	_, err := LoadTuning(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse tuning file")
}
