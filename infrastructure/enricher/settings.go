package enricher

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default threshold values. They are heuristic cutoffs, preserved from the
// original tuning of the system; none of them is load-bearing beyond being
// a fixed, documented boundary.
const (
	// Sentiment category cutoffs over polarity in [-1, 1].
	DefaultPositivePolarity = 0.1
	DefaultNegativePolarity = -0.1

	// Size of the top_keywords list.
	DefaultTopKeywordCount = 5

	// Readability level cutoffs over the Flesch-Kincaid grade.
	DefaultEasyMaxGrade     = 6.0
	DefaultModerateMaxGrade = 10.0

	// Length bucket boundaries over combined word count. A count equal to
	// ShortMaxWords classifies as medium: buckets are inclusive on their
	// lower side.
	DefaultShortMaxWords  = 15
	DefaultMediumMaxWords = 30
)

// Valence is the lexicon entry for one sentiment-bearing word.
type Valence struct {
	Polarity     float64 `yaml:"polarity"`
	Subjectivity float64 `yaml:"subjectivity"`
}

// Settings holds every enricher threshold plus the keyword taxonomy and
// sentiment lexicon. Built once (defaults, optionally overridden by a tuning
// file) and passed into the enricher constructors.
type Settings struct {
	PositivePolarity float64
	NegativePolarity float64
	TopKeywordCount  int
	EasyMaxGrade     float64
	ModerateMaxGrade float64
	ShortMaxWords    int
	MediumMaxWords   int
	Taxonomy         map[string][]string
	Lexicon          map[string]Valence
}

// DefaultSettings returns the built-in thresholds, taxonomy, and lexicon.
func DefaultSettings() Settings {
	return Settings{
		PositivePolarity: DefaultPositivePolarity,
		NegativePolarity: DefaultNegativePolarity,
		TopKeywordCount:  DefaultTopKeywordCount,
		EasyMaxGrade:     DefaultEasyMaxGrade,
		ModerateMaxGrade: DefaultModerateMaxGrade,
		ShortMaxWords:    DefaultShortMaxWords,
		MediumMaxWords:   DefaultMediumMaxWords,
		Taxonomy:         defaultTaxonomy(),
		Lexicon:          defaultLexicon(),
	}
}

// tuningFile is the YAML schema for threshold overrides. Every field is
// optional; absent fields keep their defaults.
type tuningFile struct {
	Sentiment *struct {
		PositivePolarity *float64           `yaml:"positive_polarity"`
		NegativePolarity *float64           `yaml:"negative_polarity"`
		Lexicon          map[string]Valence `yaml:"lexicon"`
	} `yaml:"sentiment"`
	Keywords *struct {
		TopCount *int                `yaml:"top_count"`
		Taxonomy map[string][]string `yaml:"taxonomy"`
	} `yaml:"keywords"`
	Readability *struct {
		EasyMaxGrade     *float64 `yaml:"easy_max_grade"`
		ModerateMaxGrade *float64 `yaml:"moderate_max_grade"`
	} `yaml:"readability"`
	Length *struct {
		ShortMaxWords  *int `yaml:"short_max_words"`
		MediumMaxWords *int `yaml:"medium_max_words"`
	} `yaml:"length"`
}

// LoadTuning returns DefaultSettings overridden by the YAML tuning file at
// path. An empty path returns the defaults; an unreadable or malformed file
// is an error (tuning is explicit configuration, not best-effort).
func LoadTuning(path string) (Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read tuning file: %w", err)
	}

	var tuning tuningFile
	if err := yaml.Unmarshal(data, &tuning); err != nil {
		return Settings{}, fmt.Errorf("parse tuning file %s: %w", path, err)
	}

	if t := tuning.Sentiment; t != nil {
		if t.PositivePolarity != nil {
			settings.PositivePolarity = *t.PositivePolarity
		}
		if t.NegativePolarity != nil {
			settings.NegativePolarity = *t.NegativePolarity
		}
		for word, v := range t.Lexicon {
			settings.Lexicon[word] = v
		}
	}
	if t := tuning.Keywords; t != nil {
		if t.TopCount != nil && *t.TopCount > 0 {
			settings.TopKeywordCount = *t.TopCount
		}
		if t.Taxonomy != nil {
			settings.Taxonomy = t.Taxonomy
		}
	}
	if t := tuning.Readability; t != nil {
		if t.EasyMaxGrade != nil {
			settings.EasyMaxGrade = *t.EasyMaxGrade
		}
		if t.ModerateMaxGrade != nil {
			settings.ModerateMaxGrade = *t.ModerateMaxGrade
		}
	}
	if t := tuning.Length; t != nil {
		if t.ShortMaxWords != nil && *t.ShortMaxWords > 0 {
			settings.ShortMaxWords = *t.ShortMaxWords
		}
		if t.MediumMaxWords != nil && *t.MediumMaxWords > 0 {
			settings.MediumMaxWords = *t.MediumMaxWords
		}
	}

	return settings, nil
}

// defaultTaxonomy returns the curated category → terms mapping used by the
// keyword enricher. Terms are lowercase; multi-word terms match contiguous
// token runs.
func defaultTaxonomy() map[string][]string {
	return map[string][]string{
		"languages": {
			"python", "java", "javascript", "c++", "c#", "php", "ruby", "go",
			"rust", "swift", "kotlin", "scala", "perl", "cobol", "assembly",
			"html", "css", "sql", "xml", "json",
		},
		"concepts": {
			"function", "variable", "loop", "array", "object", "class",
			"method", "inheritance", "polymorphism", "encapsulation",
			"abstraction", "recursion", "algorithm", "data structure",
			"database", "api", "framework", "library", "compiler",
			"interpreter", "debug", "bug", "code", "program", "software",
			"hardware", "network", "server", "client", "frontend", "backend",
			"fullstack", "devops", "git", "version control", "testing",
			"deployment", "microservices", "docker", "kubernetes", "cloud",
			"aws", "azure", "gcp",
		},
		"tools": {
			"ide", "editor", "vscode", "vim", "emacs", "eclipse", "intellij",
			"github", "gitlab", "bitbucket", "jira", "confluence", "slack",
			"teams", "docker", "kubernetes", "jenkins", "travis", "circleci",
			"npm", "pip", "maven", "gradle", "webpack", "babel", "eslint",
			"prettier",
		},
	}
}
