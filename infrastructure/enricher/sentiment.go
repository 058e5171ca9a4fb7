package enricher

import (
	"github.com/punchlabs/punchup/domain/enrichment"
	"github.com/punchlabs/punchup/domain/joke"
)

// negationFactor is applied to a matched word's polarity when a negator
// appears within negationWindow tokens before it ("not funny" scores as
// mildly negative rather than positive).
const (
	negationFactor = -0.5
	negationWindow = 2
)

// negators flip the polarity of the sentiment word they precede.
var negators = map[string]struct{}{
	"no": {}, "not": {}, "never": {}, "none": {}, "nothing": {},
	"neither": {}, "nor": {}, "cannot": {}, "can't": {}, "won't": {},
	"don't": {}, "doesn't": {}, "didn't": {}, "isn't": {}, "aren't": {},
	"wasn't": {}, "weren't": {}, "shouldn't": {}, "couldn't": {},
	"wouldn't": {}, "without": {},
}

// Sentiment scores the emotional tone of a record using a valence lexicon.
// Polarity is the mean polarity of matched tokens in [-1, 1], subjectivity
// the mean subjectivity in [0, 1]; text with no matched tokens scores zero
// on both.
type Sentiment struct {
	positive float64
	negative float64
	lexicon  map[string]Valence
}

// NewSentiment creates a Sentiment enricher from settings.
func NewSentiment(settings Settings) *Sentiment {
	return &Sentiment{
		positive: settings.PositivePolarity,
		negative: settings.NegativePolarity,
		lexicon:  settings.Lexicon,
	}
}

// Name returns the enrichment envelope key.
func (e *Sentiment) Name() string { return NameSentiment }

// Enrich scores the combined text, plus setup and punchline separately.
func (e *Sentiment) Enrich(record joke.Record) (enrichment.Result, error) {
	polarity, subjectivity := e.score(record.CombinedText())
	setupPolarity, _ := e.score(record.Setup())
	punchlinePolarity, _ := e.score(record.Punchline())

	return enrichment.Result{
		"sentiment":          e.categorize(polarity),
		"polarity":           round3(polarity),
		"subjectivity":       round3(subjectivity),
		"setup_polarity":     round3(setupPolarity),
		"punchline_polarity": round3(punchlinePolarity),
	}, nil
}

func (e *Sentiment) categorize(polarity float64) string {
	switch {
	case polarity > e.positive:
		return "positive"
	case polarity < e.negative:
		return "negative"
	default:
		return "neutral"
	}
}

func (e *Sentiment) score(text string) (polarity, subjectivity float64) {
	toks := tokens(text)

	var polaritySum, subjectivitySum float64
	matched := 0
	for i, tok := range toks {
		v, ok := e.lexicon[tok]
		if !ok {
			continue
		}
		p := v.Polarity
		if negatedAt(toks, i) {
			p *= negationFactor
		}
		polaritySum += p
		subjectivitySum += v.Subjectivity
		matched++
	}

	if matched == 0 {
		return 0, 0
	}
	return polaritySum / float64(matched), subjectivitySum / float64(matched)
}

func negatedAt(toks []string, i int) bool {
	for j := i - 1; j >= 0 && j >= i-negationWindow; j-- {
		if _, ok := negators[toks[j]]; ok {
			return true
		}
	}
	return false
}

// defaultLexicon returns the curated valence lexicon. Values are heuristic;
// plural and inflected forms are listed explicitly because matching is
// token-exact (no stemming).
func defaultLexicon() map[string]Valence {
	return map[string]Valence{
		// positive
		"good":       {Polarity: 0.7, Subjectivity: 0.6},
		"great":      {Polarity: 0.8, Subjectivity: 0.75},
		"best":       {Polarity: 1.0, Subjectivity: 0.3},
		"better":     {Polarity: 0.5, Subjectivity: 0.5},
		"awesome":    {Polarity: 1.0, Subjectivity: 1.0},
		"amazing":    {Polarity: 0.6, Subjectivity: 0.9},
		"excellent":  {Polarity: 1.0, Subjectivity: 1.0},
		"perfect":    {Polarity: 1.0, Subjectivity: 1.0},
		"wonderful":  {Polarity: 1.0, Subjectivity: 1.0},
		"brilliant":  {Polarity: 0.9, Subjectivity: 0.9},
		"beautiful":  {Polarity: 0.85, Subjectivity: 1.0},
		"elegant":    {Polarity: 0.65, Subjectivity: 0.85},
		"happy":      {Polarity: 0.8, Subjectivity: 1.0},
		"love":       {Polarity: 0.5, Subjectivity: 0.6},
		"loves":      {Polarity: 0.5, Subjectivity: 0.6},
		"funny":      {Polarity: 0.6, Subjectivity: 0.85},
		"hilarious":  {Polarity: 0.8, Subjectivity: 0.9},
		"fun":        {Polarity: 0.5, Subjectivity: 0.6},
		"clever":     {Polarity: 0.6, Subjectivity: 0.8},
		"smart":      {Polarity: 0.6, Subjectivity: 0.7},
		"easy":       {Polarity: 0.4, Subjectivity: 0.8},
		"simple":     {Polarity: 0.3, Subjectivity: 0.35},
		"fast":       {Polarity: 0.2, Subjectivity: 0.5},
		"free":       {Polarity: 0.4, Subjectivity: 0.8},
		"cool":       {Polarity: 0.35, Subjectivity: 0.65},
		"nice":       {Polarity: 0.6, Subjectivity: 0.8},
		"clean":      {Polarity: 0.4, Subjectivity: 0.5},
		"safe":       {Polarity: 0.5, Subjectivity: 0.5},
		"reliable":   {Polarity: 0.6, Subjectivity: 0.5},
		"successful": {Polarity: 0.65, Subjectivity: 0.7},
		"success":    {Polarity: 0.5, Subjectivity: 0.6},
		"light":      {Polarity: 0.4, Subjectivity: 0.7},
		"right":      {Polarity: 0.3, Subjectivity: 0.55},
		"works":      {Polarity: 0.2, Subjectivity: 0.3},
		// negative
		"bad":        {Polarity: -0.7, Subjectivity: 0.65},
		"worst":      {Polarity: -1.0, Subjectivity: 1.0},
		"worse":      {Polarity: -0.5, Subjectivity: 0.6},
		"terrible":   {Polarity: -0.8, Subjectivity: 0.9},
		"awful":      {Polarity: -1.0, Subjectivity: 1.0},
		"horrible":   {Polarity: -1.0, Subjectivity: 1.0},
		"hate":       {Polarity: -0.8, Subjectivity: 0.9},
		"hates":      {Polarity: -0.8, Subjectivity: 0.9},
		"sad":        {Polarity: -0.5, Subjectivity: 1.0},
		"angry":      {Polarity: -0.5, Subjectivity: 0.9},
		"broken":     {Polarity: -0.4, Subjectivity: 0.6},
		"crash":      {Polarity: -0.5, Subjectivity: 0.6},
		"crashes":    {Polarity: -0.5, Subjectivity: 0.6},
		"crashed":    {Polarity: -0.5, Subjectivity: 0.6},
		"fail":       {Polarity: -0.5, Subjectivity: 0.6},
		"fails":      {Polarity: -0.5, Subjectivity: 0.6},
		"failed":     {Polarity: -0.5, Subjectivity: 0.6},
		"error":      {Polarity: -0.4, Subjectivity: 0.5},
		"errors":     {Polarity: -0.4, Subjectivity: 0.5},
		"bug":        {Polarity: -0.3, Subjectivity: 0.4},
		"bugs":       {Polarity: -0.3, Subjectivity: 0.4},
		"dead":       {Polarity: -0.2, Subjectivity: 0.4},
		"wrong":      {Polarity: -0.5, Subjectivity: 0.55},
		"hard":       {Polarity: -0.3, Subjectivity: 0.55},
		"difficult":  {Polarity: -0.5, Subjectivity: 0.75},
		"slow":       {Polarity: -0.3, Subjectivity: 0.4},
		"stupid":     {Polarity: -0.8, Subjectivity: 0.9},
		"dumb":       {Polarity: -0.6, Subjectivity: 0.8},
		"ugly":       {Polarity: -0.7, Subjectivity: 0.9},
		"annoying":   {Polarity: -0.6, Subjectivity: 0.9},
		"boring":     {Polarity: -0.8, Subjectivity: 0.9},
		"crazy":      {Polarity: -0.6, Subjectivity: 0.9},
		"weird":      {Polarity: -0.5, Subjectivity: 0.9},
		"old":        {Polarity: -0.1, Subjectivity: 0.2},
		"expensive":  {Polarity: -0.3, Subjectivity: 0.6},
		"problem":    {Polarity: -0.3, Subjectivity: 0.4},
		"problems":   {Polarity: -0.3, Subjectivity: 0.4},
		"impossible": {Polarity: -0.5, Subjectivity: 1.0},
		"painful":    {Polarity: -0.7, Subjectivity: 0.8},
		"pain":       {Polarity: -0.6, Subjectivity: 0.7},
		"mess":       {Polarity: -0.4, Subjectivity: 0.6},
		"disaster":   {Polarity: -0.8, Subjectivity: 0.8},
		"afraid":     {Polarity: -0.6, Subjectivity: 0.8},
		"scared":     {Polarity: -0.6, Subjectivity: 0.8},
		"confused":   {Polarity: -0.4, Subjectivity: 0.7},
		"confusing":  {Polarity: -0.5, Subjectivity: 0.8},
		"lazy":       {Polarity: -0.4, Subjectivity: 0.7},
		"tired":      {Polarity: -0.4, Subjectivity: 0.6},
		"deprecated": {Polarity: -0.3, Subjectivity: 0.4},
		"dirty":      {Polarity: -0.4, Subjectivity: 0.6},
		"dangerous":  {Polarity: -0.6, Subjectivity: 0.7},
		"risky":      {Polarity: -0.5, Subjectivity: 0.7},
		"fragile":    {Polarity: -0.4, Subjectivity: 0.6},
		"dark":       {Polarity: -0.15, Subjectivity: 0.4},
	}
}
