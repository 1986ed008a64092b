// Package classify decides the primary language of a short text from
// lexicon and script signals and explains the decision.
package classify

import (
	"errors"
	"fmt"

	"github.com/ar4mirez/langid/internal/lexicon"
	"github.com/ar4mirez/langid/internal/text"
)

// ErrNilLexicon is returned by New when a lexicon is missing.
var ErrNilLexicon = errors.New("lexicon is nil")

// Result is the outcome of classifying one text.
type Result struct {
	ID              *string     `json:"id"`
	PrimaryLanguage Language    `json:"primary_language"`
	Script          text.Script `json:"script"`
	Confidence      float64     `json:"confidence"`
	Evidence        Evidence    `json:"evidence"`
}

// Classifier labels texts. It holds only read-only state and is safe for
// concurrent use.
type Classifier struct {
	english *lexicon.Lexicon
	hindi   *lexicon.Lexicon
	config  Config
	rules   []Rule
}

// New creates a classifier over the given lexicons.
func New(english, hindi *lexicon.Lexicon, cfg Config) (*Classifier, error) {
	if english == nil || hindi == nil {
		return nil, ErrNilLexicon
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid classifier config: %w", err)
	}

	return &Classifier{
		english: english,
		hindi:   hindi,
		config:  cfg,
		rules:   DominanceRules(cfg),
	}, nil
}

// Config returns the constants the classifier was built with.
func (c *Classifier) Config() Config {
	return c.config
}

// Classify labels input. Every string, including empty and malformed UTF-8,
// yields a result.
func (c *Classifier) Classify(input string) Result {
	tokens := text.Tokenize(input)
	counts := text.Count(tokens)

	script := text.AnalyzeScript(input, c.config.MixedScriptRatio)
	signals := ComputeSignals(text.Words(tokens), counts.Tokens, c.english, c.hindi)

	lang, rule := Decide(c.rules, signals)

	score := c.config.Score(ScoreInput{
		Language:        lang,
		Script:          script.Label,
		Tokens:          counts.Tokens,
		EnglishRatio:    signals.English.Ratio,
		HindiRatio:      signals.Hindi.Ratio,
		ScriptDominance: script.Dominant(),
		NoiseRatio:      counts.NoiseRatio(),
	})

	return Result{
		PrimaryLanguage: lang,
		Script:          script.Label,
		Confidence:      score.Confidence,
		Evidence:        buildEvidence(script, counts, signals, rule, score),
	}
}

// ClassifyRecord classifies input and attaches id, which may be nil.
func (c *Classifier) ClassifyRecord(id *string, input string) Result {
	res := c.Classify(input)
	res.ID = id
	return res
}
