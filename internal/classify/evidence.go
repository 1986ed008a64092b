package classify

import (
	"github.com/ar4mirez/langid/internal/text"
)

// Evidence is the audit record attached to every result. It holds the
// intermediate signals and the confidence breakdown, enough to replay the
// decision by hand.
type Evidence struct {
	LatinRatio          float64 `json:"latin_ratio"`
	DevanagariRatio     float64 `json:"devanagari_ratio"`
	LatinChars          int     `json:"latin_chars"`
	DevanagariChars     int     `json:"devanagari_chars"`
	OtherLetters        int     `json:"other_letters"`
	ScriptDominantRatio float64 `json:"script_dominant_ratio"`

	EnglishHits  int     `json:"en_lexicon_hits"`
	HindiHits    int     `json:"hi_lexicon_hits"`
	EnglishRatio float64 `json:"en_lexicon_ratio"`
	HindiRatio   float64 `json:"hi_lexicon_ratio"`

	Tokens      int     `json:"n_tokens"`
	WordTokens  int     `json:"n_word_tokens"`
	NoiseTokens int     `json:"n_noise_tokens"`
	NoiseRatio  float64 `json:"noise_ratio"`
	EmojiOnly   bool    `json:"emoji_only"`
	NumericOnly bool    `json:"numeric_only"`

	MixedStrong bool   `json:"mixed_strong"`
	Rule        string `json:"rule"`

	Score Breakdown `json:"score"`
}

func buildEvidence(script text.ScriptRatios, counts text.Counts, sig Signals, rule string, score Breakdown) Evidence {
	return Evidence{
		LatinRatio:          script.Latin,
		DevanagariRatio:     script.Devanagari,
		LatinChars:          script.LatinChars,
		DevanagariChars:     script.DevanagariChars,
		OtherLetters:        script.OtherLetters,
		ScriptDominantRatio: script.Dominant(),

		EnglishHits:  sig.English.Hits,
		HindiHits:    sig.Hindi.Hits,
		EnglishRatio: sig.English.Ratio,
		HindiRatio:   sig.Hindi.Ratio,

		Tokens:      counts.Tokens,
		WordTokens:  counts.Words,
		NoiseTokens: counts.Noise(),
		NoiseRatio:  counts.NoiseRatio(),
		EmojiOnly:   counts.Tokens > 0 && counts.Emoji == counts.Tokens,
		NumericOnly: counts.Tokens > 0 && counts.Digits == counts.Tokens,

		MixedStrong: score.MixedStrong > 0,
		Rule:        rule,

		Score: score,
	}
}
