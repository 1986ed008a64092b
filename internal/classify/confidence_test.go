package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ar4mirez/langid/internal/text"
)

const eps = 1e-9

func TestConfig_LengthContribution(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		tokens   int
		expected float64
	}{
		{0, 0},
		{3, 0},
		{4, 0.10},
		{9, 0.10},
		{10, 0.20},
		{200, 0.20},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, cfg.LengthContribution(tt.tokens), eps, "tokens=%d", tt.tokens)
	}
}

func TestConfig_ScriptContribution(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 0.0, cfg.ScriptContribution(0.79))
	assert.Equal(t, 0.10, cfg.ScriptContribution(0.80))
	assert.Equal(t, 0.10, cfg.ScriptContribution(1))
}

func TestConfig_AgreementContribution(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 0.10, cfg.AgreementContribution(text.ScriptLatin, LanguageEnglish))
	assert.Equal(t, 0.10, cfg.AgreementContribution(text.ScriptLatin, LanguageHinglish))
	assert.Equal(t, 0.0, cfg.AgreementContribution(text.ScriptLatin, LanguageMixed))
	assert.Equal(t, 0.0, cfg.AgreementContribution(text.ScriptMixed, LanguageEnglish))
	assert.Equal(t, 0.0, cfg.AgreementContribution(text.ScriptDevanagari, LanguageHinglish))
}

func TestConfig_LexiconContribution(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("tiers", func(t *testing.T) {
		assert.Equal(t, 0.0, cfg.LexiconContribution(0))
		assert.Equal(t, 0.0, cfg.LexiconContribution(0.149))
		assert.InDelta(t, 0.15, cfg.LexiconContribution(0.15), eps)
		assert.InDelta(t, 0.225, cfg.LexiconContribution(0.375), eps)
		assert.InDelta(t, 0.30, cfg.LexiconContribution(0.60), eps)
		assert.InDelta(t, 0.30, cfg.LexiconContribution(1), eps)
	})

	t.Run("non-decreasing", func(t *testing.T) {
		prev := cfg.LexiconContribution(0)
		for i := 1; i <= 1000; i++ {
			cur := cfg.LexiconContribution(float64(i) / 1000)
			assert.GreaterOrEqual(t, cur, prev)
			prev = cur
		}
	})
}

func TestConfig_Penalties(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("short text", func(t *testing.T) {
		assert.Equal(t, -0.15, cfg.ShortTextContribution(0))
		assert.Equal(t, -0.15, cfg.ShortTextContribution(3))
		assert.Equal(t, -0.05, cfg.ShortTextContribution(4))
		assert.Equal(t, -0.05, cfg.ShortTextContribution(5))
		assert.Equal(t, 0.0, cfg.ShortTextContribution(6))
	})

	t.Run("mixed", func(t *testing.T) {
		assert.Equal(t, -0.10, cfg.MixedLabelPenalty(LanguageMixed))
		assert.Equal(t, 0.0, cfg.MixedLabelPenalty(LanguageHinglish))
	})

	t.Run("mixed strong", func(t *testing.T) {
		assert.Equal(t, 0.05, cfg.MixedStrongContribution(LanguageMixed, 0.3, 0.3))
		assert.Equal(t, 0.0, cfg.MixedStrongContribution(LanguageMixed, 0.3, 0.29))
		assert.Equal(t, 0.0, cfg.MixedStrongContribution(LanguageEnglish, 0.5, 0.5))
	})

	t.Run("noise", func(t *testing.T) {
		assert.Equal(t, 0.0, cfg.NoiseContribution(0))
		assert.Equal(t, 0.0, cfg.NoiseContribution(0.49))
		assert.InDelta(t, -0.30, cfg.NoiseContribution(0.5), eps)
		assert.InDelta(t, -0.35, cfg.NoiseContribution(0.75), eps)
		assert.InDelta(t, -0.40, cfg.NoiseContribution(1), eps)
	})

	t.Run("noise threshold of one", func(t *testing.T) {
		c := cfg
		c.NoiseRatioThreshold = 1
		assert.InDelta(t, -0.40, c.NoiseContribution(1), eps)
	})

	t.Run("unknown", func(t *testing.T) {
		assert.Equal(t, -0.15, cfg.UnknownLabelPenalty(LanguageUnknown))
		assert.Equal(t, 0.0, cfg.UnknownLabelPenalty(LanguageEnglish))
	})
}

func TestConfig_Score(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		input    ScoreInput
		expected float64
	}{
		{
			name: "short hinglish hits the short text cap",
			input: ScoreInput{
				Language: LanguageHinglish, Script: text.ScriptLatin, Tokens: 4,
				HindiRatio: 1, ScriptDominance: 1,
			},
			expected: 0.85,
		},
		{
			name: "long english",
			input: ScoreInput{
				Language: LanguageEnglish, Script: text.ScriptLatin, Tokens: 7,
				EnglishRatio: 6.0 / 7.0, HindiRatio: 1.0 / 7.0, ScriptDominance: 1,
			},
			expected: 0.90,
		},
		{
			name: "very long english is capped at the maximum",
			input: ScoreInput{
				Language: LanguageEnglish, Script: text.ScriptLatin, Tokens: 12,
				EnglishRatio: 0.7, ScriptDominance: 1,
			},
			expected: 0.95,
		},
		{
			name: "mixed pays the flat penalty",
			input: ScoreInput{
				Language: LanguageMixed, Script: text.ScriptLatin, Tokens: 5,
				EnglishRatio: 0.6, HindiRatio: 0.4, ScriptDominance: 1,
			},
			expected: 0.70,
		},
		{
			name: "noise only lands on the floor",
			input: ScoreInput{
				Language: LanguageUnknown, Script: text.ScriptUnknown, Tokens: 4,
				NoiseRatio: 1,
			},
			expected: 0.05,
		},
		{
			name:     "empty lands on the floor",
			input:    ScoreInput{Language: LanguageUnknown, Script: text.ScriptUnknown},
			expected: 0.05,
		},
		{
			name: "unknown latin word",
			input: ScoreInput{
				Language: LanguageUnknown, Script: text.ScriptLatin, Tokens: 1,
				ScriptDominance: 1,
			},
			expected: 0.10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := cfg.Score(tt.input)
			assert.InDelta(t, tt.expected, b.Confidence, eps)
		})
	}
}

func TestConfig_Score_Breakdown(t *testing.T) {
	cfg := DefaultConfig()

	b := cfg.Score(ScoreInput{
		Language: LanguageMixed, Script: text.ScriptLatin, Tokens: 5,
		EnglishRatio: 0.6, HindiRatio: 0.4, ScriptDominance: 1,
	})

	assert.Equal(t, 0.30, b.Base)
	assert.Equal(t, 0.10, b.Length)
	assert.Equal(t, 0.10, b.ScriptDominance)
	assert.Equal(t, 0.0, b.ScriptAgreement)
	assert.InDelta(t, 0.30, b.Lexicon, eps)
	assert.Equal(t, 0.05, b.MixedStrong)
	assert.Equal(t, -0.05, b.ShortText)
	assert.Equal(t, -0.10, b.Mixed)
	assert.Equal(t, 0.0, b.Noise)
	assert.Equal(t, 0.0, b.Unknown)
	assert.InDelta(t, 0.70, b.Raw, eps)
	assert.Equal(t, 0.85, b.Cap)
	assert.False(t, b.Capped)
	assert.False(t, b.Floored)

	floored := cfg.Score(ScoreInput{Language: LanguageUnknown, Tokens: 2, NoiseRatio: 1})
	assert.True(t, floored.Floored)
	assert.Less(t, floored.Raw, 0.05)
	assert.Equal(t, 0.95, floored.Cap)
}

func TestConfig_Score_Bounds(t *testing.T) {
	cfg := DefaultConfig()
	langs := []Language{LanguageEnglish, LanguageHinglish, LanguageMixed, LanguageUnknown}
	scripts := []text.Script{text.ScriptLatin, text.ScriptDevanagari, text.ScriptMixed, text.ScriptUnknown}

	for _, lang := range langs {
		for _, script := range scripts {
			for tokens := 0; tokens <= 15; tokens++ {
				for step := 0; step <= 10; step++ {
					ratio := float64(step) / 10
					b := cfg.Score(ScoreInput{
						Language:        lang,
						Script:          script,
						Tokens:          tokens,
						EnglishRatio:    ratio,
						HindiRatio:      1 - ratio,
						ScriptDominance: ratio,
						NoiseRatio:      1 - ratio,
					})
					assert.GreaterOrEqual(t, b.Confidence, 0.0)
					assert.LessOrEqual(t, b.Confidence, 0.95)
					if (lang == LanguageHinglish || lang == LanguageMixed) && tokens < 6 {
						assert.LessOrEqual(t, b.Confidence, 0.85)
					}
				}
			}
		}
	}
}

func TestConfig_Score_MonotonicInHindiRatio(t *testing.T) {
	cfg := DefaultConfig()

	for _, tokens := range []int{1, 4, 6, 12} {
		prev := -1.0
		for i := 0; i <= 100; i++ {
			b := cfg.Score(ScoreInput{
				Language:        LanguageHinglish,
				Script:          text.ScriptLatin,
				Tokens:          tokens,
				HindiRatio:      float64(i) / 100,
				ScriptDominance: 1,
			})
			assert.GreaterOrEqual(t, b.Confidence, prev, "tokens=%d ratio=%d%%", tokens, i)
			prev = b.Confidence
		}
	}
}
