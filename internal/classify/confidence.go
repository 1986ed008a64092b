package classify

import (
	"math"

	"github.com/ar4mirez/langid/internal/text"
)

// ScoreInput carries every value the confidence formula reads.
type ScoreInput struct {
	Language        Language
	Script          text.Script
	Tokens          int
	EnglishRatio    float64
	HindiRatio      float64
	ScriptDominance float64
	NoiseRatio      float64
}

// Breakdown records each term of the confidence formula. Penalties are
// stored as negative values so that Raw is the plain sum of the terms.
type Breakdown struct {
	Base            float64 `json:"base"`
	Length          float64 `json:"length"`
	ScriptDominance float64 `json:"script_dominance"`
	ScriptAgreement float64 `json:"script_agreement"`
	Lexicon         float64 `json:"lexicon"`
	MixedStrong     float64 `json:"mixed_strong"`
	ShortText       float64 `json:"short_text"`
	Mixed           float64 `json:"mixed"`
	Noise           float64 `json:"noise"`
	Unknown         float64 `json:"unknown"`

	Raw     float64 `json:"raw"`
	Cap     float64 `json:"cap"`
	Capped  bool    `json:"capped"`
	Floored bool    `json:"floored"`

	Confidence float64 `json:"confidence"`
}

// Score computes the confidence for in. It has no state and no side
// effects; equal inputs give equal breakdowns.
func (c Config) Score(in ScoreInput) Breakdown {
	b := Breakdown{
		Base:            c.BaseConfidence,
		Length:          c.LengthContribution(in.Tokens),
		ScriptDominance: c.ScriptContribution(in.ScriptDominance),
		ScriptAgreement: c.AgreementContribution(in.Script, in.Language),
		Lexicon:         c.LexiconContribution(labelRatio(in)),
		MixedStrong:     c.MixedStrongContribution(in.Language, in.EnglishRatio, in.HindiRatio),
		ShortText:       c.ShortTextContribution(in.Tokens),
		Mixed:           c.MixedLabelPenalty(in.Language),
		Noise:           c.NoiseContribution(in.NoiseRatio),
		Unknown:         c.UnknownLabelPenalty(in.Language),
	}

	b.Raw = b.Base + b.Length + b.ScriptDominance + b.ScriptAgreement + b.Lexicon +
		b.MixedStrong + b.ShortText + b.Mixed + b.Noise + b.Unknown

	b.Cap = c.capFor(in.Language, in.Tokens)

	score := b.Raw
	if score > b.Cap {
		score = b.Cap
		b.Capped = true
	}
	if score < c.ConfidenceFloor {
		score = c.ConfidenceFloor
		b.Floored = true
	}

	b.Confidence = round4(score)
	return b
}

// LengthContribution rewards longer texts in two tiers.
func (c Config) LengthContribution(tokens int) float64 {
	switch {
	case tokens >= c.LongTextTokens:
		return c.LongTextBoost
	case tokens >= c.MediumTextTokens:
		return c.MediumTextBoost
	default:
		return 0
	}
}

// ScriptContribution rewards a text written mostly in one script.
func (c Config) ScriptContribution(dominance float64) float64 {
	if dominance >= c.ScriptDominanceRatio {
		return c.ScriptDominanceBoost
	}
	return 0
}

// AgreementContribution rewards a Latin-script text whose label is a
// Latin-script language.
func (c Config) AgreementContribution(script text.Script, lang Language) float64 {
	if script != text.ScriptLatin {
		return 0
	}
	if lang == LanguageEnglish || lang == LanguageHinglish {
		return c.ScriptAgreementBoost
	}
	return 0
}

// LexiconContribution scales linearly from LexiconMinBoost at
// LexiconMinRatio to LexiconMaxBoost at LexiconFullRatio. Ratios below the
// minimum earn nothing. The function is non-decreasing in ratio.
func (c Config) LexiconContribution(ratio float64) float64 {
	switch {
	case ratio < c.LexiconMinRatio:
		return 0
	case ratio >= c.LexiconFullRatio:
		return c.LexiconMaxBoost
	}
	frac := (ratio - c.LexiconMinRatio) / (c.LexiconFullRatio - c.LexiconMinRatio)
	return c.LexiconMinBoost + frac*(c.LexiconMaxBoost-c.LexiconMinBoost)
}

// MixedStrongContribution rewards a mixed text where both languages are
// strongly present.
func (c Config) MixedStrongContribution(lang Language, english, hindi float64) float64 {
	if lang == LanguageMixed && english >= c.MixedStrongRatio && hindi >= c.MixedStrongRatio {
		return c.MixedStrongBoost
	}
	return 0
}

// ShortTextContribution is negative for texts under ShortTextTokens, and
// more so under VeryShortTextTokens.
func (c Config) ShortTextContribution(tokens int) float64 {
	switch {
	case tokens < c.VeryShortTextTokens:
		return -c.VeryShortTextPenalty
	case tokens < c.ShortTextTokens:
		return -c.ShortTextPenalty
	default:
		return 0
	}
}

// MixedLabelPenalty is a flat deduction for the mixed label.
func (c Config) MixedLabelPenalty(lang Language) float64 {
	if lang == LanguageMixed {
		return -c.MixedPenalty
	}
	return 0
}

// NoiseContribution is negative once the noise ratio reaches
// NoiseRatioThreshold, growing linearly to NoiseMaxPenalty at ratio 1.
func (c Config) NoiseContribution(noise float64) float64 {
	if noise < c.NoiseRatioThreshold {
		return 0
	}
	frac := 1.0
	if span := 1 - c.NoiseRatioThreshold; span > 0 {
		frac = math.Min(1, (noise-c.NoiseRatioThreshold)/span)
	}
	return -(c.NoiseMinPenalty + frac*(c.NoiseMaxPenalty-c.NoiseMinPenalty))
}

// UnknownLabelPenalty pulls unknown results toward the floor.
func (c Config) UnknownLabelPenalty(lang Language) float64 {
	if lang == LanguageUnknown {
		return -c.UnknownPenalty
	}
	return 0
}

func (c Config) capFor(lang Language, tokens int) float64 {
	if (lang == LanguageHinglish || lang == LanguageMixed) && tokens < c.ShortTextTokens {
		return math.Min(c.MaxConfidence, c.ShortTextCap)
	}
	return c.MaxConfidence
}

// labelRatio picks the lexicon ratio that backs the label. Mixed uses the
// stronger of the two languages.
func labelRatio(in ScoreInput) float64 {
	switch in.Language {
	case LanguageEnglish:
		return in.EnglishRatio
	case LanguageHinglish:
		return in.HindiRatio
	case LanguageMixed:
		return math.Max(in.EnglishRatio, in.HindiRatio)
	default:
		return 0
	}
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
