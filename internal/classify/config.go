package classify

import "fmt"

// Config holds every tunable constant of the decision rule and the
// confidence formula. Penalties are configured as positive magnitudes.
type Config struct {
	// Dominance rule
	DominanceFactor  float64 `mapstructure:"dominance_factor"`
	MixedMinRatio    float64 `mapstructure:"mixed_min_ratio"`
	MixedStrongRatio float64 `mapstructure:"mixed_strong_ratio"`

	// Script analysis
	MixedScriptRatio float64 `mapstructure:"mixed_script_ratio"`

	// Confidence boosts
	BaseConfidence       float64 `mapstructure:"base_confidence"`
	LongTextTokens       int     `mapstructure:"long_text_tokens"`
	LongTextBoost        float64 `mapstructure:"long_text_boost"`
	MediumTextTokens     int     `mapstructure:"medium_text_tokens"`
	MediumTextBoost      float64 `mapstructure:"medium_text_boost"`
	ScriptDominanceRatio float64 `mapstructure:"script_dominance_ratio"`
	ScriptDominanceBoost float64 `mapstructure:"script_dominance_boost"`
	ScriptAgreementBoost float64 `mapstructure:"script_agreement_boost"`
	LexiconMinRatio      float64 `mapstructure:"lexicon_min_ratio"`
	LexiconFullRatio     float64 `mapstructure:"lexicon_full_ratio"`
	LexiconMinBoost      float64 `mapstructure:"lexicon_min_boost"`
	LexiconMaxBoost      float64 `mapstructure:"lexicon_max_boost"`
	MixedStrongBoost     float64 `mapstructure:"mixed_strong_boost"`

	// Confidence penalties
	ShortTextTokens      int     `mapstructure:"short_text_tokens"`
	ShortTextPenalty     float64 `mapstructure:"short_text_penalty"`
	VeryShortTextTokens  int     `mapstructure:"very_short_text_tokens"`
	VeryShortTextPenalty float64 `mapstructure:"very_short_text_penalty"`
	MixedPenalty         float64 `mapstructure:"mixed_penalty"`
	NoiseRatioThreshold  float64 `mapstructure:"noise_ratio_threshold"`
	NoiseMinPenalty      float64 `mapstructure:"noise_min_penalty"`
	NoiseMaxPenalty      float64 `mapstructure:"noise_max_penalty"`
	UnknownPenalty       float64 `mapstructure:"unknown_penalty"`

	// Bounds
	MaxConfidence   float64 `mapstructure:"max_confidence"`
	ShortTextCap    float64 `mapstructure:"short_text_cap"`
	ConfidenceFloor float64 `mapstructure:"confidence_floor"`
}

// DefaultConfig returns the calibrated defaults.
func DefaultConfig() Config {
	return Config{
		DominanceFactor:  3,
		MixedMinRatio:    0.15,
		MixedStrongRatio: 0.30,

		MixedScriptRatio: 0.20,

		BaseConfidence:       0.30,
		LongTextTokens:       10,
		LongTextBoost:        0.20,
		MediumTextTokens:     4,
		MediumTextBoost:      0.10,
		ScriptDominanceRatio: 0.80,
		ScriptDominanceBoost: 0.10,
		ScriptAgreementBoost: 0.10,
		LexiconMinRatio:      0.15,
		LexiconFullRatio:     0.60,
		LexiconMinBoost:      0.15,
		LexiconMaxBoost:      0.30,
		MixedStrongBoost:     0.05,

		ShortTextTokens:      6,
		ShortTextPenalty:     0.05,
		VeryShortTextTokens:  4,
		VeryShortTextPenalty: 0.15,
		MixedPenalty:         0.10,
		NoiseRatioThreshold:  0.50,
		NoiseMinPenalty:      0.30,
		NoiseMaxPenalty:      0.40,
		UnknownPenalty:       0.15,

		MaxConfidence:   0.95,
		ShortTextCap:    0.85,
		ConfidenceFloor: 0.05,
	}
}

// Validate checks that the constants describe a usable formula.
func (c Config) Validate() error {
	if c.DominanceFactor < 1 {
		return fmt.Errorf("dominance factor must be at least 1: %g", c.DominanceFactor)
	}
	if !inUnit(c.MixedMinRatio) || c.MixedMinRatio == 0 {
		return fmt.Errorf("mixed min ratio out of range (0, 1]: %g", c.MixedMinRatio)
	}
	if c.MixedStrongRatio < c.MixedMinRatio || c.MixedStrongRatio > 1 {
		return fmt.Errorf("mixed strong ratio must be in [%g, 1]: %g", c.MixedMinRatio, c.MixedStrongRatio)
	}
	if !inUnit(c.MixedScriptRatio) || c.MixedScriptRatio == 0 || c.MixedScriptRatio > 0.5 {
		return fmt.Errorf("mixed script ratio out of range (0, 0.5]: %g", c.MixedScriptRatio)
	}

	if c.MediumTextTokens < 1 || c.LongTextTokens < c.MediumTextTokens {
		return fmt.Errorf("length tiers must satisfy 1 <= medium (%d) <= long (%d)", c.MediumTextTokens, c.LongTextTokens)
	}
	if c.VeryShortTextTokens < 1 || c.ShortTextTokens < c.VeryShortTextTokens {
		return fmt.Errorf("short text tiers must satisfy 1 <= very short (%d) <= short (%d)", c.VeryShortTextTokens, c.ShortTextTokens)
	}
	if !inUnit(c.ScriptDominanceRatio) {
		return fmt.Errorf("script dominance ratio out of range [0, 1]: %g", c.ScriptDominanceRatio)
	}
	if !inUnit(c.LexiconMinRatio) || !inUnit(c.LexiconFullRatio) || c.LexiconFullRatio <= c.LexiconMinRatio {
		return fmt.Errorf("lexicon ratios must satisfy 0 <= min (%g) < full (%g) <= 1", c.LexiconMinRatio, c.LexiconFullRatio)
	}
	if c.LexiconMaxBoost < c.LexiconMinBoost {
		return fmt.Errorf("lexicon max boost (%g) below min boost (%g)", c.LexiconMaxBoost, c.LexiconMinBoost)
	}
	if c.NoiseRatioThreshold <= 0 || c.NoiseRatioThreshold > 1 {
		return fmt.Errorf("noise ratio threshold out of range (0, 1]: %g", c.NoiseRatioThreshold)
	}
	if c.NoiseMaxPenalty < c.NoiseMinPenalty {
		return fmt.Errorf("noise max penalty (%g) below min penalty (%g)", c.NoiseMaxPenalty, c.NoiseMinPenalty)
	}

	for name, v := range map[string]float64{
		"base_confidence":         c.BaseConfidence,
		"long_text_boost":         c.LongTextBoost,
		"medium_text_boost":       c.MediumTextBoost,
		"script_dominance_boost":  c.ScriptDominanceBoost,
		"script_agreement_boost":  c.ScriptAgreementBoost,
		"lexicon_min_boost":       c.LexiconMinBoost,
		"mixed_strong_boost":      c.MixedStrongBoost,
		"short_text_penalty":      c.ShortTextPenalty,
		"very_short_text_penalty": c.VeryShortTextPenalty,
		"mixed_penalty":           c.MixedPenalty,
		"noise_min_penalty":       c.NoiseMinPenalty,
		"unknown_penalty":         c.UnknownPenalty,
	} {
		if !inUnit(v) {
			return fmt.Errorf("%s out of range [0, 1]: %g", name, v)
		}
	}

	if c.MaxConfidence <= 0 || c.MaxConfidence > 0.95 {
		return fmt.Errorf("max confidence out of range (0, 0.95]: %g", c.MaxConfidence)
	}
	if c.ShortTextCap <= 0 || c.ShortTextCap > c.MaxConfidence {
		return fmt.Errorf("short text cap must be in (0, %g]: %g", c.MaxConfidence, c.ShortTextCap)
	}
	if c.ConfidenceFloor < 0 || c.ConfidenceFloor >= c.ShortTextCap {
		return fmt.Errorf("confidence floor must be in [0, %g): %g", c.ShortTextCap, c.ConfidenceFloor)
	}

	return nil
}

func inUnit(v float64) bool {
	return v >= 0 && v <= 1
}
