package classify

// Language is the primary language label.
type Language string

const (
	LanguageEnglish  Language = "english"
	LanguageHinglish Language = "hinglish"
	LanguageMixed    Language = "mixed"
	LanguageUnknown  Language = "unknown"
)

// Rule names, in evaluation order.
const (
	RuleEmpty           = "empty"
	RuleEnglishDominant = "english_dominant"
	RuleHindiDominant   = "hindi_dominant"
	RuleMixedSignals    = "mixed_signals"
	RuleHindiLean       = "hindi_lean"
	RuleEnglishLean     = "english_lean"
	RuleNoSignal        = "no_signal"
)

// Rule maps a predicate over Signals to a label.
type Rule struct {
	Name  string
	Label Language
	Match func(Signals) bool
}

// DominanceRules returns the ordered rule list for cfg. The first rule that
// matches decides the label.
//
// Ratio comparisons between the two languages are done on hit counts: both
// ratios share the word-count denominator, so the comparison is the same
// and stays exact.
func DominanceRules(cfg Config) []Rule {
	return []Rule{
		{
			Name:  RuleEmpty,
			Label: LanguageUnknown,
			Match: func(s Signals) bool { return s.Tokens == 0 },
		},
		{
			Name:  RuleEnglishDominant,
			Label: LanguageEnglish,
			Match: func(s Signals) bool {
				return float64(s.English.Hits) > cfg.DominanceFactor*float64(s.Hindi.Hits)
			},
		},
		{
			Name:  RuleHindiDominant,
			Label: LanguageHinglish,
			Match: func(s Signals) bool {
				return float64(s.Hindi.Hits) > cfg.DominanceFactor*float64(s.English.Hits)
			},
		},
		{
			Name:  RuleMixedSignals,
			Label: LanguageMixed,
			Match: func(s Signals) bool {
				return s.English.Ratio >= cfg.MixedMinRatio && s.Hindi.Ratio >= cfg.MixedMinRatio
			},
		},
		{
			Name:  RuleHindiLean,
			Label: LanguageHinglish,
			Match: func(s Signals) bool { return s.Hindi.Hits > s.English.Hits },
		},
		{
			Name:  RuleEnglishLean,
			Label: LanguageEnglish,
			Match: func(s Signals) bool { return s.English.Hits > 0 },
		},
		{
			Name:  RuleNoSignal,
			Label: LanguageUnknown,
			Match: func(Signals) bool { return true },
		},
	}
}

// Decide evaluates rules in order and returns the label and name of the
// first match. With no match it returns LanguageUnknown and "".
func Decide(rules []Rule, s Signals) (Language, string) {
	for _, r := range rules {
		if r.Match(s) {
			return r.Label, r.Name
		}
	}
	return LanguageUnknown, ""
}
