package classify

import "github.com/ar4mirez/langid/internal/lexicon"

// LexiconSignal is the hit count and hit ratio of one lexicon.
type LexiconSignal struct {
	Hits  int
	Ratio float64
}

// Signals is the input to the dominance rules.
type Signals struct {
	English LexiconSignal
	Hindi   LexiconSignal

	// Tokens counts word, digit and emoji tokens.
	Tokens int
	// Words counts word tokens only; it is the ratio denominator.
	Words int
}

// ComputeSignals looks up every normalized word in both lexicons. A word
// may hit both, in which case both counters move.
func ComputeSignals(words []string, tokens int, english, hindi *lexicon.Lexicon) Signals {
	s := Signals{Tokens: tokens, Words: len(words)}

	for _, w := range words {
		if english.Contains(w) {
			s.English.Hits++
		}
		if hindi.Contains(w) {
			s.Hindi.Hits++
		}
	}

	denom := float64(max(1, len(words)))
	s.English.Ratio = float64(s.English.Hits) / denom
	s.Hindi.Ratio = float64(s.Hindi.Hits) / denom

	return s
}
