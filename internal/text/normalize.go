// Package text splits journal text into classified tokens and measures
// which writing systems it uses.
package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns the lookup form of a word: lowercased, NFC composed,
// Latin diacritics removed and surrounding punctuation trimmed.
// Devanagari vowel signs and viramas are kept.
func Normalize(word string) string {
	word = strings.TrimFunc(word, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSpace(r)
	})
	lower := strings.ToLower(word)

	// Transformers carry state, so the chain is built per call.
	folded, _, err := transform.String(foldDiacritics(), lower)
	if err != nil {
		return norm.NFC.String(lower)
	}
	return folded
}

func foldDiacritics() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.Predicate(isLatinDiacritic)), norm.NFC)
}

// latinDiacritics holds the combining blocks used on Latin letters.
// Script-specific marks such as Devanagari matras, stress signs and Vedic
// accents fall outside it.
var latinDiacritics = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0300, Hi: 0x036F, Stride: 1}, // Combining Diacritical Marks
		{Lo: 0x1AB0, Hi: 0x1AFF, Stride: 1}, // Extended
		{Lo: 0x1DC0, Hi: 0x1DFF, Stride: 1}, // Supplement
	},
}

func isLatinDiacritic(r rune) bool {
	return unicode.Is(latinDiacritics, r)
}
