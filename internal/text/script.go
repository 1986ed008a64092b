package text

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Script is the writing-system label of a text.
type Script string

const (
	ScriptLatin      Script = "latin"
	ScriptDevanagari Script = "devanagari"
	ScriptMixed      Script = "mixed"
	ScriptUnknown    Script = "unknown"
)

// ScriptRatios holds per-script letter counts and ratios. Ratios are taken
// over Latin plus Devanagari letters only; letters of any other script are
// counted in OtherLetters but kept out of the denominator.
type ScriptRatios struct {
	LatinChars      int
	DevanagariChars int
	OtherLetters    int

	Latin      float64
	Devanagari float64

	Label Script
}

// Dominant returns the larger of the two ratios.
func (s ScriptRatios) Dominant() float64 {
	return max(s.Latin, s.Devanagari)
}

// AnalyzeScript measures the script composition of s. A text is mixed when
// both ratios reach mixedThreshold.
func AnalyzeScript(s string, mixedThreshold float64) ScriptRatios {
	var out ScriptRatios

	for _, r := range norm.NFC.String(s) {
		if !unicode.IsLetter(r) && !unicode.IsMark(r) {
			continue
		}
		switch {
		case unicode.Is(unicode.Devanagari, r):
			out.DevanagariChars++
		case unicode.Is(unicode.Latin, r):
			out.LatinChars++
		default:
			out.OtherLetters++
		}
	}

	classified := out.LatinChars + out.DevanagariChars
	if classified == 0 {
		out.Label = ScriptUnknown
		return out
	}

	out.Latin = float64(out.LatinChars) / float64(classified)
	out.Devanagari = float64(out.DevanagariChars) / float64(classified)

	switch {
	case out.Latin >= mixedThreshold && out.Devanagari >= mixedThreshold:
		out.Label = ScriptMixed
	case out.Latin >= out.Devanagari:
		out.Label = ScriptLatin
	default:
		out.Label = ScriptDevanagari
	}

	return out
}
