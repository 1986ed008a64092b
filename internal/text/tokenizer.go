package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Class is the category assigned to a token.
type Class int

const (
	ClassWord        Class = iota // contains at least one letter
	ClassDigit                    // digits only
	ClassEmoji                    // a single pictographic rune
	ClassPunctuation              // punctuation run, not counted
	ClassOther                    // symbols, stray marks, replacement chars; not counted
)

// String returns the lowercase name of the class.
func (c Class) String() string {
	switch c {
	case ClassWord:
		return "word"
	case ClassDigit:
		return "digit"
	case ClassEmoji:
		return "emoji"
	case ClassPunctuation:
		return "punctuation"
	default:
		return "other"
	}
}

// Token is a single unit of input text.
type Token struct {
	Surface    string
	Normalized string
	Class      Class
}

// Counted reports whether the token participates in token counts.
func (t Token) Counted() bool {
	return t.Class == ClassWord || t.Class == ClassDigit || t.Class == ClassEmoji
}

// Noise reports whether the token is a digit or emoji token.
func (t Token) Noise() bool {
	return t.Class == ClassDigit || t.Class == ClassEmoji
}

// Counts summarizes a token sequence.
type Counts struct {
	Tokens int // word + digit + emoji
	Words  int
	Digits int
	Emoji  int
}

// Noise returns the number of digit and emoji tokens.
func (c Counts) Noise() int {
	return c.Digits + c.Emoji
}

// NoiseRatio returns the fraction of counted tokens that are noise.
func (c Counts) NoiseRatio() float64 {
	if c.Tokens == 0 {
		return 0
	}
	return float64(c.Noise()) / float64(c.Tokens)
}

// Count tallies the counted classes in tokens.
func Count(tokens []Token) Counts {
	var c Counts
	for _, tok := range tokens {
		switch tok.Class {
		case ClassWord:
			c.Words++
		case ClassDigit:
			c.Digits++
		case ClassEmoji:
			c.Emoji++
		default:
			continue
		}
		c.Tokens++
	}
	return c
}

// Words returns the normalized forms of the word tokens, in order.
func Words(tokens []Token) []string {
	words := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Class == ClassWord {
			words = append(words, tok.Normalized)
		}
	}
	return words
}

type runeKind int

const (
	kindSpace runeKind = iota
	kindWord
	kindEmoji
	kindPunct
	kindOther
)

func kindOf(r rune) runeKind {
	switch {
	case unicode.IsSpace(r):
		return kindSpace
	case unicode.Is(emojiTable, r):
		return kindEmoji
	case unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsDigit(r):
		return kindWord
	case unicode.IsPunct(r):
		return kindPunct
	default:
		return kindOther
	}
}

// Tokenize splits s on whitespace and punctuation boundaries and classifies
// every piece. Each emoji rune becomes its own token. Invalid UTF-8 decodes
// to U+FFFD and ends up in ClassOther. Blank input yields no tokens.
func Tokenize(s string) []Token {
	var tokens []Token

	start := -1
	current := kindSpace

	flush := func(end int) {
		if start < 0 {
			return
		}
		tokens = append(tokens, newToken(s[start:end], current))
		start = -1
	}

	for i, r := range s {
		kind := kindOf(r)

		if kind == kindEmoji {
			flush(i)
			tokens = append(tokens, newToken(s[i:i+utf8.RuneLen(r)], kindEmoji))
			current = kindSpace
			continue
		}

		if kind != current || kind == kindSpace {
			flush(i)
			current = kind
			if kind != kindSpace {
				start = i
			}
		}
	}
	flush(len(s))

	return tokens
}

func newToken(surface string, kind runeKind) Token {
	tok := Token{Surface: surface}

	switch kind {
	case kindEmoji:
		tok.Class = ClassEmoji
		tok.Normalized = surface
	case kindPunct:
		tok.Class = ClassPunctuation
		tok.Normalized = surface
	case kindWord:
		tok.Class = classifyWord(surface)
		tok.Normalized = Normalize(surface)
	default:
		tok.Class = ClassOther
		tok.Normalized = strings.ToLower(surface)
	}

	return tok
}

func classifyWord(surface string) Class {
	hasLetter, hasDigit := false, false
	for _, r := range surface {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	switch {
	case hasLetter:
		return ClassWord
	case hasDigit:
		return ClassDigit
	default:
		return ClassOther
	}
}

// emojiTable covers the common pictographic blocks. Skin tone modifiers
// (U+1F3FB..U+1F3FF) are left out so a toned emoji counts once.
var emojiTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x2600, Hi: 0x27BF, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x1F1E0, Hi: 0x1F1FF, Stride: 1},
		{Lo: 0x1F300, Hi: 0x1F3FA, Stride: 1},
		{Lo: 0x1F400, Hi: 0x1F64F, Stride: 1},
		{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1},
		{Lo: 0x1F900, Hi: 0x1F9FF, Stride: 1},
		{Lo: 0x1FA70, Hi: 0x1FAFF, Stride: 1},
	},
}
