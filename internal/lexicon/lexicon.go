// Package lexicon provides the immutable word sets used for language
// signals.
package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/ar4mirez/langid/internal/text"
)

// Lexicon is a read-only set of normalized word forms. A Lexicon is never
// mutated after construction and is safe for concurrent use.
type Lexicon struct {
	words map[string]struct{}
}

// New builds a lexicon from words. Entries are normalized the same way the
// tokenizer normalizes input; entries that normalize to "" are dropped.
func New(words ...string) *Lexicon {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if n := text.Normalize(w); n != "" {
			set[n] = struct{}{}
		}
	}
	return &Lexicon{words: set}
}

// Contains reports whether the normalized word is in the lexicon.
func (l *Lexicon) Contains(word string) bool {
	if l == nil {
		return false
	}
	_, ok := l.words[word]
	return ok
}

// Len returns the number of distinct entries.
func (l *Lexicon) Len() int {
	if l == nil {
		return 0
	}
	return len(l.words)
}

// Words returns the entries in sorted order.
func (l *Lexicon) Words() []string {
	if l == nil {
		return nil
	}
	out := make([]string, 0, len(l.words))
	for w := range l.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Merge returns a new lexicon holding the entries of l and other.
func (l *Lexicon) Merge(other *Lexicon) *Lexicon {
	set := make(map[string]struct{}, l.Len()+other.Len())
	for _, src := range []*Lexicon{l, other} {
		if src == nil {
			continue
		}
		for w := range src.words {
			set[w] = struct{}{}
		}
	}
	return &Lexicon{words: set}
}

// Load reads one word per line. Blank lines and lines starting with '#'
// are skipped.
func Load(r io.Reader) (*Lexicon, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lexicon: %w", err)
	}

	return New(words...), nil
}

// LoadFile reads a lexicon from path.
func LoadFile(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lexicon file: %w", err)
	}
	defer f.Close()

	lex, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lex, nil
}
