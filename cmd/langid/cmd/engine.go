package cmd

import (
	"fmt"

	"github.com/ar4mirez/langid/internal/classify"
	"github.com/ar4mirez/langid/internal/config"
	"github.com/ar4mirez/langid/internal/lexicon"
)

// newClassifier builds a classifier from the built-in lexicons merged with
// any configured word files.
func newClassifier(cfg *config.Config) (*classify.Classifier, error) {
	english, err := extendLexicon(lexicon.English(), cfg.Lexicon.EnglishExtra)
	if err != nil {
		return nil, fmt.Errorf("english lexicon: %w", err)
	}
	hindi, err := extendLexicon(lexicon.Hindi(), cfg.Lexicon.HindiExtra)
	if err != nil {
		return nil, fmt.Errorf("hindi lexicon: %w", err)
	}

	return classify.New(english, hindi, cfg.Classifier)
}

func extendLexicon(base *lexicon.Lexicon, paths []string) (*lexicon.Lexicon, error) {
	for _, path := range paths {
		extra, err := lexicon.LoadFile(path)
		if err != nil {
			return nil, err
		}
		base = base.Merge(extra)
	}
	return base, nil
}
