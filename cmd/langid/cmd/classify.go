package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ar4mirez/langid/internal/classify"
)

var classifyEvidence bool

var classifyCmd = &cobra.Command{
	Use:   "classify <text>...",
	Short: "Classify text given on the command line",
	Long:  `Classify each argument as a separate journal entry.`,
	Example: `  langid classify "aaj mausam accha hai"
  langid classify --json "yaar this is so accha" "I am going to the market today"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().BoolVarP(&classifyEvidence, "evidence", "e", false, "Show the evidence of each result")
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	classifier, err := newClassifier(cfg)
	if err != nil {
		return err
	}

	results := make([]classify.Result, len(args))
	for i, text := range args {
		results[i] = classifier.Classify(text)
	}

	if outputJSON {
		return PrintJSON(results)
	}

	if len(results) == 1 && classifyEvidence {
		printEvidence(args[0], results[0])
		return nil
	}

	rows := make([][]string, len(results))
	for i, r := range results {
		rows[i] = []string{
			Truncate(args[i], 40),
			string(r.PrimaryLanguage),
			string(r.Script),
			FormatConfidence(r.Confidence),
			r.Evidence.Rule,
		}
	}
	PrintTable([]string{"TEXT", "LANGUAGE", "SCRIPT", "CONFIDENCE", "RULE"}, rows)

	if classifyEvidence {
		for i, r := range results {
			fmt.Println()
			printEvidence(args[i], r)
		}
	}
	return nil
}

func printEvidence(text string, r classify.Result) {
	e := r.Evidence
	PrintKeyValue(map[string]string{
		"Text":             Truncate(text, 60),
		"Language":         string(r.PrimaryLanguage),
		"Script":           string(r.Script),
		"Confidence":       FormatConfidence(r.Confidence),
		"Rule":             e.Rule,
		"Tokens":           fmt.Sprintf("%d (%d words, %d noise)", e.Tokens, e.WordTokens, e.NoiseTokens),
		"Latin ratio":      fmt.Sprintf("%.2f", e.LatinRatio),
		"Devanagari ratio": fmt.Sprintf("%.2f", e.DevanagariRatio),
		"English hits":     fmt.Sprintf("%d (%.2f)", e.EnglishHits, e.EnglishRatio),
		"Hindi hits":       fmt.Sprintf("%d (%.2f)", e.HindiHits, e.HindiRatio),
		"Score (raw)":      fmt.Sprintf("%.4f", e.Score.Raw),
	})
}
