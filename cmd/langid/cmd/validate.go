package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ar4mirez/langid/internal/jsonl"
)

// jsonlSampleSize is the number of lines checked before a detect run.
const jsonlSampleSize = 5

var (
	validateIn     string
	validateSample int
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the format of a JSONL input file",
	Long: `Check that the first lines of a file are JSON objects with a "text"
field. Use --sample 0 to check every line.`,
	Example: `  langid validate --in texts.jsonl
  langid validate --in texts.jsonl --sample 0`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateIn, "in", "", "Input JSONL file")
	validateCmd.Flags().IntVar(&validateSample, "sample", jsonlSampleSize, "Number of lines to check (0 for all)")

	_ = validateCmd.MarkFlagRequired("in")
}

func runValidate(cmd *cobra.Command, args []string) error {
	if err := validateFile(validateIn, validateSample); err != nil {
		return err
	}

	if outputJSON {
		return PrintJSON(map[string]interface{}{"path": validateIn, "valid": true})
	}
	fmt.Printf("Input file validation passed: %s\n", validateIn)
	return nil
}

func validateFile(path string, sampleSize int) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("input file %q does not exist", path)
	}
	if info.IsDir() {
		return fmt.Errorf("%q is not a file", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot read input file %q: %w", path, err)
	}
	defer f.Close()

	if err := jsonl.Validate(f, sampleSize); err != nil {
		return fmt.Errorf("invalid input %s: %w", path, err)
	}
	return nil
}
