// Package cmd provides CLI commands for langid.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ar4mirez/langid/internal/config"
)

var (
	// Global flags
	configPath string
	outputJSON bool
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "langid",
	Short: "langid - Language and script detection for journal entries",
	Long: `langid labels short journal entries as english, hinglish, mixed or
unknown, detects their script and attaches a confidence with the evidence
behind it.

Use langid to:
  - Classify JSONL files of journal entries
  - Validate input files before processing
  - Classify ad-hoc text from the command line`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", getEnvOrDefault("LANGID_CONFIG", ""), "Config file (default: langid.yaml in ., ./config, /etc/langid, $HOME/.langid)")
	rootCmd.PersistentFlags().BoolVarP(&outputJSON, "json", "j", false, "Output in JSON format")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(classifyCmd)
}

func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
