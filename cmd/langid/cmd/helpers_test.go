package cmd

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// captureStdout runs fn and returns what it printed to stdout.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// runCommand executes the root command with args from an empty working
// directory, so no stray config file is picked up.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	t.Setenv("HOME", dir)

	resetFlags()

	var runErr error
	out := captureStdout(t, func() {
		rootCmd.SetArgs(args)
		runErr = Execute()
	})
	return out, runErr
}

func resetFlags() {
	configPath = ""
	outputJSON = false

	detectIn, detectOut = "", ""
	detectStats, detectQuiet = false, false
	detectWorkers = 0
	detectMetricsFile = ""

	validateIn = ""
	validateSample = jsonlSampleSize

	classifyEvidence = false
}
