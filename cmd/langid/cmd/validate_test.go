package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCmd(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		in := writeInput(t, detectInput)

		out, err := runCommand(t, "validate", "--in", in)
		require.NoError(t, err)
		assert.Contains(t, out, "validation passed")
	})

	t.Run("json output", func(t *testing.T) {
		in := writeInput(t, detectInput)

		out, err := runCommand(t, "validate", "--in", in, "--json")
		require.NoError(t, err)
		assert.Contains(t, out, `"valid": true`)
	})

	t.Run("missing text field", func(t *testing.T) {
		in := writeInput(t, `{"invalid": "json without text field"}`+"\n")

		_, err := runCommand(t, "validate", "--in", in)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "'text' field")
	})

	t.Run("error beyond sample is ignored unless all lines are checked", func(t *testing.T) {
		in := writeInput(t, "{\"text\":\"a\"}\n{\"text\":\"b\"}\nbroken\n")

		_, err := runCommand(t, "validate", "--in", in, "--sample", "2")
		assert.NoError(t, err)

		_, err = runCommand(t, "validate", "--in", in, "--sample", "0")
		assert.Error(t, err)
	})
}

func TestValidateFile(t *testing.T) {
	t.Run("directory", func(t *testing.T) {
		err := validateFile(t.TempDir(), jsonlSampleSize)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not a file")
	})

	t.Run("missing", func(t *testing.T) {
		err := validateFile(filepath.Join(t.TempDir(), "nope.jsonl"), jsonlSampleSize)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.jsonl")
		require.NoError(t, os.WriteFile(path, nil, 0644))
		assert.NoError(t, validateFile(path, jsonlSampleSize))
	})
}
