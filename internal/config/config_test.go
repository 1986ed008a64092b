package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ar4mirez/langid/internal/classify"
)

func TestLoad_Defaults(t *testing.T) {
	clearEnvVars(t)
	chdirTemp(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Verify log defaults
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)

	// Verify batch defaults
	assert.Equal(t, 0, cfg.Batch.Workers)
	assert.Equal(t, 1000, cfg.Batch.ChunkSize)

	// Verify lexicon defaults
	assert.Empty(t, cfg.Lexicon.EnglishExtra)
	assert.Empty(t, cfg.Lexicon.HindiExtra)

	// Verify metrics defaults
	assert.Equal(t, "langid", cfg.Metrics.Namespace)
	assert.Empty(t, cfg.Metrics.Textfile)
}

func TestLoad_ClassifierDefaultsMatchEngine(t *testing.T) {
	clearEnvVars(t)
	chdirTemp(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, classify.DefaultConfig(), cfg.Classifier)
}

func TestLoad_EnvVarOverrides(t *testing.T) {
	clearEnvVars(t)
	chdirTemp(t)

	t.Setenv("LANGID_LOG_LEVEL", "debug")
	t.Setenv("LANGID_LOG_FORMAT", "json")
	t.Setenv("LANGID_BATCH_WORKERS", "4")
	t.Setenv("LANGID_CLASSIFIER_DOMINANCE_FACTOR", "2.5")
	t.Setenv("LANGID_METRICS_NAMESPACE", "journal")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 4, cfg.Batch.Workers)
	assert.Equal(t, 2.5, cfg.Classifier.DominanceFactor)
	assert.Equal(t, "journal", cfg.Metrics.Namespace)
}

func TestLoad_ShortEnvVars(t *testing.T) {
	clearEnvVars(t)
	chdirTemp(t)

	t.Setenv("LANGID_WORKERS", "3")
	t.Setenv("LANGID_CHUNK_SIZE", "50")
	t.Setenv("LANGID_METRICS_FILE", "/tmp/langid.prom")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Batch.Workers)
	assert.Equal(t, 50, cfg.Batch.ChunkSize)
	assert.Equal(t, "/tmp/langid.prom", cfg.Metrics.Textfile)
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnvVars(t)
	tmpDir := chdirTemp(t)

	configContent := `
log:
  level: warn
batch:
  workers: 2
  chunk_size: 10
lexicon:
  english_extra:
    - words/en.txt
classifier:
  mixed_min_ratio: 0.2
`
	err := os.WriteFile(filepath.Join(tmpDir, "langid.yaml"), []byte(configContent), 0644)
	require.NoError(t, err)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 2, cfg.Batch.Workers)
	assert.Equal(t, 10, cfg.Batch.ChunkSize)
	assert.Equal(t, []string{"words/en.txt"}, cfg.Lexicon.EnglishExtra)
	assert.Equal(t, 0.2, cfg.Classifier.MixedMinRatio)
	// Untouched classifier keys keep their defaults.
	assert.Equal(t, 0.95, cfg.Classifier.MaxConfidence)
}

func TestLoad_ExplicitPath(t *testing.T) {
	clearEnvVars(t)
	chdirTemp(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("metrics:\n  namespace: custom\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "custom", cfg.Metrics.Namespace)

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}

func TestLoad_InvalidConfig(t *testing.T) {
	clearEnvVars(t)
	chdirTemp(t)

	t.Setenv("LANGID_CLASSIFIER_MAX_CONFIDENCE", "1.5")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.Contains(t, err.Error(), "classifier")
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"invalid log level", func(c *Config) { c.Log.Level = "trace" }, "invalid log level"},
		{"invalid log format", func(c *Config) { c.Log.Format = "xml" }, "invalid log format"},
		{"negative workers", func(c *Config) { c.Batch.Workers = -1 }, "invalid worker count"},
		{"zero chunk size", func(c *Config) { c.Batch.ChunkSize = 0 }, "chunk size too small"},
		{"empty namespace", func(c *Config) { c.Metrics.Namespace = "" }, "metrics namespace is required"},
		{"bad classifier", func(c *Config) { c.Classifier.DominanceFactor = 0.5 }, "classifier: dominance factor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_Validate_AllLogLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		t.Run(level, func(t *testing.T) {
			cfg := validConfig()
			cfg.Log.Level = level
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestConfig_String(t *testing.T) {
	cfg := validConfig()
	cfg.Lexicon.HindiExtra = []string{"a.txt", "b.txt"}

	s := cfg.String()
	assert.Contains(t, s, "Level: info")
	assert.Contains(t, s, "ChunkSize: 1000")
	assert.Contains(t, s, "Hindi: 2")
	assert.Contains(t, s, "Namespace: langid")
}

func validConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Batch: BatchConfig{
			Workers:   0,
			ChunkSize: 1000,
		},
		Classifier: classify.DefaultConfig(),
		Metrics: MetricsConfig{
			Namespace: "langid",
		},
	}
}

// chdirTemp moves into an empty directory so no stray langid.yaml is found.
func chdirTemp(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})
	require.NoError(t, os.Chdir(tmpDir))
	t.Setenv("HOME", tmpDir)

	return tmpDir
}

// clearEnvVars unsets all LANGID_ environment variables.
func clearEnvVars(t *testing.T) {
	t.Helper()

	envVars := []string{
		"LANGID_LOG_LEVEL",
		"LANGID_LOG_FORMAT",
		"LANGID_BATCH_WORKERS",
		"LANGID_BATCH_CHUNK_SIZE",
		"LANGID_CLASSIFIER_DOMINANCE_FACTOR",
		"LANGID_CLASSIFIER_MAX_CONFIDENCE",
		"LANGID_METRICS_NAMESPACE",
		"LANGID_METRICS_TEXTFILE",
		"LANGID_WORKERS",
		"LANGID_CHUNK_SIZE",
		"LANGID_METRICS_FILE",
	}

	for _, env := range envVars {
		t.Setenv(env, "")
		os.Unsetenv(env)
	}
}
