// Package config provides configuration management for langid.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/ar4mirez/langid/internal/classify"
)

// Config holds all configuration for langid.
type Config struct {
	// Log configuration
	Log LogConfig `mapstructure:"log"`

	// Batch processing configuration
	Batch BatchConfig `mapstructure:"batch"`

	// Lexicon configuration
	Lexicon LexiconConfig `mapstructure:"lexicon"`

	// Classifier constants
	Classifier classify.Config `mapstructure:"classifier"`

	// Metrics configuration
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, console
}

// BatchConfig holds batch processing configuration.
type BatchConfig struct {
	Workers   int `mapstructure:"workers"` // 0 uses one worker per CPU
	ChunkSize int `mapstructure:"chunk_size"`
}

// LexiconConfig lists word files merged into the built-in lexicons.
type LexiconConfig struct {
	EnglishExtra []string `mapstructure:"english_extra"`
	HindiExtra   []string `mapstructure:"hindi_extra"`
}

// MetricsConfig holds metrics export configuration.
type MetricsConfig struct {
	Namespace string `mapstructure:"namespace"`
	Textfile  string `mapstructure:"textfile"` // empty disables the export
}

// defaults holds the default configuration values.
var defaults = map[string]interface{}{
	"log.level":  "info",
	"log.format": "console",

	"batch.workers":    0,
	"batch.chunk_size": 1000,

	"lexicon.english_extra": []string{},
	"lexicon.hindi_extra":   []string{},

	"classifier.dominance_factor":   3.0,
	"classifier.mixed_min_ratio":    0.15,
	"classifier.mixed_strong_ratio": 0.30,
	"classifier.mixed_script_ratio": 0.20,

	"classifier.base_confidence":        0.30,
	"classifier.long_text_tokens":       10,
	"classifier.long_text_boost":        0.20,
	"classifier.medium_text_tokens":     4,
	"classifier.medium_text_boost":      0.10,
	"classifier.script_dominance_ratio": 0.80,
	"classifier.script_dominance_boost": 0.10,
	"classifier.script_agreement_boost": 0.10,
	"classifier.lexicon_min_ratio":      0.15,
	"classifier.lexicon_full_ratio":     0.60,
	"classifier.lexicon_min_boost":      0.15,
	"classifier.lexicon_max_boost":      0.30,
	"classifier.mixed_strong_boost":     0.05,

	"classifier.short_text_tokens":       6,
	"classifier.short_text_penalty":      0.05,
	"classifier.very_short_text_tokens":  4,
	"classifier.very_short_text_penalty": 0.15,
	"classifier.mixed_penalty":           0.10,
	"classifier.noise_ratio_threshold":   0.50,
	"classifier.noise_min_penalty":       0.30,
	"classifier.noise_max_penalty":       0.40,
	"classifier.unknown_penalty":         0.15,

	"classifier.max_confidence":   0.95,
	"classifier.short_text_cap":   0.85,
	"classifier.confidence_floor": 0.05,

	"metrics.namespace": "langid",
	"metrics.textfile":  "",
}

// Load loads configuration from environment variables and an optional
// config file. When path is empty, langid.yaml is searched for in the
// usual locations and a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Set defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// Environment variables
	v.SetEnvPrefix("LANGID")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindShortEnvVars(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("langid")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/langid")
		v.AddConfigPath("$HOME/.langid")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// bindShortEnvVars binds the flat LANGID_* names for the most used keys.
func bindShortEnvVars(v *viper.Viper) {
	shortMappings := map[string]string{
		"WORKERS":      "batch.workers",
		"CHUNK_SIZE":   "batch.chunk_size",
		"METRICS_FILE": "metrics.textfile",
	}

	for envSuffix, configKey := range shortMappings {
		_ = v.BindEnv(configKey, "LANGID_"+envSuffix)
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", c.Log.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[c.Log.Format] {
		return fmt.Errorf("invalid log format: %s (valid: json, console)", c.Log.Format)
	}

	if c.Batch.Workers < 0 {
		return fmt.Errorf("invalid worker count: %d", c.Batch.Workers)
	}
	if c.Batch.ChunkSize < 1 {
		return fmt.Errorf("chunk size too small: %d (minimum: 1)", c.Batch.ChunkSize)
	}

	if c.Metrics.Namespace == "" {
		return fmt.Errorf("metrics namespace is required")
	}

	if err := c.Classifier.Validate(); err != nil {
		return fmt.Errorf("classifier: %w", err)
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Log: {Level: %s, Format: %s}, Batch: {Workers: %d, ChunkSize: %d}, Lexicon: {English: %d, Hindi: %d}, Metrics: {Namespace: %s}}",
		c.Log.Level,
		c.Log.Format,
		c.Batch.Workers,
		c.Batch.ChunkSize,
		len(c.Lexicon.EnglishExtra),
		len(c.Lexicon.HindiExtra),
		c.Metrics.Namespace,
	)
}
