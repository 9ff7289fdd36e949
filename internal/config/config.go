package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all tool configuration. Every key has a default matching
// the tool's built-in behavior, so nothing needs to be set for normal use.
type Config struct {
	Analyze AnalyzeConfig
	Dialect DialectConfig
	Probe   ProbeConfig
	Extract ExtractConfig
	Log     LogConfig
}

// AnalyzeConfig holds structure analysis settings.
type AnalyzeConfig struct {
	PreviewLines int `mapstructure:"preview_lines"`
	PreviewChars int `mapstructure:"preview_chars"`
}

// DialectConfig holds delimiter detection settings.
type DialectConfig struct {
	SampleSize int `mapstructure:"sample_size"`
}

// ProbeConfig holds JSON plausibility probe settings.
type ProbeConfig struct {
	Budget int `mapstructure:"budget"`
}

// ExtractConfig holds extraction settings.
type ExtractConfig struct {
	MinFieldRunes int `mapstructure:"min_field_runes"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the JSONLIFT_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("JSONLIFT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Analyze defaults
	v.SetDefault("analyze.preview_lines", 10)
	v.SetDefault("analyze.preview_chars", 500)

	// Dialect defaults
	v.SetDefault("dialect.sample_size", 10000)

	// Probe defaults
	v.SetDefault("probe.budget", 1000)

	// Extract defaults
	v.SetDefault("extract.min_field_runes", 2)

	// Log defaults (warn keeps diagnostics out of normal console output)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"analyze.preview_lines":   "JSONLIFT_ANALYZE_PREVIEW_LINES",
		"analyze.preview_chars":   "JSONLIFT_ANALYZE_PREVIEW_CHARS",
		"dialect.sample_size":     "JSONLIFT_DIALECT_SAMPLE_SIZE",
		"probe.budget":            "JSONLIFT_PROBE_BUDGET",
		"extract.min_field_runes": "JSONLIFT_EXTRACT_MIN_FIELD_RUNES",
		"log.level":               "JSONLIFT_LOG_LEVEL",
		"log.format":              "JSONLIFT_LOG_FORMAT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}
	cfg.Analyze = AnalyzeConfig{
		PreviewLines: v.GetInt("analyze.preview_lines"),
		PreviewChars: v.GetInt("analyze.preview_chars"),
	}
	cfg.Dialect = DialectConfig{
		SampleSize: v.GetInt("dialect.sample_size"),
	}
	cfg.Probe = ProbeConfig{
		Budget: v.GetInt("probe.budget"),
	}
	cfg.Extract = ExtractConfig{
		MinFieldRunes: v.GetInt("extract.min_field_runes"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Analyze.PreviewLines < 0 {
		return fmt.Errorf("analyze.preview_lines must not be negative, got %d", c.Analyze.PreviewLines)
	}
	if c.Analyze.PreviewChars < 1 {
		return fmt.Errorf("analyze.preview_chars must be positive, got %d", c.Analyze.PreviewChars)
	}
	if c.Dialect.SampleSize < 1 {
		return fmt.Errorf("dialect.sample_size must be positive, got %d", c.Dialect.SampleSize)
	}
	if c.Probe.Budget < 1 {
		return fmt.Errorf("probe.budget must be positive, got %d", c.Probe.Budget)
	}
	if c.Extract.MinFieldRunes < 0 {
		return fmt.Errorf("extract.min_field_runes must not be negative, got %d", c.Extract.MinFieldRunes)
	}
	return nil
}
