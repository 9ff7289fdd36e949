package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Analyze.PreviewLines)
	assert.Equal(t, 500, cfg.Analyze.PreviewChars)
	assert.Equal(t, 10000, cfg.Dialect.SampleSize)
	assert.Equal(t, 1000, cfg.Probe.Budget)
	assert.Equal(t, 2, cfg.Extract.MinFieldRunes)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("JSONLIFT_PROBE_BUDGET", "250")
	t.Setenv("JSONLIFT_ANALYZE_PREVIEW_LINES", "3")
	t.Setenv("JSONLIFT_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 250, cfg.Probe.Budget)
	assert.Equal(t, 3, cfg.Analyze.PreviewLines)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Untouched keys keep their defaults
	assert.Equal(t, 500, cfg.Analyze.PreviewChars)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  string
		val  string
	}{
		{"zero probe budget", "JSONLIFT_PROBE_BUDGET", "0"},
		{"negative preview lines", "JSONLIFT_ANALYZE_PREVIEW_LINES", "-1"},
		{"zero sample size", "JSONLIFT_DIALECT_SAMPLE_SIZE", "0"},
		{"zero preview chars", "JSONLIFT_ANALYZE_PREVIEW_CHARS", "0"},
		{"negative min field runes", "JSONLIFT_EXTRACT_MIN_FIELD_RUNES", "-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.env, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
