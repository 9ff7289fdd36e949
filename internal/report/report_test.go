package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReporterLines(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	r.Printf("Found data: %s chars", Chars(12345))
	r.Blank()
	r.Printf("✓ Saved to %s", "out.json")

	assert.Equal(t, "Found data: 12,345 chars\n\n✓ Saved to out.json\n", buf.String())
}

func TestRuleAndDivider(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	r.Rule()
	r.Divider()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, strings.Repeat("=", 60), lines[0])
	assert.Equal(t, strings.Repeat("-", 60), lines[1])
}

func TestChars(t *testing.T) {
	tests := []struct {
		n        int
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Chars(tt.n))
	}
}
