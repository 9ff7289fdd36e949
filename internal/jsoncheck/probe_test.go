package jsoncheck

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProbe(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		budget   int
		expected ProbeResult
	}{
		{"truncated object closes cleanly", `{"a": 1`, 1000, ProbePlausible},
		{"array cut inside a number", "[" + strings.Repeat("1", 1200), 1000, ProbePlausible},
		{"array cut after a comma", `["abc", "de`, 8, ProbeSuspect},
		{"leading whitespace tolerated", `  [1, 2`, 1000, ProbePlausible},
		{"plain text", "hello world", 1000, ProbeNotJSON},
		{"xml-ish", "<data>1</data>", 1000, ProbeNotJSON},
		{"empty value", "", 1000, ProbeNotJSON},
		{"whitespace only", "   ", 1000, ProbeNotJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Probe(tt.value, tt.budget))
		})
	}
}

func TestProbe_ShortCompletePayloadIsSuspect(t *testing.T) {
	// The closer is appended unconditionally, so a complete payload under
	// the budget gains a stray bracket and fails the sample decode.
	assert.Equal(t, ProbeSuspect, Probe(`{"a": 1}`, 1000))
	assert.Equal(t, ProbeSuspect, Probe(`[1, 2, 3]`, 1000))
}

func TestProbe_BudgetCountsRunes(t *testing.T) {
	// Multibyte runes must not be split mid-sequence by the budget cut.
	value := "[\"" + strings.Repeat("é", 20)
	assert.Equal(t, ProbeSuspect, Probe(value, 10))
}
