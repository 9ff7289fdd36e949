package dialect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		sample   string
		expected rune
	}{
		{"comma", "a,b,c\nd,e,f\n", ','},
		{"semicolon", "a;b;c\nd;e;f\n", ';'},
		{"tab", "a\tb\tc\nd\te\tf\n", '\t'},
		{"pipe", "a|b|c\nd|e|f\n", '|'},
		{"single line", "id;payload\n", ';'},
		{"quoted delimiters ignored", `a;"x,y,z";c` + "\n" + `d;"1,2";f` + "\n", ';'},
		{"inconsistent counts fall back", "a;b\nc;d;e\nf\n", ','},
		{"no delimiter at all", "justoneword\nanother\n", ','},
		{"empty sample", "", ','},
		{"blank lines only", "\n\n\n", ','},
		{"comma wins ties", "a,b;c\nd,e;f\n", ','},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Detect(tt.sample).Comma)
		})
	}
}

func TestDetect_CutSampleDropsPartialLine(t *testing.T) {
	// A sample cut mid-line must not let the ragged tail spoil the vote.
	sample := "a;b;c\nd;e;f\ng;h"
	assert.Equal(t, ';', Detect(sample).Comma)
}

func TestDetect_CapsInspectedLines(t *testing.T) {
	// Consistent early lines win even when later ones disagree.
	var b strings.Builder
	for i := 0; i < maxSniffLines; i++ {
		b.WriteString("a;b;c\n")
	}
	b.WriteString("x;y\n")
	assert.Equal(t, ';', Detect(b.String()).Comma)
}

func TestDefault(t *testing.T) {
	assert.Equal(t, ',', Default().Comma)
}
