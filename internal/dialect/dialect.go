// Package dialect guesses how a delimited input is tokenized.
package dialect

import "strings"

// Dialect describes how records are split into fields. Parsing is always
// permissive beyond the delimiter itself: lazy quotes, variable field
// counts per record.
type Dialect struct {
	Comma rune
}

// Default returns the comma dialect, used whenever detection is
// inconclusive.
func Default() Dialect {
	return Dialect{Comma: ','}
}

// candidates in preference order. Comma wins ties.
var candidates = []rune{',', ';', '\t', '|'}

// maxSniffLines caps how many sample lines the detector inspects.
const maxSniffLines = 20

// Detect guesses the delimiter from a sample of the input, typically its
// first few thousand characters. A candidate scores only when it appears
// the same nonzero number of times, outside quoted regions, on every
// inspected line. Detect never fails; anything inconclusive falls back
// to Default.
func Detect(sample string) Dialect {
	lines := sniffLines(sample)
	if len(lines) == 0 {
		return Default()
	}

	best := Default()
	bestScore := 0
	for _, c := range candidates {
		if score := scoreDelimiter(lines, c); score > bestScore {
			best = Dialect{Comma: c}
			bestScore = score
		}
	}
	return best
}

// sniffLines returns up to maxSniffLines non-empty lines of the sample.
// The last line is dropped when the sample was cut mid-line, unless it
// is all we have.
func sniffLines(sample string) []string {
	var lines []string
	for _, line := range strings.Split(sample, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == maxSniffLines {
			return lines
		}
	}
	if len(lines) > 1 && !strings.HasSuffix(sample, "\n") {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// scoreDelimiter returns the per-line occurrence count of c when that
// count is nonzero and identical across all lines, else 0.
func scoreDelimiter(lines []string, c rune) int {
	want := -1
	for _, line := range lines {
		n := countOutsideQuotes(line, c)
		if want < 0 {
			want = n
			continue
		}
		if n != want {
			return 0
		}
	}
	if want <= 0 {
		return 0
	}
	return want
}

func countOutsideQuotes(s string, c rune) int {
	n := 0
	inQuotes := false
	for _, r := range s {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == c && !inQuotes:
			n++
		}
	}
	return n
}
