// Package inspect summarizes the physical structure of an input file
// before extraction, so oversized lines with embedded payloads are
// visible up front.
package inspect

import (
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"jsonlift/internal/dialect"
	"jsonlift/internal/report"
	"jsonlift/internal/scan"
	"jsonlift/internal/textio"
)

// Options bounds how much of the input the summary previews.
type Options struct {
	PreviewLines int
	PreviewChars int
}

// LinePreview is one previewed line. Chars counts runes including the
// line terminator. Text is either the raw line clipped to the preview
// budget or, for short lines, the line with surrounding whitespace
// trimmed.
type LinePreview struct {
	Number  int
	Chars   int
	Text    string
	Clipped bool
}

// Summary describes the shape of an input file.
type Summary struct {
	TotalLines int
	Previews   []LinePreview
	Remaining  int
	Workbook   bool
}

// File analyzes path: total physical line count plus previews of the
// first few lines. For .xlsx inputs the first sheet's rows stand in for
// lines, with cells joined for the preview text.
func File(path string, opts Options) (*Summary, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return workbookSummary(path, opts)
	}
	content, err := textio.ReadFileLossy(path)
	if err != nil {
		return nil, err
	}
	return summarize(textio.PhysicalLines(content), opts), nil
}

func workbookSummary(path string, opts Options) (*Summary, error) {
	src, err := scan.Open(path, dialect.Default())
	if err != nil {
		return nil, err
	}
	var lines []string
	for {
		rec, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		lines = append(lines, strings.Join(rec.Fields, ", "))
	}
	s := summarize(lines, opts)
	s.Workbook = true
	return s, nil
}

func summarize(lines []string, opts Options) *Summary {
	s := &Summary{TotalLines: len(lines)}

	n := opts.PreviewLines
	if n > len(lines) {
		n = len(lines)
	}
	for i := 0; i < n; i++ {
		line := lines[i]
		p := LinePreview{Number: i + 1, Chars: utf8.RuneCountInString(line)}
		if p.Chars > opts.PreviewChars {
			p.Text = textio.TruncateRunes(line, opts.PreviewChars)
			p.Clipped = true
		} else {
			p.Text = strings.TrimSpace(line)
		}
		s.Previews = append(s.Previews, p)
	}
	if len(lines) > opts.PreviewLines {
		s.Remaining = len(lines) - opts.PreviewLines
	}
	return s
}

// Render writes the summary in the analyzer's console format.
func (s *Summary) Render(r *report.Reporter) {
	if s.Workbook {
		r.Printf("Analyzing workbook structure...")
	} else {
		r.Printf("Analyzing CSV structure...")
	}
	r.Rule()
	r.Printf("Total lines in file: %d", s.TotalLines)
	for _, p := range s.Previews {
		r.Printf("Line %d: %s chars", p.Number, report.Chars(p.Chars))
		if p.Clipped {
			r.Printf("  Preview: %s...", p.Text)
		} else {
			r.Printf("  Preview: %s", p.Text)
		}
	}
	if s.Remaining > 0 {
		r.Printf("... and %d more lines", s.Remaining)
	}
}
