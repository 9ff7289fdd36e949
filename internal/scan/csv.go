package scan

import (
	"encoding/csv"
	"io"
	"strings"

	"jsonlift/internal/dialect"
)

// csvSource reads delimited records from normalized content. encoding/csv
// silently skips blank lines, but a blank line is still a record here (a
// zero-field one), so record numbers stay aligned with the input. The
// source tracks the reader's byte offset and synthesizes a record for
// every blank line the reader jumped over.
type csvSource struct {
	content string
	csv     *csv.Reader
	offset  int64
	number  int
	pending []*Record
	done    bool
}

// NewCSVSource returns a Source over content, which must already be
// normalized (textio.Normalize). Parsing is permissive: lazy quotes and
// variable field counts.
func NewCSVSource(content string, d dialect.Dialect) Source {
	r := csv.NewReader(strings.NewReader(content))
	r.Comma = d.Comma
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	return &csvSource{content: content, csv: r}
}

func (s *csvSource) Next() (*Record, error) {
	for len(s.pending) == 0 && !s.done {
		fields, err := s.csv.Read()
		if err == io.EOF {
			s.done = true
			s.queueBlankLines(s.content[s.offset:])
			s.offset = int64(len(s.content))
			break
		}
		if err != nil {
			return nil, err
		}
		end := s.csv.InputOffset()
		span := s.content[s.offset:end]
		s.offset = end
		s.queueBlankLines(span)
		s.number++
		s.pending = append(s.pending, &Record{Number: s.number, Fields: fields})
	}
	if len(s.pending) == 0 {
		return nil, io.EOF
	}
	rec := s.pending[0]
	s.pending = s.pending[1:]
	return rec, nil
}

// queueBlankLines synthesizes a zero-field record for each empty line at
// the start of span. The span for a parsed record covers everything
// consumed since the previous one, so any blank lines sit at its front.
func (s *csvSource) queueBlankLines(span string) {
	for strings.HasPrefix(span, "\n") {
		s.number++
		s.pending = append(s.pending, &Record{Number: s.number})
		span = span[1:]
	}
}
