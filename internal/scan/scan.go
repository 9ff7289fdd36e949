// Package scan iterates records from delimited text files and Excel
// workbooks and selects the payload field within a record.
package scan

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"jsonlift/internal/dialect"
	"jsonlift/internal/textio"
)

// Record is one input row. Number is 1-based and counts records in input
// order, including blank ones, which carry zero fields.
type Record struct {
	Number int
	Fields []string
}

// Empty reports whether the record has no fields at all.
func (r *Record) Empty() bool {
	return len(r.Fields) == 0
}

// Source yields records in input order. Next returns io.EOF after the
// last record.
type Source interface {
	Next() (*Record, error)
}

// Open returns a Source for path, chosen by extension: .xlsx workbooks
// are read from their first sheet, anything else is parsed as delimited
// text using d.
func Open(path string, d dialect.Dialect) (Source, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return openWorkbook(path)
	}
	content, err := textio.ReadFileLossy(path)
	if err != nil {
		return nil, err
	}
	return NewCSVSource(content, d), nil
}

// LongestField returns the record field with the most runes and its
// index. The first occurrence wins ties. ok is false when the record has
// no fields.
func LongestField(fields []string) (value string, index int, ok bool) {
	if len(fields) == 0 {
		return "", 0, false
	}
	index = 0
	longest := utf8.RuneCountInString(fields[0])
	for i := 1; i < len(fields); i++ {
		if n := utf8.RuneCountInString(fields[i]); n > longest {
			index, longest = i, n
		}
	}
	return fields[index], index, true
}
