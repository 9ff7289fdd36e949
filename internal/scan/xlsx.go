package scan

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// xlsxSource yields the rows of a workbook's first sheet. Rows with no
// cell values come back from excelize as empty slices, which keeps the
// zero-field record semantics of the CSV path.
type xlsxSource struct {
	rows [][]string
	next int
}

func openWorkbook(path string) (Source, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheetName, err)
	}
	return &xlsxSource{rows: rows}, nil
}

func (s *xlsxSource) Next() (*Record, error) {
	if s.next >= len(s.rows) {
		return nil, io.EOF
	}
	s.next++
	return &Record{Number: s.next, Fields: s.rows[s.next-1]}, nil
}
