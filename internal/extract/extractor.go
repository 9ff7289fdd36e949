// Package extract pulls embedded JSON payloads out of scanned records
// and writes them to disk, one file per payload, byte for byte as they
// appeared in the source field.
package extract

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"jsonlift/internal/jsoncheck"
	"jsonlift/internal/report"
	"jsonlift/internal/scan"
)

// Options holds extraction tunables, normally fed from config.
type Options struct {
	// MinFieldRunes is the smallest trimmed payload worth writing in
	// all-rows mode. Shorter fields are skipped as insignificant.
	MinFieldRunes int
	// ProbeBudget caps how many runes the plausibility probe samples.
	ProbeBudget int
}

// Extractor runs single-row and all-rows extraction over a record
// source, reporting progress as it goes.
type Extractor struct {
	rep    *report.Reporter
	logger *zap.Logger
	opts   Options
}

// New creates an Extractor reporting to rep and logging diagnostics to
// logger.
func New(rep *report.Reporter, logger *zap.Logger, opts Options) *Extractor {
	return &Extractor{rep: rep, logger: logger, opts: opts}
}

// RowResult describes one successful single-row extraction.
type RowResult struct {
	Row        int
	Chars      int
	OutputPath string
	Probe      jsoncheck.ProbeResult
}

// Row scans src to record rowNum and writes that record's longest field
// to outPath verbatim, overwriting anything already there. The payload
// is probed afterward; the probe outcome is advisory and never undoes
// the write.
func (e *Extractor) Row(src scan.Source, outPath string, rowNum int) (*RowResult, error) {
	e.rep.Blank()
	e.rep.Printf("Extracting row %d...", rowNum)
	e.rep.Divider()

	seen := 0
	for {
		rec, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			e.rep.Printf("✗ Error extracting row: %v", err)
			return nil, fmt.Errorf("reading records: %w", err)
		}
		seen = rec.Number
		if rec.Number == rowNum {
			return e.extractTarget(rec, outPath)
		}
	}

	// Fewer parsed records than physical lines, usually because quoted
	// fields spanned lines.
	e.rep.Printf("✗ File only has %d rows, cannot extract row %d", seen, rowNum)
	return nil, ErrRowOutOfRange
}

func (e *Extractor) extractTarget(rec *scan.Record, outPath string) (*RowResult, error) {
	if rec.Empty() {
		e.rep.Printf("✗ Row %d is empty", rec.Number)
		return nil, ErrEmptyRow
	}

	value, _, _ := scan.LongestField(rec.Fields)
	if value == "" {
		e.rep.Printf("✗ No data found in row %d", rec.Number)
		return nil, ErrNoSignificantData
	}

	chars := utf8.RuneCountInString(value)
	e.rep.Printf("Found data: %s chars", report.Chars(chars))

	if err := os.WriteFile(outPath, []byte(value), 0644); err != nil {
		e.rep.Printf("✗ Error extracting row: %v", err)
		return nil, fmt.Errorf("writing %s: %w", outPath, err)
	}
	e.rep.Printf("✓ Saved to %s", outPath)

	probe := jsoncheck.Probe(value, e.opts.ProbeBudget)
	switch probe {
	case jsoncheck.ProbePlausible:
		e.rep.Printf("✓ JSON structure appears valid")
	case jsoncheck.ProbeNotJSON:
		e.rep.Printf("⚠ Data doesn't start with [ or { - might not be JSON")
	default:
		e.rep.Printf("⚠ JSON validation failed - may need cleaning")
	}

	e.logger.Debug("extracted row",
		zap.Int("row", rec.Number),
		zap.Int("chars", chars),
		zap.String("output", outPath),
		zap.String("probe", string(probe)))

	return &RowResult{Row: rec.Number, Chars: chars, OutputPath: outPath, Probe: probe}, nil
}

// BatchEntry describes one payload written during an all-rows run.
type BatchEntry struct {
	Row   int
	File  string
	Path  string
	Chars int
	Probe jsoncheck.ProbeResult
}

// BatchResult summarizes an all-rows run.
type BatchResult struct {
	Extracted int
	Skipped   int
	Entries   []BatchEntry
}

// All writes every record's longest field to its own file named
// <stem>_row_NNN.json beside prefix, NNN being the record number padded
// to three digits. Records with no fields and payloads below
// MinFieldRunes are skipped and counted. At least one written row makes
// the run a success.
func (e *Extractor) All(src scan.Source, prefix string) (*BatchResult, error) {
	e.rep.Blank()
	e.rep.Printf("Extracting all rows to separate JSON files...")
	e.rep.Divider()

	dir, stem := SplitPrefix(prefix)
	res := &BatchResult{}
	for {
		rec, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			e.rep.Printf("✗ Error extracting rows: %v", err)
			return nil, fmt.Errorf("reading records: %w", err)
		}

		if rec.Empty() {
			e.rep.Printf("Row %d: Empty - skipping", rec.Number)
			res.Skipped++
			continue
		}
		value, _, _ := scan.LongestField(rec.Fields)
		if value == "" || utf8.RuneCountInString(strings.TrimSpace(value)) < e.opts.MinFieldRunes {
			e.rep.Printf("Row %d: No significant data - skipping", rec.Number)
			res.Skipped++
			continue
		}

		name := fmt.Sprintf("%s_row_%03d.json", stem, rec.Number)
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(value), 0644); err != nil {
			e.rep.Printf("✗ Error extracting rows: %v", err)
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}

		chars := utf8.RuneCountInString(value)
		e.rep.Printf("Row %d: %s chars -> %s", rec.Number, report.Chars(chars), name)

		probe := jsoncheck.Probe(value, e.opts.ProbeBudget)
		if probe == jsoncheck.ProbePlausible {
			e.rep.Printf("  ✓ Valid JSON structure")
		} else {
			e.rep.Printf("  ⚠ May not be valid JSON")
		}

		res.Extracted++
		res.Entries = append(res.Entries, BatchEntry{
			Row:   rec.Number,
			File:  name,
			Path:  path,
			Chars: chars,
			Probe: probe,
		})
	}

	e.rep.Divider()
	e.rep.Printf("✓ Extracted %d rows", res.Extracted)
	if res.Skipped > 0 {
		e.rep.Printf("  Skipped %d empty/invalid rows", res.Skipped)
	}

	e.logger.Debug("batch finished",
		zap.Int("extracted", res.Extracted),
		zap.Int("skipped", res.Skipped))

	if res.Extracted == 0 {
		return nil, ErrNoRowsExtracted
	}
	return res, nil
}

// SplitPrefix splits an output prefix into directory and stem. The stem
// is the base name without its extension, so "out/data.json" and
// "out/data" both give ("out", "data").
func SplitPrefix(prefix string) (dir, stem string) {
	dir = filepath.Dir(prefix)
	stem = strings.TrimSuffix(filepath.Base(prefix), filepath.Ext(prefix))
	return dir, stem
}
