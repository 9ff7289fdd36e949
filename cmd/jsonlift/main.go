// Command jsonlift recovers JSON payloads embedded as oversized fields
// in CSV or Excel rows, writing each payload back out as a standalone
// .json file.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"jsonlift/internal/config"
	"jsonlift/internal/dialect"
	"jsonlift/internal/extract"
	"jsonlift/internal/inspect"
	"jsonlift/internal/jsoncheck"
	"jsonlift/internal/logging"
	"jsonlift/internal/manifest"
	"jsonlift/internal/report"
	"jsonlift/internal/scan"
	"jsonlift/internal/textio"
)

var (
	// Global flags
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
	rep    *report.Reporter
)

var rootCmd = &cobra.Command{
	Use:   "jsonlift <input> <output> [row]",
	Short: "Extract JSON payloads embedded in CSV rows",
	Long: `jsonlift recovers JSON payloads that were dumped into CSV or Excel
fields, typically API export logs, and writes them back out as
standalone .json files for reprocessing.

With a row number, that one row's payload is written to <output>.
Without one, every row's payload is written to its own file named
<output>_row_001.json, <output>_row_002.json and so on, plus a
manifest indexing the run.`,
	Example: `  jsonlift data.csv extracted.json 4    extract row 4 only
  jsonlift data.csv output/data         extract every row under output/`,
	Args: cobra.RangeArgs(2, 3),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if verbose {
			cfg.Log.Level = "debug"
		}
		logger, err = logging.New(cfg.Log)
		if err != nil {
			return err
		}
		rep = report.New(cmd.OutOrStdout())
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Failures past this point are already reported on the console.
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return runExtract(args)
	},
}

// validateCmd exposes the post-extraction check as a standalone command.
var validateCmd = &cobra.Command{
	Use:   "validate <file.json>...",
	Short: "Run the structural JSON check on extracted files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		failed := 0
		for _, path := range args {
			check := jsoncheck.CheckFile(path)
			check.Render(rep, path)
			if !check.Passed() {
				failed++
			}
		}
		if failed > 0 {
			rep.Blank()
			rep.Printf("✗ %d of %d files failed validation", failed, len(args))
			return fmt.Errorf("%d of %d files failed validation", failed, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	// A row argument like -1 is a positional, not a shorthand flag; it
	// must reach the range check to be rejected with the range error.
	rootCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(validateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runExtract(args []string) error {
	input, output := args[0], args[1]

	if _, err := os.Stat(input); err != nil {
		rep.Printf("Error: %s not found", input)
		return err
	}

	summary, err := inspect.File(input, inspect.Options{
		PreviewLines: cfg.Analyze.PreviewLines,
		PreviewChars: cfg.Analyze.PreviewChars,
	})
	if err != nil {
		rep.Printf("Error: %v", err)
		return err
	}
	summary.Render(rep)
	rep.Rule()

	if len(args) == 3 {
		return extractSingle(input, output, args[2], summary.TotalLines)
	}
	return extractAll(input, output)
}

func extractSingle(input, output, rowArg string, totalLines int) error {
	rowNum, err := strconv.Atoi(rowArg)
	if err != nil {
		rep.Printf("Error: '%s' is not a valid row number", rowArg)
		return fmt.Errorf("invalid row number %q", rowArg)
	}
	if rowNum < 1 {
		rep.Printf("Error: Row number must be positive")
		return errors.New("row number must be positive")
	}
	if rowNum > totalLines {
		rep.Printf("Error: Row %d requested but file only has %d lines", rowNum, totalLines)
		return extract.ErrRowOutOfRange
	}

	src, err := openSource(input)
	if err != nil {
		rep.Printf("✗ Error extracting row: %v", err)
		return err
	}

	ex := newExtractor()
	if _, err := ex.Row(src, output, rowNum); err != nil {
		return err
	}

	rep.Blank()
	rep.Rule()
	rep.Printf("Extraction complete!")

	// The check is advisory here: a cleanly saved payload that fails it
	// still counts as a successful extraction.
	jsoncheck.CheckFile(output).Render(rep, output)

	rep.Blank()
	rep.Printf("Next steps:")
	rep.Printf("  1. View: head -c 1000 %s", output)
	rep.Printf("  2. Validate: jsonlift validate %s", output)
	return nil
}

func extractAll(input, output string) error {
	rep.Printf("No row number specified - extracting all rows...")

	dir, stem := extract.SplitPrefix(output)
	if dir != "." {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				rep.Printf("✗ Error extracting rows: %v", err)
				return err
			}
			rep.Printf("Created directory: %s", dir)
		}
	}

	src, err := openSource(input)
	if err != nil {
		rep.Printf("✗ Error extracting rows: %v", err)
		return err
	}

	ex := newExtractor()
	res, err := ex.All(src, output)
	if err != nil {
		return err
	}

	rep.Blank()
	rep.Rule()
	rep.Printf("Extraction complete!")

	m := manifest.Build(input, res)
	if path, err := m.Write(output); err != nil {
		logger.Warn("manifest write failed", zap.Error(err))
	} else {
		logger.Debug("manifest written", zap.String("path", path))
	}

	pattern := filepath.Join(dir, stem+"_row_*.json")
	rep.Blank()
	rep.Printf("To validate all files:")
	rep.Printf("  for file in %s; do", pattern)
	rep.Printf("    echo \"Checking $file...\"")
	rep.Printf("    jsonlift validate \"$file\" > /dev/null && echo \"  ✓ Valid\" || echo \"  ✗ Invalid\"")
	rep.Printf("  done")
	return nil
}

func newExtractor() *extract.Extractor {
	return extract.New(rep, logger, extract.Options{
		MinFieldRunes: cfg.Extract.MinFieldRunes,
		ProbeBudget:   cfg.Probe.Budget,
	})
}

// openSource opens input for record iteration. Delimited inputs are read
// once: the same content feeds the delimiter sniff and the parse.
func openSource(input string) (scan.Source, error) {
	if strings.EqualFold(filepath.Ext(input), ".xlsx") {
		return scan.Open(input, dialect.Default())
	}
	content, err := textio.ReadFileLossy(input)
	if err != nil {
		return nil, err
	}
	sample := textio.TruncateRunes(content, cfg.Dialect.SampleSize)
	d := dialect.Detect(sample)
	logger.Debug("dialect detected", zap.String("delimiter", strconv.QuoteRune(d.Comma)))
	return scan.NewCSVSource(content, d), nil
}
