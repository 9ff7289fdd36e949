// Package report renders the tool's console output. Status lines use ✓
// for success, ⚠ for warnings and ✗ for failures; sections are framed by
// = and - rules. All user-facing progress goes through a Reporter so the
// packages doing the work never write to os.Stdout themselves.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
)

const ruleWidth = 60

// Reporter writes human-readable progress to one destination.
type Reporter struct {
	w io.Writer
}

// New creates a Reporter writing to w.
func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Printf writes one formatted line.
func (r *Reporter) Printf(format string, args ...any) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

// Blank writes an empty line.
func (r *Reporter) Blank() {
	fmt.Fprintln(r.w)
}

// Rule writes the heavy section separator.
func (r *Reporter) Rule() {
	fmt.Fprintln(r.w, strings.Repeat("=", ruleWidth))
}

// Divider writes the light section separator.
func (r *Reporter) Divider() {
	fmt.Fprintln(r.w, strings.Repeat("-", ruleWidth))
}

// Chars formats a character count with thousands separators, the way
// sizes appear everywhere in the tool's output.
func Chars(n int) string {
	return humanize.Comma(int64(n))
}
