package jsoncheck

import "jsonlift/internal/report"

// Render writes the check in the validator's console format. The lines
// are the same whether the check ran right after an extraction or
// standalone.
func (r *Report) Render(rep *report.Reporter, path string) {
	rep.Blank()
	rep.Printf("Validating %s...", path)

	switch r.Verdict {
	case VerdictUnreadable:
		rep.Printf("  ✗ Error reading file: %s", r.ReadErr)
	case VerdictEmpty:
		rep.Printf("  ✗ File is empty")
	case VerdictWrongStart:
		rep.Printf("  ⚠ Doesn't start with [ or { (starts with '%c')", r.FirstChar)
	case VerdictValid, VerdictParseError:
		if r.TrailingSuspect {
			rep.Printf("  ⚠ Doesn't end with ] or } (ends with '%c')", r.LastChar)
		}
		if r.Verdict == VerdictValid {
			rep.Printf("  ✓ Valid JSON!")
			return
		}
		rep.Printf("  ✗ JSON parse error: %s", r.ParseErr)
		if r.BraceBalance != 0 {
			rep.Printf("    Unmatched braces: %+d", r.BraceBalance)
		}
		if r.BracketBalance != 0 {
			rep.Printf("    Unmatched brackets: %+d", r.BracketBalance)
		}
	}
}
