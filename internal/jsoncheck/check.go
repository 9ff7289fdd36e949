package jsoncheck

import (
	"encoding/json"
	"os"
	"strings"
	"unicode/utf8"
)

// Verdict classifies the outcome of a full check on one file.
type Verdict string

const (
	VerdictValid      Verdict = "valid"
	VerdictEmpty      Verdict = "empty"
	VerdictWrongStart Verdict = "wrong_start"
	VerdictParseError Verdict = "parse_error"
	VerdictUnreadable Verdict = "unreadable"
)

// Report describes everything a check learned about one payload.
type Report struct {
	Verdict Verdict

	// FirstChar and LastChar are the first and last non-whitespace
	// characters, set for every non-empty payload.
	FirstChar rune
	LastChar  rune

	// TrailingSuspect means the payload does not end with ] or }. A
	// warning on its own, not a failure.
	TrailingSuspect bool

	// ParseErr carries the decoder message for VerdictParseError,
	// ReadErr the underlying error for VerdictUnreadable.
	ParseErr string
	ReadErr  string

	// Raw delimiter counts over the whole payload, string bodies
	// included, filled for VerdictParseError. Positive means unclosed.
	BraceBalance   int
	BracketBalance int
}

// Passed reports whether the verdict is the one success.
func (r *Report) Passed() bool {
	return r.Verdict == VerdictValid
}

// Check runs the full structural check over a payload: non-empty, starts
// with [ or {, decodes as JSON. A payload that starts well but fails to
// decode gets its brace and bracket balances counted as a repair hint.
func Check(content string) *Report {
	rep := &Report{}

	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		rep.Verdict = VerdictEmpty
		return rep
	}

	rep.FirstChar, _ = utf8.DecodeRuneInString(trimmed)
	rep.LastChar, _ = utf8.DecodeLastRuneInString(trimmed)

	if rep.FirstChar != '[' && rep.FirstChar != '{' {
		rep.Verdict = VerdictWrongStart
		return rep
	}
	if rep.LastChar != ']' && rep.LastChar != '}' {
		rep.TrailingSuspect = true
	}

	var decoded any
	if err := json.Unmarshal([]byte(content), &decoded); err != nil {
		rep.Verdict = VerdictParseError
		rep.ParseErr = err.Error()
		rep.BraceBalance = strings.Count(content, "{") - strings.Count(content, "}")
		rep.BracketBalance = strings.Count(content, "[") - strings.Count(content, "]")
		return rep
	}

	rep.Verdict = VerdictValid
	return rep
}

// CheckFile reads and checks path. This read is strict, unlike the
// lossy extraction reads: content that is not valid UTF-8 counts as
// unreadable, the same as an I/O failure.
func CheckFile(path string) *Report {
	b, err := os.ReadFile(path)
	if err != nil {
		return &Report{Verdict: VerdictUnreadable, ReadErr: err.Error()}
	}
	if !utf8.Valid(b) {
		return &Report{Verdict: VerdictUnreadable, ReadErr: "content is not valid UTF-8"}
	}
	return Check(string(b))
}
