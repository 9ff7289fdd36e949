// Package jsoncheck judges extracted payloads: a cheap plausibility
// probe for use during extraction and a full check for written files.
package jsoncheck

import (
	"encoding/json"
	"strings"

	"jsonlift/internal/textio"
)

// ProbeResult classifies the quick structural sniff run on a payload
// right after it is written.
type ProbeResult string

const (
	ProbePlausible ProbeResult = "plausible"
	ProbeSuspect   ProbeResult = "suspect"
	ProbeNotJSON   ProbeResult = "not_json"
)

// Probe checks whether value looks like the start of a JSON document
// without decoding all of it. The first budget runes of the raw value
// get a closing bracket or brace appended, chosen by the trimmed value's
// first character, and that sample must decode. The closer is appended
// even when the whole value fits the budget, so a short complete payload
// probes as suspect; the full check is what settles it.
func Probe(value string, budget int) ProbeResult {
	trimmed := strings.TrimSpace(value)
	var closer string
	switch {
	case strings.HasPrefix(trimmed, "["):
		closer = "]"
	case strings.HasPrefix(trimmed, "{"):
		closer = "}"
	default:
		return ProbeNotJSON
	}
	sample := textio.TruncateRunes(value, budget) + closer
	if json.Valid([]byte(sample)) {
		return ProbePlausible
	}
	return ProbeSuspect
}
