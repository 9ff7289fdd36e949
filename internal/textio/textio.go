// Package textio reads text inputs permissively. API exports that embed
// JSON in CSV fields routinely carry stray bytes, BOMs and mixed line
// endings, so every read here cleans rather than rejects.
package textio

import (
	"os"
	"strings"
)

const bom = "\ufeff"

// ReadFileLossy reads path as UTF-8 text. Malformed byte sequences are
// dropped instead of causing an error, a leading byte order mark is
// stripped, and line endings are normalized to \n. Only I/O failures are
// returned.
func ReadFileLossy(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return Normalize(string(b)), nil
}

// Normalize applies the same cleanup to in-memory text.
func Normalize(s string) string {
	s = strings.ToValidUTF8(s, "")
	s = strings.TrimPrefix(s, bom)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// PhysicalLines splits normalized content into lines. Each line keeps its
// trailing newline so character counts include the terminator. Content
// after the final newline is a line of its own; empty content has none.
func PhysicalLines(content string) []string {
	if content == "" {
		return nil
	}
	var lines []string
	for content != "" {
		i := strings.IndexByte(content, '\n')
		if i < 0 {
			lines = append(lines, content)
			break
		}
		lines = append(lines, content[:i+1])
		content = content[i+1:]
	}
	return lines
}

// TruncateRunes returns s clipped to at most n runes.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
