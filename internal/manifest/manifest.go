// Package manifest records what an all-rows run produced, giving
// downstream reprocessing an index of the written payload files.
package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"jsonlift/internal/extract"
)

// Entry is one written payload file.
type Entry struct {
	Row   int    `json:"row"`
	File  string `json:"file"`
	Chars int    `json:"chars"`
	Probe string `json:"probe"`
}

// Manifest indexes the artifacts of one all-rows run.
type Manifest struct {
	RunID     uuid.UUID `json:"run_id"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
	Extracted int       `json:"extracted"`
	Skipped   int       `json:"skipped"`
	Files     []Entry   `json:"files"`
}

// Build assembles the manifest for a finished batch read from source.
func Build(source string, res *extract.BatchResult) *Manifest {
	m := &Manifest{
		RunID:     uuid.New(),
		Source:    source,
		CreatedAt: time.Now().UTC(),
		Extracted: res.Extracted,
		Skipped:   res.Skipped,
	}
	for _, e := range res.Entries {
		m.Files = append(m.Files, Entry{
			Row:   e.Row,
			File:  e.File,
			Chars: e.Chars,
			Probe: string(e.Probe),
		})
	}
	return m
}

// Write stores the manifest beside the run's outputs as
// <stem>_manifest.json and returns its path. The manifest is a
// convenience artifact; nothing ever reads it back on later runs.
func (m *Manifest) Write(prefix string) (string, error) {
	dir, stem := extract.SplitPrefix(prefix)
	path := filepath.Join(dir, stem+"_manifest.json")

	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return "", err
	}
	return path, nil
}
