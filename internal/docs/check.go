// Package docs verifies localized documentation entry points: the
// configured entry files must exist and the index document must link to
// each required localized document.
package docs

import (
	"fmt"
	"os"
	"strings"
)

// Issue is one documentation entry-point problem.
type Issue struct {
	// File is the entry file or index document concerned.
	File string `json:"file"`

	// MissingLink is the required link absent from the index document,
	// or empty when the entry file itself is missing.
	MissingLink string `json:"missing_link,omitempty"`
}

// Config lists the documentation surface the guard verifies.
type Config struct {
	// Entrypoints are documents that must exist.
	Entrypoints []string

	// Index is the document that must contain RequiredLinks; empty
	// disables the link check.
	Index string

	// RequiredLinks are substrings the index must contain, typically
	// relative paths of localized docs.
	RequiredLinks []string
}

// Check runs the documentation entry-point pass. Missing files are
// issues, not errors; an unreadable existing index is an error.
func Check(cfg Config) ([]Issue, error) {
	var issues []Issue
	for _, path := range cfg.Entrypoints {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			issues = append(issues, Issue{File: path})
		}
	}

	if cfg.Index == "" || len(cfg.RequiredLinks) == 0 {
		return issues, nil
	}

	data, err := os.ReadFile(cfg.Index)
	if err != nil {
		if os.IsNotExist(err) {
			// Already reported above when listed as an entrypoint.
			return issues, nil
		}
		return nil, fmt.Errorf("read index document %s: %w", cfg.Index, err)
	}
	content := string(data)
	for _, link := range cfg.RequiredLinks {
		if !strings.Contains(content, link) {
			issues = append(issues, Issue{File: cfg.Index, MissingLink: link})
		}
	}
	return issues, nil
}
