package scan

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Finding is one suspect literal located in a scanned source file.
type Finding struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Literal string `json:"literal"`
	Site    Site   `json:"site"`
}

// Config is the static configuration of one scanner run. Target lists
// may contain glob patterns; patterns that match nothing and paths that
// do not exist are skipped, since target lists are maintained by hand
// and may reference optional files.
type Config struct {
	// UITargets and CLITargets are the files to scan, as paths or globs.
	UITargets  []string
	CLITargets []string

	// UIMarkers and CLIMarkers are the substrings that identify a
	// text-rendering or user-facing-message call. Lines without a
	// marker are skipped entirely.
	UIMarkers  []string
	CLIMarkers []string

	// I18nMarkers are translation-call tokens whose invocations are
	// masked before literal extraction, e.g. "t!".
	I18nMarkers []string

	// AllowedTokens is the allowed Latin token list for CJK copy.
	AllowedTokens []string
}

// Scanner walks the configured UI and CLI targets and reports suspect
// literals. Classification is a pure function of a single line's text;
// no state crosses files.
type Scanner struct {
	cfg        Config
	extractor  *Extractor
	classifier *Classifier
	logger     *slog.Logger
}

// Option is a functional option for configuring a Scanner.
type Option func(*Scanner)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// NewScanner builds a Scanner from static configuration.
func NewScanner(cfg Config, opts ...Option) *Scanner {
	s := &Scanner{
		cfg:        cfg,
		extractor:  NewExtractor(cfg.I18nMarkers),
		classifier: NewClassifier(NewTokenSet(cfg.AllowedTokens)),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan runs the full pass over every UI and CLI target and returns all
// suspect findings in file order.
func (s *Scanner) Scan() ([]Finding, error) {
	var findings []Finding
	for _, path := range expandTargets(s.cfg.UITargets) {
		found, err := s.ScanFile(path, SiteUI)
		if err != nil {
			return nil, err
		}
		findings = append(findings, found...)
	}
	for _, path := range expandTargets(s.cfg.CLITargets) {
		found, err := s.ScanFile(path, SiteCLI)
		if err != nil {
			return nil, err
		}
		findings = append(findings, found...)
	}
	return findings, nil
}

// ScanFile scans one target file at the given site kind. A missing file
// is nothing to scan, not an error.
func (s *Scanner) ScanFile(path string, site Site) ([]Finding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("scan target does not exist, skipping", "path", path)
			return nil, nil
		}
		return nil, fmt.Errorf("read scan target %s: %w", path, err)
	}

	markers := s.cfg.UIMarkers
	if site == SiteCLI {
		markers = s.cfg.CLIMarkers
	}

	var findings []Finding
	for i, line := range strings.Split(string(data), "\n") {
		if !containsAny(line, markers) {
			continue
		}
		for _, literal := range s.extractor.Extract(line) {
			if !s.classifier.IsSuspect(literal, site) {
				continue
			}
			findings = append(findings, Finding{
				File:    path,
				Line:    i + 1,
				Literal: literal,
				Site:    site,
			})
		}
	}
	return findings, nil
}

// expandTargets resolves glob patterns to concrete paths, keeping
// literal paths as-is so their absence can be skipped later. Matches of
// one pattern are sorted for deterministic scan order.
func expandTargets(targets []string) []string {
	var paths []string
	for _, target := range targets {
		if !strings.ContainsAny(target, "*?[") {
			paths = append(paths, target)
			continue
		}
		matches, err := filepath.Glob(target)
		if err != nil {
			// Malformed pattern: treat like a missing literal path.
			slog.Warn("invalid scan target pattern", "pattern", target, "error", err)
			continue
		}
		sort.Strings(matches)
		paths = append(paths, matches...)
	}
	return paths
}
