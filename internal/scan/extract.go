package scan

import (
	"regexp"
	"strings"
)

// stringLiteralRe matches one double-quoted string literal, capturing its
// body. Escaped quotes (\") do not terminate the span and an escaped
// backslash before the closing quote does not extend it. An unterminated
// quote simply yields no further match for that line.
var stringLiteralRe = regexp.MustCompile(`"([^"\\]*(?:\\.[^"\\]*)*)"`)

// Extractor turns raw source lines into string literals, masking
// translation-call invocations first so their arguments are never
// extracted.
type Extractor struct {
	maskPatterns []maskPattern
}

type maskPattern struct {
	re          *regexp.Regexp
	replacement string
}

// NewExtractor builds an Extractor that masks invocations of the given
// translation-call markers, e.g. "t!" for a line like
// t!("price.label", value).
func NewExtractor(i18nMarkers []string) *Extractor {
	patterns := make([]maskPattern, 0, len(i18nMarkers))
	for _, marker := range i18nMarkers {
		if marker == "" {
			continue
		}
		// marker token, then a parenthesized argument list whose first
		// argument is a quoted literal, optionally followed by more
		// comma-separated arguments.
		re := regexp.MustCompile(regexp.QuoteMeta(marker) + `\(\s*"[^"]*"(?:\s*,[^)]*)?\)`)
		patterns = append(patterns, maskPattern{
			re:          re,
			replacement: marker + "(I18N_KEY)",
		})
	}
	return &Extractor{maskPatterns: patterns}
}

// Sanitize replaces every translation-call invocation in the line with
// an opaque placeholder of fixed shape, so translated strings routed
// through the translation mechanism are never inspected.
func (e *Extractor) Sanitize(line string) string {
	for _, p := range e.maskPatterns {
		line = p.re.ReplaceAllString(line, p.replacement)
	}
	return line
}

// Literals returns the string literals of an already sanitized line, in
// appearance order.
func (e *Extractor) Literals(sanitized string) []string {
	matches := stringLiteralRe.FindAllStringSubmatch(sanitized, -1)
	if len(matches) == 0 {
		return nil
	}
	literals := make([]string, 0, len(matches))
	for _, m := range matches {
		literals = append(literals, m[1])
	}
	return literals
}

// Extract runs the two-stage pipeline: Sanitize, then Literals.
func (e *Extractor) Extract(line string) []string {
	return e.Literals(e.Sanitize(line))
}

// containsAny reports whether the line contains at least one of the
// marker substrings.
func containsAny(line string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(line, m) {
			return true
		}
	}
	return false
}
