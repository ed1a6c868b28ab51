// Package scan implements the hardcoded-literal guard: it extracts
// string literals from rendering call sites and classifies each one as
// either exempt or a suspect untranslated literal.
package scan

import (
	"regexp"
	"strings"
)

// Site identifies the kind of call site a literal was found at.
type Site string

const (
	// SiteUI marks literals from rendered widget/panel/title paths.
	SiteUI Site = "ui"

	// SiteCLI marks literals from help/error/format output paths.
	SiteCLI Site = "cli"
)

// Verdict is the classification outcome for a single literal.
type Verdict struct {
	// Suspect is true when the literal looks like untranslated copy
	// that should have been routed through the translation mechanism.
	Suspect bool

	// Rule names the exemption rule that matched, or "latin-text" for
	// a suspect verdict. Used only for reporting.
	Rule string
}

var (
	escapeOnlyRe = regexp.MustCompile(`^(\\[nrt]|\\u[0-9a-fA-F]{4})+$`)
	escapeSeqRe  = regexp.MustCompile(`\\[nrt]`)
	cjkRe        = regexp.MustCompile(`[\x{4e00}-\x{9fff}]`)
	latinRe      = regexp.MustCompile(`[A-Za-z]`)

	// latinTokenRe matches a maximal Latin-alphabet token: a letter
	// followed by letters, digits or +./- (covers "iOS", "zh-CN",
	// "HTTP/2", "C++").
	latinTokenRe = regexp.MustCompile(`[A-Za-z][A-Za-z0-9+./-]*`)

	// placeholderNameRe captures named placeholder spans such as
	// {count} or {price:.2}; their names are never judged as prose.
	placeholderNameRe = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)(?::[^}]*)?\}`)

	// symbolOnlyRe matches text with no Latin letters at all:
	// punctuation, digits, symbols, whitespace, underscore.
	symbolOnlyRe = regexp.MustCompile(`^[\s\d\W_]*$`)

	// keyHintRe matches key-hint decoration around a single letter,
	// e.g. " {} --- {}[g] ". Deliberately broad; see the package
	// tests for the false-negative shapes it accepts.
	keyHintRe = regexp.MustCompile(`^[\s{}().:\-_\[\]0-9]*[A-Za-z][\s{}().:\-_\[\]0-9]*$`)

	// flagLiteralRe matches a bare command-line flag token.
	flagLiteralRe = regexp.MustCompile(`^--?[A-Za-z0-9][A-Za-z0-9-]*$`)

	// formatOnlyRe bounds the characters a pure format string may use.
	// Letters are allowed by the class but must sit inside a
	// placeholder span, which ruleFormatOnly enforces separately.
	formatOnlyRe = regexp.MustCompile(`^[{}\s_:.,+\-/*%0-9A-Za-z$<>|()\[\]]+$`)

	// placeholderSpanRe matches any brace-delimited span.
	placeholderSpanRe = regexp.MustCompile(`\{[^}]*\}`)
)

// exemptionRule is one predicate in the ordered first-match chain.
type exemptionRule struct {
	name    string
	cliOnly bool
	matches func(c *Classifier, text string) bool
}

// Classifier decides whether an extracted literal is a suspect
// untranslated literal. It is pure: the same literal and site always
// produce the same verdict.
type Classifier struct {
	allowed TokenSet
	rules   []exemptionRule
}

// NewClassifier builds a Classifier with the given allowed-token set.
func NewClassifier(allowed TokenSet) *Classifier {
	c := &Classifier{allowed: allowed}
	c.rules = []exemptionRule{
		{name: "empty", matches: ruleEmpty},
		{name: "url", matches: ruleURL},
		{name: "escape-only", matches: ruleEscapeOnly},
		{name: "cjk-allowlist", matches: ruleCJKAllowlist},
		{name: "symbol-only", matches: ruleSymbolOnly},
		{name: "placeholder-scaffold", matches: rulePlaceholderScaffold},
		{name: "key-hint", matches: ruleKeyHint},
		{name: "cli-flag", cliOnly: true, matches: ruleFlagLiteral},
		{name: "format-only", cliOnly: true, matches: ruleFormatOnly},
	}
	return c
}

// Classify evaluates the exemption chain in order and returns on the
// first matching rule. A literal that no rule exempts is suspect iff it
// contains at least one Latin letter.
func (c *Classifier) Classify(text string, site Site) Verdict {
	for _, rule := range c.rules {
		if rule.cliOnly && site != SiteCLI {
			continue
		}
		if rule.matches(c, text) {
			return Verdict{Suspect: false, Rule: rule.name}
		}
	}
	if latinRe.MatchString(text) {
		return Verdict{Suspect: true, Rule: "latin-text"}
	}
	return Verdict{Suspect: false, Rule: "no-latin-letters"}
}

// IsSuspect reports whether the literal is a suspect untranslated
// literal at the given site kind.
func (c *Classifier) IsSuspect(text string, site Site) bool {
	return c.Classify(text, site).Suspect
}

func ruleEmpty(_ *Classifier, text string) bool {
	return strings.TrimSpace(text) == ""
}

func ruleURL(_ *Classifier, text string) bool {
	stripped := strings.TrimSpace(text)
	return strings.HasPrefix(stripped, "http://") || strings.HasPrefix(stripped, "https://")
}

func ruleEscapeOnly(_ *Classifier, text string) bool {
	return escapeOnlyRe.MatchString(strings.TrimSpace(text))
}

// ruleCJKAllowlist exempts CJK-bearing copy whose Latin tokens are all
// allowed terms. Named placeholder spans are excluded from the token
// judgment first, so "加载 {count} 条记录" carries zero tokens. Copy
// with a disallowed token is not exempted here but may still match a
// later rule.
func ruleCJKAllowlist(c *Classifier, text string) bool {
	if !cjkRe.MatchString(text) {
		return false
	}
	normalized := escapeSeqRe.ReplaceAllString(text, " ")
	placeholders := make(map[string]struct{})
	for _, m := range placeholderNameRe.FindAllStringSubmatch(text, -1) {
		placeholders[m[1]] = struct{}{}
	}
	for _, token := range latinTokenRe.FindAllString(normalized, -1) {
		if _, isPlaceholder := placeholders[token]; isPlaceholder {
			continue
		}
		if !c.allowed.Contains(token) {
			return false
		}
	}
	return true
}

func ruleSymbolOnly(_ *Classifier, text string) bool {
	return symbolOnlyRe.MatchString(text)
}

func rulePlaceholderScaffold(_ *Classifier, text string) bool {
	return strings.Contains(text, "{") && strings.Contains(text, "}") &&
		!latinRe.MatchString(text)
}

func ruleKeyHint(_ *Classifier, text string) bool {
	return keyHintRe.MatchString(text)
}

func ruleFlagLiteral(_ *Classifier, text string) bool {
	return flagLiteralRe.MatchString(strings.TrimSpace(text))
}

// ruleFormatOnly exempts pure format scaffolding on the CLI surface:
// every character comes from the allowed class and Latin letters appear
// only inside {} placeholder spans, never as free prose.
func ruleFormatOnly(_ *Classifier, text string) bool {
	stripped := strings.TrimSpace(text)
	if stripped == "" || !formatOnlyRe.MatchString(stripped) {
		return false
	}
	remainder := placeholderSpanRe.ReplaceAllString(stripped, "")
	return !latinRe.MatchString(remainder)
}
