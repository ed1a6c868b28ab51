package scan

// DefaultAllowedTokens lists Latin tokens that may appear inside
// otherwise CJK copy without making it suspect: protocol names, key
// names, currency codes and common abbreviations. Projects add their
// own brand names via configuration.
var DefaultAllowedTokens = []string{
	"API",
	"App",
	"CLI",
	"ESC",
	"ETF",
	"iOS",
	"Android",
	"Tab",
	"Shift",
	"Enter",
	"Arrow",
	"OpenAPI",
	"HTTP",
	"HTTPS",
	"JSON",
	"YAML",
	"TOML",
	"HKD",
	"USD",
	"CNY",
	"SGD",
	"JPY",
	"GBP",
	"EUR",
}

// TokenSet is an immutable membership set of allowed Latin tokens.
// It is built once at startup from configuration and never mutated.
type TokenSet map[string]struct{}

// NewTokenSet builds a TokenSet from the given tokens.
func NewTokenSet(tokens []string) TokenSet {
	set := make(TokenSet, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}

// Contains reports whether the token is allowed. Matching is case-sensitive:
// "App" being allowed does not allow "app" or "APP".
func (s TokenSet) Contains(token string) bool {
	_, ok := s[token]
	return ok
}
