package locale

import "sort"

// DiffResult describes how one target catalog's key set deviates from
// the reference catalog's key set.
type DiffResult struct {
	Locale  string   `json:"locale"`
	Missing []string `json:"missing,omitempty"`
	Extra   []string `json:"extra,omitempty"`
}

// Clean reports whether the target key set matched the reference exactly.
func (d DiffResult) Clean() bool {
	return len(d.Missing) == 0 && len(d.Extra) == 0
}

// Diff compares a target key set against the reference key set.
// Missing holds reference keys absent from the target, extra holds
// target keys absent from the reference; both are sorted. Membership is
// exact — no partial or fuzzy key matching.
func Diff(reference, target KeySet) (missing, extra []string) {
	for k := range reference {
		if !target.Contains(k) {
			missing = append(missing, k)
		}
	}
	for k := range target {
		if !reference.Contains(k) {
			extra = append(extra, k)
		}
	}
	sort.Strings(missing)
	sort.Strings(extra)
	return missing, extra
}

// CompareAll diffs every target catalog against the shared reference
// catalog, in the order given. The reference is never compared against
// itself; a target that happens to share the reference's locale
// identifier is skipped.
func CompareAll(reference *Catalog, targets []*Catalog) []DiffResult {
	results := make([]DiffResult, 0, len(targets))
	for _, target := range targets {
		if target.Locale == reference.Locale {
			continue
		}
		missing, extra := Diff(reference.Keys, target.Keys)
		results = append(results, DiffResult{
			Locale:  target.Locale,
			Missing: missing,
			Extra:   extra,
		})
	}
	return results
}
