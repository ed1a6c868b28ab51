// Package locale loads translation catalogs and compares their key sets.
//
// A catalog is any hierarchical mapping document (YAML, JSON or TOML).
// Only the structural key paths matter to the guard; leaf values are
// never inspected.
package locale

import (
	"fmt"
	"sort"
)

// KeySet is the flattened set of dotted key paths of one catalog.
type KeySet map[string]struct{}

// Sorted returns the key paths in lexicographic order.
func (s KeySet) Sorted() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Contains reports whether the set holds the given key path.
func (s KeySet) Contains(path string) bool {
	_, ok := s[path]
	return ok
}

// Flatten converts a nested mapping document into the set of dotted key
// paths leading to its leaves. A non-mapping node yields the prefix
// accumulated so far, so a top-level scalar document flattens to the
// single empty path. Empty mappings yield no keys.
//
// The document must be tree-shaped; cyclic structures are not detected.
func Flatten(node any) KeySet {
	keys := make(KeySet)
	flattenInto(node, "", keys)
	return keys
}

func flattenInto(node any, prefix string, keys KeySet) {
	switch m := node.(type) {
	case map[string]any:
		for key, value := range m {
			flattenInto(value, join(prefix, key), keys)
		}
	case map[any]any:
		// yaml.v3 falls back to this shape for non-string mapping keys.
		for key, value := range m {
			flattenInto(value, join(prefix, fmt.Sprint(key)), keys)
		}
	default:
		keys[prefix] = struct{}{}
	}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
