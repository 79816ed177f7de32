package atomspace

import "github.com/emirpasic/gods/v2/sets/linkedhashset"

// patternIndex holds the Templates (composite-type-signature -> link
// ids) and Patterns (wildcarded fingerprint -> link ids) indexes. Both
// are populated at link-insertion time rather than left unpopulated
// until first query.
type patternIndex struct {
	templates map[string]*linkedhashset.Set[string]
	patterns  map[string]*linkedhashset.Set[string]
}

func newPatternIndex() patternIndex {
	return patternIndex{
		templates: make(map[string]*linkedhashset.Set[string]),
		patterns:  make(map[string]*linkedhashset.Set[string]),
	}
}

func addToSet(index map[string]*linkedhashset.Set[string], key, linkID string) {
	set, ok := index[key]
	if !ok {
		set = linkedhashset.New[string]()
		index[key] = set
	}
	set.Add(linkID)
}

func lookupSet(index map[string]*linkedhashset.Set[string], key string) []string {
	set, ok := index[key]
	if !ok {
		return []string{}
	}
	return set.Values()
}

// wildcardFingerprints returns the CompositeHash of every one of the
// 2^len(v) ways to independently replace each position of v with
// Wildcard (including the all-real and all-wildcard extremes).
func wildcardFingerprints(v []string) []string {
	n := len(v)
	total := 1 << n
	out := make([]string, 0, total)
	combo := make([]string, n)
	for mask := 0; mask < total; mask++ {
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				combo[i] = Wildcard
			} else {
				combo[i] = v[i]
			}
		}
		out = append(out, CompositeHash(combo))
	}
	return out
}

// buildTemplateHash hashes a possibly-nested template of type symbols
// the same way a link's own CompositeType folds: each string leaf
// becomes NamedTypeHash(leaf), each nested slice recurses and is then
// folded via CompositeHash, mirroring _build_named_type_hash_template
// plus the bottom-up fold in _calculate_composite_type_hash.
func buildTemplateHash(template any) string {
	switch t := template.(type) {
	case string:
		return NamedTypeHash(t)
	case []any:
		hashes := make([]string, len(t))
		for i, el := range t {
			hashes[i] = buildTemplateHash(el)
		}
		return CompositeHash(hashes)
	case []string:
		hashes := make([]string, len(t))
		for i, el := range t {
			hashes[i] = NamedTypeHash(el)
		}
		return CompositeHash(hashes)
	default:
		return ""
	}
}
