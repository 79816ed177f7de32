package atomspace

import (
	"sort"
	"strings"
)

// GetMatchedLinks resolves a pattern query. If neither linkType nor
// any element of pattern is the Wildcard, it delegates to
// GetLinkHandle and returns a single-element slice, propagating
// *LinkMissing. Otherwise it returns every link id whose fingerprint
// matches the wildcarded shape, or an empty slice on no match.
func (s *Store) GetMatchedLinks(linkType string, pattern []string) ([]string, error) {
	if linkType != Wildcard && !containsWildcard(pattern) {
		handle, err := s.GetLinkHandle(linkType, pattern)
		if err != nil {
			return nil, err
		}
		return []string{handle}, nil
	}

	var head string
	if linkType == Wildcard {
		head = Wildcard
	} else {
		head = NamedTypeHash(linkType)
	}

	targets := pattern
	if linkType != Wildcard && s.cfg.isUnordered(linkType) {
		targets = append([]string(nil), pattern...)
		sort.Strings(targets)
	}

	fingerprint := CompositeHash(append([]string{head}, targets...))
	return lookupSet(s.patterns.patterns, fingerprint), nil
}

func containsWildcard(pattern []string) bool {
	for _, p := range pattern {
		if p == Wildcard {
			return true
		}
	}
	return false
}

// GetMatchedType returns every link id whose named type is linkType.
func (s *Store) GetMatchedType(linkType string) []string {
	return lookupSet(s.patterns.templates, NamedTypeHash(linkType))
}

// GetMatchedTypeTemplate returns every link id whose composite-type
// signature matches template, a possibly-nested list of type symbols
// mirroring a CompositeType structure (e.g. "Inheritance" at the head,
// ["Concept", "Concept"] or nested sub-lists for sub-link targets).
// template must be a string or a []any of strings/[]any.
func (s *Store) GetMatchedTypeTemplate(template any) []string {
	return lookupSet(s.patterns.templates, buildTemplateHash(template))
}

// GetAllNodes returns every node id (or name, if names is true) whose
// type is nodeType. Order is unspecified.
func (s *Store) GetAllNodes(nodeType string, names bool) []string {
	typeHash := NamedTypeHash(nodeType)
	out := make([]string, 0)
	for id, node := range s.nodes {
		if node.CompositeTypeHash != typeHash {
			continue
		}
		if names {
			out = append(out, node.Name)
		} else {
			out = append(out, id)
		}
	}
	return out
}

// GetMatchedNodeName returns every node id of the given type whose
// name contains substring (an empty substring matches every node of
// that type). Linear scan, O(#nodes of nodeType).
func (s *Store) GetMatchedNodeName(nodeType, substring string) []string {
	typeHash := NamedTypeHash(nodeType)
	out := make([]string, 0)
	for id, node := range s.nodes {
		if node.CompositeTypeHash == typeHash && strings.Contains(node.Name, substring) {
			out = append(out, id)
		}
	}
	return out
}
