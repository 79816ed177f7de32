package atomspace

import "sort"

// AddLink adds a link (and, recursively, every node or sub-link it
// targets) to the store. It is the sole public entry point for link
// ingestion; the returned record always carries IsToplevel=true.
//
// Unlike the source's decorator-based "wrap the outer call" trick,
// marking toplevel here never mutates a pre-existing stored record:
// if the exact same link was already created earlier (e.g. as a
// nested target of a prior AddLink call), its stored IsToplevel stays
// false — only the value handed back from *this* call is forced true.
// A freshly created record, by contrast, genuinely is toplevel and is
// stored as such.
func (s *Store) AddLink(spec LinkSpec) (Link, error) {
	link, created, err := s.addLinkRecursive(spec)
	if err != nil {
		return Link{}, err
	}

	if created {
		bucket := s.links[arityBucket(link.Arity())]
		rec := bucket[link.ID]
		rec.IsToplevel = true
		bucket[link.ID] = rec
		return rec, nil
	}

	link.IsToplevel = true
	return link, nil
}

// AddLinkMap is the raw map[string]any entry point for callers (the
// CLI, JSON-decoded requests) that don't build typed LinkSpec values.
// It fails with *BadLink if "type" or "targets" is missing, exactly as
// AddLink does for a typed spec with an empty Type or Targets.
func (s *Store) AddLinkMap(params map[string]any) (Link, error) {
	spec, err := toLinkSpec(params)
	if err != nil {
		s.log().Warnw("rejected add_link: invalid spec", "params", params)
		return Link{}, err
	}
	return s.AddLink(spec)
}

// addLinkRecursive adds targets depth-first before computing this
// link's own identity, so a link always observes all of its
// transitively added targets before its key exists. It never marks
// IsToplevel; reports whether it created a new record (false means
// the link already existed and was returned unchanged).
func (s *Store) addLinkRecursive(spec LinkSpec) (Link, bool, error) {
	if spec.Type == "" || len(spec.Targets) == 0 {
		s.log().Warnw("rejected add_link: missing required field", "spec", spec)
		return Link{}, false, newBadLink(`The "type" and "targets" fields must be sent`, spec)
	}

	targetsHash := make([]string, len(spec.Targets))
	children := make([]CompositeType, 0, len(spec.Targets)+1)
	children = append(children, CompositeType{Hash: NamedTypeHash(spec.Type)})

	for i, target := range spec.Targets {
		if target.IsLink() {
			subLink, _, err := s.addLinkRecursive(*target.Link)
			if err != nil {
				return Link{}, false, err
			}
			targetsHash[i] = subLink.ID
			children = append(children, subLink.CompositeType)
		} else {
			node := s.addNodeSpec(*target.Node)
			targetsHash[i] = node.ID
			children = append(children, CompositeType{Hash: NamedTypeHash(target.Node.Type)})
		}
	}

	namedTypeHash := NamedTypeHash(spec.Type)
	key := ExpressionHash(namedTypeHash, targetsHash)
	compositeTypeHash := CompositeHash(childHashes(children))

	bucket := s.links[arityBucket(len(spec.Targets))]
	if existing, ok := bucket[key]; ok {
		s.addAtomType(spec.Type, RootType)
		return existing, false, nil
	}

	link := Link{
		ID:                key,
		CompositeTypeHash: compositeTypeHash,
		NamedType:         spec.Type,
		NamedTypeHash:     namedTypeHash,
		CompositeType:     CompositeType{Hash: compositeTypeHash, Children: children},
		IsToplevel:        false,
		Targets:           targetsHash,
		Extra:             spec.Extra,
	}
	bucket[key] = link

	s.addAtomType(spec.Type, RootType)
	s.relations.commit(key, targetsHash)
	s.registerTemplatesAndPatterns(link)
	s.log().Debugw("link added", "id", key, "type", spec.Type, "arity", len(spec.Targets))

	return link, true, nil
}

// childHashes extracts the effective hash of each composite-type
// child: a leaf's own hash, or a sub-link's already-folded
// composite_type_hash.
func childHashes(children []CompositeType) []string {
	out := make([]string, len(children))
	for i, c := range children {
		out[i] = c.Hash
	}
	return out
}

// registerTemplatesAndPatterns populates the Templates and Patterns
// indexes for a newly created link, eagerly at insertion time rather
// than lazily on first query, so every subsequent lookup is a single
// map access.
func (s *Store) registerTemplatesAndPatterns(link Link) {
	addToSet(s.patterns.templates, link.NamedTypeHash, link.ID)
	addToSet(s.patterns.templates, link.CompositeTypeHash, link.ID)

	vector := append([]string{link.NamedTypeHash}, link.Targets...)
	if !s.cfg.isUnordered(link.NamedType) {
		for _, fingerprint := range wildcardFingerprints(vector) {
			addToSet(s.patterns.patterns, fingerprint, link.ID)
		}
		return
	}

	// Unordered: sort the tail of each wildcard substitution, the same
	// canonical order GetMatchedLinks gives a query pattern.
	combo := make([]string, len(vector))
	for mask := 0; mask < 1<<len(vector); mask++ {
		for i, h := range vector {
			combo[i] = h
			if mask&(1<<i) != 0 {
				combo[i] = Wildcard
			}
		}
		sort.Strings(combo[1:])
		addToSet(s.patterns.patterns, CompositeHash(combo), link.ID)
	}
}

// toLinkSpec converts the raw §6 input shape into a typed LinkSpec,
// recursively distinguishing node targets from sub-link targets by
// the presence of a "targets" key, exactly as the source does.
func toLinkSpec(params map[string]any) (LinkSpec, error) {
	rawType, okType := params["type"]
	rawTargets, okTargets := params["targets"]
	if !okType || !okTargets {
		return LinkSpec{}, newBadLink(`The "type" and "targets" fields must be sent`, params)
	}
	linkType, _ := rawType.(string)
	rawList, _ := rawTargets.([]any)
	if linkType == "" || len(rawList) == 0 {
		return LinkSpec{}, newBadLink(`The "type" and "targets" fields must be sent`, params)
	}

	targets := make([]TargetSpec, 0, len(rawList))
	for _, rawTarget := range rawList {
		targetMap, ok := rawTarget.(map[string]any)
		if !ok {
			return LinkSpec{}, newBadLink("target is not an object", rawTarget)
		}
		target, err := toTargetSpec(targetMap)
		if err != nil {
			return LinkSpec{}, err
		}
		targets = append(targets, target)
	}

	extra := extraFields(params, "type", "targets")
	return LinkSpec{Type: linkType, Targets: targets, Extra: extra}, nil
}

func toTargetSpec(params map[string]any) (TargetSpec, error) {
	if _, hasTargets := params["targets"]; hasTargets {
		spec, err := toLinkSpec(params)
		if err != nil {
			return TargetSpec{}, err
		}
		return TargetSpec{Link: &spec}, nil
	}

	rawType, okType := params["type"]
	rawName, okName := params["name"]
	if !okType || !okName {
		return TargetSpec{}, newBadNode(`The "name" and "type" fields must be sent`, params)
	}
	nodeType, _ := rawType.(string)
	name, _ := rawName.(string)
	extra := extraFields(params, "type", "name")
	return TargetSpec{Node: &NodeSpec{Type: nodeType, Name: name, Extra: extra}}, nil
}

func extraFields(params map[string]any, exclude ...string) map[string]any {
	skip := make(map[string]struct{}, len(exclude))
	for _, k := range exclude {
		skip[k] = struct{}{}
	}
	extra := make(map[string]any, len(params))
	for k, v := range params {
		if _, ok := skip[k]; ok {
			continue
		}
		extra[k] = v
	}
	return extra
}
