// Package atomspace implements an in-memory, content-addressed atom
// database for a symbolic/metagraph knowledge representation (an
// "Atomspace"): typed named nodes, typed ordered or unordered links of
// atoms (recursively), and the secondary indexes needed to answer
// pattern-style and type-template queries.
//
// The store is single-threaded: it carries no internal mutex, and
// concurrent writers require an external exclusive lock around each
// public method. There is no persistence, no transactions across
// atoms, and no deletion — atoms are created on first insertion and
// never mutated or removed.
package atomspace

import (
	"github.com/emirpasic/gods/v2/sets/linkedhashset"
	"github.com/google/uuid"
)

// arityMany is the bucket key for every link of arity 3 or greater,
// mirroring the source's arity_1/arity_2/arity_n partitioning.
const arityMany = 3

func arityBucket(arity int) int {
	if arity >= arityMany {
		return arityMany
	}
	return arity
}

// Store is the Atom Store: five keyed collections (node, link
// partitioned by arity, atom-type, name, and the composite-type-hash
// set of link ids) plus the Outgoing/Incoming relation indexes and the
// Templates/Patterns query indexes.
type Store struct {
	cfg        Config
	instanceID uuid.UUID

	nodes     map[string]Node
	links     map[int]map[string]Link
	atomTypes map[string]TypeDef
	names     map[string]string

	relations relationIndex
	patterns  patternIndex
}

// NewStore creates an empty Store.
func NewStore(cfg Config) *Store {
	return &Store{
		cfg:        cfg,
		instanceID: uuid.New(),
		nodes:      make(map[string]Node),
		links: map[int]map[string]Link{
			1: make(map[string]Link),
			2: make(map[string]Link),
			arityMany: make(map[string]Link),
		},
		atomTypes: make(map[string]TypeDef),
		names:     make(map[string]string),
		relations: newRelationIndex(),
		patterns:  newPatternIndex(),
	}
}

// InstanceID returns the per-Store identity tag attached to every
// log line this Store emits.
func (s *Store) InstanceID() uuid.UUID { return s.instanceID }

// DatabaseName returns the configured identity label (default "das").
// It has no effect on behavior.
func (s *Store) DatabaseName() string { return s.cfg.DatabaseName }

// AddNode adds a node to the store. Fails with *BadNode if "type" or
// "name" is absent from params. Re-adding an identical node is
// idempotent and returns the existing record unchanged
// (first-writer-wins on extras).
func (s *Store) AddNode(params map[string]any) (Node, error) {
	rawType, okType := params["type"]
	rawName, okName := params["name"]
	if !okType || !okName {
		s.log().Warnw("rejected add_node: missing required field", "params", params)
		return Node{}, newBadNode(`The "name" and "type" fields must be sent`, params)
	}
	nodeType, _ := rawType.(string)
	name, _ := rawName.(string)
	if nodeType == "" || name == "" {
		s.log().Warnw("rejected add_node: empty required field", "params", params)
		return Node{}, newBadNode(`The "name" and "type" fields must be sent`, params)
	}

	extra := make(map[string]any, len(params))
	for k, v := range params {
		if k == "type" || k == "name" {
			continue
		}
		extra[k] = v
	}

	return s.addNodeSpec(NodeSpec{Type: nodeType, Name: name, Extra: extra}), nil
}

// addNodeSpec is the typed entry point AddLink's recursion uses
// internally; it cannot fail since NodeSpec already carries both
// required fields.
func (s *Store) addNodeSpec(spec NodeSpec) Node {
	key := TerminalHash(spec.Type, spec.Name)

	if existing, ok := s.nodes[key]; ok {
		s.addAtomType(spec.Type, RootType)
		s.addName(key, spec.Name)
		return existing
	}

	node := Node{
		ID:                key,
		CompositeTypeHash: NamedTypeHash(spec.Type),
		NamedType:         spec.Type,
		Name:              spec.Name,
		Extra:             spec.Extra,
	}
	s.nodes[key] = node
	s.addAtomType(spec.Type, RootType)
	s.addName(key, spec.Name)
	s.log().Debugw("node added", "id", key, "type", spec.Type, "name", spec.Name)

	return node
}

// GetNodeHandle returns the id of the node (nodeType, name) if it
// exists, else *NodeMissing.
func (s *Store) GetNodeHandle(nodeType, name string) (string, error) {
	handle := TerminalHash(nodeType, name)
	if _, ok := s.nodes[handle]; ok {
		return handle, nil
	}
	return "", newNodeMissing("This node does not exist", nodeType+":"+name)
}

// NodeExists reports whether (nodeType, name) resolves to a node.
func (s *Store) NodeExists(nodeType, name string) bool {
	_, err := s.GetNodeHandle(nodeType, name)
	return err == nil
}

// GetNodeName returns the stored name for a node handle, or
// *NodeMissing.
func (s *Store) GetNodeName(handle string) (string, error) {
	node, ok := s.nodes[handle]
	if !ok {
		return "", newNodeMissing("This node does not exist", "node_handle: "+handle)
	}
	return node.Name, nil
}

// GetLinkHandle returns the id of the link with the exact type and
// ordered target tuple, if one exists in the matching arity bucket,
// else *LinkMissing.
func (s *Store) GetLinkHandle(linkType string, targets []string) (string, error) {
	handle := ExpressionHash(NamedTypeHash(linkType), targets)
	bucket := s.links[arityBucket(len(targets))]
	if _, ok := bucket[handle]; ok {
		return handle, nil
	}
	return "", newLinkMissing("This link does not exist", linkType)
}

// LinkExists reports whether a link with this exact type and target
// tuple exists.
func (s *Store) LinkExists(linkType string, targets []string) bool {
	_, err := s.GetLinkHandle(linkType, targets)
	return err == nil
}

// GetLinkTargets returns the Outgoing list for a link handle, or
// *LinkMissing.
func (s *Store) GetLinkTargets(handle string) ([]string, error) {
	targets, ok := s.relations.outgoing[handle]
	if !ok {
		return nil, newLinkMissing("This link does not exist", "link_handle: "+handle)
	}
	return targets, nil
}

// IsOrdered reports whether handle resolves to a stored link, full
// stop — it does not actually check whether the link's own type is
// registered as unordered. The name promises more than the
// implementation checks; this is deliberate and preserved as is,
// rather than silently fixed.
func (s *Store) IsOrdered(handle string) bool {
	_, ok := s.relations.outgoing[handle]
	return ok
}

// linkByHandle finds a link by id across all three arity buckets.
func (s *Store) linkByHandle(handle string) (Link, bool) {
	for _, bucket := range s.links {
		if link, ok := bucket[handle]; ok {
			return link, true
		}
	}
	return Link{}, false
}

// GetLink returns the full stored record for a link handle, or
// *LinkMissing.
func (s *Store) GetLink(handle string) (Link, error) {
	link, ok := s.linkByHandle(handle)
	if !ok {
		return Link{}, newLinkMissing("This link does not exist", "link_handle: "+handle)
	}
	return link, nil
}

// GetNode returns the full stored record for a node handle, or
// *NodeMissing.
func (s *Store) GetNode(handle string) (Node, error) {
	node, ok := s.nodes[handle]
	if !ok {
		return Node{}, newNodeMissing("This node does not exist", "node_handle: "+handle)
	}
	return node, nil
}

// addAtomType registers a TypeDef for name, once per distinct named
// type, mirroring _add_atom_type. parentType is the root "Type" for
// ordinary node/link types.
func (s *Store) addAtomType(name, parentType string) TypeDef {
	nameHash := NamedTypeHash(name)
	typeHash := NamedTypeHash(parentType)
	typedefMarkHash := NamedTypeHash(TypeDefMark)

	key := ExpressionHash(typedefMarkHash, []string{nameHash, typeHash})

	if existing, ok := s.atomTypes[key]; ok {
		return existing
	}

	rootHash := NamedTypeHash(RootType)
	compositeTypeHash := CompositeHash([]string{typedefMarkHash, typeHash, rootHash})

	typedef := TypeDef{
		ID:                key,
		NamedType:         name,
		NamedTypeHash:     nameHash,
		CompositeTypeHash: compositeTypeHash,
	}
	s.atomTypes[key] = typedef
	return typedef
}

// addName records the Name index entry for a node handle.
func (s *Store) addName(handle, name string) {
	if _, ok := s.names[handle]; ok {
		return
	}
	s.names[handle] = name
}

// relationIndex holds the Outgoing/Incoming bidirectional adjacency.
type relationIndex struct {
	outgoing map[string][]string
	incoming map[string]*linkedhashset.Set[string]
}

func newRelationIndex() relationIndex {
	return relationIndex{
		outgoing: make(map[string][]string),
		incoming: make(map[string]*linkedhashset.Set[string]),
	}
}

// commit writes Outgoing[linkID] and appends linkID to every
// Incoming[target] in one step, so an observer that sees Outgoing[k]
// is guaranteed to also see every Incoming entry it implies.
func (r *relationIndex) commit(linkID string, targets []string) {
	r.outgoing[linkID] = targets
	for _, target := range targets {
		set, ok := r.incoming[target]
		if !ok {
			set = linkedhashset.New[string]()
			r.incoming[target] = set
		}
		set.Add(linkID)
	}
}

// Incoming returns the set of link ids referencing target, in
// first-seen order.
func (s *Store) Incoming(target string) []string {
	set, ok := s.relations.incoming[target]
	if !ok {
		return nil
	}
	return set.Values()
}
