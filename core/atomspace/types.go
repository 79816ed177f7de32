package atomspace

// Node is a terminal atom: a typed, named leaf of the Atomspace.
type Node struct {
	ID                string
	CompositeTypeHash string
	NamedType         string
	Name              string
	Extra             map[string]any
}

// CompositeType is the nested structural signature of a link: the
// head's type hash followed by, for each target, either a leaf hash
// (node target) or a recursively nested CompositeType (link target).
type CompositeType struct {
	Hash     string
	Children []CompositeType
}

// IsLeaf reports whether this node of the composite type has no
// children, i.e. corresponds to a node target or a folded hash.
func (c CompositeType) IsLeaf() bool { return c.Children == nil }

// Link is a non-terminal atom: an ordered tuple of target atom ids,
// typed, with a recursively derived composite-type signature.
type Link struct {
	ID                string
	CompositeTypeHash string
	NamedType         string
	NamedTypeHash     string
	CompositeType     CompositeType
	IsToplevel        bool
	Targets           []string
	Extra             map[string]any
}

// Arity is the number of targets of the link.
func (l Link) Arity() int { return len(l.Targets) }

// TypeDef is the "name : type" declaration derived once per distinct
// named type encountered by the store.
type TypeDef struct {
	ID                string
	NamedType         string
	NamedTypeHash     string
	CompositeTypeHash string
}

// NodeSpec is the input shape for AddNode: a required type and name,
// plus arbitrary user-extensible fields.
type NodeSpec struct {
	Type  string
	Name  string
	Extra map[string]any
}

// TargetSpec is one target of a LinkSpec: exactly one of Node or Link
// must be set. A target with a Link is a sub-link, recursively added
// before the outer link's identity is computed.
type TargetSpec struct {
	Node *NodeSpec
	Link *LinkSpec
}

// LinkSpec is the input shape for AddLink: a required type and an
// ordered list of targets (node or link specs), plus extras.
type LinkSpec struct {
	Type    string
	Targets []TargetSpec
	Extra   map[string]any
}

// N builds a node TargetSpec. A nil extra is fine; the stored record
// then carries a nil Extra map.
func N(nodeType, name string, extra map[string]any) TargetSpec {
	return TargetSpec{Node: &NodeSpec{Type: nodeType, Name: name, Extra: extra}}
}

// L builds a link TargetSpec, for nesting sub-links inside a LinkSpec.
func L(linkType string, targets []TargetSpec, extra map[string]any) TargetSpec {
	return TargetSpec{Link: &LinkSpec{Type: linkType, Targets: targets, Extra: extra}}
}

// IsLink reports whether this target is itself a link (sub-link),
// as opposed to a terminal node.
func (t TargetSpec) IsLink() bool { return t.Link != nil }
