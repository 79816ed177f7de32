package atomspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNodeIdempotent(t *testing.T) {
	s := NewStore(NewConfig())

	first, err := s.AddNode(map[string]any{"type": "Concept", "name": "human"})
	require.NoError(t, err)

	second, err := s.AddNode(map[string]any{"type": "Concept", "name": "human", "ignored": "extra"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Nil(t, second.Extra["ignored"], "first-writer-wins: extras on re-insertion are ignored")
}

func TestAddNodeMissingFieldFails(t *testing.T) {
	s := NewStore(NewConfig())

	_, err := s.AddNode(map[string]any{"type": "Concept"})
	require.Error(t, err)
	var badNode *BadNode
	require.ErrorAs(t, err, &badNode)

	assert.Empty(t, s.GetAllNodes("Concept", false), "store must be unchanged after a rejected add_node")
}

func TestGetNodeHandleRoundTrip(t *testing.T) {
	s := NewStore(NewConfig())
	node, err := s.AddNode(map[string]any{"type": "Concept", "name": "human"})
	require.NoError(t, err)

	handle, err := s.GetNodeHandle("Concept", "human")
	require.NoError(t, err)
	assert.Equal(t, node.ID, handle)

	name, err := s.GetNodeName(handle)
	require.NoError(t, err)
	assert.Equal(t, "human", name)
}

func TestGetNodeHandleMissing(t *testing.T) {
	s := NewStore(NewConfig())
	_, err := s.GetNodeHandle("Concept", "nonexistent")
	require.Error(t, err)
	var missing *NodeMissing
	require.ErrorAs(t, err, &missing)
	assert.False(t, s.NodeExists("Concept", "nonexistent"))
}

func TestAddLinkSimilarityRoundTrip(t *testing.T) {
	s := NewStore(NewConfig())
	human, err := s.AddNode(map[string]any{"type": "Concept", "name": "human"})
	require.NoError(t, err)
	monkey, err := s.AddNode(map[string]any{"type": "Concept", "name": "monkey"})
	require.NoError(t, err)

	link, err := s.AddLink(LinkSpec{Type: "Similarity", Targets: []TargetSpec{
		N("Concept", "human", nil),
		N("Concept", "monkey", nil),
	}})
	require.NoError(t, err)

	handle, err := s.GetLinkHandle("Similarity", []string{human.ID, monkey.ID})
	require.NoError(t, err)
	assert.Equal(t, link.ID, handle)

	targets, err := s.GetLinkTargets(link.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{human.ID, monkey.ID}, targets)

	assert.Contains(t, s.Incoming(human.ID), link.ID)
	assert.Contains(t, s.Incoming(monkey.ID), link.ID)
}

func TestGetLinkHandleMissing(t *testing.T) {
	s, ids := newBiologyFixture(t)
	_, err := s.GetLinkHandle("Inheritance", []string{ids.human, ids.plant})
	require.Error(t, err)
	var missing *LinkMissing
	require.ErrorAs(t, err, &missing)
	assert.False(t, s.LinkExists("Inheritance", []string{ids.human, ids.plant}))
}

func TestArityBucketExclusivity(t *testing.T) {
	s := NewStore(NewConfig())
	one, err := s.AddLink(LinkSpec{Type: "Evaluation", Targets: []TargetSpec{
		N("Predicate", "only", nil),
	}})
	require.NoError(t, err)
	assert.Len(t, one.Targets, 1)

	two, err := s.AddLink(LinkSpec{Type: "Similarity", Targets: []TargetSpec{
		N("Concept", "a", nil), N("Concept", "b", nil),
	}})
	require.NoError(t, err)
	assert.Len(t, two.Targets, 2)

	three, err := s.AddLink(LinkSpec{Type: "Set", Targets: []TargetSpec{
		N("Concept", "a", nil), N("Concept", "b", nil), N("Concept", "c", nil),
	}})
	require.NoError(t, err)
	assert.Len(t, three.Targets, 3)

	assert.Equal(t, 1, len(s.links[1]))
	assert.Equal(t, 1, len(s.links[2]))
	assert.Equal(t, 1, len(s.links[arityMany]))
}
