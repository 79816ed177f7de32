package atomspace

import "testing"

// fixtureIDs holds the node handles of the biology fixture, grounded
// directly on original_source/tests/adapters/test_hash_table.py: 14
// Concept nodes plus 26 Similarity/Inheritance links (7 of the
// Similarity links repeated with reversed target order).
type fixtureIDs struct {
	human, monkey, chimp, snake, earthworm, rhino, triceratops string
	vine, ent, mammal, animal, reptile, dinosaur, plant        string
}

// newBiologyFixture builds a fresh Store and inserts the full
// 14-node/26-link biology fixture, returning the node handles for
// convenient assertions.
func newBiologyFixture(t *testing.T) (*Store, fixtureIDs) {
	t.Helper()
	s := NewStore(NewConfig())

	concept := func(name string) string {
		node, err := s.AddNode(map[string]any{"type": "Concept", "name": name})
		if err != nil {
			t.Fatalf("add_node(%q): %v", name, err)
		}
		return node.ID
	}

	ids := fixtureIDs{
		human:       concept("human"),
		monkey:      concept("monkey"),
		chimp:       concept("chimp"),
		snake:       concept("snake"),
		earthworm:   concept("earthworm"),
		rhino:       concept("rhino"),
		triceratops: concept("triceratops"),
		vine:        concept("vine"),
		ent:         concept("ent"),
		mammal:      concept("mammal"),
		animal:      concept("animal"),
		reptile:     concept("reptile"),
		dinosaur:    concept("dinosaur"),
		plant:       concept("plant"),
	}

	link := func(linkType, a, b string) {
		if _, err := s.AddLink(LinkSpec{Type: linkType, Targets: []TargetSpec{
			{Node: &NodeSpec{Type: "Concept", Name: a}},
			{Node: &NodeSpec{Type: "Concept", Name: b}},
		}}); err != nil {
			t.Fatalf("add_link(%s, %s, %s): %v", linkType, a, b, err)
		}
	}

	link("Similarity", "human", "monkey")
	link("Similarity", "human", "chimp")
	link("Similarity", "chimp", "monkey")
	link("Similarity", "snake", "earthworm")
	link("Similarity", "rhino", "triceratops")
	link("Similarity", "snake", "vine")
	link("Similarity", "human", "ent")

	link("Inheritance", "human", "mammal")
	link("Inheritance", "monkey", "mammal")
	link("Inheritance", "chimp", "mammal")
	link("Inheritance", "mammal", "animal")
	link("Inheritance", "reptile", "animal")
	link("Inheritance", "snake", "reptile")
	link("Inheritance", "dinosaur", "reptile")
	link("Inheritance", "triceratops", "dinosaur")
	link("Inheritance", "earthworm", "animal")
	link("Inheritance", "rhino", "mammal")
	link("Inheritance", "vine", "plant")
	link("Inheritance", "ent", "plant")

	link("Similarity", "monkey", "human")
	link("Similarity", "chimp", "human")
	link("Similarity", "monkey", "chimp")
	link("Similarity", "earthworm", "snake")
	link("Similarity", "triceratops", "rhino")
	link("Similarity", "vine", "snake")
	link("Similarity", "ent", "human")

	return s, ids
}
