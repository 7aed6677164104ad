package structure

import (
	"errors"
	"fmt"

	"spinekit/internal/sim"
)

// ErrDanglingReference is returned when an edge names a node that does not
// exist in the structure.
var ErrDanglingReference = errors.New("edge endpoint not present in structure")

// NodeID addresses one node in the structure's arena.
type NodeID int

// Node is a positioned point owned by exactly one module.
type Node struct {
	ID  NodeID
	Pos sim.Vec3
}

// Edge is an unordered pair of nodes carrying exactly one type tag. The tag
// decides which builder realizes the edge and how the resulting instance is
// indexed afterwards.
type Edge struct {
	A, B NodeID
	Tag  string
}

// Structure is the aggregate node/edge graph under construction. It is a
// general multigraph, not a tree, and is not safe for concurrent mutation;
// construction is a single-threaded, all-or-nothing phase.
type Structure struct {
	nodes   []Node
	edges   []Edge
	modules []*Module
}

// New creates an empty structure.
func New() *Structure {
	return &Structure{}
}

// NewModule appends an empty module view with the given tags.
func (s *Structure) NewModule(tags ...string) *Module {
	m := &Module{s: s, tags: append([]string(nil), tags...)}
	s.modules = append(s.modules, m)
	return m
}

// CloneModule appends a copy of the template module: every node translated
// by offset and given a fresh identity, and every intra-module edge of the
// template recreated between the corresponding clone nodes. The template may
// belong to another structure, so a scratch template can be cloned into the
// final graph without its own nodes ever joining it. The clone inherits the
// template's tags plus any extra tags supplied.
func (s *Structure) CloneModule(template *Module, offset sim.Vec3, extraTags ...string) *Module {
	clone := s.NewModule(template.tags...)
	clone.AddTags(extraTags...)

	remap := make(map[NodeID]NodeID, len(template.nodes))
	for _, id := range template.nodes {
		remap[id] = clone.AddNode(template.s.nodes[id].Pos.Add(offset))
	}
	for _, e := range template.s.edges {
		a, okA := remap[e.A]
		b, okB := remap[e.B]
		if !okA || !okB {
			continue // not an intra-module edge of the template
		}
		// Endpoints are fresh arena entries, so AddPair cannot fail here.
		_ = s.AddPair(a, b, e.Tag)
	}
	return clone
}

// AddPair adds a tagged edge between two existing nodes. It fails with
// ErrDanglingReference if either endpoint is unknown, and rejects
// self-referential edges.
func (s *Structure) AddPair(a, b NodeID, tag string) error {
	if a == b {
		return fmt.Errorf("self-referential edge not allowed: node %d", a)
	}
	for _, id := range []NodeID{a, b} {
		if id < 0 || int(id) >= len(s.nodes) {
			return fmt.Errorf("%w: node %d (tag %q)", ErrDanglingReference, id, tag)
		}
	}
	s.edges = append(s.edges, Edge{A: a, B: b, Tag: tag})
	return nil
}

// Node returns the node with the given ID.
func (s *Structure) Node(id NodeID) (Node, bool) {
	if id < 0 || int(id) >= len(s.nodes) {
		return Node{}, false
	}
	return s.nodes[id], true
}

// Nodes returns all nodes in arena order.
func (s *Structure) Nodes() []Node { return s.nodes }

// Edges returns all edges in insertion order, which is the realization order.
func (s *Structure) Edges() []Edge { return s.edges }

// Modules returns all modules in creation order.
func (s *Structure) Modules() []*Module { return s.modules }

// TagCounts returns the multiset of edge tags. Two builds of the same
// description must produce equal tag counts.
func (s *Structure) TagCounts() map[string]int {
	counts := make(map[string]int, len(s.edges))
	for _, e := range s.edges {
		counts[e.Tag]++
	}
	return counts
}
