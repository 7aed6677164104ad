package structure

import (
	"fmt"

	"spinekit/internal/sim"
)

// Module is an ordered view over a contiguous set of arena nodes, carrying
// the tags that identify it (segment identity and the like). Every node
// belongs to exactly one module.
type Module struct {
	s     *Structure
	tags  []string
	nodes []NodeID
}

// AddNode appends a node at the given position to the owning structure's
// arena and records it in this module. Node positions are fixed once placed;
// only whole-module translation moves them.
func (m *Module) AddNode(pos sim.Vec3) NodeID {
	id := NodeID(len(m.s.nodes))
	m.s.nodes = append(m.s.nodes, Node{ID: id, Pos: pos})
	m.nodes = append(m.nodes, id)
	return id
}

// NodeID resolves a module-local index (0-based placement order) to the
// arena identity of the node.
func (m *Module) NodeID(local int) (NodeID, bool) {
	if local < 0 || local >= len(m.nodes) {
		return 0, false
	}
	return m.nodes[local], true
}

// Len returns the number of nodes in the module.
func (m *Module) Len() int { return len(m.nodes) }

// Tags returns the module's tags in the order they were added.
func (m *Module) Tags() []string { return m.tags }

// AddTags appends tags to the module.
func (m *Module) AddTags(tags ...string) {
	m.tags = append(m.tags, tags...)
}

// HasTag reports whether the module carries the exact tag.
func (m *Module) HasTag(tag string) bool {
	for _, t := range m.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Translate applies a rigid offset to every node of the module. This is a
// construction-time operation used to place a module before replication.
func (m *Module) Translate(offset sim.Vec3) {
	for _, id := range m.nodes {
		m.s.nodes[id].Pos = m.s.nodes[id].Pos.Add(offset)
	}
}

// Pair adds an intra-module edge between two module-local node indices.
func (m *Module) Pair(i, j int, tag string) error {
	a, ok := m.NodeID(i)
	if !ok {
		return fmt.Errorf("%w: local index %d out of range", ErrDanglingReference, i)
	}
	b, ok := m.NodeID(j)
	if !ok {
		return fmt.Errorf("%w: local index %d out of range", ErrDanglingReference, j)
	}
	return m.s.AddPair(a, b, tag)
}
