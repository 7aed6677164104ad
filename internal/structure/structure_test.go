package structure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spinekit/internal/sim"
)

func TestAddNodeAssignsSequentialIDs(t *testing.T) {
	s := New()
	m := s.NewModule("segment 1")

	id0 := m.AddNode(sim.Vec3{X: 1})
	id1 := m.AddNode(sim.Vec3{Y: 2})

	assert.Equal(t, NodeID(0), id0)
	assert.Equal(t, NodeID(1), id1)
	assert.Equal(t, 2, m.Len())
	require.Len(t, s.Nodes(), 2)
	assert.Equal(t, sim.Vec3{Y: 2}, s.Nodes()[1].Pos)
}

func TestAddPair(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		s := New()
		m := s.NewModule()
		a := m.AddNode(sim.Vec3{})
		b := m.AddNode(sim.Vec3{X: 1})

		require.NoError(t, s.AddPair(a, b, "rod"))
		require.Len(t, s.Edges(), 1)
		assert.Equal(t, Edge{A: a, B: b, Tag: "rod"}, s.Edges()[0])
	})

	t.Run("dangling endpoint", func(t *testing.T) {
		s := New()
		m := s.NewModule()
		a := m.AddNode(sim.Vec3{})

		err := s.AddPair(a, NodeID(99), "rod")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDanglingReference)
		assert.Empty(t, s.Edges())
	})

	t.Run("self-referential edge rejected", func(t *testing.T) {
		s := New()
		m := s.NewModule()
		a := m.AddNode(sim.Vec3{})

		assert.Error(t, s.AddPair(a, a, "rod"))
	})
}

func TestModulePairUsesLocalIndices(t *testing.T) {
	s := New()
	m1 := s.NewModule()
	m1.AddNode(sim.Vec3{})
	m1.AddNode(sim.Vec3{X: 1})

	m2 := s.NewModule()
	m2.AddNode(sim.Vec3{Y: 1})
	m2.AddNode(sim.Vec3{Y: 2})

	// Local index 0 of m2 is arena node 2.
	require.NoError(t, m2.Pair(0, 1, "rod"))
	require.Len(t, s.Edges(), 1)
	assert.Equal(t, NodeID(2), s.Edges()[0].A)
	assert.Equal(t, NodeID(3), s.Edges()[0].B)

	err := m2.Pair(0, 7, "rod")
	assert.ErrorIs(t, err, ErrDanglingReference)
}

func TestCloneModule(t *testing.T) {
	s := New()
	template := s.NewModule()
	template.AddNode(sim.Vec3{X: 1})
	template.AddNode(sim.Vec3{X: -1})

	clone := s.CloneModule(template, sim.Vec3{Y: 7.5}, "segment 2")

	// Fresh identities, no aliasing with the template.
	require.Equal(t, 2, clone.Len())
	cid, ok := clone.NodeID(0)
	require.True(t, ok)
	tid, _ := template.NodeID(0)
	assert.NotEqual(t, tid, cid)

	n, ok := s.Node(cid)
	require.True(t, ok)
	assert.Equal(t, sim.Vec3{X: 1, Y: 7.5}, n.Pos)

	// Translating the clone leaves the template untouched.
	clone.Translate(sim.Vec3{Z: 3})
	orig, _ := s.Node(tid)
	assert.Equal(t, sim.Vec3{X: 1}, orig.Pos)

	assert.True(t, clone.HasTag("segment 2"))
	assert.False(t, template.HasTag("segment 2"))
}

func TestCloneModuleCopiesIntraModuleEdges(t *testing.T) {
	scratch := New()
	template := scratch.NewModule()
	template.AddNode(sim.Vec3{})
	template.AddNode(sim.Vec3{X: 1})
	template.AddNode(sim.Vec3{X: 2})
	require.NoError(t, template.Pair(0, 2, "rod"))
	require.NoError(t, template.Pair(1, 2, "rod"))

	s := New()
	clone := s.CloneModule(template, sim.Vec3{Y: 5})

	require.Len(t, s.Edges(), 2)
	a0, _ := clone.NodeID(0)
	a2, _ := clone.NodeID(2)
	assert.Equal(t, Edge{A: a0, B: a2, Tag: "rod"}, s.Edges()[0])

	// Edges of the destination structure are never duplicated onto clones.
	other := s.NewModule()
	other.AddNode(sim.Vec3{})
	other.AddNode(sim.Vec3{X: 1})
	require.NoError(t, other.Pair(0, 1, "cable vertical a"))
	clone2 := s.CloneModule(template, sim.Vec3{Y: 10})
	assert.Equal(t, 3, clone2.Len())
	assert.Equal(t, map[string]int{"rod": 4, "cable vertical a": 1}, s.TagCounts())
}

func TestCloneInheritsTemplateTags(t *testing.T) {
	s := New()
	template := s.NewModule("vertebra")
	template.AddNode(sim.Vec3{})

	clone := s.CloneModule(template, sim.Vec3{}, "segment 3")
	assert.True(t, clone.HasTag("vertebra"))
	assert.True(t, clone.HasTag("segment 3"))
}

func TestCloneModuleAcrossStructures(t *testing.T) {
	scratch := New()
	template := scratch.NewModule()
	template.AddNode(sim.Vec3{X: 2})

	s := New()
	clone := s.CloneModule(template, sim.Vec3{Y: 1}, "segment 2")

	// The template's nodes never join the destination structure.
	require.Len(t, s.Nodes(), 1)
	require.Len(t, scratch.Nodes(), 1)
	id, ok := clone.NodeID(0)
	require.True(t, ok)
	n, _ := s.Node(id)
	assert.Equal(t, sim.Vec3{X: 2, Y: 1}, n.Pos)
}

func TestTagCounts(t *testing.T) {
	s := New()
	m := s.NewModule()
	for i := 0; i < 3; i++ {
		m.AddNode(sim.Vec3{X: float64(i)})
	}
	require.NoError(t, m.Pair(0, 1, "rod"))
	require.NoError(t, m.Pair(1, 2, "rod"))
	require.NoError(t, m.Pair(0, 2, "cable vertical a"))

	assert.Equal(t, map[string]int{"rod": 2, "cable vertical a": 1}, s.TagCounts())
}

func TestNodeLookupMiss(t *testing.T) {
	s := New()
	_, ok := s.Node(NodeID(0))
	assert.False(t, ok)
}
