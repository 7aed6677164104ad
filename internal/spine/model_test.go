package spine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spinekit/internal/config"
	"spinekit/internal/realize"
	"spinekit/internal/tagindex"
)

// recorder captures step notifications.
type recorder struct {
	deltas []float64
}

func (r *recorder) OnStep(dt float64) {
	r.deltas = append(r.deltas, dt)
}

func buildDefault(t *testing.T) *Model {
	t.Helper()
	m, err := Build(context.Background(), config.Default())
	require.NoError(t, err)
	return m
}

func TestBuildDefaultScenario(t *testing.T) {
	m := buildDefault(t)

	// Two moving segments plus the fixed base.
	require.Len(t, m.Modules(), 3)
	assert.True(t, m.Modules()[0].HasTag("segment 1"))
	assert.True(t, m.Modules()[1].HasTag("segment 2"))
	assert.True(t, m.Modules()[2].HasTag("segment 3"))

	st := m.Structure()
	assert.Len(t, st.Nodes(), 15)
	assert.Len(t, st.Edges(), 28) // 12 rods + 2 pairs x 8 cables

	counts := st.TagCounts()
	assert.Equal(t, 4, counts[config.TagRodBase])
	assert.Equal(t, 8, counts[config.TagRod])

	require.Len(t, m.AllCables(), 16)
	require.Len(t, m.Rods(), 12)
	assert.Len(t, m.World().Objects(), 28)

	// Vertical keys group one cable per adjacent pair; saddle keys group the
	// four cross cables of their pair.
	for _, key := range []string{"vertical-a", "vertical-b", "vertical-c", "vertical-d"} {
		group, err := m.Cables(key)
		require.NoError(t, err)
		assert.Len(t, group, 2, key)
	}
	for _, key := range []string{"saddle-1", "saddle-2"} {
		group, err := m.Cables(key)
		require.NoError(t, err)
		assert.Len(t, group, 4, key)
	}
	assert.Equal(t, []string{
		"vertical-a", "vertical-b", "vertical-c", "vertical-d",
		"saddle-1", "saddle-2",
	}, m.Keys())
}

func TestBuildPlacesModules(t *testing.T) {
	m := buildDefault(t)
	st := m.Structure()

	// Base right node sits at the base elevation; clone i at
	// template elevation + i * separation.
	baseRight, _ := m.Modules()[0].NodeID(nodeRight)
	n, _ := st.Node(baseRight)
	assert.InDelta(t, 2.0, n.Pos.Y, 1e-12)

	cloneRight, _ := m.Modules()[1].NodeID(nodeRight)
	n, _ = st.Node(cloneRight)
	assert.InDelta(t, 9.0, n.Pos.Y, 1e-12)

	clone2Right, _ := m.Modules()[2].NodeID(nodeRight)
	n, _ = st.Node(clone2Right)
	assert.InDelta(t, 16.5, n.Pos.Y, 1e-12)
}

func TestBuildBaseIsMassless(t *testing.T) {
	m := buildDefault(t)
	for _, r := range m.Rods() {
		if r.Tag() == config.TagRodBase {
			assert.Zero(t, r.Mass())
		} else {
			assert.Greater(t, r.Mass(), 0.0)
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	a := buildDefault(t)
	b := buildDefault(t)

	assert.Equal(t, len(a.Structure().Nodes()), len(b.Structure().Nodes()))
	assert.Equal(t, len(a.Structure().Edges()), len(b.Structure().Edges()))
	assert.Equal(t, a.Structure().TagCounts(), b.Structure().TagCounts())

	aTags := make([]string, 0, len(a.AllCables()))
	for _, c := range a.AllCables() {
		aTags = append(aTags, c.Tag())
	}
	bTags := make([]string, 0, len(b.AllCables()))
	for _, c := range b.AllCables() {
		bTags = append(bTags, c.Tag())
	}
	assert.Equal(t, aTags, bTags)
}

func TestBuildRejectsInvalidDescription(t *testing.T) {
	cfg := config.Default()
	cfg.Spine.Edge = 0
	_, err := Build(context.Background(), cfg)
	assert.Error(t, err)
}

func TestBuildWithoutSegmentsFailsConnectorSynthesis(t *testing.T) {
	cfg := config.Default()
	cfg.Spine.Segments = 0
	_, err := Build(context.Background(), cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientModules)
}

func TestBuildFailsAtomicallyOnUnregisteredClass(t *testing.T) {
	cfg := config.Default()
	// A "muscle" class matches none of the synthesized cable tags.
	cfg.Cables = map[string]config.Cable{"muscle": cfg.Cables[config.TagCable]}

	m, err := Build(context.Background(), cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, realize.ErrUnregisteredTag)
	assert.Nil(t, m)
}

func TestStepValidatesDelta(t *testing.T) {
	m := buildDefault(t)
	rec := &recorder{}
	m.Attach(rec)

	before := make([]float64, 0, len(m.AllCables()))
	for _, c := range m.AllCables() {
		c.SetTargetRestLength(0)
		before = append(before, c.RestLength())
	}

	for _, dt := range []float64{-1.0, 0} {
		err := m.Step(dt)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidTimeStep)
	}

	// A failed step produces no notification and no state change.
	assert.Empty(t, rec.deltas)
	for i, c := range m.AllCables() {
		assert.Equal(t, before[i], c.RestLength())
	}
}

func TestStepNotifiesObserversBeforeAdvancing(t *testing.T) {
	m := buildDefault(t)
	cable := m.AllCables()[0]
	start := cable.RestLength()

	// The observer commands a new target during notification; the same step
	// must already move the rest length, proving notify-then-advance order.
	m.Attach(observerFunc(func(dt float64) {
		cable.SetTargetRestLength(start - 1)
	}))

	require.NoError(t, m.Step(0.001))
	assert.Less(t, cable.RestLength(), start)
}

// observerFunc adapts a func to StepObserver.
type observerFunc func(dt float64)

func (f observerFunc) OnStep(dt float64) { f(dt) }

func TestCablesUnknownKey(t *testing.T) {
	m := buildDefault(t)
	_, err := m.Cables("nonexistent")
	require.Error(t, err)
	assert.ErrorIs(t, err, tagindex.ErrKeyNotFound)
}
