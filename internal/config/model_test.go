package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValidates(t *testing.T) {
	m := Default()
	require.NoError(t, m.Validate())

	assert.Equal(t, 2, m.Spine.Segments)
	assert.InDelta(t, 14.14, m.Spine.Height, 1e-9)
	assert.Contains(t, m.Rods, TagRod)
	assert.Contains(t, m.Rods, TagRodBase)
	assert.Contains(t, m.Cables, TagCable)
}

func TestValidateRejectsNonPositiveGeometry(t *testing.T) {
	cases := map[string]func(*Model){
		"zero edge":        func(m *Model) { m.Spine.Edge = 0 },
		"negative height":  func(m *Model) { m.Spine.Height = -1 },
		"zero separation":  func(m *Model) { m.Spine.Separation = 0 },
		"negative count":   func(m *Model) { m.Spine.Segments = -1 },
		"zero rod radius":  func(m *Model) { r := m.Rods[TagRod]; r.Radius = 0; m.Rods[TagRod] = r },
		"zero stiffness":   func(m *Model) { c := m.Cables[TagCable]; c.Stiffness = 0; m.Cables[TagCable] = c },
		"friction above 1": func(m *Model) { r := m.Rods[TagRod]; r.Friction = 1.5; m.Rods[TagRod] = r },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			m := Default()
			mutate(m)
			assert.Error(t, m.Validate())
		})
	}
}

func TestValidateAllowsZeroDensity(t *testing.T) {
	m := Default()
	r := m.Rods[TagRodBase]
	require.Zero(t, r.Density)
	assert.NoError(t, m.Validate())
}

func TestValidateRequiresClasses(t *testing.T) {
	m := Default()
	m.Cables = nil
	assert.Error(t, m.Validate())

	m = Default()
	m.Rods = map[string]Rod{}
	assert.Error(t, m.Validate())
}
