package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCableParams() CableParams {
	return CableParams{
		Stiffness:      1000,
		Damping:        10,
		Pretension:     2452,
		MaxTension:     100000,
		TargetVelocity: 10000,
	}
}

func TestNewCableRestLength(t *testing.T) {
	// length 10, pretension 2452 at stiffness 1000 -> rest = 10 - 2.452
	c := NewCable("cable vertical a", Vec3{}, Vec3{0, 10, 0}, testCableParams())
	assert.InDelta(t, 7.548, c.RestLength(), 1e-9)
	assert.InDelta(t, 2452.0, c.Tension(), 1e-9)
}

func TestNewCableRestLengthClampedAtZero(t *testing.T) {
	p := testCableParams()
	p.Pretension = 1e9
	p.MaxTension = 5000
	c := NewCable("cable vertical a", Vec3{}, Vec3{0, 10, 0}, p)
	assert.Zero(t, c.RestLength())
	// Raw tension would be stiffness*length = 10000; capped at the class maximum.
	assert.Equal(t, 5000.0, c.Tension())
}

func TestCableStepSlewsTowardTarget(t *testing.T) {
	p := testCableParams()
	p.TargetVelocity = 1.0
	c := NewCable("cable saddle seg1", Vec3{}, Vec3{0, 10, 0}, p)
	start := c.RestLength()

	c.SetTargetRestLength(start - 5)
	require.NoError(t, c.Step(0.5))
	// Bounded by targetVelocity * dt = 0.5 per step.
	assert.InDelta(t, start-0.5, c.RestLength(), 1e-9)

	for i := 0; i < 20; i++ {
		require.NoError(t, c.Step(0.5))
	}
	assert.InDelta(t, start-5, c.RestLength(), 1e-9)
}

func TestCableTargetClampedAtZero(t *testing.T) {
	c := NewCable("cable vertical b", Vec3{}, Vec3{0, 10, 0}, testCableParams())
	c.SetTargetRestLength(-3)
	require.NoError(t, c.Step(1))
	assert.Zero(t, c.RestLength())
}

func TestCableSlackHasNoTension(t *testing.T) {
	p := testCableParams()
	p.Pretension = 0
	c := NewCable("cable vertical c", Vec3{}, Vec3{0, 10, 0}, p)
	c.SetTargetRestLength(20)
	require.NoError(t, c.Step(1))
	assert.Zero(t, c.Tension())
}

func TestCableIdentity(t *testing.T) {
	a := NewCable("cable vertical d", Vec3{}, Vec3{0, 1, 0}, testCableParams())
	b := NewCable("cable vertical d", Vec3{}, Vec3{0, 1, 0}, testCableParams())
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, "cable vertical d", a.Tag())
}
