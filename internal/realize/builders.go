package realize

import (
	"fmt"

	"spinekit/internal/config"
	"spinekit/internal/sim"
	"spinekit/internal/structure"
)

// RodBuilder realizes edges as rigid members using one rod class record.
type RodBuilder struct {
	params config.Rod
}

// NewRodBuilder creates a builder for the given rod class.
func NewRodBuilder(cfg config.Rod) *RodBuilder {
	return &RodBuilder{params: cfg}
}

// Build implements Builder.
func (b *RodBuilder) Build(st *structure.Structure, e structure.Edge) (sim.Object, error) {
	a, bb, err := endpoints(st, e)
	if err != nil {
		return nil, err
	}
	return sim.NewRod(e.Tag, a, bb, sim.RodParams{
		Radius:       b.params.Radius,
		Density:      b.params.Density,
		Friction:     b.params.Friction,
		RollFriction: b.params.RollFriction,
		Restitution:  b.params.Restitution,
	}), nil
}

// CableBuilder realizes edges as spring-cable actuators using one cable
// class record.
type CableBuilder struct {
	params config.Cable
}

// NewCableBuilder creates a builder for the given cable class.
func NewCableBuilder(cfg config.Cable) *CableBuilder {
	return &CableBuilder{params: cfg}
}

// Build implements Builder.
func (b *CableBuilder) Build(st *structure.Structure, e structure.Edge) (sim.Object, error) {
	a, bb, err := endpoints(st, e)
	if err != nil {
		return nil, err
	}
	return sim.NewCable(e.Tag, a, bb, sim.CableParams{
		Stiffness:      b.params.Stiffness,
		Damping:        b.params.Damping,
		Pretension:     b.params.Pretension,
		MaxTension:     b.params.MaxTension,
		TargetVelocity: b.params.TargetVelocity,
	}), nil
}

func endpoints(st *structure.Structure, e structure.Edge) (sim.Vec3, sim.Vec3, error) {
	na, ok := st.Node(e.A)
	if !ok {
		return sim.Vec3{}, sim.Vec3{}, fmt.Errorf("%w: node %d", structure.ErrDanglingReference, e.A)
	}
	nb, ok := st.Node(e.B)
	if !ok {
		return sim.Vec3{}, sim.Vec3{}, fmt.Errorf("%w: node %d", structure.ErrDanglingReference, e.B)
	}
	return na.Pos, nb.Pos, nil
}
