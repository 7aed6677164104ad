package sim

import (
	"math"

	"github.com/google/uuid"
)

// RodParams are the physical parameters of one rigid member class. Setting
// Density to zero makes every rod of the class fixed in space, which is how
// the non-moving base module is anchored.
type RodParams struct {
	Radius       float64
	Density      float64
	Friction     float64
	RollFriction float64
	Restitution  float64
}

// Rod is a realized rigid member between two fixed attachment points.
// Motion is owned by the external solver, so Step is a no-op.
type Rod struct {
	id     uuid.UUID
	tag    string
	a, b   Vec3
	params RodParams
}

// NewRod creates a rod between the given endpoints.
func NewRod(tag string, a, b Vec3, params RodParams) *Rod {
	return &Rod{
		id:     uuid.New(),
		tag:    tag,
		a:      a,
		b:      b,
		params: params,
	}
}

func (r *Rod) ID() uuid.UUID     { return r.id }
func (r *Rod) Tag() string       { return r.tag }
func (r *Rod) Params() RodParams { return r.params }

// Endpoints returns the rod's two attachment points.
func (r *Rod) Endpoints() (Vec3, Vec3) { return r.a, r.b }

// Length returns the distance between the rod's endpoints.
func (r *Rod) Length() float64 { return r.a.Distance(r.b) }

// Mass returns the rod's mass, computed from its cylinder volume and the
// class density. Zero density yields zero mass (fixed body).
func (r *Rod) Mass() float64 {
	volume := math.Pi * r.params.Radius * r.params.Radius * r.Length()
	return volume * r.params.Density
}

// Step implements Object. Rigid members are advanced by the solver, not here.
func (r *Rod) Step(dt float64) error { return nil }
