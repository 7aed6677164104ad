package sim

import (
	"math"

	"github.com/google/uuid"
)

// CableParams are the physical parameters of one elastic connector class.
type CableParams struct {
	Stiffness      float64
	Damping        float64
	Pretension     float64
	MaxTension     float64
	TargetVelocity float64
}

// Cable is a realized spring-cable actuator. Its rest length is derived from
// the configured pretension at construction time; controllers command a
// target rest length and each step slews the actual rest length toward the
// target, bounded by the class target velocity.
type Cable struct {
	id         uuid.UUID
	tag        string
	a, b       Vec3
	params     CableParams
	restLength float64
	targetRest float64
}

// NewCable creates a cable between the given attachment points. The initial
// rest length satisfies pretension = stiffness * (length - restLength),
// clamped at zero for pretensions exceeding the attachment distance.
func NewCable(tag string, a, b Vec3, params CableParams) *Cable {
	rest := a.Distance(b) - params.Pretension/params.Stiffness
	if rest < 0 {
		rest = 0
	}
	return &Cable{
		id:         uuid.New(),
		tag:        tag,
		a:          a,
		b:          b,
		params:     params,
		restLength: rest,
		targetRest: rest,
	}
}

func (c *Cable) ID() uuid.UUID       { return c.id }
func (c *Cable) Tag() string         { return c.tag }
func (c *Cable) Params() CableParams { return c.params }

// Endpoints returns the cable's two attachment points.
func (c *Cable) Endpoints() (Vec3, Vec3) { return c.a, c.b }

// Length returns the current distance between the attachment points.
func (c *Cable) Length() float64 { return c.a.Distance(c.b) }

// RestLength returns the current (slewed) rest length.
func (c *Cable) RestLength() float64 { return c.restLength }

// SetTargetRestLength commands a new rest length. Negative targets are
// clamped to zero; a cable cannot have negative slack.
func (c *Cable) SetTargetRestLength(l float64) {
	if l < 0 {
		l = 0
	}
	c.targetRest = l
}

// Tension returns the current cable tension, zero when slack and capped at
// the class maximum.
func (c *Cable) Tension() float64 {
	t := c.params.Stiffness * (c.Length() - c.restLength)
	if t < 0 {
		return 0
	}
	return math.Min(t, c.params.MaxTension)
}

// Step moves the rest length toward the commanded target by at most
// targetVelocity * dt.
func (c *Cable) Step(dt float64) error {
	maxDelta := c.params.TargetVelocity * dt
	delta := c.targetRest - c.restLength
	if math.Abs(delta) > maxDelta {
		delta = math.Copysign(maxDelta, delta)
	}
	c.restLength += delta
	return nil
}
