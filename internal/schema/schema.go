// Package schema defines the HCL shape of a structure description file.
// Attributes are pointers so the loader can tell "absent, keep the default"
// apart from an explicit zero.
package schema

// Description is the top-level structure of one description file: one
// optional spine block plus any number of rod and cable class blocks.
type Description struct {
	Spine  *SpineBlock   `hcl:"spine,block"`
	Rods   []*RodBlock   `hcl:"rod,block"`
	Cables []*CableBlock `hcl:"cable,block"`
}

// SpineBlock configures the chain as a whole.
type SpineBlock struct {
	Segments          *int     `hcl:"segments,optional"`
	Edge              *float64 `hcl:"edge,optional"`
	Height            *float64 `hcl:"height,optional"`
	Separation        *float64 `hcl:"separation,optional"`
	BaseElevation     *float64 `hcl:"base_elevation,optional"`
	TemplateElevation *float64 `hcl:"template_elevation,optional"`
}

// RodBlock configures one rigid-member class, labeled by its class tag.
type RodBlock struct {
	Class        string   `hcl:"class,label"`
	Radius       *float64 `hcl:"radius,optional"`
	Density      *float64 `hcl:"density,optional"`
	Friction     *float64 `hcl:"friction,optional"`
	RollFriction *float64 `hcl:"roll_friction,optional"`
	Restitution  *float64 `hcl:"restitution,optional"`
}

// CableBlock configures one elastic connector class, labeled by its class tag.
type CableBlock struct {
	Class          string   `hcl:"class,label"`
	Stiffness      *float64 `hcl:"stiffness,optional"`
	Damping        *float64 `hcl:"damping,optional"`
	Pretension     *float64 `hcl:"pretension,optional"`
	MaxTension     *float64 `hcl:"max_tension,optional"`
	TargetVelocity *float64 `hcl:"target_velocity,optional"`
}
