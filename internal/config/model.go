package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance for description records.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Spine describes the chain as a whole: how many moving vertebrae to
// replicate, the vertebra geometry, and the vertical placement constants.
type Spine struct {
	// Segments is the number of moving vertebrae cloned from the template.
	// The fixed base vertebra is always present on top of these.
	Segments int `validate:"gte=0"`

	// Edge is the lateral width of one vertebra; Height its total height.
	Edge   float64 `validate:"gt=0"`
	Height float64 `validate:"gt=0"`

	// Separation is the vertical distance between adjacent vertebrae.
	Separation float64 `validate:"gt=0"`

	// BaseElevation places the fixed base vertebra; TemplateElevation places
	// the template so that clone i lands at TemplateElevation + i*Separation.
	BaseElevation     float64
	TemplateElevation float64
}

// Rod is the physical parameter record for one rigid-member class. A class
// with zero density realizes as fixed-in-space bodies.
type Rod struct {
	Radius       float64 `validate:"gt=0"`
	Density      float64 `validate:"gte=0"`
	Friction     float64 `validate:"gte=0,lte=1"`
	RollFriction float64 `validate:"gte=0,lte=1"`
	Restitution  float64 `validate:"gte=0,lte=1"`
}

// Cable is the physical parameter record for one elastic connector class.
type Cable struct {
	Stiffness      float64 `validate:"gt=0"`
	Damping        float64 `validate:"gte=0"`
	Pretension     float64 `validate:"gte=0"`
	MaxTension     float64 `validate:"gt=0"`
	TargetVelocity float64 `validate:"gt=0"`
}

// Model is the complete, validated structure description handed to the
// assembly pipeline. Rod and cable records are keyed by their class tag
// ("rod", "rodB", "cable").
type Model struct {
	Spine  Spine            `validate:"required"`
	Rods   map[string]Rod   `validate:"required,min=1,dive"`
	Cables map[string]Cable `validate:"required,min=1,dive"`
}

// Validate checks every record against its declared parameter ranges.
func (m *Model) Validate() error {
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("invalid structure description: %w", err)
	}
	return nil
}
