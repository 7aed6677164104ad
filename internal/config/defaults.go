package config

// Class tags of the default description. The assembly pipeline tags moving
// rods "rod", base rods "rodB", and every connector with a tag containing
// the "cable" token.
const (
	TagRod     = "rod"
	TagRodBase = "rodB"
	TagCable   = "cable"
)

// Default returns the built-in two-segment spine description. The values
// reproduce the reference model: a symmetric tetrahedron has
// height = edge / sqrt(2).
func Default() *Model {
	return &Model{
		Spine: Spine{
			Segments:          2,
			Edge:              20.0,
			Height:            14.14,
			Separation:        7.5,
			BaseElevation:     2.0,
			TemplateElevation: 1.5,
		},
		Rods: map[string]Rod{
			TagRod: {
				Radius:       0.5,
				Density:      0.026,
				Friction:     0.99,
				RollFriction: 0.01,
				Restitution:  0.0,
			},
			// Zero density anchors the base vertebra in space.
			TagRodBase: {
				Radius:       0.5,
				Density:      0.0,
				Friction:     0.99,
				RollFriction: 0.01,
				Restitution:  0.0,
			},
		},
		Cables: map[string]Cable{
			TagCable: {
				Stiffness:      1000.0,
				Damping:        10.0,
				Pretension:     2452.0,
				MaxTension:     100000.0,
				TargetVelocity: 10000.0,
			},
		},
	}
}
