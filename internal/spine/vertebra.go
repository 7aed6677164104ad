package spine

import (
	"errors"
	"fmt"

	"spinekit/internal/sim"
	"spinekit/internal/structure"
)

// ErrInvalidParameter is returned for non-positive geometric parameters.
var ErrInvalidParameter = errors.New("geometric parameter must be positive")

// Module-local node indices of one vertebra. The connector synthesizer
// depends on this placement order.
const (
	nodeRight  = 0
	nodeLeft   = 1
	nodeTop    = 2
	nodeFront  = 3
	nodeMiddle = 4
)

// rodPairs are the intra-vertebra members: every outer node to the middle.
var rodPairs = [4][2]int{
	{nodeRight, nodeMiddle},
	{nodeLeft, nodeMiddle},
	{nodeTop, nodeMiddle},
	{nodeFront, nodeMiddle},
}

// AddVertebra appends one 5-node vertebra module to the structure: right and
// left nodes at ±edge/2 on the lateral axis, top and front nodes at ∓edge/2
// on the depth axis raised to height, and a middle node at half height. Its
// four rods are tagged with the given rod class so fixed and moving
// vertebrae can realize with different physical parameters.
func AddVertebra(s *structure.Structure, edge, height float64, rodTag string, moduleTags ...string) (*structure.Module, error) {
	if edge <= 0 {
		return nil, fmt.Errorf("%w: edge %v", ErrInvalidParameter, edge)
	}
	if height <= 0 {
		return nil, fmt.Errorf("%w: height %v", ErrInvalidParameter, height)
	}

	m := s.NewModule(moduleTags...)
	m.AddNode(sim.Vec3{X: edge / 2})                     // right
	m.AddNode(sim.Vec3{X: -edge / 2})                    // left
	m.AddNode(sim.Vec3{Y: height, Z: -edge / 2})         // top
	m.AddNode(sim.Vec3{Y: height, Z: edge / 2})          // front
	m.AddNode(sim.Vec3{Y: height / 2})                   // middle

	for _, p := range rodPairs {
		if err := m.Pair(p[0], p[1], rodTag); err != nil {
			return nil, err
		}
	}
	return m, nil
}
