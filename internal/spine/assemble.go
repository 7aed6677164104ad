package spine

import (
	"errors"
	"fmt"

	"spinekit/internal/sim"
	"spinekit/internal/structure"
)

// ErrInsufficientModules is returned when connector synthesis is asked to
// join fewer than two modules.
var ErrInsufficientModules = errors.New("connector synthesis requires at least two modules")

// verticalTags are the parallel connector classes, one per outer node index.
// They are constant across adjacent pairs: all "vertical a" cables form one
// actuator group along the whole chain.
var verticalTags = [4]string{
	"cable vertical a",
	"cable vertical b",
	"cable vertical c",
	"cable vertical d",
}

// saddlePairs is the cross-connector index contract: (local index in lower
// vertebra, local index in upper vertebra). The asymmetry is part of the
// mechanical design and must not be re-derived from geometry.
var saddlePairs = [4][2]int{
	{nodeTop, nodeLeft},
	{nodeFront, nodeLeft},
	{nodeTop, nodeRight},
	{nodeFront, nodeRight},
}

// SaddleTag returns the per-pair saddle connector tag for the k-th adjacent
// pair (1-indexed), so saddle cables of different pairs stay
// distinguishable while sharing the "cable saddle" class.
func SaddleTag(k int) string {
	return fmt.Sprintf("cable saddle seg%d", k)
}

// Replicate appends n clones of the template to the structure. Clone i
// (1-indexed) is translated by i × offset and tagged "segment <i+1>"; the
// base module is by convention "segment 1". Replication is deterministic
// and clones never share node identity with the template or each other.
func Replicate(s *structure.Structure, template *structure.Module, offset sim.Vec3, n int) []*structure.Module {
	clones := make([]*structure.Module, 0, n)
	for i := 1; i <= n; i++ {
		clone := s.CloneModule(template, offset.Scale(float64(i)), fmt.Sprintf("segment %d", i+1))
		clones = append(clones, clone)
	}
	return clones
}

// AddConnectors synthesizes the cable edges between every adjacent pair of
// the ordered module sequence: four vertical cables joining equal local
// indices and four saddle cables following the saddlePairs contract. The
// fixed base module participates in the same pattern as interior segments.
func AddConnectors(s *structure.Structure, modules []*structure.Module) error {
	if len(modules) < 2 {
		return fmt.Errorf("%w: got %d", ErrInsufficientModules, len(modules))
	}

	for k := 1; k < len(modules); k++ {
		lower, upper := modules[k-1], modules[k]

		for idx, tag := range verticalTags {
			a, ok := lower.NodeID(idx)
			if !ok {
				return fmt.Errorf("%w: module %d lacks node %d", structure.ErrDanglingReference, k-1, idx)
			}
			b, ok := upper.NodeID(idx)
			if !ok {
				return fmt.Errorf("%w: module %d lacks node %d", structure.ErrDanglingReference, k, idx)
			}
			if err := s.AddPair(a, b, tag); err != nil {
				return err
			}
		}

		saddleTag := SaddleTag(k)
		for _, p := range saddlePairs {
			a, ok := lower.NodeID(p[0])
			if !ok {
				return fmt.Errorf("%w: module %d lacks node %d", structure.ErrDanglingReference, k-1, p[0])
			}
			b, ok := upper.NodeID(p[1])
			if !ok {
				return fmt.Errorf("%w: module %d lacks node %d", structure.ErrDanglingReference, k, p[1])
			}
			if err := s.AddPair(a, b, saddleTag); err != nil {
				return err
			}
		}
	}
	return nil
}
