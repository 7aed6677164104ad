package realize

import (
	"context"
	"fmt"

	"spinekit/internal/ctxlog"
	"spinekit/internal/sim"
	"spinekit/internal/structure"
)

// Realization is the output collection of one realization pass. It owns the
// produced objects; Cables is the subset of connector instances, in
// realization order, for symbolic indexing.
type Realization struct {
	Objects []sim.Object
	Cables  []*sim.Cable
}

// Realize walks every edge of the structure exactly once and builds one
// instance per edge. Builder resolution is validated for all edges before
// any instance is created: either every edge realizes or none do.
func Realize(ctx context.Context, st *structure.Structure, reg *Registry) (*Realization, error) {
	logger := ctxlog.FromContext(ctx)
	edges := st.Edges()

	// Resolution pass. Any miss aborts before construction starts.
	builders := make([]Builder, len(edges))
	for i, e := range edges {
		b, err := reg.resolve(e.Tag)
		if err != nil {
			return nil, err
		}
		builders[i] = b
	}
	logger.Debug("Builder resolution complete.", "edge_count", len(edges), "classes", reg.Classes())

	// Construction pass, in edge insertion order.
	out := &Realization{Objects: make([]sim.Object, 0, len(edges))}
	for i, e := range edges {
		obj, err := builders[i].Build(st, e)
		if err != nil {
			return nil, fmt.Errorf("building edge %d (tag %q): %w", i, e.Tag, err)
		}
		out.Objects = append(out.Objects, obj)
		if c, ok := obj.(*sim.Cable); ok {
			out.Cables = append(out.Cables, c)
		}
	}
	logger.Debug("Realization complete.", "objects", len(out.Objects), "cables", len(out.Cables))
	return out, nil
}
