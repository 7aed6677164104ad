package spine

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"spinekit/internal/config"
	"spinekit/internal/ctxlog"
	"spinekit/internal/realize"
	"spinekit/internal/sim"
	"spinekit/internal/structure"
	"spinekit/internal/tagindex"
)

// ErrInvalidTimeStep is returned when a step is requested with a
// non-positive time delta.
var ErrInvalidTimeStep = errors.New("time step must be positive")

// verticalKeys are the symbolic index keys of the four parallel connector
// groups.
var verticalKeys = [4]string{"vertical-a", "vertical-b", "vertical-c", "vertical-d"}

// SaddleKey returns the symbolic index key grouping the saddle cables of the
// k-th adjacent pair (1-indexed).
func SaddleKey(k int) string {
	return fmt.Sprintf("saddle-%d", k)
}

// StepObserver is notified once per time advance, before any object moves,
// so controllers can apply inputs for that step.
type StepObserver interface {
	OnStep(dt float64)
}

// Model is a fully realized spine structure: the retained structure graph
// for introspection, the world of realized objects, and the symbolic cable
// index for controllers.
type Model struct {
	st        *structure.Structure
	modules   []*structure.Module
	world     *sim.World
	rods      []*sim.Rod
	index     *tagindex.Index
	keys      []string
	observers []StepObserver
}

// Build runs the whole pipeline from a validated description: base vertebra,
// replicated chain, connector synthesis, atomic realization, symbolic
// indexing. Construction is all-or-nothing; on any error no partial model is
// returned.
func Build(ctx context.Context, cfg *config.Model) (*Model, error) {
	logger := ctxlog.FromContext(ctx)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	st := structure.New()

	// The fixed base vertebra uses the alternative rod class so it realizes
	// as massless, anchored bodies.
	base, err := AddVertebra(st, cfg.Spine.Edge, cfg.Spine.Height, config.TagRodBase, "segment 1")
	if err != nil {
		return nil, fmt.Errorf("building base vertebra: %w", err)
	}
	base.Translate(sim.Vec3{Y: cfg.Spine.BaseElevation})

	// The moving template is built in a scratch structure; only its clones
	// join the spine.
	scratch := structure.New()
	template, err := AddVertebra(scratch, cfg.Spine.Edge, cfg.Spine.Height, config.TagRod)
	if err != nil {
		return nil, fmt.Errorf("building template vertebra: %w", err)
	}
	template.Translate(sim.Vec3{Y: cfg.Spine.TemplateElevation})

	clones := Replicate(st, template, sim.Vec3{Y: cfg.Spine.Separation}, cfg.Spine.Segments)
	modules := append([]*structure.Module{base}, clones...)
	logger.Debug("Modules assembled.", "count", len(modules), "nodes", len(st.Nodes()))

	if err := AddConnectors(st, modules); err != nil {
		return nil, fmt.Errorf("synthesizing connectors: %w", err)
	}
	logger.Debug("Connectors synthesized.", "edges", len(st.Edges()))

	reg := realize.NewRegistry()
	for _, class := range sortedKeys(cfg.Rods) {
		reg.Register(class, realize.NewRodBuilder(cfg.Rods[class]))
	}
	for _, class := range sortedKeys(cfg.Cables) {
		reg.Register(class, realize.NewCableBuilder(cfg.Cables[class]))
	}

	out, err := realize.Realize(ctx, st, reg)
	if err != nil {
		return nil, fmt.Errorf("realizing structure: %w", err)
	}

	world := sim.NewWorld()
	var rods []*sim.Rod
	for _, o := range out.Objects {
		world.Add(o)
		if r, ok := o.(*sim.Rod); ok {
			rods = append(rods, r)
		}
	}

	// Curated symbolic keys: one per vertical class, one per adjacent pair
	// of saddle cables.
	ix := tagindex.New(out.Cables)
	keys := make([]string, 0, len(verticalKeys)+len(modules)-1)
	for i, key := range verticalKeys {
		ix.Register(key, verticalTags[i])
		keys = append(keys, key)
	}
	for k := 1; k < len(modules); k++ {
		key := SaddleKey(k)
		ix.Register(key, SaddleTag(k))
		keys = append(keys, key)
	}
	logger.Info("Spine model built.",
		"modules", len(modules),
		"nodes", len(st.Nodes()),
		"edges", len(st.Edges()),
		"cables", len(out.Cables),
		"keys", len(keys))

	return &Model{
		st:      st,
		modules: modules,
		world:   world,
		rods:    rods,
		index:   ix,
		keys:    keys,
	}, nil
}

// Step validates the time delta, notifies observers, then forwards the step
// to every realized object. A non-positive delta fails with
// ErrInvalidTimeStep and changes nothing.
func (m *Model) Step(dt float64) error {
	if dt <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidTimeStep, dt)
	}
	for _, o := range m.observers {
		o.OnStep(dt)
	}
	return m.world.Step(dt)
}

// Attach registers an observer for step notifications.
func (m *Model) Attach(o StepObserver) {
	m.observers = append(m.observers, o)
}

// Cables returns the cable group registered under the symbolic key.
func (m *Model) Cables(key string) ([]*sim.Cable, error) {
	return m.index.Get(key)
}

// AllCables returns every realized cable in realization order.
func (m *Model) AllCables() []*sim.Cable {
	return m.index.All()
}

// Keys returns the curated symbolic keys in registration order.
func (m *Model) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Structure returns the retained structure graph for introspection.
func (m *Model) Structure() *structure.Structure {
	return m.st
}

// Modules returns the ordered module sequence, base first.
func (m *Model) Modules() []*structure.Module {
	return m.modules
}

// Rods returns every realized rigid member in realization order.
func (m *Model) Rods() []*sim.Rod {
	return m.rods
}

// World returns the world holding all realized objects.
func (m *Model) World() *sim.World {
	return m.world
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
