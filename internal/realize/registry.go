package realize

import (
	"errors"
	"fmt"

	"spinekit/internal/sim"
	"spinekit/internal/structure"
	"spinekit/internal/tags"
)

var (
	// ErrUnregisteredTag is returned when an edge's tag matches no
	// registered builder class.
	ErrUnregisteredTag = errors.New("no builder registered for edge tag")

	// ErrAmbiguousTag is returned when an edge's tag matches more than one
	// registered builder class.
	ErrAmbiguousTag = errors.New("edge tag matches more than one builder")
)

// Builder turns one abstract edge into a concrete simulation object.
type Builder interface {
	Build(st *structure.Structure, e structure.Edge) (sim.Object, error)
}

// Registry maps edge-tag classes to builders. A class matches an edge when
// every class token occurs in the edge's tag, so one "cable" builder covers
// all connector classes while per-pair tags stay distinguishable.
type Registry struct {
	order    []string
	builders map[string]Builder
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{builders: make(map[string]Builder)}
}

// Register adds a builder for a tag class. Registering the same class twice
// is a programmer error.
func (r *Registry) Register(class string, b Builder) {
	if _, exists := r.builders[class]; exists {
		panic(fmt.Sprintf("builder for tag class %q already registered", class))
	}
	r.order = append(r.order, class)
	r.builders[class] = b
}

// Classes returns the registered tag classes in registration order.
func (r *Registry) Classes() []string {
	return append([]string(nil), r.order...)
}

// resolve finds the single builder whose class matches the tag.
func (r *Registry) resolve(tag string) (Builder, error) {
	var found Builder
	var matched string
	for _, class := range r.order {
		if !tags.Match(class, tag) {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("%w: %q matches %q and %q", ErrAmbiguousTag, tag, matched, class)
		}
		found = r.builders[class]
		matched = class
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnregisteredTag, tag)
	}
	return found, nil
}
