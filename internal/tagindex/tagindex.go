// Package tagindex groups realized cables under curated semantic keys so
// controllers can address actuator groups by meaning ("vertical-a",
// "saddle-2") instead of positional indices. The index is populated once
// after realization and is read-only afterwards, so concurrent readers are
// safe once construction finishes.
package tagindex

import (
	"errors"
	"fmt"

	"spinekit/internal/sim"
	"spinekit/internal/tags"
)

// ErrKeyNotFound is returned when a lookup names a key that was never
// registered.
var ErrKeyNotFound = errors.New("key not found in index")

// Index maps semantic keys to ordered groups of cable instances. Groups
// preserve realization order; the index holds non-owning references.
type Index struct {
	all    []*sim.Cable
	groups map[string][]*sim.Cable
}

// New creates an index over the full connector set, in realization order.
func New(all []*sim.Cable) *Index {
	return &Index{
		all:    all,
		groups: make(map[string][]*sim.Cable),
	}
}

// Register stores, under key, every cable whose tag matches the token
// pattern. Keys are curated by the caller; registering an existing key is a
// programmer error. An empty group is allowed — a key may legitimately match
// nothing for short chains.
func (ix *Index) Register(key, pattern string) {
	if _, exists := ix.groups[key]; exists {
		panic(fmt.Sprintf("index key %q already registered", key))
	}
	group := []*sim.Cable{}
	for _, c := range ix.all {
		if tags.Match(pattern, c.Tag()) {
			group = append(group, c)
		}
	}
	ix.groups[key] = group
}

// Get returns the group registered under key, in realization order.
func (ix *Index) Get(key string) ([]*sim.Cable, error) {
	group, ok := ix.groups[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return group, nil
}

// All returns every cable regardless of key, in realization order.
func (ix *Index) All() []*sim.Cable {
	return ix.all
}

// Keys returns the number of registered keys.
func (ix *Index) Keys() int {
	return len(ix.groups)
}
