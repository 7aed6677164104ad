package sim

import "github.com/google/uuid"

// Object is a realized, simulation-ready instance. Every object carries a
// unique identity and the tag of the structure edge it was built from, so
// downstream indexing can group objects without positional knowledge.
type Object interface {
	ID() uuid.UUID
	Tag() string
	Step(dt float64) error
}
