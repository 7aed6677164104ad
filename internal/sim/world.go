package sim

import "fmt"

// World holds realized objects in insertion order and forwards time steps
// to them. It is the hand-off point to the external solver.
type World struct {
	objects []Object
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{}
}

// Add appends an object to the world.
func (w *World) Add(o Object) {
	w.objects = append(w.objects, o)
}

// Objects returns the held objects in insertion order.
func (w *World) Objects() []Object {
	return w.objects
}

// Step forwards the time delta to every object in insertion order.
func (w *World) Step(dt float64) error {
	for _, o := range w.objects {
		if err := o.Step(dt); err != nil {
			return fmt.Errorf("stepping object %s (%s): %w", o.ID(), o.Tag(), err)
		}
	}
	return nil
}
