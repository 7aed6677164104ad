// Package realize turns an abstract structure graph into concrete
// simulation objects. A Registry maps edge-tag classes to builders; the
// realizer first resolves a builder for every edge in the graph and only
// then constructs instances, so a single unregistered tag aborts the whole
// realization before any object exists. Edges are realized in insertion
// order, which keeps repeated runs reproducible.
package realize
