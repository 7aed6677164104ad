/*
Package structure holds the pre-realization description of a jointed
structure: an arena of positioned nodes, tagged edges between them, and
modules that act as ordered index views over the arena.

Nodes and edges live in flat, append-only slices addressed by integer index.
Replicating a module appends freshly indexed copies of its nodes instead of
deep-copying nested objects, so a template and its clones can never alias.
Edge insertion order is the canonical traversal order for realization, which
keeps repeated builds of the same description byte-for-byte reproducible.
*/
package structure
