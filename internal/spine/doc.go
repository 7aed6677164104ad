/*
Package spine implements the generative assembly pipeline for a vertical
tensegrity spine: build one tetrahedral vertebra, replicate it along a
vertical offset, synthesize the elastic connectors between adjacent
vertebrae, realize the resulting graph through the builder registry, and
index the realized cables under symbolic keys for controllers.

The connector node-index pattern between adjacent vertebrae is a fixed
topological contract of the mechanical design, not something derived from
geometry: four parallel "vertical" cables join equal local indices, and four
"saddle" cables join the upper nodes of the lower vertebra to the lateral
nodes of the upper one.
*/
package spine
