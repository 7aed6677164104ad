// Package config defines the format-agnostic description of a spine
// structure: geometry of one vertebra, chain length and spacing, and the
// physical parameter records for each rigid-member and cable class. Loaders
// (HCL today) translate their on-disk formats into this model; every
// component downstream receives explicit records from here instead of
// reading process-wide constants.
package config
