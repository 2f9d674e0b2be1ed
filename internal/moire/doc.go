// Package moire computes 2D interference intensity fields for stacked,
// strained and mutually twisted hexagonal lattices (twisted bilayer and
// trilayer graphene).
//
// Responsibilities: sampling-grid construction, anisotropic strain
// transforms, twist rotation, hexagonal lattice evaluation, and per-layer
// composition into one combined field.
// Key types: Grid, StrainSpec, LayerSpec, Params.
//
// Everything in this package is a pure function over its inputs: no
// component retains state between renders, and no rendering or HTTP code
// is allowed here.
package moire
