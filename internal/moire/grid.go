package moire

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// LatticeConstantA is the graphene lattice constant in angstroms. It is the
// periodicity of the lattice intensity function and is not user-tunable.
const LatticeConstantA = 2.46

// Grid is the Cartesian sampling grid for one render. X and Y hold the
// coordinate of every sample: row index follows the y axis, column index
// follows the x axis, so an image row maps to a constant y. A Grid is built
// once per render and never mutated afterwards.
type Grid struct {
	Extent float64
	Size   int

	xs []float64 // column coordinates, length Size
	ys []float64 // row coordinates, length Size

	X *mat.Dense // Size×Size, X.At(r, c) == xs[c]
	Y *mat.Dense // Size×Size, Y.At(r, c) == ys[r]
}

// BuildGrid samples size points over [-extent, extent] on each axis and
// forms the full meshgrid. The caller guarantees extent > 0 and size >= 2;
// the host clamps both via its slider ranges before they reach this package.
func BuildGrid(extent float64, size int) *Grid {
	xs := make([]float64, size)
	ys := make([]float64, size)
	floats.Span(xs, -extent, extent)
	floats.Span(ys, -extent, extent)

	x := mat.NewDense(size, size, nil)
	y := mat.NewDense(size, size, nil)
	for r := 0; r < size; r++ {
		xRow := x.RawRowView(r)
		yRow := y.RawRowView(r)
		copy(xRow, xs)
		for c := range yRow {
			yRow[c] = ys[r]
		}
	}

	return &Grid{Extent: extent, Size: size, xs: xs, ys: ys, X: x, Y: y}
}

// Xs returns the column (x axis) sample coordinates. Callers must not
// mutate the returned slice.
func (g *Grid) Xs() []float64 { return g.xs }

// Ys returns the row (y axis) sample coordinates. Callers must not mutate
// the returned slice.
func (g *Grid) Ys() []float64 { return g.ys }
