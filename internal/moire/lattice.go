package moire

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Lattice evaluates the hexagonal lattice intensity at every coordinate:
//
//	L(x, y) = cos(2πx/a) + cos(2π(x/2 + √3y/2)/a) + cos(2π(−x/2 + √3y/2)/a)
//
// the superposition of three plane waves 120° apart, which is the graphene
// lattice pattern with lattice constant a. Values lie in [-3, 3] and the
// field is periodic in both axes with period set by a.
func Lattice(x, y *mat.Dense, a float64) *mat.Dense {
	k := 2 * math.Pi / a
	h := math.Sqrt(3) / 2

	r, c := x.Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		xRow, yRow := x.RawRowView(i), y.RawRowView(i)
		outRow := out.RawRowView(i)
		for j, xv := range xRow {
			yv := yRow[j]
			outRow[j] = math.Cos(k*xv) +
				math.Cos(k*(0.5*xv+h*yv)) +
				math.Cos(k*(-0.5*xv+h*yv))
		}
	}
	return out
}
