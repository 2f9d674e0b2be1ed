package moire

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Rotate turns every grid coordinate by angleDeg around the origin,
// returning new matrices of the same shape. angleDeg == 0 is the identity.
func Rotate(x, y *mat.Dense, angleDeg float64) (*mat.Dense, *mat.Dense) {
	theta := angleDeg * math.Pi / 180
	sin, cos := math.Sincos(theta)

	r, c := x.Dims()
	xr := mat.NewDense(r, c, nil)
	yr := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		xRow, yRow := x.RawRowView(i), y.RawRowView(i)
		xrRow, yrRow := xr.RawRowView(i), yr.RawRowView(i)
		for j, xv := range xRow {
			yv := yRow[j]
			xrRow[j] = xv*cos - yv*sin
			yrRow[j] = xv*sin + yv*cos
		}
	}
	return xr, yr
}
