package moire

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// StrainSpec describes an anisotropic in-plane strain for one layer:
// Percent is the strain magnitude, AngleDeg the principal direction.
// The zero value is a null strain and deforms nothing.
type StrainSpec struct {
	Percent  float64 `json:"strain_percent"`
	AngleDeg float64 `json:"strain_angle_deg"`
}

// StrainMatrix builds the 2×2 deformation matrix for s:
//
//	M = I + ε,  ε = f · [cos²θ  sinθcosθ; sinθcosθ  sin²θ],  f = Percent/100.
//
// At Percent == 0 this is exactly the identity.
func (s StrainSpec) StrainMatrix() *mat.Dense {
	theta := s.AngleDeg * math.Pi / 180
	f := s.Percent / 100
	sin, cos := math.Sincos(theta)

	exx := f * cos * cos
	eyy := f * sin * sin
	exy := f * sin * cos
	return mat.NewDense(2, 2, []float64{1 + exx, exy, exy, 1 + eyy})
}

// ApplyStrain maps every grid coordinate through the deformation matrix of
// spec, returning new matrices of the same shape. The inputs are not
// modified. NaN and Inf coordinates propagate unchanged in kind.
func ApplyStrain(x, y *mat.Dense, spec StrainSpec) (*mat.Dense, *mat.Dense) {
	m := spec.StrainMatrix()
	m00, m01 := m.At(0, 0), m.At(0, 1)
	m10, m11 := m.At(1, 0), m.At(1, 1)

	r, c := x.Dims()
	xs := mat.NewDense(r, c, nil)
	ys := mat.NewDense(r, c, nil)

	for i := 0; i < r; i++ {
		xRow, yRow := x.RawRowView(i), y.RawRowView(i)
		xsRow, ysRow := xs.RawRowView(i), ys.RawRowView(i)
		for j, xv := range xRow {
			yv := yRow[j]
			xsRow[j] = m00*xv + m01*yv
			ysRow[j] = m10*xv + m11*yv
		}
	}
	return xs, ys
}
