package moire

import "gonum.org/v1/gonum/mat"

// FieldResult is a composed combined field together with the grid it was
// sampled on and a caption for the rendering layer. It is handed off to the
// renderer and not retained between requests.
type FieldResult struct {
	Grid  *Grid
	Data  *mat.Dense
	Title string
}

// Dims returns (columns, rows). Together with Z, X and Y this satisfies
// gonum/plot's plotter.GridXYZ, so a FieldResult can be fed straight into a
// heat map.
func (f *FieldResult) Dims() (c, r int) {
	r, c = f.Data.Dims()
	return c, r
}

// Z returns the intensity at column c, row r.
func (f *FieldResult) Z(c, r int) float64 { return f.Data.At(r, c) }

// X returns the x coordinate of column c.
func (f *FieldResult) X(c int) float64 { return f.Grid.xs[c] }

// Y returns the y coordinate of row r.
func (f *FieldResult) Y(r int) float64 { return f.Grid.ys[r] }

// MinMax returns the smallest and largest intensity in the field.
func (f *FieldResult) MinMax() (min, max float64) {
	d := f.Data.RawMatrix()
	min, max = d.Data[0], d.Data[0]
	for i := 0; i < d.Rows; i++ {
		for _, v := range f.Data.RawRowView(i) {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	return min, max
}

// Rows returns the field as row slices for JSON encoding. The slices alias
// the underlying matrix; callers must not mutate them.
func (f *FieldResult) Rows() [][]float64 {
	r, _ := f.Data.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = f.Data.RawRowView(i)
	}
	return out
}
