package moire

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func latticeAt(x, y, a float64) float64 {
	xm := mat.NewDense(1, 1, []float64{x})
	ym := mat.NewDense(1, 1, []float64{y})
	return Lattice(xm, ym, a).At(0, 0)
}

func TestLatticeCenterValue(t *testing.T) {
	// All three cosines peak at the origin.
	for _, a := range []float64{0.5, 1, LatticeConstantA, 10} {
		if got := latticeAt(0, 0, a); math.Abs(got-3) > 1e-12 {
			t.Errorf("a=%v: L(0,0) = %v, want 3", a, got)
		}
	}
}

func TestLatticeKnownValue(t *testing.T) {
	// At (a/2, 0): cos(π) + cos(π/2) + cos(-π/2) = -1.
	a := LatticeConstantA
	if got := latticeAt(a/2, 0, a); math.Abs(got-(-1)) > 1e-12 {
		t.Errorf("L(a/2,0) = %v, want -1", got)
	}
}

func TestLatticeBounded(t *testing.T) {
	g := BuildGrid(25, 101)
	l := Lattice(g.X, g.Y, LatticeConstantA)
	r, c := l.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := l.At(i, j)
			if v < -3-1e-12 || v > 3+1e-12 {
				t.Fatalf("L at (%d,%d) = %v, outside [-3, 3]", i, j, v)
			}
		}
	}
}

func TestLatticePeriodicInX(t *testing.T) {
	for _, a := range []float64{1, LatticeConstantA, 4.92} {
		for _, pt := range [][2]float64{{0, 0}, {0.3, -1.2}, {-5, 7.7}, {12.34, 0.01}} {
			base := latticeAt(pt[0], pt[1], a)
			shifted := latticeAt(pt[0]+a, pt[1], a)
			if math.Abs(base-shifted) > 1e-9 {
				t.Errorf("a=%v at %v: L=%v but L(x+a)=%v", a, pt, base, shifted)
			}
		}
	}
}

func TestLatticeShape(t *testing.T) {
	g := BuildGrid(50, 40)
	l := Lattice(g.X, g.Y, LatticeConstantA)
	r, c := l.Dims()
	if r != 40 || c != 40 {
		t.Errorf("dims = %dx%d, want 40x40", r, c)
	}
}
