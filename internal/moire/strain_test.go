package moire

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestZeroStrainIsIdentity(t *testing.T) {
	g := BuildGrid(50, 9)
	for _, angle := range []float64{0, 17, 30, 90, 135, 180} {
		x, y := ApplyStrain(g.X, g.Y, StrainSpec{Percent: 0, AngleDeg: angle})
		if !mat.Equal(x, g.X) {
			t.Errorf("angle %v: strained X differs from input", angle)
		}
		if !mat.Equal(y, g.Y) {
			t.Errorf("angle %v: strained Y differs from input", angle)
		}
	}
}

func TestStrainMatrix(t *testing.T) {
	tests := []struct {
		name               string
		spec               StrainSpec
		m00, m01, m10, m11 float64
	}{
		{
			name: "null strain",
			spec: StrainSpec{},
			m00:  1, m01: 0, m10: 0, m11: 1,
		},
		{
			name: "axis aligned",
			spec: StrainSpec{Percent: 10, AngleDeg: 0},
			m00:  1.1, m01: 0, m10: 0, m11: 1,
		},
		{
			name: "perpendicular",
			spec: StrainSpec{Percent: 10, AngleDeg: 90},
			m00:  1, m01: 0, m10: 0, m11: 1.1,
		},
		{
			name: "thirty degrees",
			spec: StrainSpec{Percent: 4, AngleDeg: 30},
			// f=0.04, cos²30=0.75, sin²30=0.25, sin30·cos30=√3/4
			m00: 1.03, m01: 0.04 * math.Sqrt(3) / 4,
			m10: 0.04 * math.Sqrt(3) / 4, m11: 1.01,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.spec.StrainMatrix()
			want := [4]float64{tt.m00, tt.m01, tt.m10, tt.m11}
			got := [4]float64{m.At(0, 0), m.At(0, 1), m.At(1, 0), m.At(1, 1)}
			for i := range want {
				if math.Abs(got[i]-want[i]) > 1e-12 {
					t.Errorf("entry %d = %v, want %v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestStrainMatrixSymmetric(t *testing.T) {
	for _, spec := range []StrainSpec{
		{Percent: 2, AngleDeg: 0},
		{Percent: 3, AngleDeg: 30},
		{Percent: 10, AngleDeg: 117},
	} {
		m := spec.StrainMatrix()
		if m.At(0, 1) != m.At(1, 0) {
			t.Errorf("spec %+v: off-diagonal %v != %v", spec, m.At(0, 1), m.At(1, 0))
		}
	}
}

func TestStrainMatrixInvertible(t *testing.T) {
	// Physical strain percentages keep the deformation invertible.
	for percent := 0.0; percent <= 10; percent += 2.5 {
		for angle := 0.0; angle <= 180; angle += 45 {
			m := StrainSpec{Percent: percent, AngleDeg: angle}.StrainMatrix()
			if det := mat.Det(m); det == 0 {
				t.Errorf("percent %v angle %v: singular deformation", percent, angle)
			}
		}
	}
}

func TestApplyStrainPointwise(t *testing.T) {
	x := mat.NewDense(1, 2, []float64{1, -2})
	y := mat.NewDense(1, 2, []float64{2, 0.5})

	// 10% along x stretches x only.
	xs, ys := ApplyStrain(x, y, StrainSpec{Percent: 10, AngleDeg: 0})
	wantX := []float64{1.1, -2.2}
	wantY := []float64{2, 0.5}
	for i := range wantX {
		if got := xs.At(0, i); math.Abs(got-wantX[i]) > 1e-12 {
			t.Errorf("x[%d] = %v, want %v", i, got, wantX[i])
		}
		if got := ys.At(0, i); math.Abs(got-wantY[i]) > 1e-12 {
			t.Errorf("y[%d] = %v, want %v", i, got, wantY[i])
		}
	}

	// Inputs stay untouched.
	if x.At(0, 0) != 1 || y.At(0, 0) != 2 {
		t.Error("ApplyStrain mutated its inputs")
	}
}

func TestApplyStrainOrigin(t *testing.T) {
	// The origin is a fixed point of every strain.
	x := mat.NewDense(1, 1, []float64{0})
	y := mat.NewDense(1, 1, []float64{0})
	xs, ys := ApplyStrain(x, y, StrainSpec{Percent: 7.3, AngleDeg: 42})
	if xs.At(0, 0) != 0 || ys.At(0, 0) != 0 {
		t.Errorf("origin mapped to (%v, %v), want (0, 0)", xs.At(0, 0), ys.At(0, 0))
	}
}
