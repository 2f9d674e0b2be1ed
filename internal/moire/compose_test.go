package moire

import (
	"math"
	"testing"
)

func TestComposeShape(t *testing.T) {
	g := BuildGrid(50, 32)

	tests := []struct {
		name   string
		mode   SystemMode
		layers []LayerSpec
	}{
		{"bilayer", Bilayer, ClassicBilayer.Layers},
		{"trilayer", Trilayer, ClassicTrilayer.Layers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			combined := Compose(g, tt.mode, tt.layers, LatticeConstantA)
			r, c := combined.Dims()
			if r != 32 || c != 32 {
				t.Errorf("dims = %dx%d, want 32x32", r, c)
			}
		})
	}
}

func TestComposeEqualsLayerSum(t *testing.T) {
	g := BuildGrid(50, 24)
	layers := ClassicTrilayer.Layers

	// Run the per-layer pipeline by hand and sum.
	perLayer := func(l LayerSpec) [][]float64 {
		x, y := ApplyStrain(g.X, g.Y, l.Strain)
		if l.TwistDeg != 0 {
			x, y = Rotate(x, y, l.TwistDeg)
		}
		li := Lattice(x, y, LatticeConstantA)
		out := make([][]float64, 24)
		for i := range out {
			out[i] = li.RawRowView(i)
		}
		return out
	}

	for _, tt := range []struct {
		name string
		mode SystemMode
	}{
		{"bilayer", Bilayer},
		{"trilayer", Trilayer},
	} {
		t.Run(tt.name, func(t *testing.T) {
			combined := Compose(g, tt.mode, layers, LatticeConstantA)
			fields := make([][][]float64, 0, 3)
			for _, l := range layers[:tt.mode.LayerCount()] {
				fields = append(fields, perLayer(l))
			}
			for i := 0; i < 24; i++ {
				for j := 0; j < 24; j++ {
					want := 0.0
					for _, f := range fields {
						want += f[i][j]
					}
					if got := combined.At(i, j); math.Abs(got-want) > 1e-9 {
						t.Fatalf("combined(%d,%d) = %v, want %v", i, j, got, want)
					}
				}
			}
		})
	}
}

func TestComposeBilayerScenario(t *testing.T) {
	// Literal bilayer scenario: extent 50, 400 samples, 2%/0° + 3%/30°@1.5°.
	p := ClassicBilayer
	res := p.Compose(nil)
	r, c := res.Data.Dims()
	if r != 400 || c != 400 {
		t.Fatalf("dims = %dx%d, want 400x400", r, c)
	}

	// Strain and rotation both fix the origin, so the combined intensity
	// there is 3 + 3. A 5-sample grid at the same extent puts a sample on
	// the exact center.
	small := p
	small.GridSize = 5
	center := small.Compose(nil).Data.At(2, 2)
	if math.Abs(center-6) > 1e-9 {
		t.Errorf("center value = %v, want 6", center)
	}
}

func TestComposeTrilayerScenario(t *testing.T) {
	p := Params{
		Mode:     Trilayer,
		Extent:   50,
		GridSize: 400,
		Layers: []LayerSpec{
			{Strain: StrainSpec{Percent: 2.0, AngleDeg: 0}},
			{Strain: StrainSpec{Percent: 3.0, AngleDeg: 30}, TwistDeg: 4.8},
			{Strain: StrainSpec{Percent: 4.0, AngleDeg: 60}, TwistDeg: -1.5},
		},
	}
	res := p.Compose(nil)
	r, c := res.Data.Dims()
	if r != 400 || c != 400 {
		t.Fatalf("dims = %dx%d, want 400x400", r, c)
	}

	small := p
	small.GridSize = 5
	center := small.Compose(nil).Data.At(2, 2)
	if math.Abs(center-9) > 1e-9 {
		t.Errorf("center value = %v, want 9", center)
	}
}

func TestComposeBoundedBySumOfLayers(t *testing.T) {
	g := BuildGrid(50, 48)
	combined := Compose(g, Trilayer, ClassicTrilayer.Layers, LatticeConstantA)
	r, c := combined.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := combined.At(i, j)
			if v < -9-1e-9 || v > 9+1e-9 {
				t.Fatalf("combined(%d,%d) = %v, outside [-9, 9]", i, j, v)
			}
		}
	}
}

func TestSystemModeRoundTrip(t *testing.T) {
	tests := []struct {
		in      string
		want    SystemMode
		wantErr bool
	}{
		{"bilayer", Bilayer, false},
		{"Trilayer", Trilayer, false},
		{" BILAYER ", Bilayer, false},
		{"monolayer", Bilayer, true},
		{"", Bilayer, true},
	}
	for _, tt := range tests {
		got, err := ParseSystemMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSystemMode(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseSystemMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if Bilayer.LayerCount() != 2 || Trilayer.LayerCount() != 3 {
		t.Error("unexpected layer counts")
	}
}
