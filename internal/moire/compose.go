package moire

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SystemMode selects how many lattice layers are stacked.
type SystemMode int

const (
	Bilayer SystemMode = iota
	Trilayer
)

// String returns the lowercase wire name of the mode.
func (m SystemMode) String() string {
	switch m {
	case Bilayer:
		return "bilayer"
	case Trilayer:
		return "trilayer"
	default:
		return fmt.Sprintf("SystemMode(%d)", int(m))
	}
}

// LayerCount returns the number of layers the mode composes.
func (m SystemMode) LayerCount() int {
	if m == Trilayer {
		return 3
	}
	return 2
}

// MarshalJSON encodes the mode as its wire name.
func (m SystemMode) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON decodes a wire name into the mode.
func (m *SystemMode) UnmarshalJSON(b []byte) error {
	parsed, err := ParseSystemMode(strings.Trim(string(b), `"`))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseSystemMode maps a wire name ("bilayer" or "trilayer", any case) to a
// SystemMode.
func ParseSystemMode(s string) (SystemMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bilayer":
		return Bilayer, nil
	case "trilayer":
		return Trilayer, nil
	}
	return Bilayer, fmt.Errorf("unknown system mode %q", s)
}

// LayerSpec is one lattice layer: its strain and its twist relative to the
// first (reference) layer. The first layer always carries TwistDeg == 0.
type LayerSpec struct {
	Strain   StrainSpec `json:"strain"`
	TwistDeg float64    `json:"twist_deg"`
}

// Compose runs the strain → rotate → lattice pipeline for every layer and
// sums the per-layer intensities elementwise. The reference layer (and any
// layer with zero twist) skips the rotation. Each per-layer field is folded
// into the running sum and dropped immediately, so peak memory stays at two
// field-sized matrices regardless of layer count.
//
// The mode determines how many specs are consumed: layers must hold at
// least mode.LayerCount() entries; the host guarantees this by construction.
func Compose(g *Grid, mode SystemMode, layers []LayerSpec, a float64) *mat.Dense {
	r, c := g.X.Dims()
	sum := mat.NewDense(r, c, nil)
	for _, layer := range layers[:mode.LayerCount()] {
		x, y := ApplyStrain(g.X, g.Y, layer.Strain)
		if layer.TwistDeg != 0 {
			x, y = Rotate(x, y, layer.TwistDeg)
		}
		li := Lattice(x, y, a)
		for i := 0; i < r; i++ {
			floats.Add(sum.RawRowView(i), li.RawRowView(i))
		}
	}
	return sum
}
