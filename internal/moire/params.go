package moire

import (
	"fmt"
	"strings"
)

// Params is one full render request: the system variant, the sampling
// window, and the per-layer strain/twist specs in layer order.
type Params struct {
	Mode     SystemMode  `json:"system_mode"`
	Extent   float64     `json:"extent"`
	GridSize int         `json:"grid_size"`
	Layers   []LayerSpec `json:"layers"`
}

// Grid builds the sampling grid for p.
func (p Params) Grid() *Grid {
	return BuildGrid(p.Extent, p.GridSize)
}

// Compose composes the combined intensity field for p. A nil g builds a
// fresh grid; passing a grid lets callers reuse one across parameter
// variations at the same extent and resolution.
func (p Params) Compose(g *Grid) *FieldResult {
	if g == nil {
		g = p.Grid()
	}
	return &FieldResult{
		Grid:  g,
		Data:  Compose(g, p.Mode, p.Layers, LatticeConstantA),
		Title: p.Title(),
	}
}

// Title summarises the parameters the way the upstream UI captions its
// figure, e.g. "Bilayer Graphene: Twist 1.5°, Strains 2.0% / 3.0%".
func (p Params) Title() string {
	strains := make([]string, 0, len(p.Layers))
	for _, l := range p.Layers[:p.Mode.LayerCount()] {
		strains = append(strains, fmt.Sprintf("%.1f%%", l.Strain.Percent))
	}
	if p.Mode == Trilayer {
		return fmt.Sprintf("Trilayer Graphene: Twists %.1f° / %.1f°, Strains %s",
			p.Layers[1].TwistDeg, p.Layers[2].TwistDeg, strings.Join(strains, " / "))
	}
	return fmt.Sprintf("Bilayer Graphene: Twist %.1f°, Strains %s",
		p.Layers[1].TwistDeg, strings.Join(strains, " / "))
}

// Named parameter presets. Classic* carry the original simulator defaults;
// MagicAngleBilayer and NullStrainTrilayer match the second app variant,
// which defaults the non-reference layers to a null strain so only the
// twist shapes the pattern.
var (
	ClassicBilayer = Params{
		Mode:     Bilayer,
		Extent:   50,
		GridSize: 400,
		Layers: []LayerSpec{
			{Strain: StrainSpec{Percent: 2.0, AngleDeg: 0}},
			{Strain: StrainSpec{Percent: 3.0, AngleDeg: 30}, TwistDeg: 1.5},
		},
	}

	ClassicTrilayer = Params{
		Mode:     Trilayer,
		Extent:   50,
		GridSize: 400,
		Layers: []LayerSpec{
			{Strain: StrainSpec{Percent: 2.0, AngleDeg: 0}},
			{Strain: StrainSpec{Percent: 3.0, AngleDeg: 30}, TwistDeg: 1.5},
			{Strain: StrainSpec{Percent: 4.0, AngleDeg: 60}, TwistDeg: -1.5},
		},
	}

	MagicAngleBilayer = Params{
		Mode:     Bilayer,
		Extent:   50,
		GridSize: 400,
		Layers: []LayerSpec{
			{Strain: StrainSpec{Percent: 2.0, AngleDeg: 0}},
			{TwistDeg: 1.1},
		},
	}

	NullStrainTrilayer = Params{
		Mode:     Trilayer,
		Extent:   50,
		GridSize: 400,
		Layers: []LayerSpec{
			{Strain: StrainSpec{Percent: 2.0, AngleDeg: 0}},
			{TwistDeg: 4.8},
			{TwistDeg: -1.5},
		},
	}
)

// Presets maps preset names to their parameter sets, in a stable order for
// listings.
var Presets = []struct {
	Name   string
	Params Params
}{
	{"classic-bilayer", ClassicBilayer},
	{"classic-trilayer", ClassicTrilayer},
	{"magic-angle-bilayer", MagicAngleBilayer},
	{"null-strain-trilayer", NullStrainTrilayer},
}

// PresetByName looks up a preset; ok reports whether the name is known.
func PresetByName(name string) (Params, bool) {
	for _, p := range Presets {
		if p.Name == name {
			return p.Params, true
		}
	}
	return Params{}, false
}
