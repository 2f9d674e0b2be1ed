package config

import "github.com/syedasadmaq/twisted-graphene-app1/internal/moire"

// The clamp helpers reproduce the slider bounds for values arriving over
// the API, so a hand-built request cannot push the core outside the ranges
// the control panel enforces.

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampExtent bounds the scan window half-width for the render mode.
func (c *RenderConfig) ClampExtent(mode RenderMode, v float64) float64 {
	if mode == HighRes {
		return clampFloat(v, c.GetHighResExtentMin(), c.GetHighResExtentMax())
	}
	return clampFloat(v, c.GetQuickExtentMin(), c.GetQuickExtentMax())
}

// ClampGridSize bounds the per-axis sample count for the render mode.
func (c *RenderConfig) ClampGridSize(mode RenderMode, v int) int {
	if mode == HighRes {
		return clampInt(v, c.GetHighResGridMin(), c.GetHighResGridMax())
	}
	return clampInt(v, c.GetQuickGridMin(), c.GetQuickGridMax())
}

// ClampTwist bounds a twist angle for the given layer index (0-based). The
// reference layer is always pinned to zero twist.
func (c *RenderConfig) ClampTwist(layer int, v float64) float64 {
	switch layer {
	case 0:
		return 0
	case 1:
		return clampFloat(v, c.GetTwistLayer2Min(), c.GetTwistLayer2Max())
	default:
		return clampFloat(v, c.GetTwistLayer3Min(), c.GetTwistLayer3Max())
	}
}

// ClampStrain bounds a strain spec to the slider ranges.
func (c *RenderConfig) ClampStrain(s moire.StrainSpec) moire.StrainSpec {
	return moire.StrainSpec{
		Percent:  clampFloat(s.Percent, 0, c.GetStrainPercentMax()),
		AngleDeg: clampFloat(s.AngleDeg, 0, c.GetStrainAngleMax()),
	}
}

// ClampParams bounds a full parameter set: window, layer count, strains and
// twists. The returned params always satisfy the core's caller contract.
func (c *RenderConfig) ClampParams(mode RenderMode, p moire.Params) moire.Params {
	out := p
	out.Extent = c.ClampExtent(mode, p.Extent)
	out.GridSize = c.ClampGridSize(mode, p.GridSize)

	n := p.Mode.LayerCount()
	out.Layers = make([]moire.LayerSpec, n)
	for i := 0; i < n; i++ {
		var l moire.LayerSpec
		if i < len(p.Layers) {
			l = p.Layers[i]
		}
		l.Strain = c.ClampStrain(l.Strain)
		l.TwistDeg = c.ClampTwist(i, l.TwistDeg)
		out.Layers[i] = l
	}
	return out
}
