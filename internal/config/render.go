// Package config loads the render defaults: slider ranges and default
// values for the control panel, mirrored by the HTTP surface when it clamps
// inbound parameters.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfigPath is the path to the canonical render defaults file,
// the single source of truth for slider ranges and default values.
const DefaultConfigPath = "config/render.defaults.json"

// RenderMode selects the control panel's resolution regime. Quick keeps the
// grid small for interactive use; HighRes trades latency for detail.
type RenderMode int

const (
	Quick RenderMode = iota
	HighRes
)

// String returns the wire name of the mode.
func (m RenderMode) String() string {
	if m == HighRes {
		return "highres"
	}
	return "quick"
}

// ParseRenderMode maps a wire name to a RenderMode. Unknown names fall back
// to Quick, the safe regime.
func ParseRenderMode(s string) RenderMode {
	if s == "highres" || s == "high-res" {
		return HighRes
	}
	return Quick
}

// RenderConfig holds slider ranges and defaults. Fields are pointers so a
// partial JSON file overrides only what it names; the Get* accessors supply
// the canonical defaults for everything else.
type RenderConfig struct {
	// Quick mode window
	QuickExtentMin     *float64 `json:"quick_extent_min,omitempty"`
	QuickExtentMax     *float64 `json:"quick_extent_max,omitempty"`
	QuickExtentDefault *float64 `json:"quick_extent_default,omitempty"`
	QuickGridMin       *int     `json:"quick_grid_min,omitempty"`
	QuickGridMax       *int     `json:"quick_grid_max,omitempty"`
	QuickGridDefault   *int     `json:"quick_grid_default,omitempty"`

	// High-res mode window
	HighResExtentMin     *float64 `json:"highres_extent_min,omitempty"`
	HighResExtentMax     *float64 `json:"highres_extent_max,omitempty"`
	HighResExtentDefault *float64 `json:"highres_extent_default,omitempty"`
	HighResGridMin       *int     `json:"highres_grid_min,omitempty"`
	HighResGridMax       *int     `json:"highres_grid_max,omitempty"`
	HighResGridDefault   *int     `json:"highres_grid_default,omitempty"`

	// Per-layer parameter ranges (minima for strain are pinned at zero)
	StrainPercentMax *float64 `json:"strain_percent_max,omitempty"`
	StrainAngleMax   *float64 `json:"strain_angle_max,omitempty"`
	TwistLayer2Min   *float64 `json:"twist_layer2_min,omitempty"`
	TwistLayer2Max   *float64 `json:"twist_layer2_max,omitempty"`
	TwistLayer3Min   *float64 `json:"twist_layer3_min,omitempty"`
	TwistLayer3Max   *float64 `json:"twist_layer3_max,omitempty"`
}

// EmptyRenderConfig returns a RenderConfig with every field unset, so all
// accessors report their built-in defaults.
func EmptyRenderConfig() *RenderConfig {
	return &RenderConfig{}
}

// LoadRenderConfig loads a RenderConfig from a JSON file. The path must end
// in .json and the file must be under 1MB. Fields omitted from the file
// keep their defaults, so partial configs are safe.
func LoadRenderConfig(path string) (*RenderConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyRenderConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// MustLoadDefaultConfig loads the canonical defaults from DefaultConfigPath,
// searching upward from the working directory. Panics if the file cannot be
// found; intended for test setup.
func MustLoadDefaultConfig() *RenderConfig {
	candidates := []string{
		DefaultConfigPath,
		"../../" + DefaultConfigPath, // from internal/config/
		"../../../" + DefaultConfigPath,
		"../../../../" + DefaultConfigPath,
	}
	for _, path := range candidates {
		if cfg, err := LoadRenderConfig(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}

// Validate checks that any ranges present are ordered and that defaults sit
// inside their ranges. Zero strain and zero twist are ordinary values; only
// inverted or out-of-range settings are rejected.
func (c *RenderConfig) Validate() error {
	type window struct {
		name             string
		min, max, def    float64
		gridMin, gridMax int
		gridDef          int
	}
	windows := []window{
		{
			name: "quick",
			min:  c.GetQuickExtentMin(), max: c.GetQuickExtentMax(), def: c.GetQuickExtentDefault(),
			gridMin: c.GetQuickGridMin(), gridMax: c.GetQuickGridMax(), gridDef: c.GetQuickGridDefault(),
		},
		{
			name: "highres",
			min:  c.GetHighResExtentMin(), max: c.GetHighResExtentMax(), def: c.GetHighResExtentDefault(),
			gridMin: c.GetHighResGridMin(), gridMax: c.GetHighResGridMax(), gridDef: c.GetHighResGridDefault(),
		},
	}
	for _, w := range windows {
		if w.min <= 0 {
			return fmt.Errorf("%s extent minimum must be positive, got %v", w.name, w.min)
		}
		if w.min > w.max {
			return fmt.Errorf("%s extent range inverted: [%v, %v]", w.name, w.min, w.max)
		}
		if w.def < w.min || w.def > w.max {
			return fmt.Errorf("%s extent default %v outside [%v, %v]", w.name, w.def, w.min, w.max)
		}
		if w.gridMin < 2 {
			return fmt.Errorf("%s grid minimum must be at least 2, got %d", w.name, w.gridMin)
		}
		if w.gridMin > w.gridMax {
			return fmt.Errorf("%s grid range inverted: [%d, %d]", w.name, w.gridMin, w.gridMax)
		}
		if w.gridDef < w.gridMin || w.gridDef > w.gridMax {
			return fmt.Errorf("%s grid default %d outside [%d, %d]", w.name, w.gridDef, w.gridMin, w.gridMax)
		}
	}

	if c.GetStrainPercentMax() <= 0 {
		return fmt.Errorf("strain_percent_max must be positive, got %v", c.GetStrainPercentMax())
	}
	if c.GetStrainAngleMax() <= 0 {
		return fmt.Errorf("strain_angle_max must be positive, got %v", c.GetStrainAngleMax())
	}
	if c.GetTwistLayer2Min() > c.GetTwistLayer2Max() {
		return fmt.Errorf("layer 2 twist range inverted: [%v, %v]", c.GetTwistLayer2Min(), c.GetTwistLayer2Max())
	}
	if c.GetTwistLayer3Min() > c.GetTwistLayer3Max() {
		return fmt.Errorf("layer 3 twist range inverted: [%v, %v]", c.GetTwistLayer3Min(), c.GetTwistLayer3Max())
	}
	return nil
}

// GetQuickExtentMin returns the quick-mode extent minimum or the default.
func (c *RenderConfig) GetQuickExtentMin() float64 {
	if c.QuickExtentMin == nil {
		return 10
	}
	return *c.QuickExtentMin
}

// GetQuickExtentMax returns the quick-mode extent maximum or the default.
func (c *RenderConfig) GetQuickExtentMax() float64 {
	if c.QuickExtentMax == nil {
		return 100
	}
	return *c.QuickExtentMax
}

// GetQuickExtentDefault returns the quick-mode extent default.
func (c *RenderConfig) GetQuickExtentDefault() float64 {
	if c.QuickExtentDefault == nil {
		return 50
	}
	return *c.QuickExtentDefault
}

// GetQuickGridMin returns the quick-mode resolution minimum or the default.
func (c *RenderConfig) GetQuickGridMin() int {
	if c.QuickGridMin == nil {
		return 200
	}
	return *c.QuickGridMin
}

// GetQuickGridMax returns the quick-mode resolution maximum or the default.
func (c *RenderConfig) GetQuickGridMax() int {
	if c.QuickGridMax == nil {
		return 800
	}
	return *c.QuickGridMax
}

// GetQuickGridDefault returns the quick-mode resolution default.
func (c *RenderConfig) GetQuickGridDefault() int {
	if c.QuickGridDefault == nil {
		return 400
	}
	return *c.QuickGridDefault
}

// GetHighResExtentMin returns the high-res extent minimum or the default.
func (c *RenderConfig) GetHighResExtentMin() float64 {
	if c.HighResExtentMin == nil {
		return 50
	}
	return *c.HighResExtentMin
}

// GetHighResExtentMax returns the high-res extent maximum or the default.
func (c *RenderConfig) GetHighResExtentMax() float64 {
	if c.HighResExtentMax == nil {
		return 500
	}
	return *c.HighResExtentMax
}

// GetHighResExtentDefault returns the high-res extent default.
func (c *RenderConfig) GetHighResExtentDefault() float64 {
	if c.HighResExtentDefault == nil {
		return 200
	}
	return *c.HighResExtentDefault
}

// GetHighResGridMin returns the high-res resolution minimum or the default.
func (c *RenderConfig) GetHighResGridMin() int {
	if c.HighResGridMin == nil {
		return 800
	}
	return *c.HighResGridMin
}

// GetHighResGridMax returns the high-res resolution maximum or the default.
func (c *RenderConfig) GetHighResGridMax() int {
	if c.HighResGridMax == nil {
		return 3000
	}
	return *c.HighResGridMax
}

// GetHighResGridDefault returns the high-res resolution default.
func (c *RenderConfig) GetHighResGridDefault() int {
	if c.HighResGridDefault == nil {
		return 1500
	}
	return *c.HighResGridDefault
}

// GetStrainPercentMax returns the strain slider maximum or the default.
func (c *RenderConfig) GetStrainPercentMax() float64 {
	if c.StrainPercentMax == nil {
		return 10
	}
	return *c.StrainPercentMax
}

// GetStrainAngleMax returns the strain direction maximum or the default.
func (c *RenderConfig) GetStrainAngleMax() float64 {
	if c.StrainAngleMax == nil {
		return 180
	}
	return *c.StrainAngleMax
}

// GetTwistLayer2Min returns the layer 2 twist minimum or the default.
func (c *RenderConfig) GetTwistLayer2Min() float64 {
	if c.TwistLayer2Min == nil {
		return 0
	}
	return *c.TwistLayer2Min
}

// GetTwistLayer2Max returns the layer 2 twist maximum or the default.
func (c *RenderConfig) GetTwistLayer2Max() float64 {
	if c.TwistLayer2Max == nil {
		return 10
	}
	return *c.TwistLayer2Max
}

// GetTwistLayer3Min returns the layer 3 twist minimum or the default.
func (c *RenderConfig) GetTwistLayer3Min() float64 {
	if c.TwistLayer3Min == nil {
		return -10
	}
	return *c.TwistLayer3Min
}

// GetTwistLayer3Max returns the layer 3 twist maximum or the default.
func (c *RenderConfig) GetTwistLayer3Max() float64 {
	if c.TwistLayer3Max == nil {
		return 10
	}
	return *c.TwistLayer3Max
}
