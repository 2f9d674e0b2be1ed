// Command moire-render composes one moiré field from the command line and
// writes it to a PNG, without running the HTTP server.
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/syedasadmaq/twisted-graphene-app1/internal/config"
	"github.com/syedasadmaq/twisted-graphene-app1/internal/moire"
	"github.com/syedasadmaq/twisted-graphene-app1/internal/render"
)

var (
	preset     = flag.String("preset", "", "Named preset to render (overrides the layer flags)")
	system     = flag.String("system", "bilayer", "System: bilayer or trilayer")
	renderMode = flag.String("mode", "quick", "Clamping regime: quick or highres")
	extent     = flag.Float64("extent", 50, "Scan area half-width in angstroms")
	gridSize   = flag.Int("grid", 400, "Samples per axis")
	strains    = flag.String("strains", "2,3,4", "Per-layer strain percentages, comma separated")
	angles     = flag.String("angles", "0,30,60", "Per-layer strain directions in degrees, comma separated")
	twists     = flag.String("twists", "1.5,-1.5", "Twist angles for layers 2+ in degrees, comma separated")
	out        = flag.String("out", "twisted_graphene.png", "Output PNG path")
	profileRow = flag.Int("profile-row", -1, "Also write a row profile plot for this row (disabled if negative)")
)

// parseCSVFloatSlice parses a comma-separated list of floats
func parseCSVFloatSlice(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	outVals := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid float '%s': %w", p, err)
		}
		outVals = append(outVals, v)
	}
	return outVals, nil
}

func buildParams() (moire.Params, error) {
	if *preset != "" {
		p, ok := moire.PresetByName(*preset)
		if !ok {
			return moire.Params{}, fmt.Errorf("unknown preset %q", *preset)
		}
		return p, nil
	}

	mode, err := moire.ParseSystemMode(*system)
	if err != nil {
		return moire.Params{}, err
	}

	strainVals, err := parseCSVFloatSlice(*strains)
	if err != nil {
		return moire.Params{}, fmt.Errorf("-strains: %w", err)
	}
	angleVals, err := parseCSVFloatSlice(*angles)
	if err != nil {
		return moire.Params{}, fmt.Errorf("-angles: %w", err)
	}
	twistVals, err := parseCSVFloatSlice(*twists)
	if err != nil {
		return moire.Params{}, fmt.Errorf("-twists: %w", err)
	}

	layers := make([]moire.LayerSpec, mode.LayerCount())
	for i := range layers {
		if i < len(strainVals) {
			layers[i].Strain.Percent = strainVals[i]
		}
		if i < len(angleVals) {
			layers[i].Strain.AngleDeg = angleVals[i]
		}
		if i > 0 && i-1 < len(twistVals) {
			layers[i].TwistDeg = twistVals[i-1]
		}
	}

	return moire.Params{Mode: mode, Extent: *extent, GridSize: *gridSize, Layers: layers}, nil
}

func main() {
	flag.Parse()

	params, err := buildParams()
	if err != nil {
		log.Fatalf("bad parameters: %v", err)
	}

	cfg := config.EmptyRenderConfig()
	params = cfg.ClampParams(config.ParseRenderMode(*renderMode), params)

	res := params.Compose(nil)
	if err := render.SavePNG(res, *out); err != nil {
		log.Fatalf("failed to save %s: %v", *out, err)
	}
	log.Printf("wrote %s (%s, %dx%d)", *out, res.Title, params.GridSize, params.GridSize)

	if *profileRow >= 0 {
		profilePath := strings.TrimSuffix(*out, ".png") + "_profile.png"
		if err := render.SaveProfilePNG(res, *profileRow, profilePath); err != nil {
			log.Fatalf("failed to save profile: %v", err)
		}
		log.Printf("wrote %s", profilePath)
	}
}
