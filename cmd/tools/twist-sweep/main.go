// Command twist-sweep renders a series of PNG frames while sweeping the
// layer 2 twist angle, useful for building animations of the magic-angle
// transition.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/syedasadmaq/twisted-graphene-app1/internal/moire"
	"github.com/syedasadmaq/twisted-graphene-app1/internal/render"
)

var (
	preset   = flag.String("preset", "classic-bilayer", "Base preset to sweep")
	from     = flag.Float64("from", 0.5, "Starting twist angle in degrees")
	to       = flag.Float64("to", 5.0, "Final twist angle in degrees")
	step     = flag.Float64("step", 0.5, "Twist increment per frame in degrees")
	gridSize = flag.Int("grid", 400, "Samples per axis (overrides the preset)")
	outDir   = flag.String("out", "sweep", "Output directory for the frame series")
)

func main() {
	flag.Parse()

	if *step <= 0 {
		log.Fatal("-step must be positive")
	}
	if *to < *from {
		log.Fatal("-to must not be below -from")
	}

	base, ok := moire.PresetByName(*preset)
	if !ok {
		log.Fatalf("unknown preset %q", *preset)
	}
	if *gridSize > 0 {
		base.GridSize = *gridSize
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("failed to create output dir: %v", err)
	}

	// One grid serves every frame: only the twist changes.
	grid := base.Grid()

	frame := 0
	for twist := *from; twist <= *to+1e-9; twist += *step {
		p := base
		p.Layers = append([]moire.LayerSpec(nil), base.Layers...)
		p.Layers[1].TwistDeg = twist

		res := p.Compose(grid)
		path := filepath.Join(*outDir, fmt.Sprintf("frame_%03d.png", frame))
		if err := render.SavePNG(res, path); err != nil {
			log.Fatalf("frame %d: %v", frame, err)
		}
		log.Printf("wrote %s (twist %.2f°)", path, twist)
		frame++
	}
	log.Printf("sweep complete: %d frames in %s", frame, *outDir)
}
