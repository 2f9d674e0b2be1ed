package render

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/syedasadmaq/twisted-graphene-app1/internal/moire"
)

// FieldResult satisfies plotter.GridXYZ, so it feeds the heat map directly.
var _ plotter.GridXYZ = (*moire.FieldResult)(nil)

// DefaultPaletteSize is the number of viridis levels used for heat maps.
// 255 levels keeps banding invisible at screen resolutions.
const DefaultPaletteSize = 255

// DefaultPlotSize is the rendered edge length of the square heat map.
const DefaultPlotSize = 8 * vg.Inch

// Heatmap builds a false-color plot of the combined field. Row 0 of the
// field is drawn at the bottom, matching the upstream origin-lower images.
func Heatmap(res *moire.FieldResult) *plot.Plot {
	p := plot.New()
	p.Title.Text = res.Title
	p.X.Label.Text = "x (Å)"
	p.Y.Label.Text = "y (Å)"

	h := plotter.NewHeatMap(res, Viridis(DefaultPaletteSize))
	p.Add(h)
	return p
}

// WritePNG renders the heat map for res into w as a PNG.
func WritePNG(res *moire.FieldResult, w io.Writer) error {
	wt, err := Heatmap(res).WriterTo(DefaultPlotSize, DefaultPlotSize, "png")
	if err != nil {
		return fmt.Errorf("render heatmap: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

// SavePNG renders the heat map for res to a PNG file at path.
func SavePNG(res *moire.FieldResult, path string) error {
	if err := Heatmap(res).Save(DefaultPlotSize, DefaultPlotSize, path); err != nil {
		return fmt.Errorf("save heatmap: %w", err)
	}
	return nil
}

// ExportFilename is the download filename convention for rendered fields.
// id is any request identifier; it keeps repeated downloads from colliding.
func ExportFilename(id string) string {
	if id == "" {
		return "twisted_graphene.png"
	}
	return fmt.Sprintf("twisted_graphene_%s.png", id)
}
