package render

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/syedasadmaq/twisted-graphene-app1/internal/moire"
)

// Profile plots the intensity along one grid row as a line, a quick way to
// inspect the beating period of the combined field without a full heat map.
func Profile(res *moire.FieldResult, row int) (*plot.Plot, error) {
	rows := res.Rows()
	if row < 0 || row >= len(rows) {
		return nil, fmt.Errorf("row %d out of range [0, %d)", row, len(rows))
	}

	xs := res.Grid.Xs()
	pts := make(plotter.XYs, len(xs))
	for c, v := range rows[row] {
		pts[c] = plotter.XY{X: xs[c], Y: v}
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s (row y=%.1f Å)", res.Title, res.Grid.Ys()[row])
	p.X.Label.Text = "x (Å)"
	p.Y.Label.Text = "Intensity"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("profile line: %w", err)
	}
	line.Width = vg.Points(1)
	p.Add(line)
	return p, nil
}

// SaveProfilePNG writes the row profile plot to a PNG file at path.
func SaveProfilePNG(res *moire.FieldResult, row int, path string) error {
	p, err := Profile(res, row)
	if err != nil {
		return err
	}
	if err := p.Save(10*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}
