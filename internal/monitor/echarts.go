// Package monitor serves debugging-only chart pages for inspecting moiré
// fields in the browser without the control panel, rendered with go-echarts.
package monitor

import (
	"bytes"
	"fmt"
	"html"
	"math"
	"net/http"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/syedasadmaq/twisted-graphene-app1/internal/httputil"
	"github.com/syedasadmaq/twisted-graphene-app1/internal/moire"
)

// viridisRamp is the color ramp for the chart visual map, matching the PNG
// renderer's palette endpoints.
var viridisRamp = []string{
	"#440154", "#482777", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

// debugGridSize keeps the chart pages responsive; the scatter payload grows
// with the square of the grid, so the debug pages compose a coarser field
// than a PNG render would.
const debugGridSize = 160

// WebServer serves the debug chart routes.
type WebServer struct{}

// NewWebServer creates the debug chart server.
func NewWebServer() *WebServer {
	return &WebServer{}
}

// ServeMux returns the debug routes. Callers mount it under their prefix.
func (ws *WebServer) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/moire", ws.handleMoireScatter)
	mux.HandleFunc("/dashboard", ws.handleDashboard)
	return mux
}

// handleMoireScatter renders a quick scatter plot (HTML) of the combined
// field for a named preset. Query params:
//   - preset (optional; defaults to classic-bilayer)
//   - max_points (optional; default 8000) to reduce payload size
func (ws *WebServer) handleMoireScatter(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("preset")
	if name == "" {
		name = "classic-bilayer"
	}
	params, ok := moire.PresetByName(name)
	if !ok {
		httputil.NotFound(w, fmt.Sprintf("unknown preset %q", name))
		return
	}
	params.GridSize = debugGridSize

	maxPoints := 8000
	if mp := r.URL.Query().Get("max_points"); mp != "" {
		if v, err := strconv.Atoi(mp); err == nil && v > 100 && v <= 50000 {
			maxPoints = v
		}
	}

	res := params.Compose(nil)
	xs, ys := res.Grid.Xs(), res.Grid.Ys()
	total := len(xs) * len(ys)

	// Downsample by stride to stay within maxPoints
	stride := 1
	if total > maxPoints {
		stride = int(math.Ceil(float64(total) / float64(maxPoints)))
	}

	min, max := res.MinMax()
	data := make([]opts.ScatterData, 0, total/stride+1)
	for i := 0; i < total; i += stride {
		row, col := i/len(xs), i%len(xs)
		data = append(data, opts.ScatterData{
			Value: []interface{}{xs[col], ys[row], res.Data.At(row, col)},
		})
	}

	// Add a small padding so points at the edges are visible
	pad := params.Extent * 1.05

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Moiré Field", Theme: "dark", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: res.Title, Subtitle: fmt.Sprintf("preset=%s points=%d stride=%d", name, len(data), stride)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: -pad, Max: pad, Name: "x (Å)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: -pad, Max: pad, Name: "y (Å)", NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        float32(min),
			Max:        float32(max),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: viridisRamp},
		}),
	)

	scatter.AddSeries("intensity", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 3}))

	var buf bytes.Buffer
	if err := scatter.Render(&buf); err != nil {
		httputil.InternalServerError(w, fmt.Sprintf("failed to render chart: %v", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// handleDashboard renders a simple page iframing one chart per preset.
func (ws *WebServer) handleDashboard(w http.ResponseWriter, r *http.Request) {
	var frames bytes.Buffer
	for _, p := range moire.Presets {
		fmt.Fprintf(&frames,
			`<figure><figcaption>%s</figcaption><iframe src="moire?preset=%s" width="940" height="960" frameborder="0"></iframe></figure>`,
			html.EscapeString(p.Params.Title()), p.Name)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, `<!DOCTYPE html>
<html><head><title>Moiré Debug Dashboard</title>
<style>body{background:#111;color:#eee;font-family:sans-serif} figure{display:inline-block;margin:8px}</style>
</head><body><h1>Moiré Debug Dashboard</h1>%s</body></html>`, frames.String())
}
