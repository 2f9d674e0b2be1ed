package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/syedasadmaq/twisted-graphene-app1/internal/config"
	"github.com/syedasadmaq/twisted-graphene-app1/internal/httputil"
	"github.com/syedasadmaq/twisted-graphene-app1/internal/moire"
	"github.com/syedasadmaq/twisted-graphene-app1/internal/render"
)

// RenderRequest is the body of the render endpoints: the render mode picks
// the clamping regime (quick vs high-res slider ranges), the embedded
// params describe the system to compose.
type RenderRequest struct {
	RenderMode string `json:"render_mode"`
	moire.Params
}

// decodeRenderRequest parses and clamps the request body. The returned
// params always satisfy the core's contract.
func (s *Server) decodeRenderRequest(r *http.Request) (moire.Params, config.RenderMode, error) {
	var req RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return moire.Params{}, config.Quick, fmt.Errorf("invalid request body: %w", err)
	}
	mode := config.ParseRenderMode(req.RenderMode)
	return s.cfg.ClampParams(mode, req.Params), mode, nil
}

// handleRender composes the field and responds with a false-color PNG.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httputil.MethodNotAllowed(w)
		return
	}

	params, mode, err := s.decodeRenderRequest(r)
	if err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}

	id := uuid.New().String()
	start := time.Now()
	res := params.Compose(nil)

	httputil.PNGHeaders(w, render.ExportFilename(id))
	if err := render.WritePNG(res, w); err != nil {
		// Headers are out by now; all we can do is log.
		log.Printf("render %s: writing png failed: %v", id, err)
		return
	}
	log.Printf("render %s: %s mode=%s grid=%d in %vms",
		id, res.Title, mode, params.GridSize, time.Since(start).Milliseconds())
}

// fieldResponse is the JSON body of /render/field for clients that do
// their own coloring.
type fieldResponse struct {
	Title string      `json:"title"`
	Rows  int         `json:"rows"`
	Cols  int         `json:"cols"`
	Xs    []float64   `json:"xs"`
	Ys    []float64   `json:"ys"`
	Field [][]float64 `json:"field"`
}

// handleRenderField composes the field and responds with the raw array.
func (s *Server) handleRenderField(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httputil.MethodNotAllowed(w)
		return
	}

	params, _, err := s.decodeRenderRequest(r)
	if err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}

	res := params.Compose(nil)
	rows, cols := res.Data.Dims()
	httputil.WriteJSON(w, http.StatusOK, fieldResponse{
		Title: res.Title,
		Rows:  rows,
		Cols:  cols,
		Xs:    res.Grid.Xs(),
		Ys:    res.Grid.Ys(),
		Field: res.Rows(),
	})
}

// sliderRange describes one control panel slider.
type sliderRange struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Default float64 `json:"default"`
}

// paramsResponse mirrors the configured slider ranges so the control panel
// and the server always clamp identically.
type paramsResponse struct {
	Quick struct {
		Extent   sliderRange `json:"extent"`
		GridSize sliderRange `json:"grid_size"`
	} `json:"quick"`
	HighRes struct {
		Extent   sliderRange `json:"extent"`
		GridSize sliderRange `json:"grid_size"`
	} `json:"highres"`
	StrainPercent sliderRange `json:"strain_percent"`
	StrainAngle   sliderRange `json:"strain_angle"`
	TwistLayer2   sliderRange `json:"twist_layer2"`
	TwistLayer3   sliderRange `json:"twist_layer3"`
}

func (s *Server) handleParams(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}

	var resp paramsResponse
	c := s.cfg
	resp.Quick.Extent = sliderRange{c.GetQuickExtentMin(), c.GetQuickExtentMax(), c.GetQuickExtentDefault()}
	resp.Quick.GridSize = sliderRange{float64(c.GetQuickGridMin()), float64(c.GetQuickGridMax()), float64(c.GetQuickGridDefault())}
	resp.HighRes.Extent = sliderRange{c.GetHighResExtentMin(), c.GetHighResExtentMax(), c.GetHighResExtentDefault()}
	resp.HighRes.GridSize = sliderRange{float64(c.GetHighResGridMin()), float64(c.GetHighResGridMax()), float64(c.GetHighResGridDefault())}
	resp.StrainPercent = sliderRange{0, c.GetStrainPercentMax(), 2}
	resp.StrainAngle = sliderRange{0, c.GetStrainAngleMax(), 0}
	resp.TwistLayer2 = sliderRange{c.GetTwistLayer2Min(), c.GetTwistLayer2Max(), 1.5}
	resp.TwistLayer3 = sliderRange{c.GetTwistLayer3Min(), c.GetTwistLayer3Max(), -1.5}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// presetEntry is one named parameter set in the /presets listing.
type presetEntry struct {
	Name   string       `json:"name"`
	Title  string       `json:"title"`
	Params moire.Params `json:"params"`
}

func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}

	out := make([]presetEntry, 0, len(moire.Presets))
	for _, p := range moire.Presets {
		out = append(out, presetEntry{Name: p.Name, Title: p.Params.Title(), Params: p.Params})
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}
