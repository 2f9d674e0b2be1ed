// Package api exposes the moiré render pipeline over HTTP: parameter
// metadata for the control panel, named presets, and the render endpoints
// that hand back PNG images or raw field arrays.
package api

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/syedasadmaq/twisted-graphene-app1/internal/config"
	"github.com/syedasadmaq/twisted-graphene-app1/internal/httputil"
	"github.com/syedasadmaq/twisted-graphene-app1/internal/version"
)

// ANSI escape codes for status code coloring in request logs
const colorReset = "\033[0m"
const colorYellow = "\033[33m"
const colorBoldGreen = "\033[1;32m"
const colorBoldRed = "\033[1;31m"

// Server serves the render API. It holds only the immutable render
// defaults; every request recomputes its field from scratch.
type Server struct {
	cfg *config.RenderConfig
}

// NewServer creates an API server over the given render defaults.
func NewServer(cfg *config.RenderConfig) *Server {
	if cfg == nil {
		cfg = config.EmptyRenderConfig()
	}
	return &Server{cfg: cfg}
}

// ServeMux returns the API routes. Callers mount it under their own prefix.
func (s *Server) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/params", s.handleParams)
	mux.HandleFunc("/presets", s.handlePresets)
	mux.HandleFunc("/render", s.handleRender)
	mux.HandleFunc("/render/field", s.handleRenderField)
	mux.HandleFunc("/version", s.handleVersion)
	return mux
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, version.Get())
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func statusCodeColor(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return colorBoldGreen + strconv.Itoa(statusCode) + colorReset
	case statusCode >= 300 && statusCode < 400:
		return colorYellow + strconv.Itoa(statusCode) + colorReset
	default:
		return colorBoldRed + strconv.Itoa(statusCode) + colorReset
	}
}

// LoggingMiddleware logs method, path, status, and duration.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lrw := &loggingResponseWriter{w, http.StatusOK}
		next.ServeHTTP(lrw, r)
		log.Printf(
			"[%s] %s %s %vms",
			statusCodeColor(lrw.statusCode), r.Method, r.URL.Path,
			time.Since(start).Milliseconds(),
		)
	})
}
