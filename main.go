package main

import (
	"context"
	"embed"
	"flag"
	"io/fs"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/syedasadmaq/twisted-graphene-app1/internal/api"
	"github.com/syedasadmaq/twisted-graphene-app1/internal/config"
	"github.com/syedasadmaq/twisted-graphene-app1/internal/monitor"
)

var (
	//go:embed static/*
	staticFiles embed.FS
	devMode     = flag.Bool("dev", false, "Serve ./static from disk instead of the embedded copy")
	listen      = flag.String("listen", ":8080", "Listen address")
	configPath  = flag.String("config", config.DefaultConfigPath, "Render defaults file")
)

// newMux assembles the full route table: the render API under /api/, the
// echarts debug pages under /debug/, and the control panel at the root.
func newMux(cfg *config.RenderConfig, dev bool) *http.ServeMux {
	mux := http.NewServeMux()

	apiMux := api.NewServer(cfg).ServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", apiMux))

	debugMux := monitor.NewWebServer().ServeMux()
	mux.Handle("/debug/", http.StripPrefix("/debug", debugMux))

	// read static files from the embedded filesystem in production or from
	// the local ./static in dev for easier iteration without restarting
	// the server
	var staticHandler http.Handler
	if dev {
		staticHandler = http.FileServer(http.Dir("./static"))
	} else {
		staticRoot, err := fs.Sub(staticFiles, "static")
		if err != nil {
			log.Fatalf("embedded static files missing: %v", err)
		}
		staticHandler = http.FileServer(http.FS(staticRoot))
	}
	mux.Handle("/", staticHandler)

	return mux
}

func main() {
	flag.Parse()

	if *listen == "" {
		log.Fatal("Listen address is required")
	}

	cfg, err := config.LoadRenderConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load render defaults: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:    *listen,
		Handler: api.LoggingMiddleware(newMux(cfg, *devMode)),
	}

	// Start server in a goroutine so it doesn't block
	go func() {
		log.Printf("serving on %s", *listen)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	// Wait for context cancellation to shut down server
	<-ctx.Done()
	log.Println("shutting down HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Printf("Graceful shutdown complete")
}
