package server

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/joegreene/go-raytracer/pkg/raster"
	"github.com/joegreene/go-raytracer/pkg/scene"
)

// Server handles web requests for one-shot preview renders
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// Start starts the web server
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/render.ppm", s.handleRenderPPM)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/health", s.handleHealth)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, mux)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "ok")
}

// handleScenes lists the available demo scene names
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	for _, name := range scene.Names() {
		fmt.Fprintln(w, name)
	}
}

// handleRender renders the requested scene and returns a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	fb, err := s.render(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := fb.WritePNG(w); err != nil {
		// Headers are already out; all we can do is log.
		log.Printf("Error streaming PNG: %v", err)
	}
}

// handleRenderPPM renders the requested scene and returns ASCII PPM
func (s *Server) handleRenderPPM(w http.ResponseWriter, r *http.Request) {
	fb, err := s.render(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "image/x-portable-pixmap")
	if err := fb.WritePPM(w); err != nil {
		log.Printf("Error streaming PPM: %v", err)
	}
}

// render parses the request parameters, renders the scene, and returns
// the framebuffer
func (s *Server) render(r *http.Request) (*raster.Framebuffer, error) {
	name := r.URL.Query().Get("scene")
	if name == "" {
		name = "default"
	}

	width, err := intParam(r, "width", 400)
	if err != nil {
		return nil, err
	}
	height, err := intParam(r, "height", 300)
	if err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 || width > 4096 || height > 4096 {
		return nil, fmt.Errorf("dimensions %dx%d outside 1..4096", width, height)
	}

	selected, err := scene.ByName(name)
	if err != nil {
		return nil, err
	}

	fb, stats, err := selected.Render(width, height)
	if err != nil {
		return nil, err
	}
	log.Printf("Rendered %q at %dx%d in %v", name, width, height, stats.RenderTime)
	return fb, nil
}

// intParam parses an integer query parameter with a default
func intParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	return value, nil
}
