package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/jnguye27/Task-VS-Data-Parallelism/pkg/imageio"
	"github.com/jnguye27/Task-VS-Data-Parallelism/pkg/integrator"
	"github.com/jnguye27/Task-VS-Data-Parallelism/pkg/renderer"
	"github.com/jnguye27/Task-VS-Data-Parallelism/pkg/scene"
)

// MaxConcurrentRenders caps how many renders run at once. Further requests
// wait for a free slot.
const MaxConcurrentRenders = 2

var errServerBusy = errors.New("server busy: request ended while waiting for a render slot")

// Server handles web requests for the raytracer
type Server struct {
	port        int
	renderCount atomic.Int64
	renderSlots chan struct{}
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{
		port:        port,
		renderSlots: make(chan struct{}, MaxConcurrentRenders),
	}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene    string `json:"scene"`    // Scene name (e.g., "reference")
	Scale    int    `json:"scale"`    // Multiplier on the 800x600 base resolution
	Workers  int    `json:"workers"`  // Number of parallel workers
	MaxDepth int    `json:"maxDepth"` // Maximum reflection bounces
	Format   string `json:"format"`   // "png" or "ppm"
}

// RenderResponse is the JSON form of a finished render
type RenderResponse struct {
	Width     int              `json:"width"`
	Height    int              `json:"height"`
	ImageData string           `json:"imageData"` // Base64 encoded PNG
	Stats     Stats            `json:"stats"`
	ElapsedMs int64            `json:"elapsedMs"`
	Console   []ConsoleMessage `json:"console"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels      int     `json:"totalPixels"`
	TotalBounces     int     `json:"totalBounces"`
	AverageBounces   float64 `json:"averageBounces"`
	MaxBouncesUsed   int     `json:"maxBouncesUsed"`
	MissedPixels     int     `json:"missedPixels"`
	Bands            int     `json:"bands"`
	AverageLuminance float64 `json:"averageLuminance"` // Mean Rec. 709 luminance in [0,1]
}

// Handler returns the HTTP handler with all API routes registered
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/render-json", s.handleRenderJSON)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scene.ListScenes())
}

// handleRender renders a scene and responds with the encoded image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("Invalid request: %v", err)})
		return
	}

	fb, stats, elapsed, _, err := s.render(r.Context(), req)
	if err != nil {
		writeRenderError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := imageio.Write(&buf, req.Format, fb); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": fmt.Sprintf("Encode error: %v", err)})
		return
	}

	w.Header().Set("Content-Type", imageio.ContentType(req.Format))
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(elapsed.Milliseconds(), 10))
	w.Header().Set("X-Render-Bounces", strconv.Itoa(stats.TotalBounces))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// handleRenderJSON renders a scene and responds with a base64 PNG plus stats
func (s *Server) handleRenderJSON(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("Invalid request: %v", err)})
		return
	}

	fb, stats, elapsed, console, err := s.render(r.Context(), req)
	if err != nil {
		writeRenderError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := imageio.WritePNG(&buf, fb); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": fmt.Sprintf("Encode error: %v", err)})
		return
	}

	writeJSON(w, http.StatusOK, RenderResponse{
		Width:     fb.Width,
		Height:    fb.Height,
		ImageData: base64.StdEncoding.EncodeToString(buf.Bytes()),
		Stats: Stats{
			TotalPixels:      stats.TotalPixels,
			TotalBounces:     stats.TotalBounces,
			AverageBounces:   stats.AverageBounces,
			MaxBouncesUsed:   stats.MaxBouncesUsed,
			MissedPixels:     stats.MissedPixels,
			Bands:            stats.Bands,
			AverageLuminance: renderer.CalculateAverageLuminance(fb),
		},
		ElapsedMs: elapsed.Milliseconds(),
		Console:   console,
	})
}

// render runs one render with a per-request console logger once a render
// slot is free
func (s *Server) render(ctx context.Context, req *RenderRequest) (*renderer.Framebuffer, renderer.RenderStats, time.Duration, []ConsoleMessage, error) {
	sceneObj, err := scene.NewSceneByName(req.Scene, float64(req.Scale))
	if err != nil {
		return nil, renderer.RenderStats{}, 0, nil, err
	}

	select {
	case s.renderSlots <- struct{}{}:
		defer func() { <-s.renderSlots }()
	case <-ctx.Done():
		return nil, renderer.RenderStats{}, 0, nil, errServerBusy
	}

	renderID := fmt.Sprintf("render-%d", s.renderCount.Add(1))
	consoleChan := make(chan ConsoleMessage, 16)
	logger := NewWebLogger(renderID, consoleChan)

	config := renderer.RenderConfig{
		NumWorkers: req.Workers,
		MaxDepth:   req.MaxDepth,
	}
	raytracer := renderer.NewRaytracer(sceneObj, scene.BaseWidth*req.Scale, scene.BaseHeight*req.Scale, config, logger)

	startTime := time.Now()
	fb, stats, err := raytracer.Render()
	elapsed := time.Since(startTime)
	if err != nil {
		return nil, renderer.RenderStats{}, elapsed, drainConsole(consoleChan), err
	}

	logger.Printf("Render completed in %v\n", elapsed)
	return fb, stats, elapsed, drainConsole(consoleChan), nil
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{}

	if sceneName := query.Get("scene"); sceneName != "" {
		req.Scene = sceneName
	} else {
		req.Scene = "reference" // Default scene
	}

	var err error
	if req.Scale, err = parseIntParam(query, "scale", 1, 1, 4); err != nil {
		return nil, err
	}
	if req.Workers, err = parseIntParam(query, "workers", 4, 1, 64); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(query, "maxDepth", integrator.DefaultMaxDepth, 1, 50); err != nil {
		return nil, err
	}

	req.Format = query.Get("format")
	if req.Format == "" {
		req.Format = imageio.FormatPNG
	}
	if !imageio.SupportedFormat(req.Format) {
		return nil, fmt.Errorf("unsupported format: %s", req.Format)
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// writeRenderError maps a render failure to a status code
func writeRenderError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, errServerBusy) {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]string{"error": fmt.Sprintf("Render error: %v", err)})
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
