package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jnguye27/Task-VS-Data-Parallelism/pkg/scene"
)

func TestServer_Health(t *testing.T) {
	handler := NewServer(0).Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %q", body["status"])
	}
}

func TestServer_Scenes(t *testing.T) {
	handler := NewServer(0).Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/scenes", nil))

	var scenes []scene.SceneInfo
	if err := json.NewDecoder(rec.Body).Decode(&scenes); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if len(scenes) != len(scene.ListScenes()) {
		t.Errorf("Expected %d scenes, got %d", len(scene.ListScenes()), len(scenes))
	}
}

func TestServer_RenderPNG(t *testing.T) {
	handler := NewServer(0).Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/render?scene=single-sphere&workers=4", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %q", ct)
	}
	if rec.Header().Get("X-Render-Time-Ms") == "" {
		t.Error("Expected render time header")
	}

	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if img.Bounds().Dx() != 800 || img.Bounds().Dy() != 600 {
		t.Errorf("Expected 800x600 image, got %v", img.Bounds())
	}

	r, g, b, _ := img.At(400, 300).RGBA()
	if r < 0xc000 || g != 0 || b != 0 {
		t.Errorf("Expected red at the image center, got (%d, %d, %d)", r, g, b)
	}
}

func TestServer_RenderPPM(t *testing.T) {
	handler := NewServer(0).Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/render?format=ppm&workers=3", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/x-portable-pixmap" {
		t.Errorf("Expected PPM content type, got %q", ct)
	}

	header := "P6 800 600 255\n"
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte(header)) {
		t.Errorf("Expected PPM header %q", header)
	}
	if rec.Body.Len() != len(header)+800*600*3 {
		t.Errorf("Expected %d bytes, got %d", len(header)+800*600*3, rec.Body.Len())
	}
}

func TestServer_RenderJSON(t *testing.T) {
	handler := NewServer(0).Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/render-json?scene=reference&workers=2", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp RenderResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if resp.Width != 800 || resp.Height != 600 {
		t.Errorf("Expected 800x600, got %dx%d", resp.Width, resp.Height)
	}
	if resp.Stats.TotalPixels != 800*600 || resp.Stats.Bands != 2 {
		t.Errorf("Unexpected stats: %+v", resp.Stats)
	}
	if !(resp.Stats.AverageLuminance > 0 && resp.Stats.AverageLuminance <= 1) {
		t.Errorf("Expected average luminance in (0,1], got %v", resp.Stats.AverageLuminance)
	}
	if len(resp.Console) == 0 {
		t.Error("Expected console messages")
	}

	data, err := base64.StdEncoding.DecodeString(resp.ImageData)
	if err != nil {
		t.Fatalf("Failed to decode base64 image: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("Failed to decode embedded PNG: %v", err)
	}
}

func TestServer_InvalidRequests(t *testing.T) {
	handler := NewServer(0).Handler()

	tests := []struct {
		name        string
		url         string
		errorSubstr string
	}{
		{"non-numeric workers", "/api/render?workers=many", "invalid workers"},
		{"too many workers", "/api/render?workers=1000", "workers must be between"},
		{"scale too large", "/api/render?scale=9", "scale must be between"},
		{"unknown format", "/api/render?format=gif", "unsupported format"},
		{"uppercase format", "/api/render?format=PPM", "unsupported format"},
		{"zero depth", "/api/render-json?maxDepth=0", "maxDepth must be between"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("Expected status 400, got %d", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tt.errorSubstr) {
				t.Errorf("Expected error containing %q, got %q", tt.errorSubstr, rec.Body.String())
			}
		})
	}
}

func TestServer_UnknownScene(t *testing.T) {
	handler := NewServer(0).Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/render?scene=cornell-box", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "unknown scene") {
		t.Errorf("Expected unknown scene error, got %q", rec.Body.String())
	}
}

func TestServer_RenderWaitsForFreeSlot(t *testing.T) {
	srv := NewServer(0)
	handler := srv.Handler()

	// Occupy every render slot
	for i := 0; i < MaxConcurrentRenders; i++ {
		srv.renderSlots <- struct{}{}
	}

	for _, path := range []string{"/api/render", "/api/render-json"} {
		t.Run(path, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil).WithContext(ctx))

			if rec.Code != http.StatusServiceUnavailable {
				t.Errorf("Expected status 503, got %d", rec.Code)
			}
		})
	}

	// Freeing a slot lets the next render through
	<-srv.renderSlots
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/render?scene=single-sphere", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200 after a slot was freed, got %d", rec.Code)
	}
	if len(srv.renderSlots) != MaxConcurrentRenders-1 {
		t.Errorf("Expected the finished render to release its slot, %d in use", len(srv.renderSlots))
	}
}
