package renderer

import (
	"fmt"

	"github.com/jnguye27/Task-VS-Data-Parallelism/pkg/core"
	"github.com/jnguye27/Task-VS-Data-Parallelism/pkg/integrator"
	"github.com/jnguye27/Task-VS-Data-Parallelism/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// RenderConfig contains rendering configuration
type RenderConfig struct {
	NumWorkers int // Number of parallel workers, one row band each
	MaxDepth   int // Maximum ray bounce depth
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		NumWorkers: 1,
		MaxDepth:   integrator.DefaultMaxDepth,
	}
}

// depthLimited is implemented by integrators that cap the bounces per pixel
type depthLimited interface {
	MaxDepth() int
}

// Raytracer splits the image into row bands and renders them in parallel
type Raytracer struct {
	scene      *scene.Scene
	width      int
	height     int
	config     RenderConfig
	camera     *Camera
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards output.
func NewRaytracer(s *scene.Scene, width, height int, config RenderConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}

	return &Raytracer{
		scene:      s,
		width:      width,
		height:     height,
		config:     config,
		camera:     NewCamera(),
		integrator: integrator.NewWhittedIntegrator(integrator.IntegratorConfig{MaxDepth: config.MaxDepth}),
		logger:     logger,
	}
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.integrator = integratorInst
}

// validate checks the configuration before any memory is allocated
func (rt *Raytracer) validate() error {
	if rt.scene == nil {
		return fmt.Errorf("scene is nil")
	}
	if err := rt.scene.Validate(); err != nil {
		return fmt.Errorf("invalid scene: %w", err)
	}
	if rt.width <= 0 || rt.height <= 0 {
		return fmt.Errorf("invalid resolution %dx%d", rt.width, rt.height)
	}
	if rt.config.NumWorkers <= 0 {
		return fmt.Errorf("worker count must be positive, got %d", rt.config.NumWorkers)
	}
	return nil
}

// Render traces every pixel and returns the finished framebuffer. It blocks
// until all workers have finished.
func (rt *Raytracer) Render() (*Framebuffer, RenderStats, error) {
	if err := rt.validate(); err != nil {
		return nil, RenderStats{}, err
	}

	fb, err := NewFramebuffer(rt.width, rt.height)
	if err != nil {
		return nil, RenderStats{}, err
	}

	bands := NewBandGrid(rt.width, rt.height, rt.config.NumWorkers)
	workerPool := NewWorkerPool(rt.scene, rt.camera, rt.integrator, len(bands), len(bands))

	rt.logger.Printf("Rendering %dx%d: %d spheres, %d lights (using %d workers)...\n",
		rt.width, rt.height, rt.scene.GetPrimitiveCount(), len(rt.scene.Lights), workerPool.GetNumWorkers())
	if limited, ok := rt.integrator.(depthLimited); ok {
		rt.logger.Printf("Tracing up to %d bounces per pixel\n", limited.MaxDepth())
	}

	workerPool.Start()
	for taskID, band := range bands {
		workerPool.SubmitTask(BandTask{
			Band:        band,
			TaskID:      taskID,
			Framebuffer: fb,
		})
	}

	// Collect one result per band before stopping the pool
	stats := RenderStats{}
	var firstErr error
	for range bands {
		result, ok := workerPool.GetResult()
		if !ok {
			firstErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil && firstErr == nil {
			firstErr = result.Error
		}
		stats.merge(result.Stats)
	}
	workerPool.Stop()

	if firstErr != nil {
		return nil, RenderStats{}, firstErr
	}

	stats.finalize()
	return fb, stats, nil
}

// Render is a convenience wrapper that renders the scene with the default
// integrator and the given number of workers
func Render(s *scene.Scene, width, height, numWorkers int) (*Framebuffer, error) {
	config := DefaultRenderConfig()
	config.NumWorkers = numWorkers

	fb, _, err := NewRaytracer(s, width, height, config, nil).Render()
	return fb, err
}
