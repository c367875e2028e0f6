package renderer

import (
	"image"

	"github.com/jnguye27/Task-VS-Data-Parallelism/pkg/integrator"
	"github.com/jnguye27/Task-VS-Data-Parallelism/pkg/scene"
)

// BandRenderer handles the actual rendering of individual bands using an integrator
type BandRenderer struct {
	scene      *scene.Scene
	camera     *Camera
	integrator integrator.Integrator
}

// NewBandRenderer creates a new band renderer with the given scene and integrator
func NewBandRenderer(s *scene.Scene, camera *Camera, integratorInst integrator.Integrator) *BandRenderer {
	return &BandRenderer{
		scene:      s,
		camera:     camera,
		integrator: integratorInst,
	}
}

// RenderBand traces every pixel within bounds and writes it into the
// framebuffer. Callers must give concurrent calls non-overlapping bounds.
func (br *BandRenderer) RenderBand(bounds image.Rectangle, fb *Framebuffer) RenderStats {
	stats := RenderStats{}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			color, bounces := br.integrator.RayColor(br.camera.GetRay(i, j), br.scene)
			fb.SetPixel(i, j, color)
			stats.addPixel(bounces)
		}
	}

	stats.finalize()
	return stats
}
