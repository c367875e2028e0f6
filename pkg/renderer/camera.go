package renderer

import (
	"github.com/jnguye27/Task-VS-Data-Parallelism/pkg/core"
)

// DefaultCameraZ is the depth of the image plane the primary rays start from
const DefaultCameraZ = -2000.0

// Camera is an orthographic camera: every pixel shoots a ray straight down +Z
// from its own (x, y) position on the image plane.
type Camera struct {
	z float64
}

// NewCamera creates an orthographic camera at the default image plane
func NewCamera() *Camera {
	return &Camera{z: DefaultCameraZ}
}

// GetRay generates the primary ray for pixel (i, j)
func (c *Camera) GetRay(i, j int) core.Ray {
	return core.NewRay(
		core.NewVec3(float64(i), float64(j), c.z),
		core.NewVec3(0, 0, 1),
	)
}
