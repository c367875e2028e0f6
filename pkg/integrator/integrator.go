package integrator

import (
	"github.com/jnguye27/Task-VS-Data-Parallelism/pkg/core"
	"github.com/jnguye27/Task-VS-Data-Parallelism/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the unclamped color seen along a primary ray and the
	// number of surfaces the ray bounced off before the trace ended.
	RayColor(ray core.Ray, scene *scene.Scene) (core.Vec3, int)
}

// IntegratorConfig contains the integrator's tunables
type IntegratorConfig struct {
	MaxDepth int // Maximum number of bounces per primary ray
}

// DefaultMaxDepth bounds the reflection chain of a single pixel
const DefaultMaxDepth = 15

// DefaultIntegratorConfig returns sensible default values
func DefaultIntegratorConfig() IntegratorConfig {
	return IntegratorConfig{
		MaxDepth: DefaultMaxDepth,
	}
}
