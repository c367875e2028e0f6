package material

import (
	"fmt"
	"math"

	"github.com/jnguye27/Task-VS-Data-Parallelism/pkg/core"
)

// Material describes how a sphere surface responds to light: a diffuse
// color for Lambertian shading and a scalar reflectivity that attenuates
// everything seen in the mirror bounce.
type Material struct {
	Diffuse    core.Vec3 // Per-channel diffuse color
	Reflection float64   // Fraction carried into the next bounce, nominally [0,1]
}

// NewMaterial creates a new material
func NewMaterial(diffuse core.Vec3, reflection float64) Material {
	return Material{Diffuse: diffuse, Reflection: reflection}
}

// Validate rejects materials whose values would poison every pixel they touch.
// Out-of-range values are allowed; only NaN is refused.
func (m Material) Validate() error {
	if m.Diffuse.IsNaN() {
		return fmt.Errorf("diffuse color contains NaN: %v", m.Diffuse)
	}
	if math.IsNaN(m.Reflection) {
		return fmt.Errorf("reflection is NaN")
	}
	return nil
}

// WithReflection returns a copy of the material with a different reflection coefficient
func (m Material) WithReflection(reflection float64) Material {
	m.Reflection = reflection
	return m
}
