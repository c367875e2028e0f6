package scene

import (
	"fmt"

	"github.com/jnguye27/Task-VS-Data-Parallelism/pkg/core"
	"github.com/jnguye27/Task-VS-Data-Parallelism/pkg/geometry"
	"github.com/jnguye27/Task-VS-Data-Parallelism/pkg/lights"
	"github.com/jnguye27/Task-VS-Data-Parallelism/pkg/material"
)

// MaxDistance is the starting bound for closest-hit searches. Anything
// farther along a ray than this is treated as a miss.
const MaxDistance = 20000.0

// Scene contains all the elements needed for rendering. It is built once and
// must not be mutated while a render is in progress; workers share it freely.
type Scene struct {
	Spheres   []geometry.Sphere   // Objects in the scene
	Materials []material.Material // Indexed by Sphere.MaterialID
	Lights    []lights.PointLight // Lights in the scene
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{
		Spheres:   make([]geometry.Sphere, 0),
		Materials: make([]material.Material, 0),
		Lights:    make([]lights.PointLight, 0),
	}
}

// AddMaterial appends a material and returns its index for use by spheres
func (s *Scene) AddMaterial(m material.Material) int {
	s.Materials = append(s.Materials, m)
	return len(s.Materials) - 1
}

// AddSphere appends a sphere to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, materialID int) {
	s.Spheres = append(s.Spheres, geometry.NewSphere(center, radius, materialID))
}

// AddLight appends a point light to the scene
func (s *Scene) AddLight(position, intensity core.Vec3) {
	s.Lights = append(s.Lights, lights.NewPointLight(position, intensity))
}

// Validate checks that every sphere references an existing material and has a
// positive radius, and that no value is NaN.
func (s *Scene) Validate() error {
	for i, sphere := range s.Spheres {
		if !(sphere.Radius > 0) {
			return fmt.Errorf("sphere %d: radius must be positive, got %v", i, sphere.Radius)
		}
		if sphere.Center.IsNaN() {
			return fmt.Errorf("sphere %d: center contains NaN: %v", i, sphere.Center)
		}
		if sphere.MaterialID < 0 || sphere.MaterialID >= len(s.Materials) {
			return fmt.Errorf("sphere %d: material index %d out of range [0,%d)", i, sphere.MaterialID, len(s.Materials))
		}
	}
	for i, m := range s.Materials {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("material %d: %w", i, err)
		}
	}
	for i, light := range s.Lights {
		if err := light.Validate(); err != nil {
			return fmt.Errorf("light %d: %w", i, err)
		}
	}
	return nil
}

// ClosestHit finds the nearest sphere along the ray. Spheres are tested in
// index order against the running minimum, so on equal distances the lower
// index wins.
func (s *Scene) ClosestHit(ray core.Ray) (int, float64, bool) {
	closestIndex := -1
	closestSoFar := MaxDistance

	for i := range s.Spheres {
		if dist, isHit := s.Spheres[i].Hit(ray, closestSoFar); isHit {
			closestSoFar = dist
			closestIndex = i
		}
	}

	if closestIndex < 0 {
		return -1, 0, false
	}
	return closestIndex, closestSoFar, true
}

// InShadow reports whether any sphere blocks the ray before lightDistance.
// It stops at the first blocker.
func (s *Scene) InShadow(ray core.Ray, lightDistance float64) bool {
	for i := range s.Spheres {
		if _, isHit := s.Spheres[i].Hit(ray, lightDistance); isHit {
			return true
		}
	}
	return false
}

// MaterialOf returns the material of the sphere at the given index
func (s *Scene) MaterialOf(sphereIndex int) material.Material {
	return s.Materials[s.Spheres[sphereIndex].MaterialID]
}

// GetPrimitiveCount returns the total number of spheres in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Spheres)
}

// Scaled returns a copy of the scene with every sphere and light position
// multiplied by factor. Colors and reflectivity are unchanged.
func (s *Scene) Scaled(factor float64) *Scene {
	scaled := &Scene{
		Spheres:   make([]geometry.Sphere, len(s.Spheres)),
		Materials: append([]material.Material(nil), s.Materials...),
		Lights:    make([]lights.PointLight, len(s.Lights)),
	}
	for i, sphere := range s.Spheres {
		scaled.Spheres[i] = sphere.Scaled(factor)
	}
	for i, light := range s.Lights {
		scaled.Lights[i] = light.Scaled(factor)
	}
	return scaled
}

// WithReflection returns a copy of the scene with every material's reflection
// coefficient replaced
func (s *Scene) WithReflection(reflection float64) *Scene {
	modified := &Scene{
		Spheres:   append([]geometry.Sphere(nil), s.Spheres...),
		Materials: make([]material.Material, len(s.Materials)),
		Lights:    append([]lights.PointLight(nil), s.Lights...),
	}
	for i, m := range s.Materials {
		modified.Materials[i] = m.WithReflection(reflection)
	}
	return modified
}
