package integrator

import (
	"github.com/jnguye27/Task-VS-Data-Parallelism/pkg/core"
	"github.com/jnguye27/Task-VS-Data-Parallelism/pkg/scene"
)

// WhittedIntegrator traces a single mirror path per pixel, adding Lambertian
// direct lighting from every unshadowed point light at each bounce
type WhittedIntegrator struct {
	config IntegratorConfig
}

// NewWhittedIntegrator creates a new integrator. A non-positive MaxDepth
// falls back to the default.
func NewWhittedIntegrator(config IntegratorConfig) *WhittedIntegrator {
	if config.MaxDepth <= 0 {
		config.MaxDepth = DefaultMaxDepth
	}
	return &WhittedIntegrator{config: config}
}

// RayColor follows the ray through up to MaxDepth reflections. All trace
// state lives on this call's stack, so concurrent calls never interact.
func (wi *WhittedIntegrator) RayColor(ray core.Ray, s *scene.Scene) (core.Vec3, int) {
	color := core.Vec3{}
	coefficient := 1.0
	depth := 0

	for {
		sphereIndex, distance, isHit := s.ClosestHit(ray)
		if !isHit {
			break
		}

		hitPoint := ray.At(distance)
		normal, ok := s.Spheres[sphereIndex].Normal(hitPoint)
		if !ok {
			break
		}

		mat := s.MaterialOf(sphereIndex)
		color = wi.addDirectLighting(color, s, hitPoint, normal, mat.Diffuse, coefficient)

		coefficient *= mat.Reflection
		ray = core.NewRay(hitPoint, ray.Direction.Reflect(normal))
		depth++

		if !(coefficient > 0 && depth < wi.config.MaxDepth) {
			break
		}
	}

	return color, depth
}

// addDirectLighting adds the Lambertian contribution of each light that sees
// the point to color, one light at a time
func (wi *WhittedIntegrator) addDirectLighting(color core.Vec3, s *scene.Scene, point, normal, diffuse core.Vec3, coefficient float64) core.Vec3 {
	for i := range s.Lights {
		light := &s.Lights[i]

		sample, ok := light.Sample(point)
		if !ok || normal.Dot(sample.Direction) <= 0 {
			continue // Light is behind the surface
		}

		shadowRay := core.NewRay(point, sample.Direction)
		if s.InShadow(shadowRay, sample.Distance) {
			continue
		}

		lambert := shadowRay.Direction.Dot(normal) * coefficient
		color = color.Add(sample.Emission.MultiplyVec(diffuse).Multiply(lambert))
	}

	return color
}

// MaxDepth returns the configured bounce limit
func (wi *WhittedIntegrator) MaxDepth() int {
	return wi.config.MaxDepth
}
