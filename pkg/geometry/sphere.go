package geometry

import (
	"math"

	"github.com/jnguye27/Task-VS-Data-Parallelism/pkg/core"
)

// HitEpsilon is the minimum accepted hit distance. It keeps a ray leaving a
// surface from hitting that same surface again.
const HitEpsilon = 0.001

// Sphere represents a sphere shape
type Sphere struct {
	Center     core.Vec3
	Radius     float64
	MaterialID int // Index into the scene's materials
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, materialID int) Sphere {
	return Sphere{
		Center:     center,
		Radius:     radius,
		MaterialID: materialID,
	}
}

// Hit tests if a ray intersects with the sphere closer than maxDistance.
// Only the nearer root is considered; a ray starting inside the sphere misses.
func (s *Sphere) Hit(ray core.Ray, maxDistance float64) (float64, bool) {
	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	dist := ray.Origin.Subtract(s.Center)
	b := 2 * ray.Direction.Dot(dist)
	c := dist.Dot(dist) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, false
	}

	// Roots are halved rather than divided by 2a, so distances are in units
	// of the direction's length only when it is unit length.
	sqrtD := math.Sqrt(discriminant)
	t0 := (-b + sqrtD) / 2
	t1 := (-b - sqrtD) / 2
	root := min(t0, t1)

	if root > HitEpsilon && root < maxDistance {
		return root, true
	}
	return 0, false
}

// Normal returns the outward unit normal at point, and false when the point
// coincides with the center.
func (s *Sphere) Normal(point core.Vec3) (core.Vec3, bool) {
	n := point.Subtract(s.Center)
	lengthSquared := n.LengthSquared()
	if lengthSquared == 0 {
		return core.Vec3{}, false
	}
	return n.Multiply(1.0 / math.Sqrt(lengthSquared)), true
}

// Scaled returns a copy of the sphere with center and radius multiplied by factor
func (s Sphere) Scaled(factor float64) Sphere {
	return NewSphere(s.Center.Multiply(factor), s.Radius*factor, s.MaterialID)
}
