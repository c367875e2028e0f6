package geometry

import (
	"math"
	"testing"

	"github.com/jnguye27/Task-VS-Data-Parallelism/pkg/core"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, 0)

	tests := []struct {
		name string
		ray  core.Ray
	}{
		{"parallel offset", core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))},
		{"passes beside", core.NewRay(core.NewVec3(1.5, 0, -10), core.NewVec3(0, 0, 1))},
		{"diagonal away", core.NewRay(core.NewVec3(5, 5, 5), core.NewVec3(1, 1, 0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if dist, isHit := sphere.Hit(tt.ray, 20000); isHit {
				t.Errorf("Expected miss, but got hit at t=%f", dist)
			}
		})
	}
}

func TestSphere_Hit_NearRootThroughCenter(t *testing.T) {
	tests := []struct {
		name     string
		center   core.Vec3
		radius   float64
		expected float64
	}{
		{"unit sphere", core.NewVec3(0, 0, 10), 1, 9},
		{"reference sized", core.NewVec3(400, 300, 0), 100, 1900},
		{"scaled down", core.NewVec3(50, 37.5, 0), 12.5, 1987.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere(tt.center, tt.radius, 0)
			origin := core.NewVec3(tt.center.X, tt.center.Y, tt.center.Z-tt.expected-tt.radius)
			ray := core.NewRay(origin, core.NewVec3(0, 0, 1))

			dist, isHit := sphere.Hit(ray, 20000)
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(dist-tt.expected) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expected, dist)
			}
		})
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, 0)
	ray := core.NewRay(core.NewVec3(0, 0, -2), core.NewVec3(0, 0, 1))

	// Hit at t=1 is rejected when it is not strictly closer than maxDistance
	if dist, isHit := sphere.Hit(ray, 1.0); isHit {
		t.Errorf("Expected miss at maxDistance bound, but got hit at t=%f", dist)
	}
	if _, isHit := sphere.Hit(ray, 1.0000001); !isHit {
		t.Error("Expected hit just inside maxDistance")
	}
}

func TestSphere_Hit_SelfIntersectionEpsilon(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, 0)

	// Ray leaving the surface outward: near root is ~0 and must be rejected
	ray := core.NewRay(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, -1))
	if dist, isHit := sphere.Hit(ray, 20000); isHit {
		t.Errorf("Expected self-intersection to be rejected, got t=%f", dist)
	}

	// Ray starting inside: near root is negative, far root is ignored
	inside := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	if dist, isHit := sphere.Hit(inside, 20000); isHit {
		t.Errorf("Expected ray from inside to miss, got t=%f", dist)
	}
}

func TestSphere_Normal(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 1, 1), 2.0, 0)

	normal, ok := sphere.Normal(core.NewVec3(1, 1, -1))
	if !ok {
		t.Fatal("Expected valid normal")
	}
	if normal.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-12 {
		t.Errorf("Expected (0, 0, -1), got %v", normal)
	}

	if _, ok := sphere.Normal(sphere.Center); ok {
		t.Error("Expected degenerate normal at the center")
	}
}

func TestSphere_Scaled(t *testing.T) {
	sphere := NewSphere(core.NewVec3(200, 300, 0), 100, 2).Scaled(0.5)
	if sphere.Center != core.NewVec3(100, 150, 0) || sphere.Radius != 50 || sphere.MaterialID != 2 {
		t.Errorf("Unexpected scaled sphere %+v", sphere)
	}
}
