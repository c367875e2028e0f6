package renderer

import (
	"testing"

	"github.com/jnguye27/Task-VS-Data-Parallelism/pkg/core"
)

func TestCamera_GetRay(t *testing.T) {
	camera := NewCamera()

	tests := []struct {
		name   string
		i, j   int
		origin core.Vec3
	}{
		{"top left", 0, 0, core.NewVec3(0, 0, -2000)},
		{"center", 400, 300, core.NewVec3(400, 300, -2000)},
		{"bottom right", 799, 599, core.NewVec3(799, 599, -2000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.i, tt.j)
			if ray.Origin != tt.origin {
				t.Errorf("Expected origin %v, got %v", tt.origin, ray.Origin)
			}
			if ray.Direction != core.NewVec3(0, 0, 1) {
				t.Errorf("Expected direction +Z, got %v", ray.Direction)
			}
		})
	}
}
