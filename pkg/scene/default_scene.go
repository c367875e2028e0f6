package scene

import (
	"github.com/jnguye27/Task-VS-Data-Parallelism/pkg/core"
	"github.com/jnguye27/Task-VS-Data-Parallelism/pkg/material"
)

// Base resolution the reference scene is laid out for. Scene coordinates are
// in pixels at scale 1.
const (
	BaseWidth  = 800
	BaseHeight = 600
)

// NewReferenceScene creates the three-sphere, three-light scene with every
// coordinate multiplied by scale
func NewReferenceScene(scale float64) *Scene {
	s := NewScene()

	// Create materials
	red := s.AddMaterial(material.NewMaterial(core.NewVec3(1, 0, 0), 0.2))
	green := s.AddMaterial(material.NewMaterial(core.NewVec3(0, 1, 0), 0.5))
	blue := s.AddMaterial(material.NewMaterial(core.NewVec3(0, 0, 1), 0.9))

	s.AddSphere(core.NewVec3(200, 300, 0), 100, red)
	s.AddSphere(core.NewVec3(400, 400, 0), 100, green)
	s.AddSphere(core.NewVec3(500, 140, 0), 100, blue)

	s.AddLight(core.NewVec3(0, 240, -100), core.NewVec3(1, 1, 1))
	s.AddLight(core.NewVec3(3200, 3000, -1000), core.NewVec3(0.6, 0.7, 1))
	s.AddLight(core.NewVec3(600, 0, -100), core.NewVec3(0.3, 0.5, 1))

	return s.Scaled(scale)
}

// NewSingleSphereScene creates one red sphere in the middle of the frame lit
// head-on by a white light
func NewSingleSphereScene(scale float64) *Scene {
	s := NewScene()

	red := s.AddMaterial(material.NewMaterial(core.NewVec3(1, 0, 0), 0.2))
	s.AddSphere(core.NewVec3(400, 300, 0), 100, red)
	s.AddLight(core.NewVec3(400, 300, -1000), core.NewVec3(1, 1, 1))

	return s.Scaled(scale)
}
