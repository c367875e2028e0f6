package lights

import (
	"fmt"
	"math"

	"github.com/jnguye27/Task-VS-Data-Parallelism/pkg/core"
)

// LightSample contains information about the path from a shading point to a light
type LightSample struct {
	Direction core.Vec3 // Unit direction from shading point to light
	Distance  float64   // Distance to light
	Emission  core.Vec3 // Light intensity reaching the point
}

// PointLight is an infinitesimal light with no falloff over distance
type PointLight struct {
	Position  core.Vec3
	Intensity core.Vec3
}

// NewPointLight creates a new point light
func NewPointLight(position, intensity core.Vec3) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

// Sample returns the direction and distance from point to the light.
// It reports false when the point sits on the light itself.
func (l *PointLight) Sample(point core.Vec3) (LightSample, bool) {
	toLight := l.Position.Subtract(point)
	distance := math.Sqrt(toLight.Dot(toLight))
	if distance <= 0 {
		return LightSample{}, false
	}

	return LightSample{
		Direction: toLight.Multiply(1 / distance),
		Distance:  distance,
		Emission:  l.Intensity,
	}, true
}

// Scaled returns a copy of the light with its position multiplied by factor
func (l PointLight) Scaled(factor float64) PointLight {
	return NewPointLight(l.Position.Multiply(factor), l.Intensity)
}

// Validate rejects lights with NaN components
func (l PointLight) Validate() error {
	if l.Position.IsNaN() {
		return fmt.Errorf("position contains NaN: %v", l.Position)
	}
	if l.Intensity.IsNaN() {
		return fmt.Errorf("intensity contains NaN: %v", l.Intensity)
	}
	return nil
}
