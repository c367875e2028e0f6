package scene

import (
	"fmt"
	"sort"
)

// SceneInfo represents a built-in scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
}

type sceneEntry struct {
	info    SceneInfo
	factory func(scale float64) *Scene
}

var builtinScenes = map[string]sceneEntry{
	"reference": {
		info: SceneInfo{
			ID:          "reference",
			DisplayName: "Reference",
			Description: "Red, green and blue reflective spheres under three point lights",
		},
		factory: NewReferenceScene,
	},
	"single-sphere": {
		info: SceneInfo{
			ID:          "single-sphere",
			DisplayName: "Single Sphere",
			Description: "One red sphere lit head-on by a white light",
		},
		factory: NewSingleSphereScene,
	},
}

// ListScenes returns the built-in scenes sorted by display name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, entry := range builtinScenes {
		scenes = append(scenes, entry.info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})
	return scenes
}

// NewSceneByName creates a built-in scene at the given scale
func NewSceneByName(name string, scale float64) (*Scene, error) {
	entry, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene: %q", name)
	}
	if !(scale > 0) {
		return nil, fmt.Errorf("scale must be positive, got %v", scale)
	}
	return entry.factory(scale), nil
}
