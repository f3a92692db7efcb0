package entity

import (
	"fmt"

	"github.com/milk9111/alsescape/ecs"
	"github.com/milk9111/alsescape/ecs/component"
)

// NewCameraAt builds the follow camera at x, y. A non-empty target replaces
// the prefab's target name.
func NewCameraAt(w *ecs.World, x, y float64, target string) (ecs.Entity, error) {
	camera, err := BuildEntity(w, "camera.yaml")
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, camera, x, y, 0); err != nil {
		return 0, fmt.Errorf("camera: place: %w", err)
	}
	if target == "" {
		return camera, nil
	}
	cam, ok := ecs.Get(w, camera, component.CameraComponent.Kind())
	if !ok {
		return 0, fmt.Errorf("camera: prefab has no camera component")
	}
	cam.TargetName = target
	return camera, nil
}
