package system

import (
	"github.com/milk9111/alsescape/common"
	"github.com/milk9111/alsescape/ecs"
	"github.com/milk9111/alsescape/ecs/component"
)

// CameraSystem moves the camera entity toward its target like a lagging
// spring arm. Zoom follows the arm length.
type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
	snapped      bool
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if !ecs.IsAlive(w, cs.camEntity) {
		camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
		cs.snapped = false
	}

	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}

	if !ecs.IsAlive(w, cs.targetEntity) {
		cs.targetEntity = findEntityByName(w, cam.TargetName)
		cs.snapped = false
	}

	target, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	if cam.TargetArmLength > 0 && cam.ReferenceArm > 0 {
		cam.Zoom = cam.ReferenceArm / cam.TargetArmLength
	}
	if cam.UsePawnYaw {
		if c, ok := ecs.Get(w, cs.targetEntity, component.ControllerComponent.Kind()); ok {
			cam.Yaw = c.Yaw
		}
	}

	if !cs.snapped {
		camTransform.X = target.X
		camTransform.Y = target.Y
		cs.snapped = true
		return
	}
	camTransform.X = common.Lerp(camTransform.X, target.X, cam.Lag)
	camTransform.Y = common.Lerp(camTransform.Y, target.Y, cam.Lag)
}

func findEntityByName(w *ecs.World, name string) ecs.Entity {
	var found ecs.Entity
	ecs.ForEach(w, component.NameComponent.Kind(), func(e ecs.Entity, n *component.Name) {
		if !found.Valid() && n.Value == name {
			found = e
		}
	})
	if found.Valid() {
		return found
	}
	if name == "player" || name == "" {
		if e, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
			return e
		}
	}
	return 0
}
