package entity

import (
	"fmt"
	"sort"

	"github.com/milk9111/alsescape/ecs"
	"github.com/milk9111/alsescape/ecs/component"
	"github.com/milk9111/alsescape/prefabs"
	"github.com/milk9111/alsescape/stamina"
)

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":   addPlayerTag,
	"camera_tag":   addCameraTag,
	"name":         addName,
	"transform":    addTransform,
	"capsule":      addCapsule,
	"movement":     addMovement,
	"controller":   addController,
	"stamina":      addStamina,
	"collector":    addCollector,
	"input":        addInput,
	"physics_body": addPhysicsBody,
	"camera":       addCamera,
	"pickup":       addPickup,
	"hud":          addHUD,
}

// stamina reads the movement component, so movement is built first.
var componentBuildOrder = []string{
	"player_tag",
	"camera_tag",
	"name",
	"transform",
	"capsule",
	"movement",
	"controller",
	"stamina",
	"collector",
	"input",
	"physics_body",
	"camera",
	"pickup",
	"hud",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	apply := func(name string) error {
		builder, ok := componentRegistry[name]
		if !ok {
			return fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, name)
		}
		if err := builder(w, e, remaining[name], ctx); err != nil {
			return fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
		return nil
	}

	for _, name := range componentBuildOrder {
		if _, ok := remaining[name]; !ok {
			continue
		}
		if err := apply(name); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, err
		}
	}

	names := make([]string, 0, len(remaining))
	for name := range remaining {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := apply(name); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, err
		}
	}

	return e, nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y, rotation float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		t = &component.Transform{}
	}
	t.X = x
	t.Y = y
	t.Rotation = rotation
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

func addName(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[struct {
		Value string `yaml:"value"`
	}](raw)
	if err != nil {
		return fmt.Errorf("decode name spec: %w", err)
	}
	return ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: spec.Value})
}

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TransformComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		Rotation: spec.Rotation,
	})
}

func addCapsule(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.CapsuleComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode capsule spec: %w", err)
	}
	if spec.Radius <= 0 {
		return fmt.Errorf("capsule radius must be positive, got %v", spec.Radius)
	}
	return ecs.Add(w, e, component.CapsuleComponent.Kind(), &component.Capsule{
		Radius:     spec.Radius,
		HalfHeight: spec.HalfHeight,
	})
}

func addMovement(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.MovementComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode movement spec: %w", err)
	}
	orient := true
	if spec.OrientToMovement != nil {
		orient = *spec.OrientToMovement
	}
	return ecs.Add(w, e, component.MovementComponent.Kind(), &component.Movement{
		MaxWalkSpeed:     spec.MaxWalkSpeed,
		JumpZVelocity:    spec.JumpZVelocity,
		AirControl:       spec.AirControl,
		RotationRate:     spec.RotationRate,
		OrientToMovement: orient,
		Gravity:          spec.Gravity,
		Grounded:         true,
	})
}

func addController(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.ControllerComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode controller spec: %w", err)
	}
	return ecs.Add(w, e, component.ControllerComponent.Kind(), &component.Controller{
		BaseTurnRate: spec.BaseTurnRate,
	})
}

// StaminaConfig converts a prefab stamina spec into controller tuning,
// filling zero fields from the defaults.
func StaminaConfig(spec prefabs.StaminaComponentSpec) stamina.Config {
	cfg := stamina.DefaultConfig()
	if spec.Initial > 0 {
		cfg.Max = spec.Initial
	}
	if spec.DrainRate > 0 {
		cfg.DrainRate = spec.DrainRate
	}
	if spec.RegenRate > 0 {
		cfg.RegenRate = spec.RegenRate
	}
	if spec.SpeedFactor > 0 {
		cfg.SprintMultiplier = spec.SpeedFactor
	}
	cfg.Pacing = stamina.ParsePacing(spec.Pacing)
	return cfg
}

func addStamina(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.StaminaComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode stamina spec: %w", err)
	}
	movement, ok := ecs.Get(w, e, component.MovementComponent.Kind())
	if !ok {
		return fmt.Errorf("stamina requires movement on the same entity")
	}
	return ecs.Add(w, e, component.StaminaComponent.Kind(), &component.Stamina{
		Controller: stamina.NewController(StaminaConfig(spec), movement),
	})
}

func addCollector(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.CollectorComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode collector spec: %w", err)
	}
	return ecs.Add(w, e, component.CollectorComponent.Kind(), &component.Collector{Radius: spec.Radius})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

// addPhysicsBody only records the collider; the physics system creates the
// Chipmunk body on its first update.
func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PhysicsBodyComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics_body spec: %w", err)
	}
	mass := spec.Mass
	if mass <= 0 {
		mass = 1
	}
	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Radius:     spec.Radius,
		Width:      spec.Width,
		Height:     spec.Height,
		Mass:       mass,
		Friction:   spec.Friction,
		Elasticity: spec.Elasticity,
		Static:     spec.Static,
	})
}

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.CameraComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	arm := spec.TargetArmLength
	if arm <= 0 {
		arm = 300
	}
	ref := spec.ReferenceArm
	if ref <= 0 {
		ref = arm
	}
	lag := spec.Lag
	if lag <= 0 || lag > 1 {
		lag = 0.15
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		TargetName:      spec.TargetName,
		TargetArmLength: arm,
		ReferenceArm:    ref,
		Lag:             lag,
		UsePawnYaw:      spec.UsePawnYaw,
		Zoom:            ref / arm,
	})
}

func addPickup(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PickupComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode pickup spec: %w", err)
	}
	return ecs.Add(w, e, component.PickupComponent.Kind(), &component.Pickup{
		PickupType:  spec.Type,
		PickupPower: spec.Power,
		Radius:      spec.Radius,
		Script:      spec.Script,
	})
}

func addHUD(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.HUDComponent.Kind(), &component.HUD{})
}
