package entity

import (
	"fmt"

	"github.com/milk9111/alsescape/ecs"
	"github.com/milk9111/alsescape/ecs/component"
	"github.com/milk9111/alsescape/levels"
)

// SpawnLevel creates walls, pickups and the exit described by lvl.
func SpawnLevel(w *ecs.World, lvl *levels.Level) error {
	if w == nil || lvl == nil {
		return fmt.Errorf("spawn level: nil world or level")
	}

	bw, bh := lvl.Bounds()
	bounds := ecs.CreateEntity(w)
	if err := ecs.Add(w, bounds, component.LevelBoundsComponent.Kind(), &component.LevelBounds{Width: bw, Height: bh}); err != nil {
		return fmt.Errorf("spawn level: bounds: %w", err)
	}

	for _, r := range lvl.Walls() {
		if _, err := NewWall(w, r); err != nil {
			return err
		}
	}

	for i, ent := range lvl.Entities {
		var err error
		switch ent.Type {
		case "pickup":
			_, err = NewPickupAt(w, ent.X, ent.Y, ent.PropString("type", ""), ent.PropFloat("power", -1))
		case "exit":
			_, err = NewExit(w, ent)
		default:
			err = fmt.Errorf("unknown entity type %q", ent.Type)
		}
		if err != nil {
			return fmt.Errorf("spawn level: entity %d: %w", i, err)
		}
	}
	return nil
}

func NewWall(w *ecs.World, r levels.Rect) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.WallComponent.Kind(), &component.Wall{X: r.X, Y: r.Y, Width: r.W, Height: r.H}); err != nil {
		return 0, fmt.Errorf("wall: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: r.X, Y: r.Y}); err != nil {
		return 0, fmt.Errorf("wall: transform: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:  r.W,
		Height: r.H,
		Static: true,
	}); err != nil {
		return 0, fmt.Errorf("wall: physics body: %w", err)
	}
	return e, nil
}

// NewPickupAt builds the pickup prefab. Empty kind or negative power keep
// the prefab values.
func NewPickupAt(w *ecs.World, x, y float64, kind string, power float64) (ecs.Entity, error) {
	e, err := BuildEntity(w, "pickup.yaml")
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, x, y, 0); err != nil {
		return 0, fmt.Errorf("pickup: override transform: %w", err)
	}
	p, ok := ecs.Get(w, e, component.PickupComponent.Kind())
	if !ok {
		return 0, fmt.Errorf("pickup: prefab has no pickup component")
	}
	if kind != "" {
		p.PickupType = kind
	}
	if power >= 0 {
		p.PickupPower = power
	}
	p.BobPhase = x*0.01 + y*0.02
	return e, nil
}

func NewExit(w *ecs.World, ent levels.Entity) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	exit := &component.Exit{
		X:            ent.X,
		Y:            ent.Y,
		Width:        ent.PropFloat("width", levels.DefaultTileSize),
		Height:       ent.PropFloat("height", levels.DefaultTileSize),
		RequiredKeys: int(ent.PropFloat("required_keys", 0)),
	}
	exit.Open = exit.RequiredKeys <= 0
	if err := ecs.Add(w, e, component.ExitComponent.Kind(), exit); err != nil {
		return 0, fmt.Errorf("exit: %w", err)
	}
	return e, nil
}
