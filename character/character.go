package character

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/milk9111/alsescape/ecs"
	"github.com/milk9111/alsescape/ecs/component"
	"github.com/milk9111/alsescape/ecs/entity"
	"github.com/milk9111/alsescape/stamina"
)

// Character is the player pawn. It composes the ECS components of its entity
// with the stamina controller it owns, and wires both into a Host.
type Character struct {
	Entity  ecs.Entity
	Stamina *stamina.Controller

	world      *ecs.World
	movement   *component.Movement
	controller *component.Controller
	input      *component.Input
	collector  *component.Collector
	logger     *zap.Logger

	wasSprinting bool
}

// Spawn builds the pawn prefab at x, y.
func Spawn(w *ecs.World, prefab string, x, y float64, logger *zap.Logger) (*Character, error) {
	e, err := entity.NewPawnAt(w, prefab, x, y)
	if err != nil {
		return nil, fmt.Errorf("character: spawn: %w", err)
	}
	c, err := FromEntity(w, e, logger)
	if err != nil {
		ecs.DestroyEntity(w, e)
		return nil, err
	}
	return c, nil
}

// FromEntity wraps an already built pawn entity.
func FromEntity(w *ecs.World, e ecs.Entity, logger *zap.Logger) (*Character, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	movement, ok := ecs.Get(w, e, component.MovementComponent.Kind())
	if !ok {
		return nil, fmt.Errorf("character: entity %s has no movement", e)
	}
	st, ok := ecs.Get(w, e, component.StaminaComponent.Kind())
	if !ok || st.Controller == nil {
		return nil, fmt.Errorf("character: entity %s has no stamina", e)
	}
	controller, ok := ecs.Get(w, e, component.ControllerComponent.Kind())
	if !ok {
		controller = &component.Controller{}
		if err := ecs.Add(w, e, component.ControllerComponent.Kind(), controller); err != nil {
			return nil, fmt.Errorf("character: add controller: %w", err)
		}
	}
	input, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok {
		input = &component.Input{}
		if err := ecs.Add(w, e, component.InputComponent.Kind(), input); err != nil {
			return nil, fmt.Errorf("character: add input: %w", err)
		}
	}
	collector, _ := ecs.Get(w, e, component.CollectorComponent.Kind())

	return &Character{
		Entity:     e,
		Stamina:    st.Controller,
		world:      w,
		movement:   movement,
		controller: controller,
		input:      input,
		collector:  collector,
		logger:     logger.With(zap.Stringer("entity", e)),
	}, nil
}

// SetupInput binds the gameplay actions.
func (c *Character) SetupInput(host ecs.Host) {
	host.OnInputEvent(ecs.ActionJump, ecs.Pressed, c.movement.Jump)
	host.OnInputEvent(ecs.ActionJump, ecs.Released, c.movement.StopJumping)

	host.OnInputEvent(ecs.ActionSprint, ecs.Pressed, c.StartSprint)
	host.OnInputEvent(ecs.ActionSprint, ecs.Released, c.StopSprint)

	host.OnInputEvent(ecs.ActionCollect, ecs.Pressed, c.Collect)

	host.OnInputEvent(ecs.ActionTouch, ecs.Pressed, c.movement.Jump)
	host.OnInputEvent(ecs.ActionTouch, ecs.Released, c.movement.StopJumping)
}

// BeginPlay registers the per-frame tick.
func (c *Character) BeginPlay(host ecs.Host) {
	host.OnTick(c.Tick)
}

func (c *Character) Tick(dt float64) {
	if !ecs.IsAlive(c.world, c.Entity) {
		return
	}
	c.AddControllerYawInput(c.input.Turn)
	c.TurnAtRate(c.input.TurnRate, dt)

	c.Stamina.Tick(dt)
	c.reportSprint()
}

func (c *Character) StartSprint() {
	c.Stamina.StartSprint()
	c.reportSprint()
}

func (c *Character) StopSprint() {
	c.Stamina.StopSprint()
	c.reportSprint()
}

// Collect asks the pickup system to gather everything inside the collection
// sphere on its next update.
func (c *Character) Collect() {
	if c.collector == nil {
		return
	}
	c.collector.CollectRequested = true
}

// TurnAtRate turns by rate * BaseTurnRate degrees per second.
func (c *Character) TurnAtRate(rate, dt float64) {
	if rate == 0 {
		return
	}
	c.AddControllerYawInput(rate * c.controller.BaseTurnRate * dt)
}

func (c *Character) AddControllerYawInput(deg float64) {
	if deg == 0 {
		return
	}
	c.controller.Yaw = normalizeDegrees(c.controller.Yaw + deg)
}

func (c *Character) Yaw() float64 { return c.controller.Yaw }

func (c *Character) MaxWalkSpeed() float64 { return c.movement.MaxWalkSpeed }

func (c *Character) Movement() *component.Movement { return c.movement }

func (c *Character) reportSprint() {
	sprinting := c.Stamina.Sprinting()
	if sprinting == c.wasSprinting {
		return
	}
	c.wasSprinting = sprinting
	c.logger.Debug("sprint changed",
		zap.Bool("sprinting", sprinting),
		zap.Float64("stamina", c.Stamina.Current()),
		zap.Float64("max_walk_speed", c.movement.MaxWalkSpeed))
	c.world.Events().Push(ecs.Event{Type: ecs.EventSprintChanged, Data: sprinting})
}

func normalizeDegrees(d float64) float64 {
	for d >= 360 {
		d -= 360
	}
	for d < 0 {
		d += 360
	}
	return d
}
