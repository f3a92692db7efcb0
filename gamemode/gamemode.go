package gamemode

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/milk9111/alsescape/character"
	"github.com/milk9111/alsescape/ecs"
	"github.com/milk9111/alsescape/ecs/component"
	"github.com/milk9111/alsescape/ecs/entity"
	"github.com/milk9111/alsescape/ecs/system"
	"github.com/milk9111/alsescape/levels"
	"github.com/milk9111/alsescape/prefabs"
)

const fallbackPawn = "player.yaml"

type State int

const (
	Playing State = iota
	Escaped
)

func (s State) String() string {
	if s == Escaped {
		return "escaped"
	}
	return "playing"
}

// Widget is a HUD element created by the game mode.
type Widget interface {
	Update()
}

// WidgetFactory creates the widget registered under class.
type WidgetFactory func(class string, w *ecs.World) (Widget, error)

// Viewport is where created widgets are shown.
type Viewport interface {
	AddToViewport(Widget)
	RemoveFromViewport(Widget)
}

type Options struct {
	Level       string
	DefaultPawn string
	HUDClass    string
	Delta       float64
}

// GameMode spawns the player pawn and the level, owns the scheduler that
// drives them and shows the HUD widget.
type GameMode struct {
	opts     Options
	input    ecs.System
	widgets  WidgetFactory
	viewport Viewport
	logger   *zap.Logger

	defaultPawn string

	world     *ecs.World
	scheduler *ecs.Scheduler
	pawn      *character.Character
	camera    ecs.Entity
	pickups   *system.PickupSystem
	widget    Widget
	state     State
}

// New resolves the default pawn prefab. A pawn prefab that does not load
// is logged and replaced by the built-in player.
func New(opts Options, input ecs.System, widgets WidgetFactory, viewport Viewport, logger *zap.Logger) *GameMode {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Delta <= 0 {
		opts.Delta = 1.0 / 60
	}
	gm := &GameMode{
		opts:        opts,
		input:       input,
		widgets:     widgets,
		viewport:    viewport,
		logger:      logger,
		defaultPawn: fallbackPawn,
	}
	if opts.DefaultPawn != "" {
		if _, err := prefabs.LoadEntityBuildSpec(opts.DefaultPawn); err != nil {
			logger.Warn("default pawn not found, using fallback",
				zap.String("pawn", opts.DefaultPawn),
				zap.String("fallback", fallbackPawn),
				zap.Error(err))
		} else {
			gm.defaultPawn = opts.DefaultPawn
		}
	}
	return gm
}

// BeginPlay builds a fresh world: level, pawn, camera, HUD.
func (gm *GameMode) BeginPlay() error {
	lvl, err := levels.Load(gm.opts.Level)
	if err != nil {
		return fmt.Errorf("gamemode: begin play: %w", err)
	}

	w := ecs.NewWorld()
	if err := entity.SpawnLevel(w, lvl); err != nil {
		return fmt.Errorf("gamemode: begin play: %w", err)
	}

	pawn, err := character.Spawn(w, gm.defaultPawn, lvl.SpawnX, lvl.SpawnY, gm.logger)
	if err != nil && gm.defaultPawn != fallbackPawn {
		gm.logger.Warn("default pawn failed to spawn, using fallback",
			zap.String("pawn", gm.defaultPawn),
			zap.Error(err))
		pawn, err = character.Spawn(w, fallbackPawn, lvl.SpawnX, lvl.SpawnY, gm.logger)
	}
	if err != nil {
		return fmt.Errorf("gamemode: begin play: %w", err)
	}
	target := ""
	if name, ok := ecs.Get(w, pawn.Entity, component.NameComponent.Kind()); ok {
		target = name.Value
	}
	camera, err := entity.NewCameraAt(w, lvl.SpawnX, lvl.SpawnY, target)
	if err != nil {
		return fmt.Errorf("gamemode: begin play: %w", err)
	}

	sched := ecs.NewScheduler()
	sched.SetDelta(gm.opts.Delta)
	pickups := system.NewPickupSystem(nil, gm.logger)
	sched.Add(gm.input)
	sched.Add(sched.TickStage())
	sched.Add(system.NewMovementSystem(sched.Delta()))
	sched.Add(system.NewPhysicsSystem(sched.Delta(), gm.logger))
	sched.Add(system.NewCameraSystem())
	sched.Add(pickups)
	sched.Add(system.NewExitSystem(gm.escape, gm.logger))
	sched.Add(system.NewTTLSystem(gm.logger))
	sched.Add(system.NewHUDSystem())

	pawn.SetupInput(sched)
	pawn.BeginPlay(sched)

	gm.world = w
	gm.scheduler = sched
	gm.pawn = pawn
	gm.camera = camera
	gm.pickups = pickups
	gm.state = Playing

	if err := gm.createHUD(); err != nil {
		return fmt.Errorf("gamemode: begin play: %w", err)
	}

	gm.logger.Info("begin play",
		zap.String("level", gm.opts.Level),
		zap.String("pawn", gm.defaultPawn),
		zap.Int("pickups", len(w.Query(component.PickupComponent.Kind()))))
	return nil
}

// createHUD spawns the HUD view model and, when a HUD class is configured,
// the widget that shows it.
func (gm *GameMode) createHUD() error {
	if _, err := entity.BuildEntity(gm.world, "hud.yaml"); err != nil {
		return err
	}
	if gm.opts.HUDClass == "" || gm.widgets == nil {
		return nil
	}
	widget, err := gm.widgets(gm.opts.HUDClass, gm.world)
	if err != nil {
		return err
	}
	if widget == nil {
		return nil
	}
	gm.widget = widget
	if gm.viewport != nil {
		gm.viewport.AddToViewport(widget)
	}
	return nil
}

// Restart tears the current world down and begins play again.
func (gm *GameMode) Restart() error {
	if gm.widget != nil && gm.viewport != nil {
		gm.viewport.RemoveFromViewport(gm.widget)
	}
	gm.widget = nil
	gm.logger.Info("restart")
	return gm.BeginPlay()
}

// Update advances the world by one frame.
func (gm *GameMode) Update() {
	if gm.scheduler == nil || gm.world == nil {
		return
	}
	gm.scheduler.Update(gm.world)
}

// HandleFileChange applies a hot-reloaded prefab or script.
func (gm *GameMode) HandleFileChange(change prefabs.Change) {
	name := filepath.Base(change.Path)
	switch {
	case change.Kind == prefabs.ChangeScript:
		if gm.pickups != nil {
			gm.pickups.InvalidateScripts()
		}
		gm.logger.Info("pickup scripts reloaded", zap.String("file", name))
	case name == filepath.Base(gm.defaultPawn):
		if gm.pawn == nil {
			return
		}
		if err := gm.pawn.ReloadTuning(gm.defaultPawn); err != nil {
			gm.logger.Warn("reload pawn tuning failed", zap.Error(err))
		}
	}
}

func (gm *GameMode) escape() {
	gm.state = Escaped
}

func (gm *GameMode) State() State { return gm.state }

func (gm *GameMode) World() *ecs.World { return gm.world }

func (gm *GameMode) Pawn() *character.Character { return gm.pawn }

func (gm *GameMode) Camera() ecs.Entity { return gm.camera }

func (gm *GameMode) Scheduler() *ecs.Scheduler { return gm.scheduler }

func (gm *GameMode) DefaultPawn() string { return gm.defaultPawn }
