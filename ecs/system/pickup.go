package system

import (
	"fmt"
	"math"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"go.uber.org/zap"

	"github.com/milk9111/alsescape/ecs"
	"github.com/milk9111/alsescape/ecs/component"
	"github.com/milk9111/alsescape/prefabs"
)

// PickupResult is the payload of ecs.EventPickupCollected.
type PickupResult struct {
	Type         string
	Power        float64
	StaminaDelta float64
	KeysDelta    int
	Message      string
}

// ScriptLoader returns tengo source for a script name.
type ScriptLoader func(name string) ([]byte, error)

// PickupSystem collects pickups inside the player's collection sphere when a
// collect was requested. What a pickup does is decided by its tengo script.
type PickupSystem struct {
	load    ScriptLoader
	scripts map[string]*tengo.Compiled
	logger  *zap.Logger
}

func NewPickupSystem(load ScriptLoader, logger *zap.Logger) *PickupSystem {
	if load == nil {
		load = prefabs.LoadScript
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PickupSystem{
		load:    load,
		scripts: make(map[string]*tengo.Compiled),
		logger:  logger,
	}
}

// InvalidateScripts drops compiled scripts so edits are picked up.
func (s *PickupSystem) InvalidateScripts() {
	s.scripts = make(map[string]*tengo.Compiled)
}

func (s *PickupSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	collector, ok := ecs.Get(w, player, component.CollectorComponent.Kind())
	if !ok || !collector.CollectRequested {
		return
	}
	collector.CollectRequested = false

	pt, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	st, _ := ecs.Get(w, player, component.StaminaComponent.Kind())

	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Pickup, t *component.Transform) {
		if math.Hypot(t.X-pt.X, t.Y-pt.Y) > collector.Radius+p.Radius {
			return
		}

		level, limit := 0.0, 0.0
		if st != nil && st.Controller != nil {
			level, limit = st.Controller.Current(), st.Controller.Max()
		}
		res, err := s.Run(p, level, limit, collector.Keys)
		if err != nil {
			s.logger.Warn("pickup script failed",
				zap.Stringer("pickup", e),
				zap.String("type", p.Type()),
				zap.Error(err))
			return
		}

		if st != nil && st.Controller != nil && res.StaminaDelta != 0 {
			st.Controller.Adjust(res.StaminaDelta)
		}
		collector.Keys += res.KeysDelta
		collector.Collected++

		s.logger.Info("pickup collected",
			zap.String("type", res.Type),
			zap.Float64("power", res.Power),
			zap.Float64("stamina_delta", res.StaminaDelta),
			zap.Int("keys", collector.Keys))
		w.Events().Push(ecs.Event{Type: ecs.EventPickupCollected, Data: res})

		_ = ecs.Remove(w, e, component.PickupComponent.Kind())
		_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: 1})
	})
}

// Run evaluates the pickup's script against the collector's state without
// applying anything.
func (s *PickupSystem) Run(p *component.Pickup, stamina, staminaMax float64, keys int) (PickupResult, error) {
	name := p.Script
	if name == "" {
		name = p.Type()
	}
	res := PickupResult{Type: p.Type(), Power: p.Power()}

	compiled, err := s.compiled(name)
	if err != nil {
		return res, err
	}

	inputs := map[string]any{
		"power":         p.Power(),
		"stamina":       stamina,
		"stamina_max":   staminaMax,
		"keys":          keys,
		"stamina_delta": 0.0,
		"keys_delta":    0,
		"message":       "",
	}
	for k, v := range inputs {
		if err := compiled.Set(k, v); err != nil {
			return res, fmt.Errorf("pickup script %q: set %s: %w", name, k, err)
		}
	}
	if err := compiled.Run(); err != nil {
		return res, fmt.Errorf("pickup script %q: run: %w", name, err)
	}

	res.StaminaDelta = compiled.Get("stamina_delta").Float()
	res.KeysDelta = compiled.Get("keys_delta").Int()
	res.Message = strings.TrimSpace(compiled.Get("message").String())
	return res, nil
}

func (s *PickupSystem) compiled(name string) (*tengo.Compiled, error) {
	if c, ok := s.scripts[name]; ok {
		return c, nil
	}
	src, err := s.load(name)
	if err != nil {
		return nil, fmt.Errorf("pickup script %q: load: %w", name, err)
	}

	script := tengo.NewScript(src)
	_ = script.Add("power", 0.0)
	_ = script.Add("stamina", 0.0)
	_ = script.Add("stamina_max", 0.0)
	_ = script.Add("keys", 0)
	_ = script.Add("stamina_delta", 0.0)
	_ = script.Add("keys_delta", 0)
	_ = script.Add("message", "")
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("pickup script %q: compile: %w", name, err)
	}
	s.scripts[name] = compiled
	return compiled, nil
}
