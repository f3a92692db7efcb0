package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/alsescape/common"
	"github.com/milk9111/alsescape/ecs"
	"github.com/milk9111/alsescape/ecs/component"
)

// ExitSystem opens exits once the player carries enough keys and reports the
// escape when the player steps into an open one.
type ExitSystem struct {
	onEscape func()
	escaped  bool
	logger   *zap.Logger
}

func NewExitSystem(onEscape func(), logger *zap.Logger) *ExitSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExitSystem{onEscape: onEscape, logger: logger}
}

func (s *ExitSystem) Update(w *ecs.World) {
	if w == nil || s.escaped {
		return
	}

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	keys := 0
	if c, ok := ecs.Get(w, player, component.CollectorComponent.Kind()); ok {
		keys = c.Keys
	}
	radius := 1.0
	if c, ok := ecs.Get(w, player, component.CapsuleComponent.Kind()); ok {
		radius = c.Radius
	}

	ecs.ForEach(w, component.ExitComponent.Kind(), func(e ecs.Entity, exit *component.Exit) {
		if s.escaped {
			return
		}
		if !exit.Open && keys >= exit.RequiredKeys {
			exit.Open = true
			s.logger.Info("exit opened", zap.Int("keys", keys))
		}
		if !exit.Open || !common.CircleIntersectsRect(t.X, t.Y, radius, exit.X, exit.Y, exit.Width, exit.Height) {
			return
		}
		s.escaped = true
		s.logger.Info("player escaped", zap.Int("keys", keys))
		w.Events().Push(ecs.Event{Type: ecs.EventEscaped})
		if s.onEscape != nil {
			s.onEscape()
		}
	})
}
