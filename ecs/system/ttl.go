package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/alsescape/ecs"
	"github.com/milk9111/alsescape/ecs/component"
)

// TTLSystem counts TTL components down and destroys their entities when they
// expire. Collected pickups leave the world this way.
type TTLSystem struct {
	logger  *zap.Logger
	expired []ecs.Entity
}

func NewTTLSystem(logger *zap.Logger) *TTLSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TTLSystem{logger: logger}
}

func (s *TTLSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	s.expired = s.expired[:0]
	ecs.ForEach(w, component.TTLComponent.Kind(), func(e ecs.Entity, ttl *component.TTL) {
		if ttl.Frames--; ttl.Frames <= 0 {
			s.expired = append(s.expired, e)
		}
	})
	for _, e := range s.expired {
		ecs.DestroyEntity(w, e)
	}
	if len(s.expired) > 0 {
		s.logger.Debug("entities expired", zap.Int("count", len(s.expired)))
	}
}
