package character

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/milk9111/alsescape/ecs/entity"
	"github.com/milk9111/alsescape/prefabs"
)

// ReloadTuning re-reads movement and stamina tuning from the pawn prefab and
// applies it in place. Current stamina and the sprint state are kept.
func (c *Character) ReloadTuning(prefab string) error {
	spec, err := prefabs.LoadEntityBuildSpec(prefab)
	if err != nil {
		return fmt.Errorf("character: reload tuning: %w", err)
	}
	mv, err := prefabs.DecodeComponentSpec[prefabs.MovementComponentSpec](spec.Components["movement"])
	if err != nil {
		return fmt.Errorf("character: reload tuning: decode movement: %w", err)
	}
	st, err := prefabs.DecodeComponentSpec[prefabs.StaminaComponentSpec](spec.Components["stamina"])
	if err != nil {
		return fmt.Errorf("character: reload tuning: decode stamina: %w", err)
	}

	base := c.Stamina.BaseSpeed()
	if mv.MaxWalkSpeed > 0 {
		base = mv.MaxWalkSpeed
	}
	if mv.JumpZVelocity > 0 {
		c.movement.JumpZVelocity = mv.JumpZVelocity
	}
	if mv.AirControl > 0 {
		c.movement.AirControl = mv.AirControl
	}
	if mv.RotationRate > 0 {
		c.movement.RotationRate = mv.RotationRate
	}
	c.Stamina.SetTuning(entity.StaminaConfig(st), base)

	c.logger.Info("tuning reloaded",
		zap.String("prefab", prefab),
		zap.Float64("base_speed", base),
		zap.Stringer("pacing", c.Stamina.Pacing()))
	return nil
}
