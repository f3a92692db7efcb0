package entity

import (
	"fmt"

	"github.com/milk9111/alsescape/ecs"
)

// NewPawnAt builds the pawn prefab and places it at x, y.
func NewPawnAt(w *ecs.World, prefab string, x, y float64) (ecs.Entity, error) {
	if prefab == "" {
		prefab = "player.yaml"
	}
	pawn, err := BuildEntity(w, prefab)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, pawn, x, y, 0); err != nil {
		return 0, fmt.Errorf("pawn: override transform: %w", err)
	}
	return pawn, nil
}
