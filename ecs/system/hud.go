package system

import (
	"github.com/milk9111/alsescape/ecs"
	"github.com/milk9111/alsescape/ecs/component"
)

// hudMessageTicks is how long a pickup message stays on screen.
const hudMessageTicks = 120

// HUDSystem fills the HUD view model from the player and this frame's events.
type HUDSystem struct{}

func NewHUDSystem() *HUDSystem { return &HUDSystem{} }

func (s *HUDSystem) Update(w *ecs.World) {
	hudEntity, ok := ecs.First(w, component.HUDComponent.Kind())
	if !ok {
		return
	}
	hud, _ := ecs.Get(w, hudEntity, component.HUDComponent.Kind())

	if player, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		if st, ok := ecs.Get(w, player, component.StaminaComponent.Kind()); ok && st.Controller != nil {
			hud.Stamina = st.Controller.Current()
			hud.StaminaMax = st.Controller.Max()
			hud.Sprinting = st.Controller.Sprinting()
		}
		if c, ok := ecs.Get(w, player, component.CollectorComponent.Kind()); ok {
			hud.Keys = c.Keys
		}
	}

	hud.RequiredKeys = 0
	ecs.ForEach(w, component.ExitComponent.Kind(), func(_ ecs.Entity, exit *component.Exit) {
		if exit.RequiredKeys > hud.RequiredKeys {
			hud.RequiredKeys = exit.RequiredKeys
		}
	})

	if hud.MessageTicks > 0 {
		hud.MessageTicks--
		if hud.MessageTicks == 0 {
			hud.Message = ""
		}
	}

	for _, evt := range w.Events().Peek() {
		switch evt.Type {
		case ecs.EventPickupCollected:
			if res, ok := evt.Data.(PickupResult); ok && res.Message != "" {
				hud.Message = res.Message
				hud.MessageTicks = hudMessageTicks
			}
		case ecs.EventEscaped:
			hud.Escaped = true
			hud.Message = ""
			hud.MessageTicks = 0
		}
	}
}
