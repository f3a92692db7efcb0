package component

import "github.com/milk9111/alsescape/stamina"

// Stamina exposes the owning character's controller to read-only systems
// such as the HUD.
type Stamina struct {
	Controller *stamina.Controller
}

var StaminaComponent = NewComponent[Stamina]()
