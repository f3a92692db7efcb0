package component

// HUD is the view model the HUD widget reads each frame.
type HUD struct {
	Stamina      float64
	StaminaMax   float64
	Sprinting    bool
	Keys         int
	RequiredKeys int
	Escaped      bool
	Message      string
	MessageTicks int
}

var HUDComponent = NewComponent[HUD]()
