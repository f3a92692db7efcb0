package component

// Input stores per-frame axis values for an entity. Button transitions travel
// as ecs.InputEvent instead.
type Input struct {
	MoveForward float64
	MoveRight   float64
	// Turn is an absolute yaw delta in degrees (mouse).
	Turn float64
	// TurnRate is a normalised rate in [-1, 1] (keys, stick).
	TurnRate float64
}

var InputComponent = NewComponent[Input]()
