package component

// Controller is the control rotation driven by look input. Movement input is
// interpreted relative to Yaw.
type Controller struct {
	Yaw          float64
	BaseTurnRate float64
}

var ControllerComponent = NewComponent[Controller]()
