package component

// Movement is the character movement state the controller writes into and the
// movement system integrates.
type Movement struct {
	MaxWalkSpeed     float64
	JumpZVelocity    float64
	AirControl       float64
	RotationRate     float64
	OrientToMovement bool
	Gravity          float64

	VelX float64
	VelY float64
	VelZ float64

	Grounded      bool
	JumpRequested bool
	JumpHeld      bool
}

var MovementComponent = NewComponent[Movement]()

// WalkSpeed and SetWalkSpeed expose MaxWalkSpeed to the stamina controller.
func (m *Movement) WalkSpeed() float64 { return m.MaxWalkSpeed }

func (m *Movement) SetWalkSpeed(speed float64) { m.MaxWalkSpeed = speed }

// Jump queues a jump for the next movement step.
func (m *Movement) Jump() {
	m.JumpRequested = true
	m.JumpHeld = true
}

func (m *Movement) StopJumping() {
	m.JumpHeld = false
}
