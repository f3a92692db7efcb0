package component

// Camera is a spring-arm follow camera. The arm length maps to zoom relative
// to ReferenceArm; Lag in (0, 1] is the fraction of the remaining distance
// covered per frame.
type Camera struct {
	TargetName      string
	TargetArmLength float64
	ReferenceArm    float64
	Lag             float64
	UsePawnYaw      bool

	Zoom float64
	Yaw  float64
}

var CameraComponent = NewComponent[Camera]()
