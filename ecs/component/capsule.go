package component

type Capsule struct {
	Radius     float64
	HalfHeight float64
}

var CapsuleComponent = NewComponent[Capsule]()
