package component

// Transform is a top-down position. Z is height above the floor, Rotation is
// the facing yaw in degrees.
type Transform struct {
	X        float64
	Y        float64
	Z        float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
