package component

// Wall is a static box in world space.
type Wall struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

var WallComponent = NewComponent[Wall]()

// Exit is the escape zone. It opens once the player holds RequiredKeys.
type Exit struct {
	X            float64
	Y            float64
	Width        float64
	Height       float64
	RequiredKeys int
	Open         bool
}

var ExitComponent = NewComponent[Exit]()

// LevelBounds is the playable area in world units.
type LevelBounds struct {
	Width  float64
	Height float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
