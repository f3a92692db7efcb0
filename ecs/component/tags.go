package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// Name is an optional lookup name used by camera targets.
type Name struct {
	Value string
}

var NameComponent = NewComponent[Name]()
