package component

// Pickup is a collectible with a type and a power value. The effect of a
// type is defined by its script.
type Pickup struct {
	PickupType  string
	PickupPower float64
	Radius      float64
	Script      string
	BobPhase    float64
}

var PickupComponent = NewComponent[Pickup]()

func (p *Pickup) Power() float64 { return p.PickupPower }

func (p *Pickup) Type() string { return p.PickupType }
