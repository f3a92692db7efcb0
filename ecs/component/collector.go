package component

// Collector is the collection sphere around a character and what it has
// gathered so far.
type Collector struct {
	Radius           float64
	CollectRequested bool
	Keys             int
	Collected        int
}

var CollectorComponent = NewComponent[Collector]()
