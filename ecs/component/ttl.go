package component

// TTL retires its entity after Frames more updates. A zero TTL is retired on
// the next update.
type TTL struct {
	Frames int
}

var TTLComponent = NewComponent[TTL]()
