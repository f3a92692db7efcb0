package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventPickupCollected = "pickup_collected"
	EventEscaped         = "escaped"
	EventSprintChanged   = "sprint_changed"
)

// EventQueue is a simple FIFO queue, cleared at the end of every frame.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Peek returns the queued events without consuming them.
func (q *EventQueue) Peek() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}

// InputPhase distinguishes press and release of a bound action.
type InputPhase int

const (
	Pressed InputPhase = iota
	Released
)

func (p InputPhase) String() string {
	if p == Released {
		return "released"
	}
	return "pressed"
}

// InputEvent is a raw action transition produced by the input layer.
type InputEvent struct {
	Action string
	Phase  InputPhase
}

// Action names shared by the input layer and the bindings.
const (
	ActionJump    = "Jump"
	ActionSprint  = "Sprint"
	ActionCollect = "Collect"
	ActionTouch   = "Touch"
)
