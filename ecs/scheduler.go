package ecs

// TickFunc is called once per simulation step with the step length in
// seconds.
type TickFunc func(dt float64)

// Host is the lifecycle surface gameplay code registers against. The game
// loop owns it; agents only see these two hooks.
type Host interface {
	OnTick(fn TickFunc)
	OnInputEvent(action string, phase InputPhase, fn func())
}

type binding struct {
	action string
	phase  InputPhase
}

// Scheduler runs systems in order and implements Host. Input events queued
// by a system are dispatched to their bindings right after that system, and
// tick callbacks run where TickStage sits in the order.
type Scheduler struct {
	systems  []System
	ticks    []TickFunc
	bindings map[binding][]func()
	delta    float64
}

const defaultDelta = 1.0 / 60

var _ Host = (*Scheduler)(nil)

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{
		bindings: make(map[binding][]func()),
		delta:    defaultDelta,
	}
	for _, sys := range systems {
		s.Add(sys)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// SetDelta sets the fixed step passed to tick callbacks. Non-positive values
// are ignored.
func (s *Scheduler) SetDelta(dt float64) {
	if dt > 0 {
		s.delta = dt
	}
}

func (s *Scheduler) Delta() float64 {
	return s.delta
}

func (s *Scheduler) OnTick(fn TickFunc) {
	if fn == nil {
		return
	}
	s.ticks = append(s.ticks, fn)
}

func (s *Scheduler) OnInputEvent(action string, phase InputPhase, fn func()) {
	if fn == nil || action == "" {
		return
	}
	key := binding{action: action, phase: phase}
	s.bindings[key] = append(s.bindings[key], fn)
}

// TickStage returns a system that invokes the registered tick callbacks.
func (s *Scheduler) TickStage() System {
	return tickStage{s: s}
}

func (s *Scheduler) Update(w *World) {
	s.dispatch(w)
	for _, system := range s.systems {
		system.Update(w)
		s.dispatch(w)
	}
	w.events.flush()
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}

func (s *Scheduler) dispatch(w *World) {
	for _, evt := range w.DrainInput() {
		for _, fn := range s.bindings[binding{action: evt.Action, phase: evt.Phase}] {
			fn()
		}
	}
}

type tickStage struct {
	s *Scheduler
}

func (t tickStage) Update(*World) {
	for _, fn := range t.s.ticks {
		fn(t.s.delta)
	}
}
