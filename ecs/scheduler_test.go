package ecs

import (
	"reflect"
	"testing"
)

type systemFunc func(w *World)

func (f systemFunc) Update(w *World) { f(w) }

func TestSchedulerOrder(t *testing.T) {
	var calls []string
	record := func(name string) System {
		return systemFunc(func(*World) { calls = append(calls, name) })
	}

	s := NewScheduler(record("input"))
	s.Add(s.TickStage())
	s.Add(record("movement"))
	s.Add(nil)
	s.OnTick(func(float64) { calls = append(calls, "tick-a") })
	s.OnTick(func(float64) { calls = append(calls, "tick-b") })
	s.OnTick(nil)

	s.Update(NewWorld())

	want := []string{"input", "tick-a", "tick-b", "movement"}
	if !reflect.DeepEqual(calls, want) {
		t.Fatalf("expected %v, got %v", want, calls)
	}
	if got := len(s.Systems()); got != 3 {
		t.Fatalf("expected 3 systems, got %d", got)
	}
}

func TestSchedulerDelta(t *testing.T) {
	cases := []struct {
		name string
		set  float64
		want float64
	}{
		{"default", 0, 1.0 / 60},
		{"explicit", 1.0 / 30, 1.0 / 30},
		{"negative_ignored", -1, 1.0 / 60},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewScheduler()
			s.SetDelta(c.set)
			var got float64
			s.OnTick(func(dt float64) { got = dt })
			s.Add(s.TickStage())
			s.Update(NewWorld())
			if got != c.want {
				t.Fatalf("expected dt %v, got %v", c.want, got)
			}
		})
	}
}

func TestSchedulerInputDispatch(t *testing.T) {
	t.Run("after_producing_system", func(t *testing.T) {
		var calls []string
		s := NewScheduler()
		s.Add(systemFunc(func(w *World) {
			calls = append(calls, "input")
			w.PushInput(InputEvent{Action: ActionSprint, Phase: Pressed})
		}))
		s.Add(systemFunc(func(*World) { calls = append(calls, "movement") }))
		s.OnInputEvent(ActionSprint, Pressed, func() { calls = append(calls, "sprint") })

		s.Update(NewWorld())

		want := []string{"input", "sprint", "movement"}
		if !reflect.DeepEqual(calls, want) {
			t.Fatalf("expected %v, got %v", want, calls)
		}
	})

	t.Run("phase_and_action_match", func(t *testing.T) {
		w := NewWorld()
		s := NewScheduler()
		pressed, released, jumped := 0, 0, 0
		s.OnInputEvent(ActionSprint, Pressed, func() { pressed++ })
		s.OnInputEvent(ActionSprint, Released, func() { released++ })
		s.OnInputEvent(ActionJump, Pressed, func() { jumped++ })
		s.OnInputEvent("", Pressed, func() { t.Fatalf("empty action should not bind") })

		w.PushInput(InputEvent{Action: ActionSprint, Phase: Released})
		w.PushInput(InputEvent{Action: ActionSprint, Phase: Released})
		w.PushInput(InputEvent{Action: ActionCollect, Phase: Pressed})
		s.Update(w)

		if pressed != 0 || released != 2 || jumped != 0 {
			t.Fatalf("unexpected dispatch pressed=%d released=%d jumped=%d", pressed, released, jumped)
		}
		if w.DrainInput() != nil {
			t.Fatalf("input queue should be drained")
		}
	})

	t.Run("events_flushed_after_frame", func(t *testing.T) {
		w := NewWorld()
		s := NewScheduler(systemFunc(func(w *World) {
			w.Events().Push(Event{Type: EventEscaped})
		}))
		var seen int
		s.Add(systemFunc(func(w *World) { seen = len(w.Events().Peek()) }))
		s.Update(w)
		if seen != 1 {
			t.Fatalf("later system should see 1 event, saw %d", seen)
		}
		if len(w.Events().Peek()) != 0 {
			t.Fatalf("events should be flushed at frame end")
		}
	})
}
