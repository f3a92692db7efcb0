package gamemode

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/milk9111/alsescape/ecs"
	"github.com/milk9111/alsescape/ecs/component"
	"github.com/milk9111/alsescape/prefabs"
)

type scriptedInput struct {
	frames [][]ecs.InputEvent
	frame  int
}

func (s *scriptedInput) Update(w *ecs.World) {
	if s.frame < len(s.frames) {
		for _, evt := range s.frames[s.frame] {
			w.PushInput(evt)
		}
	}
	s.frame++
}

type fakeWidget struct{ updates int }

func (f *fakeWidget) Update() { f.updates++ }

type fakeViewport struct {
	added   []Widget
	removed []Widget
}

func (v *fakeViewport) AddToViewport(w Widget)      { v.added = append(v.added, w) }
func (v *fakeViewport) RemoveFromViewport(w Widget) { v.removed = append(v.removed, w) }

func newTestMode(t *testing.T, opts Options, input ecs.System) (*GameMode, *fakeViewport) {
	t.Helper()
	vp := &fakeViewport{}
	factory := func(class string, w *ecs.World) (Widget, error) {
		if class != "stamina_hud" {
			return nil, errors.New("unknown class")
		}
		return &fakeWidget{}, nil
	}
	if opts.Level == "" {
		opts.Level = "escape.json"
	}
	gm := New(opts, input, factory, vp, zap.NewNop())
	if err := gm.BeginPlay(); err != nil {
		t.Fatalf("begin play: %v", err)
	}
	return gm, vp
}

func TestDefaultPawnFallback(t *testing.T) {
	cases := []struct {
		name string
		pawn string
		want string
	}{
		{"empty", "", "player.yaml"},
		{"configured", "player.yaml", "player.yaml"},
		{"missing", "ghost.yaml", "player.yaml"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			gm := New(Options{DefaultPawn: c.pawn}, nil, nil, nil, nil)
			if got := gm.DefaultPawn(); got != c.want {
				t.Fatalf("expected %q, got %q", c.want, got)
			}
		})
	}
}

func TestBeginPlay(t *testing.T) {
	gm, vp := newTestMode(t, Options{HUDClass: "stamina_hud"}, nil)

	if gm.State() != Playing {
		t.Fatalf("expected playing, got %s", gm.State())
	}
	pawn := gm.Pawn()
	if pawn == nil {
		t.Fatalf("expected a pawn")
	}
	if pawn.Stamina.Current() != 100 || pawn.MaxWalkSpeed() != 600 {
		t.Fatalf("unexpected pawn tuning: stamina=%v speed=%v", pawn.Stamina.Current(), pawn.MaxWalkSpeed())
	}

	w := gm.World()
	tr, ok := ecs.Get(w, pawn.Entity, component.TransformComponent.Kind())
	if !ok || tr.X != 240 || tr.Y != 912 {
		t.Fatalf("pawn should spawn at the level spawn, got %+v", tr)
	}
	if got := len(w.Query(component.PickupComponent.Kind())); got != 5 {
		t.Fatalf("expected 5 pickups, got %d", got)
	}
	if _, ok := ecs.First(w, component.ExitComponent.Kind()); !ok {
		t.Fatalf("expected an exit")
	}
	if _, ok := ecs.First(w, component.HUDComponent.Kind()); !ok {
		t.Fatalf("expected a HUD view model")
	}
	if !ecs.IsAlive(w, gm.Camera()) {
		t.Fatalf("expected a camera")
	}
	if len(vp.added) != 1 {
		t.Fatalf("expected the HUD widget in the viewport, got %d widgets", len(vp.added))
	}
}

func TestBeginPlayWithoutHUDClass(t *testing.T) {
	_, vp := newTestMode(t, Options{}, nil)
	if len(vp.added) != 0 {
		t.Fatalf("no widget expected without a HUD class")
	}
}

func TestBeginPlayUnknownHUDClass(t *testing.T) {
	gm := New(Options{Level: "escape.json", HUDClass: "missing"}, nil,
		func(string, *ecs.World) (Widget, error) { return nil, errors.New("unknown class") },
		&fakeViewport{}, zap.NewNop())
	if err := gm.BeginPlay(); err == nil {
		t.Fatalf("expected an error for an unknown HUD class")
	}
}

func TestBeginPlayMissingLevel(t *testing.T) {
	gm := New(Options{Level: "nowhere.json"}, nil, nil, nil, nil)
	if err := gm.BeginPlay(); err == nil {
		t.Fatalf("expected an error for a missing level")
	}
}

func TestSprintThroughInput(t *testing.T) {
	input := &scriptedInput{frames: [][]ecs.InputEvent{
		{{Action: ecs.ActionSprint, Phase: ecs.Pressed}},
		nil,
		{{Action: ecs.ActionSprint, Phase: ecs.Released}},
	}}
	gm, _ := newTestMode(t, Options{}, input)
	pawn := gm.Pawn()

	gm.Update()
	if !pawn.Stamina.Sprinting() || pawn.MaxWalkSpeed() != 1200 {
		t.Fatalf("expected sprint at 1200, got sprinting=%v speed=%v", pawn.Stamina.Sprinting(), pawn.MaxWalkSpeed())
	}
	// The binding fires before the tick stage, so the first frame drains.
	if got := pawn.Stamina.Current(); got != 99.5 {
		t.Fatalf("expected 99.5 after one sprint frame, got %v", got)
	}

	gm.Update()
	gm.Update()
	if pawn.Stamina.Sprinting() || pawn.MaxWalkSpeed() != 600 {
		t.Fatalf("expected walk speed after release, got sprinting=%v speed=%v", pawn.Stamina.Sprinting(), pawn.MaxWalkSpeed())
	}
	if got := pawn.Stamina.Current(); got != 99.25 {
		t.Fatalf("expected 99.25 after release frame regen, got %v", got)
	}
}

func TestEscape(t *testing.T) {
	gm, _ := newTestMode(t, Options{}, nil)
	w := gm.World()
	pawn := gm.Pawn()

	tr, _ := ecs.Get(w, pawn.Entity, component.TransformComponent.Kind())
	tr.X, tr.Y = 1392, 864

	gm.Update()
	if gm.State() != Playing {
		t.Fatalf("exit should stay closed without keys")
	}

	collector, ok := ecs.Get(w, pawn.Entity, component.CollectorComponent.Kind())
	if !ok {
		t.Fatalf("pawn has no collector")
	}
	collector.Keys = 2
	gm.Update()
	if gm.State() != Escaped {
		t.Fatalf("expected escaped, got %s", gm.State())
	}

	hudEntity, _ := ecs.First(w, component.HUDComponent.Kind())
	hud, _ := ecs.Get(w, hudEntity, component.HUDComponent.Kind())
	if !hud.Escaped || hud.Keys != 2 || hud.RequiredKeys != 2 {
		t.Fatalf("unexpected HUD %+v", hud)
	}
}

func TestRestart(t *testing.T) {
	gm, vp := newTestMode(t, Options{HUDClass: "stamina_hud"}, nil)
	oldWorld := gm.World()
	gm.escape()

	if err := gm.Restart(); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if gm.World() == oldWorld {
		t.Fatalf("restart should build a fresh world")
	}
	if gm.State() != Playing {
		t.Fatalf("restart should reset the state, got %s", gm.State())
	}
	if len(vp.removed) != 1 || len(vp.added) != 2 {
		t.Fatalf("expected the old widget swapped out, added=%d removed=%d", len(vp.added), len(vp.removed))
	}
}

func TestHandleFileChangeReloadsPawnTuning(t *testing.T) {
	gm, _ := newTestMode(t, Options{}, nil)
	pawn := gm.Pawn()
	pawn.StartSprint()
	pawn.Movement().JumpZVelocity = 1

	gm.HandleFileChange(prefabs.Change{Path: "prefabs/player.yaml", Kind: prefabs.ChangeSpec})

	if pawn.Movement().JumpZVelocity != 600 {
		t.Fatalf("expected jump velocity restored to 600, got %v", pawn.Movement().JumpZVelocity)
	}
	if !pawn.Stamina.Sprinting() || pawn.MaxWalkSpeed() != 1200 {
		t.Fatalf("reload should keep the sprint, got sprinting=%v speed=%v", pawn.Stamina.Sprinting(), pawn.MaxWalkSpeed())
	}

	gm.HandleFileChange(prefabs.Change{Path: "prefabs/scripts/key.tengo", Kind: prefabs.ChangeScript})
	gm.HandleFileChange(prefabs.Change{Path: "prefabs/camera.yaml", Kind: prefabs.ChangeSpec})
}
