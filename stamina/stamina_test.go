package stamina

import (
	"math"
	"testing"
)

type speedProp struct {
	v      float64
	writes int
}

func (s *speedProp) WalkSpeed() float64 { return s.v }

func (s *speedProp) SetWalkSpeed(v float64) {
	s.v = v
	s.writes++
}

func newTestController(t *testing.T) (*Controller, *speedProp) {
	t.Helper()
	speed := &speedProp{v: 600}
	return NewController(DefaultConfig(), speed), speed
}

func assertInRange(t *testing.T, c *Controller) {
	t.Helper()
	if c.Current() < 0 || c.Current() > c.Max() {
		t.Fatalf("stamina %v out of [0, %v]", c.Current(), c.Max())
	}
}

func TestNewControllerStartsFull(t *testing.T) {
	c, _ := newTestController(t)
	if c.Current() != 100 || c.Max() != 100 {
		t.Fatalf("expected 100/100, got %v/%v", c.Current(), c.Max())
	}
	if c.Sprinting() {
		t.Fatalf("new controller should not be sprinting")
	}
	if c.BaseSpeed() != 600 {
		t.Fatalf("expected base speed 600, got %v", c.BaseSpeed())
	}
}

func TestSprintSpeed(t *testing.T) {
	tests := []struct {
		name      string
		run       func(c *Controller)
		wantSpeed float64
		wantFlag  bool
		wantSets  int
	}{
		{
			name:      "start_once",
			run:       func(c *Controller) { c.StartSprint() },
			wantSpeed: 1200,
			wantFlag:  true,
			wantSets:  1,
		},
		{
			name:      "start_twice_multiplies_once",
			run:       func(c *Controller) { c.StartSprint(); c.StartSprint() },
			wantSpeed: 1200,
			wantFlag:  true,
			wantSets:  1,
		},
		{
			name:      "start_then_stop",
			run:       func(c *Controller) { c.StartSprint(); c.StopSprint() },
			wantSpeed: 600,
			wantFlag:  false,
			wantSets:  2,
		},
		{
			name:      "stop_while_stopped",
			run:       func(c *Controller) { c.StopSprint() },
			wantSpeed: 600,
			wantFlag:  false,
			wantSets:  0,
		},
		{
			name:      "stop_twice",
			run:       func(c *Controller) { c.StartSprint(); c.StopSprint(); c.StopSprint() },
			wantSpeed: 600,
			wantFlag:  false,
			wantSets:  2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, speed := newTestController(t)
			tc.run(c)
			if speed.v != tc.wantSpeed {
				t.Fatalf("expected speed %v, got %v", tc.wantSpeed, speed.v)
			}
			if c.Sprinting() != tc.wantFlag {
				t.Fatalf("expected sprinting=%v, got %v", tc.wantFlag, c.Sprinting())
			}
			if speed.writes != tc.wantSets {
				t.Fatalf("expected %d speed writes, got %d", tc.wantSets, speed.writes)
			}
		})
	}
}

func TestSprintDrainsUntilAutoStop(t *testing.T) {
	c, speed := newTestController(t)
	c.StartSprint()

	prev := c.Current()
	for i := 1; i <= 199; i++ {
		c.Tick(1.0 / 60)
		if c.Current() > prev {
			t.Fatalf("tick %d: stamina increased while sprinting (%v -> %v)", i, prev, c.Current())
		}
		assertInRange(t, c)
		prev = c.Current()
	}
	if !c.Sprinting() {
		t.Fatalf("should still be sprinting after 199 ticks, stamina=%v", c.Current())
	}
	if c.Current() != 0.5 {
		t.Fatalf("expected 0.5 after 199 ticks, got %v", c.Current())
	}

	c.Tick(1.0 / 60)
	if c.Current() != 0 {
		t.Fatalf("expected 0 after 200 ticks, got %v", c.Current())
	}
	if c.Sprinting() {
		t.Fatalf("sprint should stop on the tick stamina reaches zero")
	}
	if speed.v != 600 {
		t.Fatalf("expected speed reset to 600, got %v", speed.v)
	}
}

func TestSprintWithEmptyPoolStopsImmediately(t *testing.T) {
	c, speed := newTestController(t)
	c.Adjust(-1000)
	c.StartSprint()
	c.Tick(1.0 / 60)
	if c.Sprinting() {
		t.Fatalf("expected sprint to stop on first tick with empty pool")
	}
	if c.Current() != 0 {
		t.Fatalf("stop tick should not regenerate, got %v", c.Current())
	}
	if speed.v != 600 {
		t.Fatalf("expected speed 600, got %v", speed.v)
	}
}

func TestRegenerationStopsAtMax(t *testing.T) {
	t.Run("full_pool_stays_full", func(t *testing.T) {
		c, _ := newTestController(t)
		c.Tick(1.0 / 60)
		if c.Current() != 100 {
			t.Fatalf("expected 100, got %v", c.Current())
		}
	})

	t.Run("non_decreasing_and_capped", func(t *testing.T) {
		c, _ := newTestController(t)
		c.Adjust(-10.1)
		prev := c.Current()
		for i := 0; i < 100; i++ {
			c.Tick(1.0 / 60)
			if c.Current() < prev {
				t.Fatalf("tick %d: stamina decreased while resting (%v -> %v)", i, prev, c.Current())
			}
			assertInRange(t, c)
			prev = c.Current()
		}
		if c.Current() != 100 {
			t.Fatalf("expected pool to refill to exactly 100, got %v", c.Current())
		}
	})

	t.Run("regen_rate", func(t *testing.T) {
		c, _ := newTestController(t)
		c.Adjust(-50)
		for i := 0; i < 4; i++ {
			c.Tick(1.0 / 60)
		}
		if c.Current() != 51 {
			t.Fatalf("expected 51 after four regen ticks, got %v", c.Current())
		}
	})
}

func TestAdjustClamps(t *testing.T) {
	tests := []struct {
		name  string
		delta float64
		want  float64
	}{
		{"overshoot_high", 500, 100},
		{"overshoot_low", -500, 0},
		{"within", -25, 75},
		{"zero_delta", 0, 100},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestController(t)
			c.Adjust(tc.delta)
			if c.Current() != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, c.Current())
			}
		})
	}
}

func TestInvariantAcrossMixedSequence(t *testing.T) {
	c, _ := newTestController(t)
	ops := []func(){
		c.StartSprint,
		func() { c.Tick(1.0 / 60) },
		func() { c.Adjust(-30) },
		c.StopSprint,
		func() { c.Tick(1.0 / 60) },
		func() { c.Adjust(80) },
		c.StartSprint,
		c.StartSprint,
		func() { c.Tick(0) },
		func() { c.Adjust(-200) },
		func() { c.Tick(1.0 / 60) },
		func() { c.Tick(1.0 / 60) },
	}
	for i := 0; i < 50; i++ {
		for _, op := range ops {
			op()
			assertInRange(t, c)
		}
	}
}

// Per-tick pacing ignores dt; scaled pacing is the corrected, frame-rate
// independent mode and deliberately differs at non-reference frame rates.
func TestPacing(t *testing.T) {
	tests := []struct {
		name   string
		pacing Pacing
		dt     float64
		want   float64
	}{
		{"per_tick_60", PacingPerTick, 1.0 / 60, 99.5},
		{"per_tick_30_ignores_dt", PacingPerTick, 1.0 / 30, 99.5},
		{"scaled_60_matches_per_tick", PacingScaled, 1.0 / 60, 99.5},
		{"scaled_30_drains_double", PacingScaled, 1.0 / 30, 99},
		{"scaled_zero_dt", PacingScaled, 0, 100},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Pacing = tc.pacing
			c := NewController(cfg, &speedProp{v: 600})
			c.StartSprint()
			c.Tick(tc.dt)
			if math.Abs(c.Current()-tc.want) > 1e-9 {
				t.Fatalf("expected %v, got %v", tc.want, c.Current())
			}
		})
	}
}

func TestSetTuning(t *testing.T) {
	c, speed := newTestController(t)
	c.StartSprint()
	cfg := DefaultConfig()
	cfg.SprintMultiplier = 3
	c.SetTuning(cfg, 400)
	if speed.v != 1200 {
		t.Fatalf("expected sprinting speed 1200, got %v", speed.v)
	}
	c.StopSprint()
	if speed.v != 400 {
		t.Fatalf("expected base speed 400 after stop, got %v", speed.v)
	}
}

func TestParsePacing(t *testing.T) {
	if ParsePacing("scaled") != PacingScaled {
		t.Fatalf("expected scaled")
	}
	if ParsePacing("bogus") != PacingPerTick {
		t.Fatalf("expected per_tick fallback")
	}
	if PacingScaled.String() != "scaled" || PacingPerTick.String() != "per_tick" {
		t.Fatalf("unexpected pacing names")
	}
}

func TestNilSpeedSetter(t *testing.T) {
	c := NewController(DefaultConfig(), nil)
	c.StartSprint()
	c.Tick(1.0 / 60)
	c.StopSprint()
	if c.Current() != 99.5 {
		t.Fatalf("expected 99.5, got %v", c.Current())
	}
}
