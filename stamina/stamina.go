package stamina

// ReferenceTPS is the tick rate the per-tick drain and regen amounts were
// tuned for.
const ReferenceTPS = 60.0

// Pacing selects how Tick turns the configured rates into a stamina delta.
type Pacing int

const (
	// PacingPerTick applies the drain/regen amount once per Tick call,
	// ignoring dt. Stamina pacing therefore follows the frame rate.
	PacingPerTick Pacing = iota
	// PacingScaled scales the amounts by dt*ReferenceTPS.
	PacingScaled
)

func (p Pacing) String() string {
	switch p {
	case PacingScaled:
		return "scaled"
	default:
		return "per_tick"
	}
}

// ParsePacing maps a config value to a Pacing. Unknown values fall back to
// PacingPerTick.
func ParsePacing(s string) Pacing {
	if s == "scaled" {
		return PacingScaled
	}
	return PacingPerTick
}

// SpeedSetter is the movement speed property the controller is allowed to
// overwrite.
type SpeedSetter interface {
	WalkSpeed() float64
	SetWalkSpeed(speed float64)
}

type Config struct {
	Max              float64
	DrainRate        float64
	RegenRate        float64
	SprintMultiplier float64
	Pacing           Pacing
}

func DefaultConfig() Config {
	return Config{
		Max:              100,
		DrainRate:        0.5,
		RegenRate:        0.25,
		SprintMultiplier: 2,
		Pacing:           PacingPerTick,
	}
}

// Controller tracks a bounded stamina pool that gates a sprint speed
// multiplier. It is owned by a single agent and driven from one tick callback.
type Controller struct {
	current   float64
	max       float64
	sprinting bool

	baseSpeed  float64
	multiplier float64
	drain      float64
	regen      float64
	pacing     Pacing

	speed SpeedSetter
}

// NewController starts with a full pool. The base speed is read from speed
// once, at construction.
func NewController(cfg Config, speed SpeedSetter) *Controller {
	if cfg.Max < 0 {
		cfg.Max = 0
	}
	if speed == nil {
		speed = &fixedSpeed{}
	}
	return &Controller{
		current:    cfg.Max,
		max:        cfg.Max,
		baseSpeed:  speed.WalkSpeed(),
		multiplier: cfg.SprintMultiplier,
		drain:      cfg.DrainRate,
		regen:      cfg.RegenRate,
		pacing:     cfg.Pacing,
		speed:      speed,
	}
}

func (c *Controller) Current() float64 { return c.current }

func (c *Controller) Max() float64 { return c.max }

func (c *Controller) Sprinting() bool { return c.sprinting }

func (c *Controller) BaseSpeed() float64 { return c.baseSpeed }

func (c *Controller) Pacing() Pacing { return c.pacing }

// StartSprint multiplies the movement speed once. Calling it while already
// sprinting does nothing.
func (c *Controller) StartSprint() {
	if c.sprinting {
		return
	}
	c.sprinting = true
	c.speed.SetWalkSpeed(c.speed.WalkSpeed() * c.multiplier)
}

// StopSprint restores the base movement speed.
func (c *Controller) StopSprint() {
	if !c.sprinting {
		return
	}
	c.sprinting = false
	c.speed.SetWalkSpeed(c.baseSpeed)
}

// Tick advances the pool by one simulation step. A sprint that empties the
// pool is stopped on the same tick.
func (c *Controller) Tick(dt float64) {
	if c.sprinting {
		if c.current <= 0 {
			c.StopSprint()
			return
		}
		c.Adjust(-c.amount(c.drain, dt))
		if c.current <= 0 {
			c.StopSprint()
		}
		return
	}

	if c.current < c.max {
		c.Adjust(c.amount(c.regen, dt))
	}
}

// Adjust adds a signed amount to the pool and clamps the result.
func (c *Controller) Adjust(delta float64) {
	c.current = clamp(c.current+delta, 0, c.max)
}

// SetTuning swaps the rates and multiplier in place. The pool and the sprint
// flag are kept; the movement speed is rewritten from the new base speed.
func (c *Controller) SetTuning(cfg Config, baseSpeed float64) {
	c.drain = cfg.DrainRate
	c.regen = cfg.RegenRate
	c.multiplier = cfg.SprintMultiplier
	c.pacing = cfg.Pacing
	c.baseSpeed = baseSpeed
	if c.sprinting {
		c.speed.SetWalkSpeed(baseSpeed * c.multiplier)
	} else {
		c.speed.SetWalkSpeed(baseSpeed)
	}
}

func (c *Controller) amount(rate, dt float64) float64 {
	if c.pacing == PacingScaled {
		return rate * dt * ReferenceTPS
	}
	return rate
}

// clamp caps high before low.
func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

type fixedSpeed struct {
	v float64
}

func (s *fixedSpeed) WalkSpeed() float64 { return s.v }

func (s *fixedSpeed) SetWalkSpeed(v float64) { s.v = v }
