package system

import (
	"math"

	"github.com/milk9111/alsescape/common"
	"github.com/milk9111/alsescape/ecs"
	"github.com/milk9111/alsescape/ecs/component"
)

// jumpCutFactor scales upward velocity when the jump button is released
// early.
const jumpCutFactor = 0.5

// MovementSystem turns input axes into velocity relative to the controller
// yaw, orients the pawn toward its movement and integrates jump height.
// Entities without a physics body also get their X/Y integrated here.
type MovementSystem struct {
	dt float64
}

func NewMovementSystem(dt float64) *MovementSystem {
	return &MovementSystem{dt: dt}
}

func (s *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.MovementComponent.Kind(), component.InputComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, m *component.Movement, in *component.Input, t *component.Transform) {
			yaw := 0.0
			if c, ok := ecs.Get(w, e, component.ControllerComponent.Kind()); ok {
				yaw = c.Yaw
			}

			dx, dy := MoveDirection(yaw, in.MoveForward, in.MoveRight)
			targetX := dx * m.MaxWalkSpeed
			targetY := dy * m.MaxWalkSpeed

			if m.Grounded {
				m.VelX, m.VelY = targetX, targetY
			} else {
				m.VelX = common.Lerp(m.VelX, targetX, m.AirControl)
				m.VelY = common.Lerp(m.VelY, targetY, m.AirControl)
			}

			if m.OrientToMovement && (dx != 0 || dy != 0) {
				desired := math.Atan2(dx, -dy) * 180 / math.Pi
				t.Rotation = common.ApproachAngle(t.Rotation, desired, m.RotationRate*s.dt)
			}

			s.updateJump(m, t)

			if !ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
				t.X += m.VelX * s.dt
				t.Y += m.VelY * s.dt
			}
		})
}

func (s *MovementSystem) updateJump(m *component.Movement, t *component.Transform) {
	if m.JumpRequested && m.Grounded {
		m.VelZ = m.JumpZVelocity
		m.Grounded = false
	}
	m.JumpRequested = false

	if m.Grounded {
		return
	}

	if !m.JumpHeld && m.VelZ > 0 {
		m.VelZ *= jumpCutFactor
	}
	m.VelZ -= m.Gravity * s.dt
	t.Z += m.VelZ * s.dt
	if t.Z <= 0 {
		t.Z = 0
		m.VelZ = 0
		m.Grounded = true
	}
}

// MoveDirection rotates forward/right axes by yaw degrees into a world
// direction (+Y down) no longer than 1. Yaw 0 faces -Y.
func MoveDirection(yaw, forward, right float64) (float64, float64) {
	rad := yaw * math.Pi / 180
	sin, cos := math.Sincos(rad)
	dx := sin*forward + cos*right
	dy := -cos*forward + sin*right
	if l := math.Hypot(dx, dy); l > 1 {
		dx /= l
		dy /= l
	}
	return dx, dy
}
