package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/milk9111/alsescape/ecs"
	"github.com/milk9111/alsescape/ecs/component"
)

const (
	collisionTypePawn cp.CollisionType = iota + 1
	collisionTypeSolid
)

// PhysicsSystem resolves pawn capsules (as circles) against static walls in
// a gravity-free Chipmunk space. Height (Z) is handled by MovementSystem.
type PhysicsSystem struct {
	space  *cp.Space
	dt     float64
	bodies map[ecs.Entity]*bodyInfo
	logger *zap.Logger
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
}

func NewPhysicsSystem(dt float64, logger *zap.Logger) *PhysicsSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})
	return &PhysicsSystem{
		space:  space,
		dt:     dt,
		bodies: make(map[ecs.Entity]*bodyInfo),
		logger: logger,
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.removeDead(w)
	ps.syncEntities(w)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.MovementComponent.Kind(),
		func(e ecs.Entity, pb *component.PhysicsBody, m *component.Movement) {
			if pb.Body == nil || pb.Static {
				return
			}
			pb.Body.SetVelocityVector(cp.Vector{X: m.VelX, Y: m.VelY})
		})

	ps.space.Step(ps.dt)

	ps.syncTransforms(w)
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
			if pb.Body != nil {
				return
			}
			info := ps.createBody(pb, t)
			if info == nil {
				ps.logger.Warn("physics: skipped body with empty collider", zap.Stringer("entity", e))
				return
			}
			pb.Body = info.body
			pb.Shape = info.shape
			ps.bodies[e] = info
		})
}

func (ps *PhysicsSystem) createBody(pb *component.PhysicsBody, t *component.Transform) *bodyInfo {
	if pb.Static {
		if pb.Width <= 0 || pb.Height <= 0 {
			return nil
		}
		body := ps.space.StaticBody
		shape := cp.NewBox2(body, cp.BB{L: t.X, B: t.Y, R: t.X + pb.Width, T: t.Y + pb.Height}, 0)
		shape.SetFriction(pb.Friction)
		shape.SetElasticity(pb.Elasticity)
		shape.SetCollisionType(collisionTypeSolid)
		ps.space.AddShape(shape)
		return &bodyInfo{body: body, shape: shape, static: true}
	}

	if pb.Radius <= 0 {
		return nil
	}
	body := cp.NewBody(pb.Mass, math.Inf(1))
	body.SetPosition(cp.Vector{X: t.X, Y: t.Y})
	shape := cp.NewCircle(body, pb.Radius, cp.Vector{})
	shape.SetFriction(pb.Friction)
	shape.SetElasticity(pb.Elasticity)
	shape.SetCollisionType(collisionTypePawn)
	ps.space.AddBody(body)
	ps.space.AddShape(shape)
	return &bodyInfo{body: body, shape: shape}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.bodies {
		if info.static {
			continue
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		pos := info.body.Position()
		t.X, t.Y = pos.X, pos.Y
		if m, ok := ecs.Get(w, e, component.MovementComponent.Kind()); ok {
			vel := info.body.Velocity()
			m.VelX, m.VelY = vel.X, vel.Y
		}
	}
}

func (ps *PhysicsSystem) removeDead(w *ecs.World) {
	for e, info := range ps.bodies {
		if ecs.IsAlive(w, e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		ps.space.RemoveShape(info.shape)
		if !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.bodies, e)
	}
}
