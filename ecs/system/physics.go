package system

import (
	"github.com/Mairuzu0/Boost-Game/common"
	"github.com/Mairuzu0/Boost-Game/ecs"
	"github.com/Mairuzu0/Boost-Game/ecs/component"
	"github.com/Mairuzu0/Boost-Game/rocket"
	"github.com/jakecoffman/cp"
)

const (
	collisionTypeRocket cp.CollisionType = iota + 1
	collisionTypeSolid
)

const boundsThickness = 1.0

type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool

	entities     map[ecs.Entity]*bodyInfo
	rocketShapes map[*cp.Shape]ecs.Entity
	contacts     map[ecs.Entity][]rocket.Tag
}

type bodyInfo struct {
	body   *cp.Body
	shapes []*cp.Shape
	static bool
}

func NewPhysicsSystem() *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: common.Gravity})
	return &PhysicsSystem{
		space:        space,
		entities:     make(map[ecs.Entity]*bodyInfo),
		rocketShapes: make(map[*cp.Shape]ecs.Entity),
		contacts:     make(map[ecs.Entity][]rocket.Tag),
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

	ps.ensureHandlers()
	ps.syncEntities(w)
	ps.syncWorldBounds(w)

	ps.space.Step(common.TickDuration.Seconds())

	ps.syncTransforms(w)
	ps.flushContacts(w)
}

// Sync creates bodies for new entities without stepping, so that bodies
// exist before the first tick.
func (ps *PhysicsSystem) Sync(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	ps.ensureHandlers()
	ps.syncEntities(w)
	ps.syncWorldBounds(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady {
		return
	}

	handler := ps.space.NewCollisionHandler(collisionTypeRocket, collisionTypeSolid)
	handler.UserData = ps
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		rocketEntity, rocketIsA := sys.rocketShapes[shapeA]
		other := shapeB
		if !rocketIsA {
			var okB bool
			rocketEntity, okB = sys.rocketShapes[shapeB]
			if !okB {
				return true
			}
			other = shapeA
		}

		sys.contacts[rocketEntity] = append(sys.contacts[rocketEntity], shapeTag(other))
		return true
	}

	ps.handlersReady = true
}

// shapeTag reads the tag a zone or bound stored on its shape. Anything
// unmarked is an obstacle.
func shapeTag(shape *cp.Shape) rocket.Tag {
	if shape == nil {
		return rocket.TagOther
	}
	if tag, ok := shape.UserData.(rocket.Tag); ok {
		return tag
	}
	return rocket.TagOther
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	entities := w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind())
	for _, e := range entities {
		if _, exists := ps.entities[e]; exists {
			continue
		}
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}

		tag := rocket.TagOther
		if zone, ok := ecs.Get(w, e, component.ZoneComponent.Kind()); ok {
			tag = zone.Tag
		}
		isRocket := ecs.Has(w, e, component.RocketTagComponent.Kind())

		info := ps.createBodyInfo(transform, bodyComp, tag, isRocket)
		ps.entities[e] = info
		if isRocket {
			for _, shape := range info.shapes {
				ps.rocketShapes[shape] = e
			}
		}

		bodyComp.Body = info.body
		bodyComp.Shape = info.shapes[0]
	}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) {
			continue
		}
		for _, shape := range info.shapes {
			ps.space.RemoveShape(shape)
			delete(ps.rocketShapes, shape)
		}
		if !info.static && info.body != nil {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
		delete(ps.contacts, e)
	}
}

func (ps *PhysicsSystem) createBodyInfo(transform *component.Transform, bodyComp *component.PhysicsBody, tag rocket.Tag, isRocket bool) *bodyInfo {
	width := bodyComp.Width
	height := bodyComp.Height
	if width <= 0 || height <= 0 {
		width = 32
		height = 32
	}

	if bodyComp.Static {
		left := transform.X - width/2
		top := transform.Y - height/2
		bb := cp.BB{L: left, B: top, R: left + width, T: top + height}
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFriction(bodyComp.Friction)
		shape.SetElasticity(bodyComp.Elasticity)
		shape.SetCollisionType(collisionTypeSolid)
		shape.UserData = tag
		ps.space.AddShape(shape)

		return &bodyInfo{body: ps.space.StaticBody, shapes: []*cp.Shape{shape}, static: true}
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}

	body := cp.NewBody(mass, cp.MomentForBox(mass, width, height))
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
	body.SetAngle(transform.Rotation)
	body.SetAngularVelocity(0)

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetCollisionType(collisionTypeSolid)
	shape.UserData = tag
	if isRocket {
		shape.SetCollisionType(collisionTypeRocket)
	}

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	return &bodyInfo{body: body, shapes: []*cp.Shape{shape}}
}

// syncWorldBounds walls the level in with untagged segments.
func (ps *PhysicsSystem) syncWorldBounds(w *ecs.World) {
	boundsEntity, ok := w.First(component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}
	if _, exists := ps.entities[boundsEntity]; exists {
		return
	}
	bounds, ok := ecs.Get(w, boundsEntity, component.LevelBoundsComponent.Kind())
	if !ok || bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}

	worldW := bounds.Width
	worldH := bounds.Height
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: worldW, Y: 0}},           // top
		{a: cp.Vector{X: 0, Y: worldH}, b: cp.Vector{X: worldW, Y: worldH}}, // bottom
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: worldH}},           // left
		{a: cp.Vector{X: worldW, Y: 0}, b: cp.Vector{X: worldW, Y: worldH}}, // right
	}

	info := &bodyInfo{static: true, body: ps.space.StaticBody}
	for _, seg := range segments {
		shape := cp.NewSegment(ps.space.StaticBody, seg.a, seg.b, boundsThickness)
		shape.SetFriction(0.8)
		shape.SetCollisionType(collisionTypeSolid)
		shape.UserData = rocket.TagOther
		ps.space.AddShape(shape)
		info.shapes = append(info.shapes, shape)
	}

	ps.entities[boundsEntity] = info
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.entities {
		if info.static || info.body == nil {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		pos := info.body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
		transform.Rotation = info.body.Angle()
	}
}

// flushContacts appends the tags touched this step to each rocket's Contacts.
func (ps *PhysicsSystem) flushContacts(w *ecs.World) {
	for e, tags := range ps.contacts {
		if len(tags) == 0 {
			continue
		}
		contacts, ok := ecs.Get(w, e, component.ContactsComponent.Kind())
		if !ok {
			contacts = &component.Contacts{}
			if err := ecs.Add(w, e, component.ContactsComponent.Kind(), contacts); err != nil {
				delete(ps.contacts, e)
				continue
			}
		}
		contacts.Tags = append(contacts.Tags, tags...)
		ps.contacts[e] = tags[:0]
	}
}
