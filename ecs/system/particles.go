package system

import (
	"math/rand/v2"
	"time"

	"github.com/Mairuzu0/Boost-Game/common"
	"github.com/Mairuzu0/Boost-Game/ecs"
	"github.com/Mairuzu0/Boost-Game/ecs/component"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	maxParticles = 1500
	particleDrag = 1.5
	particleFall = 0.35
)

// ParticleSystem spawns particles from emitters and integrates live ones.
// Particles are ordinary entities that expire through their TTL.
type ParticleSystem struct {
	rng  *rand.Rand
	live int
}

func NewParticleSystem(seed uint64) *ParticleSystem {
	return &ParticleSystem{rng: rand.New(rand.NewPCG(seed, seed+1))}
}

func (ps *ParticleSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	dt := common.TickDuration.Seconds()

	ps.live = 0
	ecs.ForEach(w, component.ParticleComponent.Kind(), func(e ecs.Entity, p *component.Particle) {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}
		ps.live++
		p.Age += dt
		damp := 1 - particleDrag*dt
		if damp < 0 {
			damp = 0
		}
		p.VX *= damp
		p.VY = p.VY*damp + common.Gravity*particleFall*dt
		t.X += p.VX * dt
		t.Y += p.VY * dt
	})

	ecs.ForEach(w, component.ParticleEmittersComponent.Kind(), func(e ecs.Entity, emitters *component.ParticleEmitters) {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}
		for _, em := range emitters.Items {
			n := em.Pending + em.Due(dt)
			em.Pending = 0
			for i := 0; i < n && ps.live < maxParticles; i++ {
				ps.spawn(w, t, em)
				ps.live++
			}
		}
	})
}

// Live is the number of particles after the last update.
func (ps *ParticleSystem) Live() int {
	return ps.live
}

func (ps *ParticleSystem) spawn(w *ecs.World, t *component.Transform, em *component.ParticleEmitter) {
	rot := mgl64.Rotate2D(t.Rotation)
	origin := mgl64.Vec2{t.X, t.Y}.Add(rot.Mul2x1(mgl64.Vec2{em.OffsetX, em.OffsetY}))

	dir := mgl64.Vec2{em.DirX, em.DirY}
	if dir.Len() == 0 {
		dir = mgl64.Vec2{0, 1}
	}
	spread := common.DegToRad(em.Spread) * (ps.rng.Float64()*2 - 1)
	dir = mgl64.Rotate2D(t.Rotation + spread).Mul2x1(dir.Normalize())

	speed := em.Speed + em.SpeedJitter*(ps.rng.Float64()*2-1)
	if speed < 0 {
		speed = 0
	}
	vel := dir.Mul(speed)

	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: origin.X(), Y: origin.Y()})
	_ = ecs.Add(w, e, component.ParticleComponent.Kind(), &component.Particle{
		VX:       vel.X(),
		VY:       vel.Y(),
		Lifetime: em.Lifetime,
		Size:     em.Size,
		Color:    em.Color,
	})
	_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Remaining: time.Duration(em.Lifetime * float64(time.Second))})
	_ = ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerParticles})
}
