package component

import "image/color"

// ParticleEmitter spawns particles relative to its entity's transform. Burst
// emitters release Count particles on each Play; stream emitters release Rate
// particles per second while active.
type ParticleEmitter struct {
	Name        string
	Burst       bool
	Count       int
	Rate        float64
	Speed       float64
	SpeedJitter float64
	// Spread is the half-angle of the emission cone in degrees.
	Spread   float64
	Lifetime float64
	Size     float64
	Color    color.Color
	// OffsetX/Y and DirX/Y are in the entity's local space.
	OffsetX, OffsetY float64
	DirX, DirY       float64

	Active  bool
	Pending int
	carry   float64
}

// Play starts a stream or queues one burst.
func (p *ParticleEmitter) Play() {
	if p.Burst {
		p.Pending += p.Count
		return
	}
	p.Active = true
}

// Stop halts a stream immediately. Live particles fade out on their own.
func (p *ParticleEmitter) Stop() {
	p.Active = false
	p.carry = 0
}

// dueEpsilon absorbs float drift so that Rate*dt summing to a whole number
// spawns on that tick.
const dueEpsilon = 1e-6

// Due returns how many stream particles to spawn after dt seconds, carrying
// the fractional remainder to the next tick.
func (p *ParticleEmitter) Due(dt float64) int {
	if !p.Active || p.Rate <= 0 {
		return 0
	}
	p.carry += p.Rate * dt
	n := int(p.carry + dueEpsilon)
	p.carry -= float64(n)
	return n
}

type ParticleEmitters struct {
	Items []*ParticleEmitter
}

// Find returns the emitter called name, or nil.
func (e *ParticleEmitters) Find(name string) *ParticleEmitter {
	for _, item := range e.Items {
		if item.Name == name {
			return item
		}
	}
	return nil
}

var ParticleEmittersComponent = NewComponent[ParticleEmitters]()

// Particle is a short-lived point integrated by the particle system.
type Particle struct {
	VX, VY   float64
	Age      float64
	Lifetime float64
	Size     float64
	Color    color.Color
}

var ParticleComponent = NewComponent[Particle]()
