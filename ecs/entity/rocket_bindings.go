package entity

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/Mairuzu0/Boost-Game/ecs"
	"github.com/Mairuzu0/Boost-Game/ecs/component"
	"github.com/Mairuzu0/Boost-Game/prefabs"
	"github.com/Mairuzu0/Boost-Game/rocket"
	"github.com/jakecoffman/cp"
)

var ErrRocketIncomplete = errors.New("rocket: entity incomplete")

// BindRocket builds the controller for a rocket entity created by NewRocketAt
// and attaches it as a RocketControl component. The physics system must have
// synced the entity first.
func BindRocket(w *ecs.World, e ecs.Entity, spec *prefabs.RocketSpec, timers rocket.Scheduler, scenes rocket.SceneLoader, logger *log.Logger) (*rocket.Controller, error) {
	if spec == nil {
		return nil, fmt.Errorf("%w: nil spec", ErrRocketIncomplete)
	}
	body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok || body.Body == nil {
		return nil, fmt.Errorf("%w: physics body not synced", ErrRocketIncomplete)
	}
	input, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok {
		return nil, fmt.Errorf("%w: no input", ErrRocketIncomplete)
	}
	audioComp, ok := ecs.Get(w, e, component.AudioComponent.Kind())
	if !ok {
		return nil, fmt.Errorf("%w: no audio", ErrRocketIncomplete)
	}
	for _, s := range []rocket.Sound{rocket.SoundEngine, rocket.SoundDeath, rocket.SoundSuccess} {
		if audioComp.Index(s.String()) < 0 {
			return nil, fmt.Errorf("%w: no %q audio clip", ErrRocketIncomplete, s)
		}
	}
	emitters, ok := ecs.Get(w, e, component.ParticleEmittersComponent.Kind())
	if !ok {
		return nil, fmt.Errorf("%w: no emitters", ErrRocketIncomplete)
	}
	find := func(name string) (*component.ParticleEmitter, error) {
		em := emitters.Find(name)
		if em == nil {
			return nil, fmt.Errorf("%w: no %q emitter", ErrRocketIncomplete, name)
		}
		return em, nil
	}
	engine, err := find(EngineEmitter)
	if err != nil {
		return nil, err
	}
	death, err := find(DeathEmitter)
	if err != nil {
		return nil, err
	}
	success, err := find(SuccessEmitter)
	if err != nil {
		return nil, err
	}

	var deathFX rocket.Effect = death
	if d := spec.DeathShake.Duration(); d > 0 {
		deathFX = effectGroup{death, &shakeEffect{
			w:   w,
			e:   e,
			req: component.CameraShakeRequest{Duration: d, Intensity: spec.DeathShake.Intensity},
		}}
	}

	ctrl, err := rocket.New(spec.Params(), rocket.Deps{
		Body:      &chipmunkBody{body: body.Body},
		Input:     input,
		Audio:     &audioSource{audio: audioComp},
		EngineFX:  engine,
		DeathFX:   deathFX,
		SuccessFX: success,
		Scenes:    scenes,
		Timers:    timers,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}

	if err := ecs.Add(w, e, component.RocketControlComponent.Kind(), &component.RocketControl{Controller: ctrl}); err != nil {
		return nil, fmt.Errorf("rocket: add control: %w", err)
	}
	return ctrl, nil
}

// chipmunkBody steers a cp body. Chipmunk angles grow clockwise on screen
// because +Y points down.
type chipmunkBody struct {
	body        *cp.Body
	frozen      bool
	savedMoment float64
}

func (b *chipmunkBody) ApplyLocalImpulse(x, y float64) {
	b.body.ApplyImpulseAtLocalPoint(cp.Vector{X: x, Y: y}, cp.Vector{})
}

func (b *chipmunkBody) Rotate(radians float64) {
	b.body.SetAngle(b.body.Angle() - radians)
}

// SetRotationFrozen gives the body infinite moment while frozen, so contacts
// cannot spin it.
func (b *chipmunkBody) SetRotationFrozen(frozen bool) {
	if frozen == b.frozen {
		return
	}
	b.frozen = frozen
	if frozen {
		b.savedMoment = b.body.Moment()
		b.body.SetMoment(math.Inf(1))
		return
	}
	b.body.SetMoment(b.savedMoment)
}

// audioSource turns controller sound calls into per-clip requests on an Audio
// component. A clip counts as playing from the request until it ends or is
// stopped.
type audioSource struct {
	audio *component.Audio
}

func (a *audioSource) PlayOneShot(s rocket.Sound) {
	if i := a.audio.Index(s.String()); i >= 0 {
		a.audio.Play[i] = true
	}
}

func (a *audioSource) Stop() {
	for i := range a.audio.Names {
		a.audio.Play[i] = false
		a.audio.Stop[i] = true
	}
}

func (a *audioSource) IsPlaying() bool {
	for i := range a.audio.Names {
		if a.audio.Play[i] {
			return true
		}
		if a.audio.Stop[i] {
			continue
		}
		if p := a.audio.Players[i]; p != nil && p.IsPlaying() {
			return true
		}
	}
	return false
}

// shakeEffect requests a camera shake when played.
type shakeEffect struct {
	w   *ecs.World
	e   ecs.Entity
	req component.CameraShakeRequest
}

func (s *shakeEffect) Play() {
	req := s.req
	_ = ecs.Add(s.w, s.e, component.CameraShakeRequestComponent.Kind(), &req)
}

func (s *shakeEffect) Stop() {
	ecs.Remove(s.w, s.e, component.CameraShakeRequestComponent.Kind())
}

type effectGroup []rocket.Effect

func (g effectGroup) Play() {
	for _, fx := range g {
		fx.Play()
	}
}

func (g effectGroup) Stop() {
	for _, fx := range g {
		fx.Stop()
	}
}
