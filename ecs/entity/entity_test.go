package entity

import (
	"errors"
	"io"
	"log"
	"math"
	"testing"
	"time"

	"github.com/Mairuzu0/Boost-Game/ecs"
	"github.com/Mairuzu0/Boost-Game/ecs/component"
	"github.com/Mairuzu0/Boost-Game/ecs/system"
	"github.com/Mairuzu0/Boost-Game/levels"
	"github.com/Mairuzu0/Boost-Game/prefabs"
	"github.com/Mairuzu0/Boost-Game/rocket"
	"github.com/Mairuzu0/Boost-Game/timer"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/jakecoffman/cp"
)

type countingScenes struct{ start, next int }

func (s *countingScenes) LoadStartScene() { s.start++ }
func (s *countingScenes) LoadNextScene()  { s.next++ }

func testSpec() *prefabs.RocketSpec {
	return &prefabs.RocketSpec{
		Name:   "rocket",
		Thrust: prefabs.ThrustSpec{Rotation: 200, Main: 720, TransitionDelaySeconds: 1},
		Body:   prefabs.BodySpec{Width: 20, Height: 40, Mass: 1, Friction: 0.5},
		Audio: []prefabs.AudioClipSpec{
			{Name: "engine", Sound: "engine", Volume: 0.5},
			{Name: "death", Sound: "death", Volume: 1},
			{Name: "success", Sound: "success", Volume: 1},
		},
		Emitters: []prefabs.EmitterSpec{
			{Name: EngineEmitter, Rate: 30, LifetimeSeconds: 0.2},
			{Name: DeathEmitter, Burst: true, Count: 5, LifetimeSeconds: 0.2},
			{Name: SuccessEmitter, Burst: true, Count: 5, LifetimeSeconds: 0.2},
		},
		DeathShake: prefabs.ShakeSpec{DurationSeconds: 0.2, Intensity: 4},
	}
}

func TestLoadLevelToWorld(t *testing.T) {
	w := ecs.NewWorld()
	lvl := &levels.Level{
		Name:   "test",
		Width:  400,
		Height: 300,
		Spawn:  levels.Point{X: 50, Y: 200},
		Zones: []levels.Zone{
			{Tag: rocket.TagFriendly, X: 0, Y: 280, W: 100, H: 20},
			{Tag: rocket.TagGoal, X: 300, Y: 280, W: 100, H: 20},
		},
	}
	if err := LoadLevelToWorld(w, lvl); err != nil {
		t.Fatalf("LoadLevelToWorld: %v", err)
	}

	zones := w.Query(component.ZoneComponent.Kind(), component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind())
	if len(zones) != 2 {
		t.Fatalf("expected 2 zones, got %d", len(zones))
	}
	for _, e := range zones {
		z, _ := ecs.Get(w, e, component.ZoneComponent.Kind())
		tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		if z.Tag == rocket.TagGoal && (tr.X != 350 || tr.Y != 290) {
			t.Fatalf("goal zone should be centered at 350,290, got %v,%v", tr.X, tr.Y)
		}
	}
	if _, ok := w.First(component.LevelBoundsComponent.Kind()); !ok {
		t.Fatalf("expected level bounds")
	}
	if _, ok := w.First(component.CameraComponent.Kind()); !ok {
		t.Fatalf("expected a camera")
	}
}

func TestBindRocketNeedsSyncedBody(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewRocketAt(w, testSpec(), 100, 100, true)
	if err != nil {
		t.Fatalf("NewRocketAt: %v", err)
	}
	if _, err := BindRocket(w, e, testSpec(), timer.NewQueue(), &countingScenes{}, nil); !errors.Is(err, ErrRocketIncomplete) {
		t.Fatalf("expected ErrRocketIncomplete, got %v", err)
	}
}

func TestBindRocketRequiresEffects(t *testing.T) {
	spec := testSpec()
	spec.Emitters = spec.Emitters[:1]

	w := ecs.NewWorld()
	e, err := NewRocketAt(w, spec, 100, 100, true)
	if err != nil {
		t.Fatalf("NewRocketAt: %v", err)
	}
	system.NewPhysicsSystem().Sync(w)
	if _, err := BindRocket(w, e, spec, timer.NewQueue(), &countingScenes{}, nil); !errors.Is(err, ErrRocketIncomplete) {
		t.Fatalf("expected ErrRocketIncomplete, got %v", err)
	}
}

func bindTestRocket(t *testing.T) (*ecs.World, ecs.Entity, *rocket.Controller, *timer.Queue, *countingScenes) {
	t.Helper()
	w := ecs.NewWorld()
	e, err := NewRocketAt(w, testSpec(), 100, 100, true)
	if err != nil {
		t.Fatalf("NewRocketAt: %v", err)
	}
	system.NewPhysicsSystem().Sync(w)

	timers := timer.NewQueue()
	scenes := &countingScenes{}
	ctrl, err := BindRocket(w, e, testSpec(), timers, scenes, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("BindRocket: %v", err)
	}
	return w, e, ctrl, timers, scenes
}

func TestBoundRocketDiesAndRestarts(t *testing.T) {
	w, e, ctrl, timers, scenes := bindTestRocket(t)

	rc, ok := ecs.Get(w, e, component.RocketControlComponent.Kind())
	if !ok || rc.Controller != ctrl {
		t.Fatalf("expected RocketControl to hold the controller")
	}

	ctrl.HandleCollision(rocket.TagOther)
	if ctrl.State() != rocket.Dying {
		t.Fatalf("expected dying, got %s", ctrl.State())
	}

	emitters, _ := ecs.Get(w, e, component.ParticleEmittersComponent.Kind())
	if death := emitters.Find(DeathEmitter); death.Pending != 5 {
		t.Fatalf("expected a queued death burst, got %d", death.Pending)
	}
	if !ecs.Has(w, e, component.CameraShakeRequestComponent.Kind()) {
		t.Fatalf("expected a camera shake request")
	}
	a, _ := ecs.Get(w, e, component.AudioComponent.Kind())
	if !a.Play[a.Index("death")] {
		t.Fatalf("expected the death clip to be requested")
	}

	timers.Advance(time.Second)
	if scenes.start != 1 || scenes.next != 0 {
		t.Fatalf("expected a start scene load, got start=%d next=%d", scenes.start, scenes.next)
	}
}

func TestAudioSourceRequests(t *testing.T) {
	a := &component.Audio{
		Names:   []string{"engine", "death", "success"},
		Players: make([]*audio.Player, 3),
		Volume:  []float64{1, 1, 1},
		Play:    make([]bool, 3),
		Stop:    make([]bool, 3),
	}
	src := &audioSource{audio: a}

	if src.IsPlaying() {
		t.Fatalf("nothing requested yet")
	}
	src.PlayOneShot(rocket.SoundEngine)
	if !a.Play[0] || !src.IsPlaying() {
		t.Fatalf("engine request should count as playing")
	}
	src.Stop()
	if a.Play[0] || !a.Stop[0] || !a.Stop[1] || src.IsPlaying() {
		t.Fatalf("stop should cancel plays and stop every clip")
	}
}

func TestChipmunkBodyAdapter(t *testing.T) {
	body := cp.NewBody(1, cp.MomentForBox(1, 20, 40))
	b := &chipmunkBody{body: body}

	b.ApplyLocalImpulse(0, -10)
	if v := body.Velocity(); math.Abs(v.Y+10) > 1e-9 || math.Abs(v.X) > 1e-9 {
		t.Fatalf("expected upward velocity, got %v", v)
	}

	moment := body.Moment()
	b.SetRotationFrozen(true)
	if !math.IsInf(body.Moment(), 1) {
		t.Fatalf("frozen body should have infinite moment")
	}
	b.Rotate(math.Pi / 2)
	if math.Abs(body.Angle()+math.Pi/2) > 1e-9 {
		t.Fatalf("positive rotation is counter-clockwise on screen, angle=%v", body.Angle())
	}
	b.SetRotationFrozen(false)
	if body.Moment() != moment {
		t.Fatalf("expected moment %v restored, got %v", moment, body.Moment())
	}

	// Thrust follows the nose once rotated.
	body.SetVelocity(0, 0)
	b.ApplyLocalImpulse(0, -10)
	if v := body.Velocity(); math.Abs(v.X+10) > 1e-9 || math.Abs(v.Y) > 1e-9 {
		t.Fatalf("expected leftward velocity after turning left, got %v", v)
	}
}

func TestNewRocketAtMuted(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewRocketAt(w, testSpec(), 10, 20, true)
	if err != nil {
		t.Fatalf("NewRocketAt: %v", err)
	}
	a, ok := ecs.Get(w, e, component.AudioComponent.Kind())
	if !ok || len(a.Names) != 3 {
		t.Fatalf("expected three clips")
	}
	for i, p := range a.Players {
		if p != nil {
			t.Fatalf("muted clip %s should have no player", a.Names[i])
		}
	}
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if tr.X != 10 || tr.Y != 20 || tr.Rotation != 0 {
		t.Fatalf("unexpected spawn transform %+v", *tr)
	}
	if !ecs.Has(w, e, component.RocketTagComponent.Kind()) || !ecs.Has(w, e, component.HullComponent.Kind()) {
		t.Fatalf("missing rocket components")
	}
}
