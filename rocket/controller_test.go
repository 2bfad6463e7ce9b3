package rocket

import (
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/Mairuzu0/Boost-Game/timer"
)

type fakeBody struct {
	impulses [][2]float64
	rotation float64
	calls    []string
}

func (b *fakeBody) ApplyLocalImpulse(x, y float64) {
	b.impulses = append(b.impulses, [2]float64{x, y})
	b.calls = append(b.calls, "impulse")
}

func (b *fakeBody) Rotate(radians float64) {
	b.rotation += radians
	b.calls = append(b.calls, "rotate")
}

func (b *fakeBody) SetRotationFrozen(frozen bool) {
	if frozen {
		b.calls = append(b.calls, "freeze")
	} else {
		b.calls = append(b.calls, "unfreeze")
	}
}

type fakeInput struct {
	held    map[Action]bool
	pressed map[Action]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{held: map[Action]bool{}, pressed: map[Action]bool{}}
}

func (in *fakeInput) Held(a Action) bool    { return in.held[a] }
func (in *fakeInput) Pressed(a Action) bool { return in.pressed[a] }

type fakeAudio struct {
	playing bool
	played  []Sound
	stops   int
}

func (a *fakeAudio) PlayOneShot(s Sound) {
	a.played = append(a.played, s)
	a.playing = true
}

func (a *fakeAudio) Stop() {
	a.stops++
	a.playing = false
}

func (a *fakeAudio) IsPlaying() bool { return a.playing }

type fakeEffect struct {
	playing bool
	plays   int
	stops   int
}

func (e *fakeEffect) Play() {
	e.playing = true
	e.plays++
}

func (e *fakeEffect) Stop() {
	e.playing = false
	e.stops++
}

type fakeScenes struct {
	start int
	next  int
}

func (s *fakeScenes) LoadStartScene() { s.start++ }
func (s *fakeScenes) LoadNextScene()  { s.next++ }

type rig struct {
	ctrl    *Controller
	body    *fakeBody
	input   *fakeInput
	audio   *fakeAudio
	engine  *fakeEffect
	death   *fakeEffect
	success *fakeEffect
	scenes  *fakeScenes
	timers  *timer.Queue
}

func newRig(t *testing.T) *rig {
	t.Helper()
	r := &rig{
		body:    &fakeBody{},
		input:   newFakeInput(),
		audio:   &fakeAudio{},
		engine:  &fakeEffect{},
		death:   &fakeEffect{},
		success: &fakeEffect{},
		scenes:  &fakeScenes{},
		timers:  timer.NewQueue(),
	}
	ctrl, err := New(DefaultParams(), r.deps())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r.ctrl = ctrl
	return r
}

func (r *rig) deps() Deps {
	return Deps{
		Body:      r.body,
		Input:     r.input,
		Audio:     r.audio,
		EngineFX:  r.engine,
		DeathFX:   r.death,
		SuccessFX: r.success,
		Scenes:    r.scenes,
		Timers:    r.timers,
		Logger:    log.New(io.Discard, "", 0),
	}
}

func TestCollisionTransitions(t *testing.T) {
	cases := []struct {
		name  string
		tag   Tag
		state State
	}{
		{"friendly_is_safe", TagFriendly, Alive},
		{"refuel_is_safe", TagRefuel, Alive},
		{"goal_succeeds", TagGoal, Succeeding},
		{"other_dies", TagOther, Dying},
		{"out_of_range_tag_dies", Tag(42), Dying},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := newRig(t)
			r.ctrl.HandleCollision(c.tag)
			if got := r.ctrl.State(); got != c.state {
				t.Fatalf("expected state %s, got %s", c.state, got)
			}
			wantTimers := 0
			if c.state.Terminal() {
				wantTimers = 1
			}
			if r.timers.Len() != wantTimers {
				t.Fatalf("expected %d armed timers, got %d", wantTimers, r.timers.Len())
			}
		})
	}
}

func TestCollisionIgnoredOnceTerminal(t *testing.T) {
	for _, first := range []Tag{TagGoal, TagOther} {
		t.Run(first.String(), func(t *testing.T) {
			r := newRig(t)
			r.ctrl.HandleCollision(first)
			state := r.ctrl.State()
			played := len(r.audio.played)
			stops := r.audio.stops
			deathPlays, successPlays := r.death.plays, r.success.plays

			for _, tag := range []Tag{TagGoal, TagOther, TagFriendly, TagRefuel} {
				r.ctrl.HandleCollision(tag)
			}

			if r.ctrl.State() != state {
				t.Fatalf("state changed from %s to %s", state, r.ctrl.State())
			}
			if r.timers.Len() != 1 {
				t.Fatalf("expected exactly one armed timer, got %d", r.timers.Len())
			}
			if len(r.audio.played) != played || r.audio.stops != stops {
				t.Fatalf("audio touched after terminal state")
			}
			if r.death.plays != deathPlays || r.success.plays != successPlays {
				t.Fatalf("effects touched after terminal state")
			}
		})
	}
}

func TestSceneRequestAfterDelay(t *testing.T) {
	cases := []struct {
		name      string
		tag       Tag
		wantStart int
		wantNext  int
	}{
		{"success_loads_next", TagGoal, 0, 1},
		{"failure_loads_start", TagOther, 1, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := newRig(t)
			delay := r.ctrl.Params().TransitionDelay
			r.ctrl.HandleCollision(c.tag)

			tick := time.Second / 60
			for elapsed := time.Duration(0); elapsed+tick < delay; elapsed += tick {
				r.timers.Advance(tick)
				if r.scenes.start+r.scenes.next != 0 {
					t.Fatalf("scene requested early at %v", r.timers.Now())
				}
			}

			for i := 0; i < 120; i++ {
				r.timers.Advance(tick)
			}
			if r.scenes.start != c.wantStart || r.scenes.next != c.wantNext {
				t.Fatalf("expected start=%d next=%d, got start=%d next=%d",
					c.wantStart, c.wantNext, r.scenes.start, r.scenes.next)
			}
		})
	}
}

func TestFailureReplacesAudio(t *testing.T) {
	r := newRig(t)
	r.input.held[ActionThrust] = true
	r.ctrl.Update(time.Second / 60)
	if !r.audio.playing || r.audio.played[0] != SoundEngine {
		t.Fatalf("expected engine sound while thrusting")
	}

	r.ctrl.HandleCollision(TagOther)
	if r.audio.stops != 1 {
		t.Fatalf("expected audio to be stopped once, got %d", r.audio.stops)
	}
	if last := r.audio.played[len(r.audio.played)-1]; last != SoundDeath {
		t.Fatalf("expected death sound last, got %s", last)
	}
	if !r.death.playing || r.engine.playing {
		t.Fatalf("expected death effect on and engine effect off")
	}
}

func TestSuccessLayersAudio(t *testing.T) {
	r := newRig(t)
	r.input.held[ActionThrust] = true
	r.ctrl.Update(time.Second / 60)

	r.ctrl.HandleCollision(TagGoal)
	if r.audio.stops != 0 {
		t.Fatalf("success must not stop other sounds")
	}
	if last := r.audio.played[len(r.audio.played)-1]; last != SoundSuccess {
		t.Fatalf("expected success sound last, got %s", last)
	}
	if !r.success.playing {
		t.Fatalf("expected success effect")
	}
}

func TestThrust(t *testing.T) {
	r := newRig(t)
	dt := 100 * time.Millisecond
	r.input.held[ActionThrust] = true
	r.ctrl.Update(dt)

	if len(r.body.impulses) != 1 {
		t.Fatalf("expected one impulse, got %d", len(r.body.impulses))
	}
	want := -r.ctrl.Params().MainThrust * dt.Seconds()
	if got := r.body.impulses[0]; got[0] != 0 || got[1] != want {
		t.Fatalf("expected impulse (0, %v), got %v", want, got)
	}

	r.ctrl.Update(dt)
	if n := len(r.audio.played); n != 1 {
		t.Fatalf("engine sound should not restart while playing, played %d", n)
	}

	r.input.held[ActionThrust] = false
	r.ctrl.Update(dt)
	if r.engine.playing || r.audio.playing {
		t.Fatalf("releasing thrust must stop effect and audio in the same tick")
	}
	if len(r.body.impulses) != 2 {
		t.Fatalf("no impulse expected after release")
	}
}

func TestRotation(t *testing.T) {
	dt := time.Second
	step := DefaultParams().RotationThrust * 3.141592653589793 / 180

	cases := []struct {
		name  string
		left  bool
		right bool
		want  float64
	}{
		{"none", false, false, 0},
		{"left", true, false, step},
		{"right", false, true, -step},
		{"both_resolves_left", true, true, step},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := newRig(t)
			r.input.held[ActionRotateLeft] = c.left
			r.input.held[ActionRotateRight] = c.right
			r.ctrl.Update(dt)

			if diff := r.body.rotation - c.want; diff > 1e-9 || diff < -1e-9 {
				t.Fatalf("expected rotation %v, got %v", c.want, r.body.rotation)
			}

			calls := r.body.calls
			if len(calls) < 2 || calls[0] != "freeze" || calls[len(calls)-1] != "unfreeze" {
				t.Fatalf("rotation must be bracketed by freeze/unfreeze, got %v", calls)
			}
		})
	}
}

func TestUpdateIgnoredOnceTerminal(t *testing.T) {
	r := newRig(t)
	r.ctrl.HandleCollision(TagGoal)
	r.input.held[ActionThrust] = true
	r.input.held[ActionRotateLeft] = true
	r.ctrl.Update(time.Second)

	if len(r.body.calls) != 0 {
		t.Fatalf("body driven after terminal state: %v", r.body.calls)
	}
}

func TestCollisionsDisabled(t *testing.T) {
	for _, tag := range []Tag{TagGoal, TagOther, TagFriendly, TagRefuel} {
		t.Run(tag.String(), func(t *testing.T) {
			r := newRig(t)
			r.input.pressed[ActionToggleCollisions] = true
			r.ctrl.handleDebugKeys()
			if !r.ctrl.CollisionsDisabled() {
				t.Fatalf("expected collisions disabled")
			}

			r.ctrl.HandleCollision(tag)
			if r.ctrl.State() != Alive {
				t.Fatalf("expected alive, got %s", r.ctrl.State())
			}
			if r.timers.Len() != 0 {
				t.Fatalf("no timer should be armed")
			}
		})
	}
}

func TestDebugSkipBypassesStateMachine(t *testing.T) {
	r := newRig(t)
	r.input.pressed[ActionSkipScene] = true
	r.ctrl.handleDebugKeys()

	if r.scenes.next != 1 {
		t.Fatalf("expected immediate next scene request")
	}
	if r.ctrl.State() != Alive || r.timers.Len() != 0 {
		t.Fatalf("skip must not touch state or timers")
	}
}

func TestNewValidates(t *testing.T) {
	r := newRig(t)

	cases := []struct {
		name   string
		params Params
		mutate func(d *Deps)
		want   error
	}{
		{"no_body", DefaultParams(), func(d *Deps) { d.Body = nil }, ErrMissingCollaborator},
		{"no_input", DefaultParams(), func(d *Deps) { d.Input = nil }, ErrMissingCollaborator},
		{"no_audio", DefaultParams(), func(d *Deps) { d.Audio = nil }, ErrMissingCollaborator},
		{"no_death_fx", DefaultParams(), func(d *Deps) { d.DeathFX = nil }, ErrMissingCollaborator},
		{"no_scenes", DefaultParams(), func(d *Deps) { d.Scenes = nil }, ErrMissingCollaborator},
		{"no_timers", DefaultParams(), func(d *Deps) { d.Timers = nil }, ErrMissingCollaborator},
		{"negative_thrust", Params{MainThrust: -1}, func(d *Deps) {}, ErrInvalidParams},
		{"negative_delay", Params{TransitionDelay: -time.Second}, func(d *Deps) {}, ErrInvalidParams},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			deps := r.deps()
			c.mutate(&deps)
			_, err := New(c.params, deps)
			if !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}
}

func TestNewDefaultsLogger(t *testing.T) {
	r := newRig(t)
	deps := r.deps()
	deps.Logger = nil
	ctrl, err := New(DefaultParams(), deps)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if ctrl.log == nil {
		t.Fatalf("expected default logger")
	}
	if ctrl.State() != Alive {
		t.Fatalf("expected initial state alive")
	}
}
