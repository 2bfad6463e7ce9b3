package rocket

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Mairuzu0/Boost-Game/common"
)

var ErrMissingCollaborator = errors.New("rocket: missing collaborator")

// Deps are the services a Controller drives. All fields except Logger are
// required.
type Deps struct {
	Body      Body
	Input     Input
	Audio     Audio
	EngineFX  Effect
	DeathFX   Effect
	SuccessFX Effect
	Scenes    SceneLoader
	Timers    Scheduler
	Logger    *log.Logger
}

func (d Deps) validate() error {
	missing := func(name string) error {
		return fmt.Errorf("%w: %s", ErrMissingCollaborator, name)
	}
	switch {
	case d.Body == nil:
		return missing("body")
	case d.Input == nil:
		return missing("input")
	case d.Audio == nil:
		return missing("audio")
	case d.EngineFX == nil:
		return missing("engine effect")
	case d.DeathFX == nil:
		return missing("death effect")
	case d.SuccessFX == nil:
		return missing("success effect")
	case d.Scenes == nil:
		return missing("scene loader")
	case d.Timers == nil:
		return missing("scheduler")
	}
	return nil
}

// Controller flies the rocket while it is alive and ends the level attempt on
// the first qualifying collision.
type Controller struct {
	params Params
	deps   Deps
	log    *log.Logger

	state              State
	collisionsDisabled bool
}

func New(params Params, deps Deps) (*Controller, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := deps.validate(); err != nil {
		return nil, err
	}
	logger := deps.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Controller{params: params, deps: deps, log: logger, state: Alive}, nil
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Params() Params {
	return c.params
}

// CollisionsDisabled reports the debug collision bypass.
func (c *Controller) CollisionsDisabled() bool {
	return c.collisionsDisabled
}

// Update runs one tick of manual control.
func (c *Controller) Update(dt time.Duration) {
	if c.state != Alive {
		return
	}
	secs := dt.Seconds()
	c.thrust(secs)
	c.rotate(secs)
	if common.DebugBuild {
		c.handleDebugKeys()
	}
}

func (c *Controller) thrust(secs float64) {
	if !c.deps.Input.Held(ActionThrust) {
		c.deps.Audio.Stop()
		c.deps.EngineFX.Stop()
		return
	}

	c.deps.Body.ApplyLocalImpulse(0, -c.params.MainThrust*secs)
	if !c.deps.Audio.IsPlaying() {
		c.deps.Audio.PlayOneShot(SoundEngine)
	}
	c.deps.EngineFX.Play()
}

func (c *Controller) rotate(secs float64) {
	c.deps.Body.SetRotationFrozen(true)

	step := common.DegToRad(c.params.RotationThrust * secs)
	if c.deps.Input.Held(ActionRotateLeft) {
		c.deps.Body.Rotate(step)
	} else if c.deps.Input.Held(ActionRotateRight) {
		c.deps.Body.Rotate(-step)
	}

	c.deps.Body.SetRotationFrozen(false)
}

// HandleCollision reacts to the first contact with a body carrying tag.
func (c *Controller) HandleCollision(tag Tag) {
	if c.state != Alive || c.collisionsDisabled {
		return
	}

	switch tag {
	case TagFriendly:
		// landing pad
	case TagRefuel:
	case TagGoal:
		c.succeed()
	default:
		c.die(tag)
	}
}

func (c *Controller) die(tag Tag) {
	c.state = Dying
	c.log.Printf("rocket: crashed into %s, restarting in %v", tag, c.params.TransitionDelay)
	c.deps.Timers.Schedule(c.params.TransitionDelay, c.deps.Scenes.LoadStartScene)
	c.deps.Audio.Stop()
	c.deps.Audio.PlayOneShot(SoundDeath)
	c.deps.EngineFX.Stop()
	c.deps.DeathFX.Play()
}

func (c *Controller) succeed() {
	c.state = Succeeding
	c.log.Printf("rocket: reached goal, next level in %v", c.params.TransitionDelay)
	c.deps.Timers.Schedule(c.params.TransitionDelay, c.deps.Scenes.LoadNextScene)
	c.deps.Audio.PlayOneShot(SoundSuccess)
	c.deps.EngineFX.Stop()
	c.deps.SuccessFX.Play()
}
