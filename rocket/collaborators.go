package rocket

import (
	"time"

	"github.com/Mairuzu0/Boost-Game/timer"
)

// Body is the rigid body the controller steers. Local space follows the
// screen: +X right, +Y down, and the nose points along -Y.
type Body interface {
	ApplyLocalImpulse(x, y float64)
	// Rotate turns the body by radians; positive is counter-clockwise on screen.
	Rotate(radians float64)
	// SetRotationFrozen stops the physics engine from rotating the body.
	SetRotationFrozen(frozen bool)
}

// Action is a logical input.
type Action int

const (
	ActionThrust Action = iota
	ActionRotateLeft
	ActionRotateRight
	ActionToggleCollisions
	ActionSkipScene
	ActionCount
)

// Input answers held and just-pressed queries for the current tick.
type Input interface {
	Held(a Action) bool
	Pressed(a Action) bool
}

// Sound names a clip on the rocket's audio source.
type Sound int

const (
	SoundEngine Sound = iota
	SoundDeath
	SoundSuccess
)

func (s Sound) String() string {
	switch s {
	case SoundEngine:
		return "engine"
	case SoundDeath:
		return "death"
	case SoundSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// Audio is a single source that can layer one-shot clips.
type Audio interface {
	PlayOneShot(s Sound)
	// Stop silences every clip on the source.
	Stop()
	IsPlaying() bool
}

// Effect is a visual effect such as a particle emitter.
type Effect interface {
	Play()
	Stop()
}

// SceneLoader changes levels.
type SceneLoader interface {
	LoadStartScene()
	LoadNextScene()
}

// Scheduler arms one-shot delayed callbacks on the game timeline.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) *timer.Timer
}
