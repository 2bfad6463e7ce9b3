package rocket

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var ErrInvalidParams = errors.New("rocket: invalid params")

// Params are the tunables of one rocket. They are fixed for a level attempt.
type Params struct {
	// RotationThrust is the manual turn rate in degrees per second.
	RotationThrust float64
	// MainThrust is the impulse per second applied along the nose.
	MainThrust float64
	// TransitionDelay separates a crash or landing from the scene change.
	TransitionDelay time.Duration
}

func DefaultParams() Params {
	return Params{
		RotationThrust:  200,
		MainThrust:      720,
		TransitionDelay: 1300 * time.Millisecond,
	}
}

func (p Params) Validate() error {
	if !validMagnitude(p.RotationThrust) {
		return fmt.Errorf("%w: rotation thrust %v", ErrInvalidParams, p.RotationThrust)
	}
	if !validMagnitude(p.MainThrust) {
		return fmt.Errorf("%w: main thrust %v", ErrInvalidParams, p.MainThrust)
	}
	if p.TransitionDelay < 0 {
		return fmt.Errorf("%w: transition delay %v", ErrInvalidParams, p.TransitionDelay)
	}
	return nil
}

func validMagnitude(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
