package component

import "time"

// Camera offsets the whole scene when drawn. The level fits the screen, so
// the camera only moves to shake.
type Camera struct {
	OffsetX        float64
	OffsetY        float64
	ShakeRemaining time.Duration
	ShakeTotal     time.Duration
	ShakeIntensity float64
}

var CameraComponent = NewComponent[Camera]()
