package component

import "time"

// CameraShakeRequest asks the camera system to shake for Duration. Intensity
// is the peak offset in pixels and decays linearly.
type CameraShakeRequest struct {
	Duration  time.Duration
	Intensity float64
}

var CameraShakeRequestComponent = NewComponent[CameraShakeRequest]()
