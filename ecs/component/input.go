package component

import "github.com/Mairuzu0/Boost-Game/rocket"

// Input stores per-tick input state for an entity. Hold is true while an
// action's control is down; Press only on the tick it went down.
type Input struct {
	Hold  [rocket.ActionCount]bool
	Press [rocket.ActionCount]bool
}

func (in *Input) Held(a rocket.Action) bool {
	return a >= 0 && a < rocket.ActionCount && in.Hold[a]
}

func (in *Input) Pressed(a rocket.Action) bool {
	return a >= 0 && a < rocket.ActionCount && in.Press[a]
}

var InputComponent = NewComponent[Input]()
