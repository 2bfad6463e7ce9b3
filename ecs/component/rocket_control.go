package component

import "github.com/Mairuzu0/Boost-Game/rocket"

// RocketControl links an entity to the controller flying it.
type RocketControl struct {
	Controller *rocket.Controller
}

var RocketControlComponent = NewComponent[RocketControl]()
