package component

import "github.com/Mairuzu0/Boost-Game/rocket"

// Contacts collects the tags of bodies first touched during the last physics
// step, in the order the physics engine reported them.
type Contacts struct {
	Tags []rocket.Tag
}

var ContactsComponent = NewComponent[Contacts]()
