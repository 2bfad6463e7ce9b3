package component

import "github.com/Mairuzu0/Boost-Game/rocket"

// Zone marks a static body whose tag decides what touching it means.
type Zone struct {
	Tag rocket.Tag
}

var ZoneComponent = NewComponent[Zone]()
