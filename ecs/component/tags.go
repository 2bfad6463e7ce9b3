package component

type RocketTag struct{}

var RocketTagComponent = NewComponent[RocketTag]()
