package component

// LevelBounds stores the world-space size of the current level. Leaving it
// counts as hitting an untagged body.
type LevelBounds struct {
	Width  float64
	Height float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
