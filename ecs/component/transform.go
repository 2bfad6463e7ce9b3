package component

// Transform is a world-space pose. X and Y are the center; Rotation is in
// radians, clockwise on screen.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
