package component

import "image/color"

// Hull is how the rocket is drawn.
type Hull struct {
	Width  float64
	Height float64
	Color  color.Color
	Window color.Color
}

var HullComponent = NewComponent[Hull]()
