package component

import "github.com/hajimehoshi/ebiten/v2/audio"

// Audio is a set of named clips with per-tick play and stop requests. The
// audio system applies stops before plays. Players may be nil when muted.
type Audio struct {
	Names   []string
	Players []*audio.Player
	Volume  []float64
	Play    []bool
	Stop    []bool
}

// Index returns the clip index for name, or -1.
func (a *Audio) Index(name string) int {
	for i, n := range a.Names {
		if n == name {
			return i
		}
	}
	return -1
}

var AudioComponent = NewComponent[Audio]()
