package rocket

// State is the life cycle of one level attempt.
type State int

const (
	Alive State = iota
	Dying
	Succeeding
)

func (s State) String() string {
	switch s {
	case Alive:
		return "alive"
	case Dying:
		return "dying"
	case Succeeding:
		return "succeeding"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state ends the attempt.
func (s State) Terminal() bool {
	return s == Dying || s == Succeeding
}
