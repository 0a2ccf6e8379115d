package core

type State int

const (
	Start State = iota
	Play
)

var stateName = map[State]string{
	Start: "start",
	Play:  "play",
}

func (s State) String() string {
	return stateName[s]
}

// Toggle is the only transition: Start <-> Play.
func (s State) Toggle() State {
	if s == Start {
		return Play
	}
	return Start
}
