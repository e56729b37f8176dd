package session

type State string

const (
	StateOccupied State = "occupied"
	StatePaused   State = "paused"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsValid() bool {
	switch s {
	case StateOccupied, StatePaused:
		return true
	default:
		return false
	}
}

type Mode string

const (
	ModeTimed   Mode = "timed"
	ModeMetered Mode = "metered"
)

func (m Mode) String() string {
	return string(m)
}

func (m Mode) IsValid() bool {
	switch m {
	case ModeTimed, ModeMetered:
		return true
	default:
		return false
	}
}
