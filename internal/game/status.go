package game

// Status is the closed set of room life cycle states.
type Status int

const (
	StatusLobby Status = iota
	StatusPlaying
	StatusRoundEnd
	StatusGameEnd
)

func (s Status) String() string {
	switch s {
	case StatusLobby:
		return "LOBBY"
	case StatusPlaying:
		return "PLAYING"
	case StatusRoundEnd:
		return "ROUND_END"
	case StatusGameEnd:
		return "GAME_END"
	}
	return "UNKNOWN"
}

var statusTransitions = map[Status][]Status{
	StatusLobby:    {StatusPlaying},
	StatusPlaying:  {StatusRoundEnd, StatusGameEnd, StatusLobby},
	StatusRoundEnd: {StatusPlaying, StatusGameEnd, StatusLobby},
	StatusGameEnd:  {StatusLobby},
}

// CanTransition reports whether moving to next is a legal life cycle step.
func (s Status) CanTransition(next Status) bool {
	for _, t := range statusTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}
