package game

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Session is the single source of truth for one room: players, settings,
// status, and (while a game runs) the round engine. Every exported method
// takes the session lock; sessions are fully independent of each other.
type Session struct {
	mu sync.Mutex

	id       string
	settings Settings
	players  []*Player // insertion order defines the turn order
	status   Status
	hostID   string

	currentRound    int
	currentDrawerID string
	engine          *RoundEngine

	gateway Gateway
	words   WordSource
	log     zerolog.Logger
}

func NewSession(id string, settings Settings, gateway Gateway, words WordSource, log zerolog.Logger) *Session {
	return &Session{
		id:       id,
		settings: settings,
		status:   StatusLobby,
		gateway:  gateway,
		words:    words,
		log:      log.With().Str("room", id).Logger(),
	}
}

func (s *Session) ID() string { return s.id }

// AddPlayer registers a new member. Fails with ErrRoomFull at capacity.
func (s *Session) AddPlayer(connID, name, avatar string, asHost bool) (*Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.players) >= s.settings.MaxPlayers {
		return nil, ErrRoomFull
	}

	p := &Player{
		ID:          uuid.NewString(),
		ConnID:      connID,
		Name:        name,
		Avatar:      avatar,
		IsHost:      asHost,
		IsConnected: true,
	}
	s.players = append(s.players, p)
	if asHost {
		s.hostID = p.ID
	}
	s.log.Info().Str("player", p.Name).Bool("host", asHost).Int("count", len(s.players)).Msg("player joined")
	return p, nil
}

// RemovePlayer deletes the player and, when the host leaves, promotes the
// next remaining player in turn order. Callers must not rely on which
// player ends up hosting beyond "some remaining player".
func (s *Session) RemovePlayer(playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removePlayerLocked(playerID)
}

func (s *Session) removePlayerLocked(playerID string) {
	for i, p := range s.players {
		if p.ID != playerID {
			continue
		}
		s.players = append(s.players[:i], s.players[i+1:]...)
		s.log.Info().Str("player", p.Name).Int("count", len(s.players)).Msg("player removed")
		break
	}

	if s.hostID == playerID {
		if len(s.players) > 0 {
			next := s.players[0]
			next.IsHost = true
			s.hostID = next.ID
			s.log.Info().Str("player", next.Name).Msg("host migrated")
		} else {
			s.hostID = ""
		}
	}
}

// StartGame begins the first round. Only the host may start and only from
// the lobby; anything else is silently dropped.
func (s *Session) StartGame(requesterID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if requesterID != s.hostID {
		s.log.Debug().Str("requester", requesterID).Msg("start ignored: not host")
		return
	}
	if !s.status.CanTransition(StatusPlaying) || s.status != StatusLobby {
		return
	}

	s.status = StatusPlaying
	s.currentRound = 1
	s.engine = newRoundEngine(s, s.words)
	s.engine.startTurn()
}

// ResetGame returns the room to the lobby, discarding the engine and every
// score. Host-only; non-host requests are silently dropped.
func (s *Session) ResetGame(requesterID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if requesterID != s.hostID {
		s.log.Debug().Str("requester", requesterID).Msg("reset ignored: not host")
		return
	}
	if !s.status.CanTransition(StatusLobby) {
		return
	}

	if s.engine != nil {
		s.engine.stopTimer()
		s.engine = nil
	}
	s.status = StatusLobby
	s.currentRound = 0
	s.currentDrawerID = ""
	for _, p := range s.players {
		p.Score = 0
		p.HasGuessed = false
		p.IsDrawing = false
	}
	s.log.Info().Msg("game reset")
	s.gateway.Broadcast(s.id, EventStateUpdated, s.publicStateLocked())
}

// HandleGuess evaluates a chat line as a guess while a game is running.
// Returns true only for a first correct guess by a non-drawer.
func (s *Session) HandleGuess(playerID, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusPlaying || s.engine == nil {
		return false
	}
	return s.engine.handleGuess(playerID, text)
}

// HandlePlayerLeave runs the round-continuation logic after a member was
// removed: a departed drawer force-ends the turn, any other departure may
// leave the remaining guesser set vacuously complete.
func (s *Session) HandlePlayerLeave(playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.engine == nil {
		return
	}
	s.engine.handlePlayerLeave(playerID)
}

// Close stops any running timer. Called when the registry drops the
// session so a stale tick can never mutate a dead room.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.engine != nil {
		s.engine.stopTimer()
		s.engine = nil
	}
}

func (s *Session) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.players) == 0
}

func (s *Session) HostID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hostID
}

func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Session) playerByConnLocked(connID string) *Player {
	for _, p := range s.players {
		if p.ConnID == connID {
			return p
		}
	}
	return nil
}

// PlayerByConn resolves a transport connection to its player.
func (s *Session) PlayerByConn(connID string) (*Player, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.playerByConnLocked(connID)
	return p, p != nil
}

func (s *Session) playerByIDLocked(playerID string) *Player {
	for _, p := range s.players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

// PublicState builds the broadcast-safe projection.
func (s *Session) PublicState() RoomState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.publicStateLocked()
}

func (s *Session) publicStateLocked() RoomState {
	players := make([]Player, 0, len(s.players))
	for _, p := range s.players {
		players = append(players, *p)
	}

	state := RoomState{
		ID:              s.id,
		Status:          s.status.String(),
		Players:         players,
		Settings:        s.settings,
		CurrentRound:    s.currentRound,
		TotalRounds:     s.settings.Rounds * len(s.players),
		CurrentDrawerID: s.currentDrawerID,
	}
	if s.engine != nil {
		state.TimeLeft = s.engine.timeLeft
		state.WordBlanks = s.engine.maskedWord()
	}
	return state
}
