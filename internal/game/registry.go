package game

import (
	"math/rand"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Room codes avoid visually ambiguous characters (no I, O, 0, 1).
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
const codeLength = 6

// codes are sampled until unique; the cap only trips once the code space
// is effectively exhausted.
const maxCodeAttempts = 1 << 16

// Registry owns every live session. It is constructed once per process and
// handed to whatever consumes it; create and delete are atomic with respect
// to lookup.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	gateway Gateway
	words   WordSource
	log     zerolog.Logger
}

func NewRegistry(gateway Gateway, words WordSource, log zerolog.Logger) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		gateway:  gateway,
		words:    words,
		log:      log,
	}
}

// CreateSession generates a unique room code, builds the session, and seats
// the creator as host.
func (r *Registry) CreateSession(settings Settings, hostConn, hostName, hostAvatar string) (*Session, *Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	code, err := r.generateCodeLocked()
	if err != nil {
		return nil, nil, err
	}

	sess := NewSession(code, settings, r.gateway, r.words, r.log)
	host, err := sess.AddPlayer(hostConn, hostName, hostAvatar, true)
	if err != nil {
		return nil, nil, err
	}

	r.sessions[code] = sess
	r.log.Info().Str("room", code).Str("host", hostName).Msg("room created")
	return sess, host, nil
}

// FindSession looks a room up by code, case-insensitively.
func (r *Registry) FindSession(code string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sess, ok := r.sessions[strings.ToUpper(code)]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return sess, nil
}

// ResolveConnection finds the session and player bound to a connection.
// A linear scan over sessions is fine at the room counts this serves.
func (r *Registry) ResolveConnection(connID string) (*Session, *Player, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, sess := range r.sessions {
		if p, ok := sess.PlayerByConn(connID); ok {
			return sess, p, true
		}
	}
	return nil, nil, false
}

// HandleDisconnect removes the player bound to the connection and garbage
// collects any session the removal empties. Every session is swept so a
// connection can never leave a ghost player behind. Unresolvable
// connections are a no-op. Returns what was removed so the caller can
// notify the rest of the room.
func (r *Registry) HandleDisconnect(connID string) (*Session, *Player, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var (
		removedSess   *Session
		removedPlayer *Player
	)
	for code, sess := range r.sessions {
		p, ok := sess.PlayerByConn(connID)
		if !ok {
			continue
		}
		sess.RemovePlayer(p.ID)
		if sess.IsEmpty() {
			sess.Close()
			delete(r.sessions, code)
			r.log.Info().Str("room", code).Msg("room destroyed")
		}
		if removedSess == nil {
			removedSess, removedPlayer = sess, p
		}
	}
	return removedSess, removedPlayer, removedSess != nil
}

// Contains reports whether the session is still registered.
func (r *Registry) Contains(code string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.sessions[code]
	return ok
}

func (r *Registry) generateCodeLocked() (string, error) {
	buf := make([]byte, codeLength)
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		for i := range buf {
			buf[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
		}
		code := string(buf)
		if _, taken := r.sessions[code]; !taken {
			return code, nil
		}
	}
	return "", ErrCodeSpaceExhausted
}
