package game

import (
	"sync"

	"github.com/stretchr/testify/mock"
)

// --- WordSource ---

type MockWordSource struct {
	mock.Mock
}

func (m *MockWordSource) RandomWord(s Settings) string {
	args := m.Called(s)
	return args.String(0)
}

// --- Gateway ---

// captureGateway records every outbound send so tests can assert on the
// whole outbox after driving the session.
type sentEvent struct {
	roomID  string
	connID  string
	event   Event
	payload any
}

type captureGateway struct {
	mu   sync.Mutex
	sent []sentEvent
}

func (g *captureGateway) Broadcast(roomID string, event Event, payload any) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sent = append(g.sent, sentEvent{roomID: roomID, event: event, payload: payload})
}

func (g *captureGateway) Unicast(connID string, event Event, payload any) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sent = append(g.sent, sentEvent{connID: connID, event: event, payload: payload})
}

func (g *captureGateway) take() []sentEvent {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := g.sent
	g.sent = nil
	return out
}

func (g *captureGateway) eventsOf(event Event) []sentEvent {
	g.mu.Lock()
	defer g.mu.Unlock()
	var out []sentEvent
	for _, e := range g.sent {
		if e.event == event {
			out = append(out, e)
		}
	}
	return out
}

// --- timer control ---

// freezeTimer stops the real countdown so tests can drive ticks manually.
func freezeTimer(s *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine != nil {
		s.engine.stopTimer()
	}
}

// advance drives n manual ticks, keeping any timer re-armed by a turn
// transition stopped so wall-clock time never interferes.
func advance(s *Session, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < n && s.engine != nil; i++ {
		s.engine.tick()
		if s.engine != nil {
			s.engine.stopTimer()
		}
	}
}

func timeLeft(s *Session) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine == nil {
		return 0
	}
	return s.engine.timeLeft
}

func revealedCount(s *Session) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine == nil {
		return 0
	}
	return len(s.engine.revealed)
}
