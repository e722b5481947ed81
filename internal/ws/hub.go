package ws

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/hits313/skribb-masti/internal/game"
)

// Hub tracks live connections and their room membership, and implements
// game.Gateway. Sends never block: a slow consumer's backlog is dropped
// rather than stalling a session holding its lock.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*client
	rooms   map[string]map[string]*client

	log zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		clients: make(map[string]*client),
		rooms:   make(map[string]map[string]*client),
		log:     log,
	}
}

// Broadcast sends an event to every member of a room.
func (h *Hub) Broadcast(roomID string, event game.Event, payload any) {
	h.broadcast(roomID, "", string(event), payload)
}

// Unicast sends an event to a single connection.
func (h *Hub) Unicast(connID string, event game.Event, payload any) {
	data, err := encode(string(event), payload)
	if err != nil {
		h.log.Error().Err(err).Str("event", string(event)).Msg("encode failed")
		return
	}

	h.mu.RLock()
	c, ok := h.clients[connID]
	h.mu.RUnlock()
	if ok {
		c.trySend(data)
	}
}

// broadcast fans out to a room, optionally skipping one connection.
func (h *Hub) broadcast(roomID, exceptConnID, event string, payload any) {
	data, err := encode(event, payload)
	if err != nil {
		h.log.Error().Err(err).Str("event", event).Msg("encode failed")
		return
	}
	h.broadcastRaw(roomID, exceptConnID, data)
}

func (h *Hub) broadcastRaw(roomID, exceptConnID string, data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for connID, c := range h.rooms[roomID] {
		if connID == exceptConnID {
			continue
		}
		c.trySend(data)
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.id] = c
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.clients, c.id)
	if c.roomID != "" {
		h.dropFromRoomLocked(c.roomID, c.id)
	}
}

// joinRoom binds the client to a room, leaving any previous room first so
// no room ever holds a stale pointer to it.
func (h *Hub) joinRoom(roomID string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if c.roomID != "" && c.roomID != roomID {
		h.dropFromRoomLocked(c.roomID, c.id)
	}
	if h.rooms[roomID] == nil {
		h.rooms[roomID] = make(map[string]*client)
	}
	h.rooms[roomID][c.id] = c
	c.roomID = roomID
}

func (h *Hub) dropFromRoomLocked(roomID, connID string) {
	members := h.rooms[roomID]
	delete(members, connID)
	if len(members) == 0 {
		delete(h.rooms, roomID)
	}
}
