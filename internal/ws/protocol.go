package ws

import (
	"encoding/json"

	"github.com/hits313/skribb-masti/internal/game"
)

// Envelope is the wire frame for both directions: an event name plus an
// opaque payload. Drawing payloads are relayed as-is and never decoded.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Inbound action verbs.
const (
	ActionCreateRoom = "room:create"
	ActionJoinRoom   = "room:join"
	ActionStartGame  = "room:start"
	ActionResetGame  = "room:reset"
	ActionChatSend   = "chat:send"
	ActionDrawPoints = "draw:points"
	ActionDrawEnd    = "draw:end"
	ActionDrawClear  = "draw:clear"
)

// Outbound events not owned by the engine (engine events live in
// package game).
const (
	EventRoomCreated = "room:created"
	EventRoomJoined  = "room:joined"
)

type createRoomPayload struct {
	Settings game.Settings `json:"settings"`
	Username string        `json:"username"`
	Avatar   string        `json:"avatar"`
}

type joinRoomPayload struct {
	Code     string `json:"code"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

type roomActionPayload struct {
	RoomCode string `json:"roomCode"`
}

type chatPayload struct {
	Message string `json:"message"`
}

// roomResult answers a create or join synchronously on the requesting
// connection, success or structured failure.
type roomResult struct {
	Success   bool            `json:"success"`
	RoomID    string          `json:"roomId,omitempty"`
	RoomState *game.RoomState `json:"roomState,omitempty"`
	Error     string          `json:"error,omitempty"`
}

func encode(event string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Event: event, Data: data})
}
