package game

// Event names match the wire events the front end listens on.
type Event string

const (
	EventPlayerJoined Event = "room:playerJoined"
	EventPlayerLeft   Event = "room:playerLeft"
	EventStateUpdated Event = "room:settingsUpdated"
	EventTimer        Event = "game:timer"
	EventYourTurn     Event = "game:yourTurn"
	EventChatMessage  Event = "chat:message"
)

// Gateway carries engine output back to connections. Implementations must
// not block: sessions call these while holding their own lock, so a slow
// consumer has to be buffered or dropped at the transport layer.
type Gateway interface {
	Broadcast(roomID string, event Event, payload any)
	Unicast(connID string, event Event, payload any)
}
