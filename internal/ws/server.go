package ws

import (
	"encoding/json"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/hits313/skribb-masti/internal/game"
)

// Server is the gateway adapter: it upgrades connections, decodes inbound
// actions, and routes them into the session registry. Outbound traffic
// flows back through the Hub.
type Server struct {
	hub      *Hub
	registry *game.Registry
	upgrader websocket.Upgrader
	log      zerolog.Logger
}

func NewServer(hub *Hub, registry *game.Registry, allowedOrigins []string, log zerolog.Logger) *Server {
	return &Server{
		hub:      hub,
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || slices.Contains(allowedOrigins, origin)
			},
		},
		log: log,
	}
}

// HandleWS upgrades the request and runs the connection's pumps.
func (s *Server) HandleWS(ctx *gin.Context) {
	socket, err := s.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		s.log.Error().Err(err).Str("ip", ctx.ClientIP()).Msg("ws upgrade failed")
		return
	}

	c := newClient(uuid.NewString(), newConn(socket), s, s.log)
	s.hub.register(c)
	s.log.Info().Str("conn", c.id).Msg("connection opened")

	go c.writePump()
	go c.readPump()
}

func (s *Server) dispatch(c *client, env Envelope) {
	switch env.Event {
	case ActionCreateRoom:
		s.handleCreateRoom(c, env.Data)
	case ActionJoinRoom:
		s.handleJoinRoom(c, env.Data)
	case ActionStartGame:
		s.handleStartGame(c, env.Data)
	case ActionResetGame:
		s.handleResetGame(c, env.Data)
	case ActionChatSend:
		s.handleChat(c, env.Data)
	case ActionDrawPoints, ActionDrawEnd, ActionDrawClear:
		s.relayDrawing(c, env)
	default:
		c.log.Debug().Str("event", env.Event).Msg("unknown action, ignoring")
	}
}

func (s *Server) handleCreateRoom(c *client, data json.RawMessage) {
	var payload createRoomPayload
	if err := json.Unmarshal(data, &payload); err != nil || payload.Username == "" {
		s.replyResult(c, EventRoomCreated, roomResult{Success: false, Error: game.ErrInvalidAction.Error()})
		return
	}
	if err := payload.Settings.Normalize(); err != nil {
		s.replyResult(c, EventRoomCreated, roomResult{Success: false, Error: err.Error()})
		return
	}
	if _, _, ok := s.registry.ResolveConnection(c.id); ok {
		s.replyResult(c, EventRoomCreated, roomResult{Success: false, Error: game.ErrInvalidAction.Error()})
		return
	}

	sess, _, err := s.registry.CreateSession(payload.Settings, c.id, payload.Username, payload.Avatar)
	if err != nil {
		s.replyResult(c, EventRoomCreated, roomResult{Success: false, Error: err.Error()})
		return
	}

	s.hub.joinRoom(sess.ID(), c)
	state := sess.PublicState()
	s.replyResult(c, EventRoomCreated, roomResult{Success: true, RoomID: sess.ID(), RoomState: &state})
}

func (s *Server) handleJoinRoom(c *client, data json.RawMessage) {
	var payload joinRoomPayload
	if err := json.Unmarshal(data, &payload); err != nil || payload.Username == "" {
		s.replyResult(c, EventRoomJoined, roomResult{Success: false, Error: game.ErrInvalidAction.Error()})
		return
	}

	if _, _, ok := s.registry.ResolveConnection(c.id); ok {
		s.replyResult(c, EventRoomJoined, roomResult{Success: false, Error: game.ErrInvalidAction.Error()})
		return
	}

	sess, err := s.registry.FindSession(payload.Code)
	if err != nil {
		s.replyResult(c, EventRoomJoined, roomResult{Success: false, Error: err.Error()})
		return
	}

	player, err := sess.AddPlayer(c.id, payload.Username, payload.Avatar, false)
	if err != nil {
		s.replyResult(c, EventRoomJoined, roomResult{Success: false, Error: err.Error()})
		return
	}

	s.hub.joinRoom(sess.ID(), c)

	// Broadcast a snapshot, not the live struct the engine mutates under
	// the session lock.
	state := sess.PublicState()
	for _, p := range state.Players {
		if p.ID == player.ID {
			s.hub.broadcast(sess.ID(), c.id, string(game.EventPlayerJoined), p)
			break
		}
	}
	s.replyResult(c, EventRoomJoined, roomResult{Success: true, RoomID: sess.ID(), RoomState: &state})
}

func (s *Server) handleStartGame(c *client, data json.RawMessage) {
	var payload roomActionPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return
	}
	sess, err := s.registry.FindSession(payload.RoomCode)
	if err != nil {
		return
	}
	player, ok := sess.PlayerByConn(c.id)
	if !ok {
		return
	}
	sess.StartGame(player.ID)
}

func (s *Server) handleResetGame(c *client, data json.RawMessage) {
	var payload roomActionPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return
	}
	sess, err := s.registry.FindSession(payload.RoomCode)
	if err != nil {
		return
	}
	player, ok := sess.PlayerByConn(c.id)
	if !ok {
		return
	}
	sess.ResetGame(player.ID)
}

func (s *Server) handleChat(c *client, data json.RawMessage) {
	var payload chatPayload
	if err := json.Unmarshal(data, &payload); err != nil || payload.Message == "" {
		return
	}

	sess, player, ok := s.registry.ResolveConnection(c.id)
	if !ok {
		return
	}

	msg := game.NewChatMessage(player, payload.Message)
	if sess.Status() == game.StatusPlaying && sess.HandleGuess(player.ID, payload.Message) {
		msg.Kind = game.ChatGuess
		msg.Text = "Guessed the word!"
	}

	s.hub.Broadcast(sess.ID(), game.EventChatMessage, msg)
}

// relayDrawing forwards stroke traffic verbatim to the rest of the room.
// The payload is opaque to the server.
func (s *Server) relayDrawing(c *client, env Envelope) {
	sess, _, ok := s.registry.ResolveConnection(c.id)
	if !ok {
		return
	}

	data, err := json.Marshal(env)
	if err != nil {
		return
	}
	s.hub.broadcastRaw(sess.ID(), c.id, data)
}

// handleDisconnect runs when a read pump dies: drop the connection, remove
// the player, let a still-live session continue its round, tell the room.
func (s *Server) handleDisconnect(c *client) {
	s.hub.unregister(c)
	s.log.Info().Str("conn", c.id).Msg("connection closed")

	sess, player, ok := s.registry.HandleDisconnect(c.id)
	if !ok {
		return
	}

	if s.registry.Contains(sess.ID()) {
		sess.HandlePlayerLeave(player.ID)
	}
	s.hub.Broadcast(sess.ID(), game.EventPlayerLeft, player.ID)
}

func (s *Server) replyResult(c *client, event string, result roomResult) {
	data, err := encode(event, result)
	if err != nil {
		s.log.Error().Err(err).Msg("encode failed")
		return
	}
	c.trySend(data)
}
