package ws

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const sendBufferSize = 256

// client is one player connection: a read pump feeding the dispatcher and
// a write pump draining the outbound buffer.
type client struct {
	id     string
	roomID string

	sock    *conn
	send    chan []byte
	limiter *rate.Limiter

	server *Server
	log    zerolog.Logger
}

func newClient(id string, sock *conn, server *Server, log zerolog.Logger) *client {
	return &client{
		id:      id,
		sock:    sock,
		send:    make(chan []byte, sendBufferSize),
		limiter: rate.NewLimiter(rate.Limit(4), 8),
		server:  server,
		log:     log.With().Str("conn", id).Logger(),
	}
}

// trySend queues data without ever blocking; backlog past the buffer is
// dropped and the slow consumer catches up from the next state broadcast.
func (c *client) trySend(data []byte) {
	select {
	case c.send <- data:
	default:
		c.log.Warn().Msg("send buffer full, dropping message")
	}
}

func (c *client) readPump() {
	defer func() {
		c.server.handleDisconnect(c)
		close(c.send)
	}()

	for {
		data, err := c.sock.Read()
		if err != nil {
			return
		}

		var env Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			c.log.Debug().Err(err).Msg("bad envelope, ignoring")
			continue
		}

		// Drawing traffic is high frequency and exempt; everything a
		// player types is throttled.
		if env.Event == ActionChatSend && !c.limiter.Allow() {
			continue
		}

		c.server.dispatch(c, env)
	}
}

func (c *client) writePump() {
	pinger := time.NewTicker(pingPeriod)
	defer func() {
		pinger.Stop()
		c.sock.Close("")
	}()

	for {
		select {
		case data, ok := <-c.send:
			if !ok {
				return
			}
			if err := c.sock.Write(data); err != nil {
				return
			}
		case <-pinger.C:
			if err := c.sock.Ping(); err != nil {
				return
			}
		}
	}
}
