package ws

import (
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
	closeWait  = 20 * time.Second
)

// conn wraps a websocket connection with the deadlines the pumps rely on.
type conn struct {
	socket *websocket.Conn
}

func newConn(socket *websocket.Conn) *conn {
	socket.SetPongHandler(func(string) error {
		socket.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	socket.SetReadDeadline(time.Now().Add(pongWait))
	return &conn{socket: socket}
}

func (c *conn) Write(data []byte) error {
	c.socket.SetWriteDeadline(time.Now().Add(writeWait))
	return c.socket.WriteMessage(websocket.TextMessage, data)
}

func (c *conn) Ping() error {
	c.socket.SetWriteDeadline(time.Now().Add(writeWait))
	return c.socket.WriteMessage(websocket.PingMessage, nil)
}

func (c *conn) Read() ([]byte, error) {
	_, p, err := c.socket.ReadMessage()
	return p, err
}

func (c *conn) Close(reason string) {
	c.socket.SetWriteDeadline(time.Now().Add(closeWait))
	c.socket.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, reason))
	c.socket.Close()
}
