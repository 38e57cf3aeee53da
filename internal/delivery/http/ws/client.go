// Package ws runs the WebSocket side of live and page sessions. A Client
// owns one upgraded connection with a single writer goroutine.
package ws

import (
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8 << 10
	sendBuffer     = 16
)

// Message types pushed to the browser.
const (
	TypeValue    = "value"
	TypeSnapshot = "snapshot"
	TypeError    = "error"
)

// Command types sent by the browser.
const (
	CommandCriteria = "criteria"
	CommandRefresh  = "refresh"
	CommandBind     = "bind"
)

// Message is the envelope of every server push. ID names the document a
// value message belongs to.
type Message struct {
	Type string `json:"type"`
	ID   string `json:"id,omitempty"`
	Data any    `json:"data,omitempty"`
}

// NewUpgrader accepts browser origins listed in allowed. An empty list
// accepts any origin.
func NewUpgrader(allowed []string) *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowed) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")

			return origin == "" || slices.Contains(allowed, origin)
		},
	}
}

// Client is one upgraded connection.
type Client struct {
	conn   *websocket.Conn
	logger *slog.Logger
	send   chan Message
	done   chan struct{}
	once   sync.Once
}

// NewClient wraps conn and starts its writer.
func NewClient(conn *websocket.Conn, logger *slog.Logger) *Client {
	c := &Client{
		conn:   conn,
		logger: logger,
		send:   make(chan Message, sendBuffer),
		done:   make(chan struct{}),
	}
	go c.writePump()

	return c
}

// Send queues msg for the writer. It reports false once the client is closed
// or when the browser is too slow to keep up, in which case the client closes.
func (c *Client) Send(msg Message) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- msg:
		return true
	case <-c.done:
		return false
	default:
		c.logger.Warn("WebSocket send buffer full, closing connection")
		c.Close()

		return false
	}
}

// Done is closed when the client closes.
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// Close shuts the connection down. It is safe to call more than once.
func (c *Client) Close() {
	c.once.Do(func() {
		close(c.done)
	})
}

// ReadPump delivers browser messages to onMessage until the browser
// disconnects or the client closes. It must be called by one goroutine.
func (c *Client) ReadPump(onMessage func([]byte)) {
	defer c.Close()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debug("WebSocket closed unexpectedly", slog.Any("error", err))
			}

			return
		}
		if onMessage != nil {
			onMessage(payload)
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(msg); err != nil {
				c.logger.Debug("WebSocket write failed", slog.Any("error", err))
				c.Close()

				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.Close()

				return
			}
		case <-c.done:
			_ = c.conn.WriteControl(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait),
			)

			return
		}
	}
}
