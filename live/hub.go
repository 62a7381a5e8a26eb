package live

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/jsphweid/chordex/model"
)

const (
	writeWait  = 2 * time.Second
	sendBuffer = 8
)

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// writeLoop owns every write to the conn. It sends a close frame once send
// is closed.
func (c *client) writeLoop() {
	defer c.conn.Close()
	for payload := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			slog.Debug("live client write failed", "client", c.id, "err", err)
			return
		}
	}
	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
		time.Now().Add(writeWait))
}

// Hub fans live chord events out to websocket clients. New clients get the
// latest event right away. Clients that fall behind are dropped.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]bool
	last    []byte

	upgrader websocket.Upgrader
}

func NewHub(allowedOrigins []string) *Hub {
	return &Hub{
		clients: make(map[*client]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin(allowedOrigins),
		},
	}
}

func checkOrigin(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, a := range allowed {
			if a == "*" || a == origin {
				return true
			}
		}
		return false
	}
}

func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) add(ws *websocket.Conn) *client {
	c := &client{id: uuid.NewString(), conn: ws, send: make(chan []byte, sendBuffer)}
	h.mu.Lock()
	h.clients[c] = true
	if h.last != nil {
		c.send <- h.last
	}
	h.mu.Unlock()
	go c.writeLoop()
	return c
}

// dropLocked expects h.mu to be held.
func (h *Hub) dropLocked(c *client) {
	if h.clients[c] {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dropLocked(c)
}

// Broadcast queues evt for every client without waiting on any of them.
func (h *Hub) Broadcast(evt model.LiveEvent) {
	payload, err := json.Marshal(evt)
	if err != nil {
		slog.Error("could not encode live event", "err", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = payload
	for c := range h.clients {
		select {
		case c.send <- payload:
		default:
			slog.Debug("dropping slow live client", "client", c.id)
			h.dropLocked(c)
		}
	}
}

// ServeWS upgrades the request and keeps the client until it disconnects.
// Incoming messages are ignored.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "err", err)
		return
	}

	c := h.add(ws)
	slog.Info("live client connected", "client", c.id)

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	h.remove(c)
	slog.Info("live client disconnected", "client", c.id)
}

// Run broadcasts events until ctx is done or events is closed, then
// disconnects every client.
func (h *Hub) Run(ctx context.Context, events <-chan model.LiveEvent) {
	defer h.closeAll()
	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-events:
			if !ok {
				return
			}
			h.Broadcast(evt)
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		h.dropLocked(c)
	}
}
