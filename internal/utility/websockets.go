package utility

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const writeWait = 10 * time.Second

var Upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allow CORS for development
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Client is one open socket. gorilla/websocket allows a single concurrent
// writer, so every write goes through WriteJSON.
type Client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

// WriteJSON sends v as one text frame.
func (c *Client) WriteJSON(v any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(v)
}

// Hub holds active connections: Map[SessionID] -> set of clients. A chat can
// be open in several tabs at once.
type Hub struct {
	mu      sync.Mutex
	clients map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]map[*Client]struct{})}
}

// Register a new client connection
func (h *Hub) Register(sessionID string, conn *websocket.Conn) *Client {
	c := &Client{conn: conn}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[sessionID] == nil {
		h.clients[sessionID] = make(map[*Client]struct{})
	}
	h.clients[sessionID][c] = struct{}{}
	log.Info().Str("session_id", sessionID).Msg("WebSocket Client Connected")
	return c
}

// Unregister a client (when they close the tab)
func (h *Hub) Unregister(sessionID string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remove(sessionID, c)
}

// Broadcast sends v to every socket of a session, dropping sockets that fail.
// Writes happen outside h.mu so a slow socket only delays its own session.
func (h *Hub) Broadcast(sessionID string, v any) {
	h.mu.Lock()
	targets := make([]*Client, 0, len(h.clients[sessionID]))
	for c := range h.clients[sessionID] {
		targets = append(targets, c)
	}
	h.mu.Unlock()

	for _, c := range targets {
		if err := c.WriteJSON(v); err != nil {
			log.Error().Err(err).Str("session_id", sessionID).Msg("Failed to send WS message, removing client")
			c.conn.Close()
			h.Unregister(sessionID, c)
		}
	}
}

// CloseSession disconnects every socket of a session.
func (h *Hub) CloseSession(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients[sessionID] {
		c.writeMu.Lock()
		_ = c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session closed"),
			time.Now().Add(writeWait))
		c.writeMu.Unlock()
		c.conn.Close()
	}
	delete(h.clients, sessionID)
}

// Count is the number of open sockets for a session.
func (h *Hub) Count(sessionID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[sessionID])
}

// caller holds h.mu
func (h *Hub) remove(sessionID string, c *Client) {
	set, ok := h.clients[sessionID]
	if !ok {
		return
	}
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	if len(set) == 0 {
		delete(h.clients, sessionID)
	}
	log.Info().Str("session_id", sessionID).Msg("WebSocket Client Disconnected")
}
