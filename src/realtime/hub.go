package realtime

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

// client serializes writes to a single websocket connection
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) write(payload any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(payload)
}

// Hub is the registry of live authenticated connections, keyed by login
// email. It implements services.Dispatcher: delivery is at-most-once and
// best-effort, with no acknowledgement, retry or backpressure.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[string]*client
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]map[string]*client)}
}

// Register binds a connection to the user's private channel. A connection
// re-authenticating under a new identity must be unregistered from the old
// one first; within one identity, registering the same connection id again
// replaces the previous binding.
func (h *Hub) Register(email, connID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[email] == nil {
		h.clients[email] = make(map[string]*client)
	}
	h.clients[email][connID] = &client{conn: conn}
}

// Unregister releases the connection's binding, if any
func (h *Hub) Unregister(email, connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns := h.clients[email]; conns != nil {
		delete(conns, connID)
		if len(conns) == 0 {
			delete(h.clients, email)
		}
	}
}

// IsOnline reports whether the user has at least one live connection
func (h *Hub) IsOnline(email string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[email]) > 0
}

// SendToUser pushes a payload to every live connection of the user. A user
// without connections is a no-op; write failures are logged and swallowed so
// dispatch never propagates an error to the triggering action.
func (h *Hub) SendToUser(email string, payload any) {
	h.mu.RLock()
	targets := make([]*client, 0, len(h.clients[email]))
	for _, c := range h.clients[email] {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if err := c.write(payload); err != nil {
			log.Printf("Error pushing event to %s: %v", email, err)
		}
	}
}
