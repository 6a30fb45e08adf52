package core

import (
	"sync"

	"github.com/rs/zerolog"
)

// Hub is the subscription directory and fan-out broadcaster. Each client
// watches at most one room at a time; the last subscribe wins.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]string
	log     *zerolog.Logger
}

// NewHub creates a hub with no clients.
func NewHub(logger *zerolog.Logger) *Hub {
	return &Hub{
		clients: make(map[*Client]string),
		log:     logger,
	}
}

// Register adds a connected client with no subscription yet.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = ""
	h.mu.Unlock()

	h.log.Debug().Str("client_id", c.ID).Msg("client registered")
}

// Unregister removes the client and its subscription. Invoked on disconnect.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()

	h.log.Debug().Str("client_id", c.ID).Msg("client unregistered")
}

// Subscribe points the client at a room, replacing any prior subscription.
func (h *Hub) Subscribe(c *Client, room string) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		h.clients[c] = room
	}
	h.mu.Unlock()

	h.log.Debug().Str("client_id", c.ID).Str("room", room).Msg("client subscribed")
}

// Broadcast delivers the update to every client subscribed to its room.
// Delivery is fire-and-forget: a client whose event buffer is full is
// skipped rather than blocking the sender. Returns the delivery count.
func (h *Hub) Broadcast(update Update) int {
	h.mu.RLock()
	targets := make([]*Client, 0, len(h.clients))
	for client, room := range h.clients {
		if room == update.Room {
			targets = append(targets, client)
		}
	}
	h.mu.RUnlock()

	delivered := 0
	for _, client := range targets {
		select {
		case client.Events <- update:
			delivered++
		default:
			// Drop if slow consumer.
		}
	}
	return delivered
}
