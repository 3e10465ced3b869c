// Package ws broadcasts panel events to connected admin clients so open
// panels converge without manual refresh.
package ws

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// Event is one broadcast frame. Panel scopes delivery to clients watching
// that panel; Type is "notification" or "resources".
type Event struct {
	Panel   string `json:"panel"`
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type Hub struct {
	mu     sync.RWMutex
	panels map[string]map[*Client]struct{}
	log    *slog.Logger
}

func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		panels: make(map[string]map[*Client]struct{}),
		log:    log.With("component", "ws"),
	}
}

// Attach registers a client for the given panels and starts its pumps.
func (h *Hub) Attach(c *Client, panels []string) {
	h.mu.Lock()
	for _, panel := range panels {
		if panel == "" {
			continue
		}
		if h.panels[panel] == nil {
			h.panels[panel] = make(map[*Client]struct{})
		}
		h.panels[panel][c] = struct{}{}
		c.panels[panel] = struct{}{}
	}
	h.mu.Unlock()

	h.log.Info("ws client attached", "client_id", c.id, "panels", panels)

	go c.writePump()
	go c.readPump()
}

func (h *Hub) detach(c *Client) {
	h.mu.Lock()
	for panel := range c.panels {
		if subs, ok := h.panels[panel]; ok {
			delete(subs, c)
			if len(subs) == 0 {
				delete(h.panels, panel)
			}
		}
	}
	h.mu.Unlock()

	c.close()
	h.log.Info("ws client detached", "client_id", c.id)
}

// Broadcast fans the event out to every client watching its panel. A
// client whose buffer is full is dropped rather than letting it stall
// the others.
func (h *Hub) Broadcast(e Event) {
	data, err := json.Marshal(e)
	if err != nil {
		h.log.Error("failed to marshal ws event", "error", err)
		return
	}

	h.mu.RLock()
	clients := make([]*Client, 0, len(h.panels[e.Panel]))
	for c := range h.panels[e.Panel] {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		select {
		case c.send <- data:
		default:
			h.log.Warn("ws send buffer full", "client_id", c.id)
			go h.detach(c)
		}
	}
}
