package api

import (
	"net/http"
	"strings"

	"coworking-admin/internal/infra/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WSHandler upgrades panel clients onto the live-update hub.
type WSHandler struct {
	hub      *ws.Hub
	upgrader websocket.Upgrader
}

func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browser origins are already filtered by the CORS layer.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// @Summary Live updates
// @Description Upgrades to a websocket streaming notification and resource events
// @Tags panel
// @Param panels query string false "Comma-separated panels, defaults to desks,stands"
// @Success 101
// @Router /ws [get]
func (h *WSHandler) Subscribe(c *gin.Context) {
	panels := []string{"desks", "stands"}
	if raw := c.Query("panels"); raw != "" {
		panels = panels[:0]
		for _, p := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				panels = append(panels, trimmed)
			}
		}
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the handshake failure.
		return
	}
	h.hub.Attach(ws.NewClient(h.hub, conn), panels)
}
