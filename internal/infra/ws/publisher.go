package ws

import (
	"coworking-admin/internal/domain/resource"
	"coworking-admin/internal/usecase"
)

// PanelPublisher bridges the panel controllers to the hub.
type PanelPublisher struct {
	hub *Hub
}

var _ usecase.Publisher = (*PanelPublisher)(nil)

func NewPanelPublisher(hub *Hub) *PanelPublisher {
	return &PanelPublisher{hub: hub}
}

func (p *PanelPublisher) PublishNotification(panel string, n usecase.Notification) {
	p.hub.Broadcast(Event{Panel: panel, Type: "notification", Payload: n})
}

type resourcePayload struct {
	ID               int64  `json:"id"`
	Number           int    `json:"number"`
	Name             string `json:"name"`
	Status           string `json:"status"`
	StatusClass      string `json:"statusClass"`
	StatusText       string `json:"statusText"`
	NextAvailability string `json:"nextAvailability"`
}

func (p *PanelPublisher) PublishResources(panel string, resources []resource.Resource) {
	payload := make([]resourcePayload, 0, len(resources))
	for _, r := range resources {
		payload = append(payload, resourcePayload{
			ID:               r.ID,
			Number:           r.Number,
			Name:             r.Name,
			Status:           string(r.Status),
			StatusClass:      r.StatusClass(),
			StatusText:       r.StatusText(),
			NextAvailability: r.NextAvailabilityLabel(),
		})
	}
	p.hub.Broadcast(Event{Panel: panel, Type: "resources", Payload: payload})
}
