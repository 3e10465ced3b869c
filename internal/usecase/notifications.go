package usecase

import (
	"sync"
	"time"

	"coworking-admin/internal/pkg/config"
)

type NotificationKind string

const (
	KindSuccess NotificationKind = "success"
	KindError   NotificationKind = "error"
	KindInfo    NotificationKind = "info"
)

type Notification struct {
	ID      int64            `json:"id"`
	Kind    NotificationKind `json:"type"`
	Message string           `json:"message"`
	Visible bool             `json:"visible"`
}

// NotificationCenter holds the panel's toast stack. Each notification is
// shown for the hide delay, then flipped invisible for a short linger so
// clients can animate the exit, then dropped.
type NotificationCenter struct {
	mu     sync.Mutex
	nextID int64
	items  []Notification

	hide   time.Duration
	linger time.Duration

	panel     string
	publisher Publisher
}

func NewNotificationCenter(panel string, cfg config.PanelConfig, publisher Publisher) *NotificationCenter {
	if publisher == nil {
		publisher = NopPublisher()
	}
	return &NotificationCenter{
		hide:      cfg.NotificationHide,
		linger:    cfg.NotificationLinger,
		panel:     panel,
		publisher: publisher,
	}
}

func (c *NotificationCenter) Push(kind NotificationKind, message string) Notification {
	c.mu.Lock()
	n := Notification{
		ID:      c.nextID,
		Kind:    kind,
		Message: message,
		Visible: true,
	}
	c.nextID++
	c.items = append(c.items, n)
	c.mu.Unlock()

	c.publisher.PublishNotification(c.panel, n)

	time.AfterFunc(c.hide, func() {
		c.Dismiss(n.ID)
	})
	return n
}

// Dismiss hides the notification and removes it after the linger delay.
// Unknown ids are ignored, so the auto-hide timer and a manual close can
// race without harm.
func (c *NotificationCenter) Dismiss(id int64) {
	c.mu.Lock()
	found := false
	for i := range c.items {
		if c.items[i].ID == id && c.items[i].Visible {
			c.items[i].Visible = false
			found = true
			break
		}
	}
	c.mu.Unlock()

	if !found {
		return
	}
	time.AfterFunc(c.linger, func() {
		c.remove(id)
	})
}

func (c *NotificationCenter) remove(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0]
	for _, n := range c.items {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	c.items = kept
}

func (c *NotificationCenter) All() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Notification, len(c.items))
	copy(out, c.items)
	return out
}
