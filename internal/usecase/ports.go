package usecase

import (
	"context"

	"coworking-admin/internal/domain/rental"
	"coworking-admin/internal/domain/resource"
)

// Gateway is the panel's port onto the backend that owns resources,
// customers, plans and rental records. Mutations return the backend's
// success message so the panel can prefer it over its local default.
type Gateway interface {
	ListResources(ctx context.Context) ([]resource.Resource, error)
	CreateResource(ctx context.Context, number int, name string) (string, error)
	UpdateResource(ctx context.Context, id int64, number int, name string) (string, error)
	DeleteResource(ctx context.Context, id int64) (string, error)

	ListRentals(ctx context.Context) ([]rental.Record, error)
	ListResourceRentals(ctx context.Context, resourceID int64) ([]rental.Record, error)
	CreateRental(ctx context.Context, booking Booking) (string, error)

	ListCustomers(ctx context.Context) ([]rental.Customer, error)
	ListPlans(ctx context.Context) ([]rental.Plan, error)
	ListShifts(ctx context.Context) ([]rental.Shift, error)
}

// Booking carries the fully resolved entities for a new rental. The
// backend expects the complete objects, not bare ids.
type Booking struct {
	Resource   resource.Resource
	Customer   rental.Customer
	Plan       rental.Plan
	StartAt    string
	EndAt      string
	TotalPrice float64
}

// Publisher pushes panel events to connected clients. Implementations
// must not block; a nil-safe no-op is used when no hub is wired.
type Publisher interface {
	PublishNotification(panel string, n Notification)
	PublishResources(panel string, resources []resource.Resource)
}

type noopPublisher struct{}

func (noopPublisher) PublishNotification(string, Notification)     {}
func (noopPublisher) PublishResources(string, []resource.Resource) {}

// NopPublisher is the fallback when no live-update hub is configured.
func NopPublisher() Publisher {
	return noopPublisher{}
}
