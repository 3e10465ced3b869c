package backend

import (
	"context"
	"fmt"

	"coworking-admin/internal/domain/rental"
	"coworking-admin/internal/domain/resource"
	"coworking-admin/internal/usecase"
)

type deskDTO struct {
	ID     int64  `json:"idDesks"`
	Number int    `json:"numberDesks"`
	Name   string `json:"nameDesks"`
}

type deskRentalDTO struct {
	ID         int64       `json:"idDeskRentals"`
	Start      string      `json:"startPeriodDeskRentals"`
	End        string      `json:"endPeriodDeskRentals"`
	TotalPrice float64     `json:"totalPriceDeskRentals"`
	Desk       deskDTO     `json:"desk"`
	Customer   customerDTO `json:"customer"`
	Plan       planDTO     `json:"rentalPlan"`
}

type newDeskRentalDTO struct {
	Desk       deskDTO     `json:"desk"`
	Customer   customerDTO `json:"customer"`
	Plan       planDTO     `json:"rentalPlan"`
	Start      string      `json:"startPeriodDeskRentals"`
	End        string      `json:"endPeriodDeskRentals"`
	TotalPrice float64     `json:"totalPriceDeskRentals"`
}

type deskFormDTO struct {
	Number int    `json:"numberDesks"`
	Name   string `json:"nameDesks"`
}

// DeskGateway adapts the desk endpoints to the panel's port.
type DeskGateway struct {
	client *Client
}

var _ usecase.Gateway = (*DeskGateway)(nil)

func NewDeskGateway(client *Client) *DeskGateway {
	return &DeskGateway{client: client}
}

func (g *DeskGateway) ListResources(ctx context.Context) ([]resource.Resource, error) {
	var dtos []deskDTO
	if err := g.client.get(ctx, "/desks", &dtos); err != nil {
		return nil, err
	}

	resources := make([]resource.Resource, 0, len(dtos))
	for _, d := range dtos {
		resources = append(resources, resource.Resource{ID: d.ID, Number: d.Number, Name: d.Name})
	}
	return resources, nil
}

func (g *DeskGateway) CreateResource(ctx context.Context, number int, name string) (string, error) {
	return g.client.send(ctx, "POST", "/desks", deskFormDTO{Number: number, Name: name})
}

func (g *DeskGateway) UpdateResource(ctx context.Context, id int64, number int, name string) (string, error) {
	return g.client.send(ctx, "PUT", fmt.Sprintf("/desks/%d", id), deskFormDTO{Number: number, Name: name})
}

func (g *DeskGateway) DeleteResource(ctx context.Context, id int64) (string, error) {
	return g.client.send(ctx, "DELETE", fmt.Sprintf("/desks/%d", id), nil)
}

func (g *DeskGateway) ListRentals(ctx context.Context) ([]rental.Record, error) {
	return g.fetchRentals(ctx, "/desk-rentals")
}

func (g *DeskGateway) ListResourceRentals(ctx context.Context, resourceID int64) ([]rental.Record, error) {
	return g.fetchRentals(ctx, fmt.Sprintf("/desk-rentals?deskId=%d", resourceID))
}

func (g *DeskGateway) fetchRentals(ctx context.Context, endpoint string) ([]rental.Record, error) {
	var dtos []deskRentalDTO
	if err := g.client.get(ctx, endpoint, &dtos); err != nil {
		return nil, err
	}

	records := make([]rental.Record, 0, len(dtos))
	for _, d := range dtos {
		period, err := newPeriod(d.Start, d.End)
		if err != nil {
			// A malformed record would poison every status and calendar
			// computation, so refuse the whole snapshot.
			return nil, err
		}
		records = append(records, rental.Record{
			ID:         d.ID,
			ResourceID: d.Desk.ID,
			Customer:   d.Customer.toDomain(),
			Plan:       d.Plan.toDomain(),
			Period:     period,
			TotalPrice: d.TotalPrice,
		})
	}
	return records, nil
}

func (g *DeskGateway) CreateRental(ctx context.Context, booking usecase.Booking) (string, error) {
	body := newDeskRentalDTO{
		Desk: deskDTO{
			ID:     booking.Resource.ID,
			Number: booking.Resource.Number,
			Name:   booking.Resource.Name,
		},
		Customer:   customerToDTO(booking.Customer),
		Plan:       planToDTO(booking.Plan),
		Start:      booking.StartAt,
		End:        booking.EndAt,
		TotalPrice: booking.TotalPrice,
	}
	return g.client.send(ctx, "POST", "/desk-rentals", body)
}

func (g *DeskGateway) ListCustomers(ctx context.Context) ([]rental.Customer, error) {
	return listCustomers(ctx, g.client)
}

func (g *DeskGateway) ListPlans(ctx context.Context) ([]rental.Plan, error) {
	return listPlans(ctx, g.client)
}

func (g *DeskGateway) ListShifts(ctx context.Context) ([]rental.Shift, error) {
	return listShifts(ctx, g.client)
}
