package backend

import (
	"context"
	"fmt"

	"coworking-admin/internal/domain/rental"
	"coworking-admin/internal/domain/resource"
	"coworking-admin/internal/usecase"
)

type standDTO struct {
	ID     int64  `json:"idStands"`
	Number int    `json:"numberStands"`
	Name   string `json:"nameStands"`
}

type standRentalDTO struct {
	ID         int64       `json:"idStandRentals"`
	Start      string      `json:"startPeriodStandRentals"`
	End        string      `json:"endPeriodStandRentals"`
	TotalPrice float64     `json:"totalPriceStandRentals"`
	Stand      standDTO    `json:"stand"`
	Customer   customerDTO `json:"customer"`
	Plan       planDTO     `json:"rentalPlan"`
}

type newStandRentalDTO struct {
	Stand      standDTO    `json:"stand"`
	Customer   customerDTO `json:"customer"`
	Plan       planDTO     `json:"rentalPlan"`
	Start      string      `json:"startPeriodStandRentals"`
	End        string      `json:"endPeriodStandRentals"`
	TotalPrice float64     `json:"totalPriceStandRentals"`
}

type standFormDTO struct {
	Number int    `json:"numberStands"`
	Name   string `json:"nameStands"`
}

// StandGateway adapts the stand endpoints to the panel's port.
type StandGateway struct {
	client *Client
}

var _ usecase.Gateway = (*StandGateway)(nil)

func NewStandGateway(client *Client) *StandGateway {
	return &StandGateway{client: client}
}

func (g *StandGateway) ListResources(ctx context.Context) ([]resource.Resource, error) {
	var dtos []standDTO
	if err := g.client.get(ctx, "/stands", &dtos); err != nil {
		return nil, err
	}

	resources := make([]resource.Resource, 0, len(dtos))
	for _, d := range dtos {
		resources = append(resources, resource.Resource{ID: d.ID, Number: d.Number, Name: d.Name})
	}
	return resources, nil
}

func (g *StandGateway) CreateResource(ctx context.Context, number int, name string) (string, error) {
	return g.client.send(ctx, "POST", "/stands", standFormDTO{Number: number, Name: name})
}

func (g *StandGateway) UpdateResource(ctx context.Context, id int64, number int, name string) (string, error) {
	return g.client.send(ctx, "PUT", fmt.Sprintf("/stands/%d", id), standFormDTO{Number: number, Name: name})
}

func (g *StandGateway) DeleteResource(ctx context.Context, id int64) (string, error) {
	return g.client.send(ctx, "DELETE", fmt.Sprintf("/stands/%d", id), nil)
}

func (g *StandGateway) ListRentals(ctx context.Context) ([]rental.Record, error) {
	return g.fetchRentals(ctx, "/stand-rentals")
}

func (g *StandGateway) ListResourceRentals(ctx context.Context, resourceID int64) ([]rental.Record, error) {
	return g.fetchRentals(ctx, fmt.Sprintf("/stand-rentals?standId=%d", resourceID))
}

func (g *StandGateway) fetchRentals(ctx context.Context, endpoint string) ([]rental.Record, error) {
	var dtos []standRentalDTO
	if err := g.client.get(ctx, endpoint, &dtos); err != nil {
		return nil, err
	}

	records := make([]rental.Record, 0, len(dtos))
	for _, d := range dtos {
		period, err := newPeriod(d.Start, d.End)
		if err != nil {
			return nil, err
		}
		records = append(records, rental.Record{
			ID:         d.ID,
			ResourceID: d.Stand.ID,
			Customer:   d.Customer.toDomain(),
			Plan:       d.Plan.toDomain(),
			Period:     period,
			TotalPrice: d.TotalPrice,
		})
	}
	return records, nil
}

func (g *StandGateway) CreateRental(ctx context.Context, booking usecase.Booking) (string, error) {
	body := newStandRentalDTO{
		Stand: standDTO{
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
	return g.client.send(ctx, "POST", "/stand-rentals", body)
}

func (g *StandGateway) ListCustomers(ctx context.Context) ([]rental.Customer, error) {
	return listCustomers(ctx, g.client)
}

func (g *StandGateway) ListPlans(ctx context.Context) ([]rental.Plan, error) {
	return listPlans(ctx, g.client)
}

func (g *StandGateway) ListShifts(ctx context.Context) ([]rental.Shift, error) {
	return listShifts(ctx, g.client)
}
