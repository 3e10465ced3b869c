package backend

import (
	"context"

	"coworking-admin/internal/domain/rental"
)

// The catalog endpoints are shared between the desk and stand panels.

func listCustomers(ctx context.Context, client *Client) ([]rental.Customer, error) {
	var dtos []customerDTO
	if err := client.get(ctx, "/customers", &dtos); err != nil {
		return nil, err
	}

	customers := make([]rental.Customer, 0, len(dtos))
	for _, d := range dtos {
		customers = append(customers, d.toDomain())
	}
	return customers, nil
}

func listPlans(ctx context.Context, client *Client) ([]rental.Plan, error) {
	var dtos []planDTO
	if err := client.get(ctx, "/rental-plans", &dtos); err != nil {
		return nil, err
	}

	plans := make([]rental.Plan, 0, len(dtos))
	for _, d := range dtos {
		plans = append(plans, d.toDomain())
	}
	return plans, nil
}

func listShifts(ctx context.Context, client *Client) ([]rental.Shift, error) {
	var dtos []shiftDTO
	if err := client.get(ctx, "/rental-shifts", &dtos); err != nil {
		return nil, err
	}

	shifts := make([]rental.Shift, 0, len(dtos))
	for _, d := range dtos {
		shifts = append(shifts, d.toDomain())
	}
	return shifts, nil
}
