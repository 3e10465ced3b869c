//go:build unit || e2e

package builder

import (
	"testing"
	"time"

	"coworking-admin/internal/domain/rental"
	"coworking-admin/internal/domain/resource"

	"github.com/stretchr/testify/require"
)

type RentalBuilder struct {
	ID         int64
	ResourceID int64
	Customer   rental.Customer
	Plan       rental.Plan
	Start      time.Time
	End        time.Time
	TotalPrice float64
}

func NewRentalBuilder() *RentalBuilder {
	return &RentalBuilder{
		ID:         100,
		ResourceID: 1,
		Customer:   Customers()[0],
		Plan:       Plans()[0],
		Start:      time.Date(2025, time.March, 14, 8, 0, 0, 0, time.Local),
		End:        time.Date(2025, time.March, 16, 12, 0, 0, 0, time.Local),
		TotalPrice: 350,
	}
}

func (b *RentalBuilder) WithResource(id int64) *RentalBuilder {
	b.ResourceID = id
	return b
}

func (b *RentalBuilder) WithPeriod(start, end time.Time) *RentalBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *RentalBuilder) Build(t *testing.T) rental.Record {
	t.Helper()

	period, err := rental.NewPeriod(b.Start, b.End)
	require.NoError(t, err)
	return rental.Record{
		ID:         b.ID,
		ResourceID: b.ResourceID,
		Customer:   b.Customer,
		Plan:       b.Plan,
		Period:     period,
		TotalPrice: b.TotalPrice,
	}
}

func Resources() []resource.Resource {
	return []resource.Resource{
		{ID: 1, Number: 1, Name: "Janela"},
		{ID: 2, Number: 2, Name: "Fundos"},
	}
}

func Customers() []rental.Customer {
	return []rental.Customer{
		{ID: 10, Name: "Ana Souza", Email: "ana@example.com", Phone: "11 91234-5678"},
	}
}

func Plans() []rental.Plan {
	return []rental.Plan{
		{
			ID:       20,
			Name:     "Semanal Manhã",
			Price:    350,
			Category: rental.Category{ID: 1, Name: "Semanal", BaseDurationDays: 7},
			Shift:    Shifts()[0],
		},
	}
}

func Shifts() []rental.Shift {
	return []rental.Shift{
		{ID: 1, Name: "Manhã", Description: "Período da manhã", StartTime: "08:00", EndTime: "12:00"},
	}
}

// ActiveRecords is one booking of resource 1 spanning 14-16 March 2025.
func ActiveRecords(t *testing.T) []rental.Record {
	t.Helper()
	return []rental.Record{NewRentalBuilder().Build(t)}
}
