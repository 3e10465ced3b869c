package resource

import (
	"errors"
	"time"

	"coworking-admin/internal/domain/rental"
	"coworking-admin/internal/domain/schedule"
)

var (
	ErrInvalidNumber = errors.New("resource number must be positive")
)

type Status string

const (
	StatusAvailable   Status = "available"
	StatusOccupied    Status = "occupied"
	StatusUnavailable Status = "unavailable"
)

// Resource is a rentable unit, either a desk or a stand. Status,
// NextAvailable and Current are derived on every refresh and never
// persisted.
type Resource struct {
	ID     int64
	Number int
	Name   string

	Status        Status
	NextAvailable *time.Time
	Current       *rental.Record
}

func ValidateNumber(number int) error {
	if number <= 0 {
		return ErrInvalidNumber
	}
	return nil
}

func (r Resource) IsAvailable() bool {
	return r.Status == StatusAvailable
}

func (r Resource) StatusClass() string {
	switch r.Status {
	case StatusAvailable:
		return "status-disponivel"
	case StatusOccupied:
		return "status-ocupado"
	default:
		return "status-indisponivel"
	}
}

func (r Resource) StatusText() string {
	switch r.Status {
	case StatusAvailable:
		return "Disponível"
	case StatusOccupied:
		return "Ocupada"
	default:
		return "Indisponível"
	}
}

// NextAvailabilityLabel is the list-row hint: "Agora" when free, the
// next-available date when booked, "Indisponível" otherwise.
func (r Resource) NextAvailabilityLabel() string {
	if r.Status == StatusAvailable {
		return "Agora"
	}
	if r.NextAvailable != nil {
		return schedule.DateOf(*r.NextAvailable).Display()
	}
	return "Indisponível"
}

func CountAvailable(resources []Resource) int {
	n := 0
	for _, r := range resources {
		if r.IsAvailable() {
			n++
		}
	}
	return n
}

func CountOccupied(resources []Resource) int {
	n := 0
	for _, r := range resources {
		if r.Status == StatusOccupied {
			n++
		}
	}
	return n
}
