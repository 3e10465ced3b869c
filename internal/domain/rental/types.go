package rental

import (
	"errors"
)

var (
	ErrInvalidDuration = errors.New("plan duration must be at least one day")
	ErrInvalidPeriod   = errors.New("rental end must be after its start")
)

// Shift is a named time-of-day window, e.g. Manhã 08:00–12:00.
type Shift struct {
	ID          int64
	Name        string
	Description string
	StartTime   string // HH:mm
	EndTime     string // HH:mm
}

// Category fixes the length of a plan in whole days.
type Category struct {
	ID               int64
	Name             string
	BaseDurationDays int
}

func (c Category) Validate() error {
	if c.BaseDurationDays < 1 {
		return ErrInvalidDuration
	}
	return nil
}

// Plan is a priced offering: a duration category plus a shift window.
type Plan struct {
	ID       int64
	Name     string
	Price    float64
	Category Category
	Shift    Shift
}

type Customer struct {
	ID    int64
	Name  string
	Email string
	Phone string
}
