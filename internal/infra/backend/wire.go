package backend

import (
	"time"

	"coworking-admin/internal/domain/rental"
	"coworking-admin/internal/pkg/errs"
)

// Wire shapes follow the backend's entity-suffixed naming verbatim.

type customerDTO struct {
	ID    int64  `json:"idCustomers"`
	Name  string `json:"nameCustomers"`
	Email string `json:"emailCustomers"`
	Phone string `json:"phoneCustomers"`
}

type categoryDTO struct {
	ID               int64  `json:"idRentalCategories"`
	Name             string `json:"nameRentalCategories"`
	BaseDurationDays int    `json:"baseDurationInDaysRentalCategories"`
}

type shiftDTO struct {
	ID          int64  `json:"idRentalShifts"`
	Name        string `json:"nameRentalShifts"`
	Description string `json:"descriptionRentalShifts,omitempty"`
	StartTime   string `json:"startTimeRentalShifts"`
	EndTime     string `json:"endTimeRentalShifts"`
}

type planDTO struct {
	ID       int64       `json:"idRentalPlans"`
	Name     string      `json:"planNameRentalPlans"`
	Price    float64     `json:"priceRentalPlans"`
	Category categoryDTO `json:"rentalCategory"`
	Shift    shiftDTO    `json:"rentalShift"`
}

func (d customerDTO) toDomain() rental.Customer {
	return rental.Customer{ID: d.ID, Name: d.Name, Email: d.Email, Phone: d.Phone}
}

func customerToDTO(c rental.Customer) customerDTO {
	return customerDTO{ID: c.ID, Name: c.Name, Email: c.Email, Phone: c.Phone}
}

func (d planDTO) toDomain() rental.Plan {
	return rental.Plan{
		ID:    d.ID,
		Name:  d.Name,
		Price: d.Price,
		Category: rental.Category{
			ID:               d.Category.ID,
			Name:             d.Category.Name,
			BaseDurationDays: d.Category.BaseDurationDays,
		},
		Shift: d.Shift.toDomain(),
	}
}

func planToDTO(p rental.Plan) planDTO {
	return planDTO{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Category: categoryDTO{
			ID:               p.Category.ID,
			Name:             p.Category.Name,
			BaseDurationDays: p.Category.BaseDurationDays,
		},
		Shift: shiftToDTO(p.Shift),
	}
}

func (d shiftDTO) toDomain() rental.Shift {
	return rental.Shift{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		StartTime:   d.StartTime,
		EndTime:     d.EndTime,
	}
}

func shiftToDTO(s rental.Shift) shiftDTO {
	return shiftDTO{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
	}
}

// timestampLayouts covers the period formats the backend emits. The panel
// itself sends local wall-clock timestamps without a zone suffix.
var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
	"2006-01-02",
}

func parseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errs.New("unrecognized timestamp " + value)
}

func newPeriod(start, end string) (rental.Period, error) {
	startAt, err := parseTimestamp(start)
	if err != nil {
		return rental.Period{}, err
	}
	endAt, err := parseTimestamp(end)
	if err != nil {
		return rental.Period{}, err
	}
	return rental.NewPeriod(startAt, endAt)
}
