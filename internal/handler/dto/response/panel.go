package response

import (
	"coworking-admin/internal/domain/calendar"
	"coworking-admin/internal/domain/rental"
	"coworking-admin/internal/domain/resource"
	"coworking-admin/internal/usecase"
)

type ResourceResponse struct {
	ID               int64  `json:"id"`
	Number           int    `json:"number"`
	Name             string `json:"name"`
	Status           string `json:"status"`
	StatusClass      string `json:"statusClass"`
	StatusText       string `json:"statusText"`
	NextAvailability string `json:"nextAvailability"`
	Available        bool   `json:"available"`
}

type ResourceListResponse struct {
	Resources      []ResourceResponse `json:"resources"`
	AvailableCount int                `json:"availableCount"`
	OccupiedCount  int                `json:"occupiedCount"`
}

func FromResource(r resource.Resource) ResourceResponse {
	return ResourceResponse{
		ID:               r.ID,
		Number:           r.Number,
		Name:             r.Name,
		Status:           string(r.Status),
		StatusClass:      r.StatusClass(),
		StatusText:       r.StatusText(),
		NextAvailability: r.NextAvailabilityLabel(),
		Available:        r.IsAvailable(),
	}
}

func FromResources(resources []resource.Resource) ResourceListResponse {
	out := make([]ResourceResponse, 0, len(resources))
	for _, r := range resources {
		out = append(out, FromResource(r))
	}
	return ResourceListResponse{
		Resources:      out,
		AvailableCount: resource.CountAvailable(resources),
		OccupiedCount:  resource.CountOccupied(resources),
	}
}

type CustomerResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type ShiftResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Abbreviation string `json:"abbreviation"`
	Color        string `json:"color"`
	BadgeClass   string `json:"badgeClass"`
}

type PlanResponse struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	Price        float64       `json:"price"`
	DurationDays int           `json:"durationDays"`
	Shift        ShiftResponse `json:"shift"`
}

type CatalogResponse struct {
	Customers []CustomerResponse `json:"customers"`
	Plans     []PlanResponse     `json:"plans"`
	Shifts    []ShiftResponse    `json:"shifts"`
}

func FromShift(s rental.Shift) ShiftResponse {
	catalog := []rental.Shift{s}
	return ShiftResponse{
		ID:           s.ID,
		Name:         s.Name,
		Description:  calendar.ShiftDescription(catalog, s.Name),
		StartTime:    s.StartTime,
		EndTime:      s.EndTime,
		Abbreviation: calendar.ShiftAbbreviation(catalog, s.Name),
		Color:        calendar.ShiftColor(catalog, s.Name),
		BadgeClass:   calendar.ShiftBadgeClass(catalog, s.Name),
	}
}

func FromCatalog(customers []rental.Customer, plans []rental.Plan, shifts []rental.Shift) CatalogResponse {
	out := CatalogResponse{
		Customers: make([]CustomerResponse, 0, len(customers)),
		Plans:     make([]PlanResponse, 0, len(plans)),
		Shifts:    make([]ShiftResponse, 0, len(shifts)),
	}
	for _, c := range customers {
		out.Customers = append(out.Customers, CustomerResponse{
			ID:    c.ID,
			Name:  c.Name,
			Email: c.Email,
			Phone: c.Phone,
		})
	}
	for _, p := range plans {
		out.Plans = append(out.Plans, PlanResponse{
			ID:           p.ID,
			Name:         p.Name,
			Price:        p.Price,
			DurationDays: p.Category.BaseDurationDays,
			Shift:        FromShift(p.Shift),
		})
	}
	for _, s := range shifts {
		out.Shifts = append(out.Shifts, FromShift(s))
	}
	return out
}

type QuoteResponse struct {
	ShiftStart string  `json:"shiftStart"`
	ShiftEnd   string  `json:"shiftEnd"`
	EndDate    string  `json:"endDate"`
	StartAt    string  `json:"startAt"`
	EndAt      string  `json:"endAt"`
	TotalPrice float64 `json:"totalPrice"`
}

func FromQuote(q rental.Quote) QuoteResponse {
	return QuoteResponse{
		ShiftStart: q.ShiftStart,
		ShiftEnd:   q.ShiftEnd,
		EndDate:    q.EndDate.Display(),
		StartAt:    q.StartAt,
		EndAt:      q.EndAt,
		TotalPrice: q.TotalPrice,
	}
}

// CalendarDayResponse mirrors the month grid: leading placeholder cells
// carry a null date so weekday columns line up.
type CalendarDayResponse struct {
	Date       *string  `json:"date"`
	IsToday    bool     `json:"isToday"`
	Occupied   bool     `json:"occupied"`
	ShiftNames []string `json:"shiftNames,omitempty"`
	CSSClass   string   `json:"cssClass"`
	Tooltip    string   `json:"tooltip,omitempty"`
}

type CalendarResponse struct {
	ResourceID int64                 `json:"resourceId"`
	Month      string                `json:"month"`
	Weekdays   []string              `json:"weekdays"`
	Days       []CalendarDayResponse `json:"days"`
}

func FromCalendar(resourceID int64, month string, days []calendar.Day) CalendarResponse {
	out := CalendarResponse{
		ResourceID: resourceID,
		Month:      month,
		Weekdays:   calendar.Weekdays(),
		Days:       make([]CalendarDayResponse, 0, len(days)),
	}
	for _, d := range days {
		day := CalendarDayResponse{
			IsToday:    d.IsToday,
			Occupied:   d.Occupied,
			ShiftNames: d.ShiftNames,
			CSSClass:   d.CSSClass,
			Tooltip:    d.Tooltip,
		}
		if d.Date != nil {
			display := d.Date.Display()
			day.Date = &display
		}
		out.Days = append(out.Days, day)
	}
	return out
}

type MessageResponse struct {
	Message string `json:"message"`
}

type NotificationListResponse struct {
	Notifications []usecase.Notification `json:"notifications"`
}
