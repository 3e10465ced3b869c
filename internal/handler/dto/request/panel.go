package request

import "strings"

type SaveResourceRequest struct {
	Number int    `json:"number" binding:"required"`
	Name   string `json:"name"`
}

func (r SaveResourceRequest) TrimmedName() string {
	return strings.TrimSpace(r.Name)
}

// CreateRentalRequest references the loaded catalogs by id. StartDate is
// dd/mm/yyyy; empty means today. ResourceID may be zero when the caller
// picked a resource inside the rental form.
type CreateRentalRequest struct {
	ResourceID int64  `json:"resourceId"`
	CustomerID int64  `json:"customerId" binding:"required"`
	PlanID     int64  `json:"planId" binding:"required"`
	StartDate  string `json:"startDate,omitempty"`
}
