package rental

import (
	"coworking-admin/internal/domain/schedule"
)

// Quote is the derived booking summary shown in the rental modal: the shift
// window, the computed end date, the combined transport timestamps and the
// flat total price.
type Quote struct {
	ShiftStart string
	ShiftEnd   string
	EndDate    schedule.Date
	StartAt    string
	EndAt      string
	TotalPrice float64
}

func (q Quote) IsZero() bool {
	return q == Quote{}
}

// QuoteFor computes the schedule and price for a plan starting on startDate.
// A nil plan or a zero start date is the explicit "no plan selected" state
// and yields the zero Quote, not an error.
//
// End dates use inclusive-day semantics: a one-day plan starts and ends on
// the same calendar day. The end timestamp combines the computed end date
// with the shift's end time.
func QuoteFor(plan *Plan, startDate schedule.Date) Quote {
	if plan == nil || startDate.IsZero() {
		return Quote{}
	}

	endDate := startDate.AddDays(plan.Category.BaseDurationDays - 1)

	return Quote{
		ShiftStart: plan.Shift.StartTime,
		ShiftEnd:   plan.Shift.EndTime,
		EndDate:    endDate,
		StartAt:    startDate.AtTime(plan.Shift.StartTime),
		EndAt:      endDate.AtTime(plan.Shift.EndTime),
		TotalPrice: plan.Price,
	}
}
