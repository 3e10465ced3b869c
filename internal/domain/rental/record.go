package rental

import (
	"time"

	"coworking-admin/internal/domain/schedule"
)

// Period is a rental's start/end timestamp pair. End is strictly after start.
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	if !end.After(start) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{start: start, end: end}, nil
}

func (p Period) Start() time.Time {
	return p.start
}

func (p Period) End() time.Time {
	return p.end
}

// Contains reports whether t falls inside the period, inclusive on both
// ends. Used with full timestamps for status resolution.
func (p Period) Contains(t time.Time) bool {
	return !p.start.After(t) && !p.end.Before(t)
}

// ContainsDate reports whether the calendar day d overlaps the period once
// the time-of-day components are dropped, inclusive on both ends.
func (p Period) ContainsDate(d schedule.Date) bool {
	first := schedule.DateOf(p.start)
	last := schedule.DateOf(p.end)
	return !d.Before(first) && !d.After(last)
}

// Record is one booking of a resource by a customer under a plan. Records
// are owned by the backend; the panel treats them as read-only snapshots.
type Record struct {
	ID         int64
	ResourceID int64
	Customer   Customer
	Plan       Plan
	Period     Period
	TotalPrice float64
}

// ShiftName resolves the occupied shift through the record's plan. This is
// the single resolution path; legacy id aliases live only in the calendar
// color lookup.
func (r Record) ShiftName() string {
	return r.Plan.Shift.Name
}
