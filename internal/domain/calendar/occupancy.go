package calendar

import (
	"fmt"
	"strings"

	"coworking-admin/internal/domain/rental"
	"coworking-admin/internal/domain/schedule"
)

// Day is one cell of the month grid. A nil Date marks a leading alignment
// placeholder before the 1st of the month.
type Day struct {
	Date       *schedule.Date
	IsToday    bool
	Occupied   bool
	ShiftNames []string
	CSSClass   string
	Tooltip    string
}

// MonthGrid derives the calendar cells for one resource's month: leading
// placeholders up to the weekday of the 1st (Sunday = 0), then one Day per
// day of the month with occupancy flags, shift names and tooltip text.
func MonthGrid(records []rental.Record, month schedule.YearMonth, today schedule.Date) []Day {
	offset := int(month.First().Weekday())
	total := month.Days()

	days := make([]Day, 0, offset+total)
	for i := 0; i < offset; i++ {
		days = append(days, Day{CSSClass: "calendar-day-cell empty"})
	}

	for dayNum := 1; dayNum <= total; dayNum++ {
		date := month.Date(dayNum)
		names := OccupiedShifts(records, date)

		d := Day{
			Date:       &date,
			IsToday:    date.Equal(today),
			Occupied:   len(names) > 0,
			ShiftNames: names,
		}
		d.CSSClass = dayClass(d)
		d.Tooltip = dayTooltip(date, names)
		days = append(days, d)
	}

	return days
}

// OccupiedShifts collects the shift name of every record whose period
// contains the day, time-of-day ignored. Duplicates are preserved: two
// overlapping bookings of the same shift appear twice.
func OccupiedShifts(records []rental.Record, date schedule.Date) []string {
	var names []string
	for _, rec := range records {
		if rec.Period.ContainsDate(date) {
			if name := rec.ShiftName(); name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}

func dayClass(d Day) string {
	classes := []string{"calendar-day-cell"}
	if d.IsToday {
		classes = append(classes, "today")
	}
	if d.Occupied {
		classes = append(classes, "occupied")
	} else {
		classes = append(classes, "available")
	}
	return strings.Join(classes, " ")
}

func dayTooltip(date schedule.Date, names []string) string {
	if len(names) > 0 {
		return fmt.Sprintf("Dia %s\n🟥 Ocupado: %s", date.Display(), strings.Join(names, ", "))
	}
	return fmt.Sprintf("Dia %s\n🟩 Totalmente Disponível", date.Display())
}

// Weekdays returns the pt-BR column headers, Sunday first.
func Weekdays() []string {
	return []string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}
}
