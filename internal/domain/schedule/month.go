package schedule

import (
	"fmt"
	"time"
)

// YearMonth identifies one displayed calendar month.
type YearMonth struct {
	Year  int
	Month time.Month
}

func YearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

func (ym YearMonth) First() Date {
	return Date{Year: ym.Year, Month: ym.Month, Day: 1}
}

// Days is the number of days in the month, computed as day zero of the
// following month.
func (ym YearMonth) Days() int {
	return time.Date(ym.Year, ym.Month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

func (ym YearMonth) Prev() YearMonth {
	return YearMonthOf(time.Date(ym.Year, ym.Month-1, 1, 0, 0, 0, 0, time.Local))
}

func (ym YearMonth) Next() YearMonth {
	return YearMonthOf(time.Date(ym.Year, ym.Month+1, 1, 0, 0, 0, 0, time.Local))
}

func (ym YearMonth) Date(day int) Date {
	return Date{Year: ym.Year, Month: ym.Month, Day: day}
}

var monthNames = [13]string{
	"",
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// Label renders the pt-BR month heading, e.g. "março de 2025".
func (ym YearMonth) Label() string {
	name := ""
	if ym.Month >= time.January && ym.Month <= time.December {
		name = monthNames[ym.Month]
	}
	return fmt.Sprintf("%s de %d", name, ym.Year)
}
