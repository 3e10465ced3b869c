//go:build unit

package calendar_test

import (
	"testing"
	"time"

	"coworking-admin/internal/domain/calendar"
	"coworking-admin/internal/domain/rental"
	"coworking-admin/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(t *testing.T, shiftName string, start, end time.Time) rental.Record {
	t.Helper()

	period, err := rental.NewPeriod(start, end)
	require.NoError(t, err)

	return rental.Record{
		ID:         1,
		ResourceID: 1,
		Plan: rental.Plan{
			Shift: rental.Shift{ID: 1, Name: shiftName, StartTime: "08:00", EndTime: "12:00"},
		},
		Period: period,
	}
}

func localTime(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.Local)
}

func TestMonthGrid(t *testing.T) {
	march := schedule.YearMonth{Year: 2025, Month: time.March}
	today := schedule.NewDate(2025, time.March, 15)

	rec := record(t, "Manhã",
		localTime(2025, time.March, 10, 8, 0),
		localTime(2025, time.March, 12, 18, 0))

	days := calendar.MonthGrid([]rental.Record{rec}, march, today)

	// March 1st 2025 is a Saturday: six placeholders then 31 day cells.
	require.Len(t, days, 6+31)
	for i := 0; i < 6; i++ {
		assert.Nil(t, days[i].Date)
		assert.Equal(t, "calendar-day-cell empty", days[i].CSSClass)
	}

	dayAt := func(dayNum int) calendar.Day {
		return days[6+dayNum-1]
	}

	t.Run("occupied days are inclusive and ignore time of day", func(t *testing.T) {
		assert.False(t, dayAt(9).Occupied)
		assert.True(t, dayAt(10).Occupied)
		assert.True(t, dayAt(11).Occupied)
		assert.True(t, dayAt(12).Occupied)
		assert.False(t, dayAt(13).Occupied)
	})

	t.Run("occupied day carries shift name and classes", func(t *testing.T) {
		d := dayAt(11)
		assert.Equal(t, []string{"Manhã"}, d.ShiftNames)
		assert.Equal(t, "calendar-day-cell occupied", d.CSSClass)
		assert.Equal(t, "Dia 11/03/2025\n🟥 Ocupado: Manhã", d.Tooltip)
	})

	t.Run("free day is available with tooltip", func(t *testing.T) {
		d := dayAt(9)
		assert.Equal(t, "calendar-day-cell available", d.CSSClass)
		assert.Equal(t, "Dia 09/03/2025\n🟩 Totalmente Disponível", d.Tooltip)
	})

	t.Run("today flag uses the supplied date", func(t *testing.T) {
		d := dayAt(15)
		assert.True(t, d.IsToday)
		assert.Equal(t, "calendar-day-cell today available", d.CSSClass)
	})
}

func TestMonthGridDeterministic(t *testing.T) {
	march := schedule.YearMonth{Year: 2025, Month: time.March}
	today := schedule.NewDate(2025, time.March, 15)
	recs := []rental.Record{record(t, "Tarde",
		localTime(2025, time.March, 5, 13, 0),
		localTime(2025, time.March, 5, 18, 0))}

	first := calendar.MonthGrid(recs, march, today)
	second := calendar.MonthGrid(recs, march, today)

	assert.Empty(t, cmp.Diff(first, second))
}

func TestOccupiedShiftsPreservesDuplicates(t *testing.T) {
	day := schedule.NewDate(2025, time.March, 11)
	recs := []rental.Record{
		record(t, "Manhã", localTime(2025, time.March, 10, 8, 0), localTime(2025, time.March, 12, 12, 0)),
		record(t, "Manhã", localTime(2025, time.March, 11, 8, 0), localTime(2025, time.March, 11, 12, 0)),
		record(t, "Noite", localTime(2025, time.March, 11, 19, 0), localTime(2025, time.March, 11, 23, 0)),
	}

	assert.Equal(t, []string{"Manhã", "Manhã", "Noite"}, calendar.OccupiedShifts(recs, day))
}

func TestShiftPalette(t *testing.T) {
	shifts := []rental.Shift{
		{ID: 7, Name: "Manhã", StartTime: "08:00", EndTime: "12:00"},
		{ID: 8, Name: "Dia Todo", StartTime: "08:00", EndTime: "18:00"},
		{ID: 9, Name: "Madrugada", StartTime: "00:00", EndTime: "06:00"},
		{ID: 2, Name: "Turno Antigo", StartTime: "13:00", EndTime: "18:00"},
	}

	t.Run("known names map to fixed colors", func(t *testing.T) {
		assert.Equal(t, "bg-warning", calendar.ShiftColor(shifts, "Manhã"))
		assert.Equal(t, "bg-primary", calendar.ShiftColor(shifts, "Dia Todo"))
	})

	t.Run("legacy numeric id wins over the name", func(t *testing.T) {
		assert.Equal(t, "bg-info", calendar.ShiftColor(shifts, "Turno Antigo"))
	})

	t.Run("unknown name falls back to secondary", func(t *testing.T) {
		assert.Equal(t, "bg-secondary", calendar.ShiftColor(shifts, "Madrugada"))
		assert.Equal(t, "bg-secondary", calendar.ShiftColor(shifts, "Inexistente"))
	})

	t.Run("badge class prefixes the color", func(t *testing.T) {
		assert.Equal(t, "shift-badge bg-warning", calendar.ShiftBadgeClass(shifts, "Manhã"))
	})

	t.Run("abbreviations", func(t *testing.T) {
		assert.Equal(t, "M", calendar.ShiftAbbreviation(shifts, "Manhã"))
		assert.Equal(t, "DT", calendar.ShiftAbbreviation(shifts, "Dia Todo"))
		assert.Equal(t, "F", calendar.ShiftAbbreviation(shifts, "Fantasma"))
	})

	t.Run("descriptions", func(t *testing.T) {
		assert.Equal(t, "Manhã (08:00 às 12:00)", calendar.ShiftDescription(shifts, "Manhã"))
		assert.Equal(t, "Fantasma", calendar.ShiftDescription(shifts, "Fantasma"))
		assert.Equal(t, "Manhã (08:00 às 12:00) - Ocupado", calendar.ShiftTitle(shifts, "Manhã"))
	})
}

func TestWeekdays(t *testing.T) {
	assert.Equal(t, []string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}, calendar.Weekdays())
}
