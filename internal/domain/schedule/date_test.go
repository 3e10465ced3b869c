//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"coworking-admin/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDisplay(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty string counts as not yet entered", "", true},
		{"plain valid date", "10/03/2025", true},
		{"leap day on a leap year", "29/02/2024", true},
		{"leap day on a non leap year", "29/02/2023", false},
		{"february has no day 31", "31/02/2024", false},
		{"february has no day 30", "30/02/2023", false},
		{"april has no day 31", "31/04/2025", false},
		{"day zero", "00/01/2025", false},
		{"month out of range", "10/13/2025", false},
		{"year below range", "10/03/1899", false},
		{"year above range", "10/03/2101", false},
		{"missing padding", "1/3/2025", false},
		{"wrong separator", "10-03-2025", false},
		{"garbage", "abc", false},
		{"trailing text", "10/03/2025x", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, schedule.ValidateDisplay(tc.input))
		})
	}
}

func TestDisplayRoundTrip(t *testing.T) {
	inputs := []string{"01/01/1900", "29/02/2024", "31/12/2100", "10/03/2025", "05/07/1999"}

	for _, s := range inputs {
		require.True(t, schedule.ValidateDisplay(s), s)
		assert.Equal(t, s, schedule.ParseDisplay(s).Display())
	}
}

func TestDateFormats(t *testing.T) {
	d := schedule.NewDate(2025, time.March, 5)

	assert.Equal(t, "05/03/2025", d.Display())
	assert.Equal(t, "2025-03-05", d.Transport())
	assert.Equal(t, "2025-03-05T08:00", d.AtTime("08:00"))
}

func TestDateOfIgnoresTimeOfDay(t *testing.T) {
	late := time.Date(2025, time.March, 10, 23, 59, 59, 0, time.Local)

	assert.Equal(t, schedule.NewDate(2025, time.March, 10), schedule.DateOf(late))
}

func TestAddDays(t *testing.T) {
	start := schedule.NewDate(2025, time.March, 30)

	assert.Equal(t, schedule.NewDate(2025, time.April, 1), start.AddDays(2))
	assert.Equal(t, schedule.NewDate(2024, time.February, 29), schedule.NewDate(2024, time.February, 28).AddDays(1))
}

func TestDateOrdering(t *testing.T) {
	a := schedule.NewDate(2025, time.March, 10)
	b := schedule.NewDate(2025, time.March, 11)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.True(t, a.Equal(schedule.NewDate(2025, time.March, 10)))
}

func TestYearMonth(t *testing.T) {
	ym := schedule.YearMonth{Year: 2025, Month: time.March}

	assert.Equal(t, 31, ym.Days())
	assert.Equal(t, 29, schedule.YearMonth{Year: 2024, Month: time.February}.Days())
	assert.Equal(t, 28, schedule.YearMonth{Year: 2023, Month: time.February}.Days())

	assert.Equal(t, schedule.YearMonth{Year: 2025, Month: time.February}, ym.Prev())
	assert.Equal(t, schedule.YearMonth{Year: 2025, Month: time.April}, ym.Next())
	assert.Equal(t, schedule.YearMonth{Year: 2024, Month: time.December}, schedule.YearMonth{Year: 2025, Month: time.January}.Prev())

	assert.Equal(t, "março de 2025", ym.Label())
}

func TestFormatDigits(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"1", "1"},
		{"10", "10"},
		{"103", "10/3"},
		{"1003", "10/03"},
		{"10032", "10/03/2"},
		{"10032025", "10/03/2025"},
		{"100320259", "10/03/2025"},
		{"10/03/2025", "10/03/2025"},
		{"10a03b2025", "10/03/2025"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, schedule.FormatDigits(tc.input), tc.input)
	}
}

func TestNormalizeDisplay(t *testing.T) {
	assert.Equal(t, "01/03/2025", schedule.NormalizeDisplay("1/3/2025"))
	assert.Equal(t, "10/03/2025", schedule.NormalizeDisplay("10/03/2025"))
	assert.Equal(t, "32/1/2025", schedule.NormalizeDisplay("32/1/2025"))
	assert.Equal(t, "not a date", schedule.NormalizeDisplay("not a date"))
}
