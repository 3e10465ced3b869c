package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	MinYear = 1900
	MaxYear = 2100
)

var displayPattern = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)

// Date is a plain calendar date built from local calendar fields. It is
// deliberately not backed by time.Time so that formatting can never drift
// across a timezone boundary: the transport string is derived from the same
// fields the display string is.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf truncates a timestamp to its local calendar date.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Display renders dd/mm/yyyy with zero padding.
func (d Date) Display() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, int(d.Month), d.Year)
}

// Transport renders yyyy-mm-dd for the backend, from the calendar fields
// themselves rather than a UTC-normalizing serialization.
func (d Date) Transport() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// AtTime assembles the combined transport timestamp, e.g. "2025-03-10T08:00".
func (d Date) AtTime(hhmm string) string {
	return d.Transport() + "T" + hhmm
}

// Time returns local midnight of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

func (d Date) Before(other Date) bool {
	return d.compare(other) < 0
}

func (d Date) After(other Date) bool {
	return d.compare(other) > 0
}

func (d Date) Equal(other Date) bool {
	return d == other
}

func (d Date) compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return d.Year - other.Year
	case d.Month != other.Month:
		return int(d.Month) - int(other.Month)
	default:
		return d.Day - other.Day
	}
}

// ParseDisplay is the inverse of Display. Behavior is undefined for strings
// that ValidateDisplay rejects; callers must validate first.
func ParseDisplay(s string) Date {
	parts := strings.SplitN(s, "/", 3)
	if len(parts) != 3 {
		return Date{}
	}
	day, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	year, _ := strconv.Atoi(parts[2])
	return Date{Year: year, Month: time.Month(month), Day: day}
}

// ValidateDisplay reports whether s is an acceptable dd/mm/yyyy entry.
// The empty string is valid: it means "not yet entered".
func ValidateDisplay(s string) bool {
	if s == "" {
		return true
	}

	m := displayPattern.FindStringSubmatch(s)
	if m == nil {
		return false
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	if day < 1 || day > 31 {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	if year < MinYear || year > MaxYear {
		return false
	}

	// time.Date normalizes overflow (31/02 becomes 02/03 or 03/03), so a
	// field-by-field comparison rejects dates that do not exist.
	rebuilt := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	return rebuilt.Day() == day &&
		rebuilt.Month() == time.Month(month) &&
		rebuilt.Year() == year
}
