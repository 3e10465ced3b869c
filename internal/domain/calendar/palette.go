package calendar

import (
	"fmt"
	"strconv"
	"strings"

	"coworking-admin/internal/domain/rental"
)

// Fixed badge colors per shift. Numeric keys are a legacy alias for records
// created before shifts were renamed.
var shiftColors = map[string]string{
	"1":        "bg-warning",
	"2":        "bg-info",
	"3":        "bg-primary",
	"Manhã":    "bg-warning",
	"Tarde":    "bg-info",
	"Dia Todo": "bg-primary",
	"Noite":    "bg-dark",
}

const defaultShiftColor = "bg-secondary"

func findShift(shifts []rental.Shift, name string) *rental.Shift {
	for i := range shifts {
		if shifts[i].Name == name {
			return &shifts[i]
		}
	}
	return nil
}

// ShiftColor resolves the badge color for a shift name, trying the legacy
// id alias first, then the name, then the default.
func ShiftColor(shifts []rental.Shift, name string) string {
	shift := findShift(shifts, name)
	if shift == nil {
		return defaultShiftColor
	}

	if color, ok := shiftColors[strconv.FormatInt(shift.ID, 10)]; ok {
		return color
	}
	if color, ok := shiftColors[name]; ok {
		return color
	}
	return defaultShiftColor
}

func ShiftBadgeClass(shifts []rental.Shift, name string) string {
	return "shift-badge " + ShiftColor(shifts, name)
}

// ShiftAbbreviation is the badge text for a shift: the first letter of each
// word, or the first character when the name is a single word. Unknown names
// fall back to their own first character.
func ShiftAbbreviation(shifts []rental.Shift, name string) string {
	shift := findShift(shifts, name)
	if shift == nil {
		return firstChar(name)
	}

	words := strings.Fields(shift.Name)
	if len(words) <= 1 {
		return firstChar(shift.Name)
	}

	var b strings.Builder
	for _, w := range words {
		b.WriteString(firstChar(w))
	}
	return b.String()
}

// ShiftDescription renders "Name (HH:mm às HH:mm)", or the bare name when
// the shift is not in the catalog.
func ShiftDescription(shifts []rental.Shift, name string) string {
	shift := findShift(shifts, name)
	if shift == nil {
		return name
	}
	return fmt.Sprintf("%s (%s às %s)", shift.Name, shift.StartTime, shift.EndTime)
}

func ShiftTitle(shifts []rental.Shift, name string) string {
	return ShiftDescription(shifts, name) + " - Ocupado"
}

func firstChar(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
