package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatDigits shapes raw date entry into the dd/mm/yyyy mask as the user
// types: non-digits are dropped and slashes inserted after the day and month.
func FormatDigits(input string) string {
	var digits strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	v := digits.String()
	if len(v) > 8 {
		v = v[:8]
	}

	switch {
	case len(v) > 4:
		return v[:2] + "/" + v[2:4] + "/" + v[4:]
	case len(v) > 2:
		return v[:2] + "/" + v[2:]
	default:
		return v
	}
}

// NormalizeDisplay zero-pads a loosely typed d/m/yyyy entry on blur.
// Input that cannot be normalized is returned unchanged.
func NormalizeDisplay(input string) string {
	parts := strings.Split(input, "/")
	if len(parts) != 3 {
		return input
	}

	day, errD := strconv.Atoi(parts[0])
	month, errM := strconv.Atoi(parts[1])
	year, errY := strconv.Atoi(parts[2])
	if errD != nil || errM != nil || errY != nil {
		return input
	}

	if day < 1 || day > 31 || month < 1 || month > 12 || year < MinYear || year > MaxYear {
		return input
	}

	return fmt.Sprintf("%02d/%02d/%d", day, month, year)
}
