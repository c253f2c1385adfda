// Package timeutil provides the clock and calendar primitives the
// scheduler is built on. All time-of-day values are represented as
// minutes from midnight. A value of 1440 denotes end-of-day (24:00).
// ParseEndClock yields it for both "00:00" and "24:00"; ParseStartClock
// yields it only for an hour of 24, since "00:00" as a start is midnight.
package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidClock indicates a clock string is not in H:MM, HH:MM or
// HH:MM:SS form, or its fields are out of range.
var ErrInvalidClock = errors.New("invalid clock value: expected H:MM, HH:MM or HH:MM:SS")

// MinutesPerDay is the number of minutes in a day (1440).
const MinutesPerDay = 1440

// rawParse reads hours and minutes out of a clock string. A trailing
// ":SS" component must be a number 0-59 but is otherwise ignored. Minute
// must be 0-59; hour 24 (with any valid minute) always yields 1440,
// otherwise hour must be 0-23.
func rawParse(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, ErrInvalidClock
	}
	if len(parts) == 3 {
		if sec, err := strconv.Atoi(parts[2]); err != nil || sec < 0 || sec > 59 {
			return 0, ErrInvalidClock
		}
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 24 {
		return 0, ErrInvalidClock
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, ErrInvalidClock
	}
	if h == 24 {
		return MinutesPerDay, nil
	}
	return h*60 + m, nil
}

// ParseStartClock parses a shift/opening start time. "00:00" means
// midnight (0), never end-of-day.
func ParseStartClock(s string) (int, error) {
	return rawParse(s)
}

// ParseEndClock parses a shift/opening end time. "00:00" and "24:00"
// both denote end-of-day and are promoted to MinutesPerDay (1440); any
// other value parses as-is.
func ParseEndClock(s string) (int, error) {
	v, err := rawParse(s)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return MinutesPerDay, nil
	}
	return v, nil
}

// FormatClock renders minutes-from-midnight as "HH:MM". Values at or
// above MinutesPerDay render as "24:00" rather than wrapping, since the
// scheduler never needs to print a time past end-of-day.
func FormatClock(minutes int) string {
	if minutes >= MinutesPerDay {
		return "24:00"
	}
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Duration computes a shift's length in minutes given its parsed start
// and end clock values, wrapping past midnight when end <= start.
func Duration(startMinutes, endMinutes int) int {
	if endMinutes > startMinutes {
		return endMinutes - startMinutes
	}
	return (MinutesPerDay - startMinutes) + endMinutes
}

// IsNightShift reports whether a template wraps past midnight, i.e. its
// raw clock end is less than or equal to its start. A 00:00-24:00
// full-day template is NOT a night shift: its end (1440) is strictly
// greater than its start (0).
func IsNightShift(startMinutes, endMinutes int) bool {
	return endMinutes <= startMinutes
}
