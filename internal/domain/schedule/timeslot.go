package schedule

import (
	"fmt"
	"regexp"
)

// TimeOfDay is a 24-hour clock value in canonical zero-padded "HH:MM" form.
// Canonical values compare correctly with plain string ordering.
type TimeOfDay string

var timeOfDayRe = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)

// ParseTimeOfDay accepts "9:30" or "09:30" and returns the zero-padded form.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	m := timeOfDayRe.FindStringSubmatch(s)
	if m == nil {
		return "", fmt.Errorf("invalid time of day %q", s)
	}
	if len(m[1]) == 1 {
		return TimeOfDay("0" + m[1] + ":" + m[2]), nil
	}
	return TimeOfDay(s), nil
}

// TimeRange is a single availability interval within a day. Start must be
// strictly before End; zero-length ranges are invalid.
type TimeRange struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

// Overlaps reports whether two ranges intersect. Adjacent ranges
// (a.End == b.Start) do not overlap.
func Overlaps(a, b TimeRange) bool {
	return a.Start < b.End && b.Start < a.End
}
