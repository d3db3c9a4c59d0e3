package schedule

import "encoding/json"

// Weekdays is the canonical iteration order for everything that walks a
// weekly schedule, including validation error reporting.
var Weekdays = []string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

// WeeklySchedule maps a canonical weekday name to its ordered,
// non-overlapping ranges.
type WeeklySchedule map[string][]TimeRange

// Document serializes the schedule for the persistence boundary. Reads hand
// the stored document back verbatim, so there is no decode counterpart.
func (ws WeeklySchedule) Document() ([]byte, error) {
	return json.Marshal(ws)
}
