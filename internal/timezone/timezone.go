package timezone

import "time"

// Booking instants are stored and compared in UTC; mentor timezones only
// shape what people see (schedules, emails).
const DefaultTimezone = "UTC"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.UTC
}

func NowUTC() time.Time {
	return time.Now().UTC()
}
