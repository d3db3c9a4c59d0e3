package booking

import (
	"time"

	"github.com/mentorlink/mentor-booking-api/internal/models"
)

// DefaultDurationMinutes is what current callers book. The conflict math
// always reads the per-booking duration, never this constant.
const DefaultDurationMinutes = 60

// SessionRange is a half-open [Start, End) interval in UTC-instant space.
// Clock-time ranges live in the schedule package; this one is for comparing
// concrete bookings.
type SessionRange struct {
	Start time.Time
	End   time.Time
}

func RangeFromSession(start time.Time, durationMinutes int) SessionRange {
	start = start.UTC()
	return SessionRange{
		Start: start,
		End:   start.Add(time.Duration(durationMinutes) * time.Minute),
	}
}

func RangeOf(b *models.Booking) SessionRange {
	return RangeFromSession(b.SessionStart, b.DurationMinutes)
}

// Overlaps uses the same strict rule as schedule.Overlaps: touching
// boundaries (one session ends exactly when the next starts) do not conflict.
func (r SessionRange) Overlaps(o SessionRange) bool {
	return r.Start.Before(o.End) && o.Start.Before(r.End)
}

// ===============================
// Domain actions
// ===============================

// ApplyStatus moves a booking to the target status after checking the
// transition, stamping the cancellation or completion fields as needed.
// actor is "mentor" or "student" and only recorded on cancellations.
func ApplyStatus(b *models.Booking, to Status, now time.Time, actor, reason string) error {
	if err := AssertTransition(Status(b.Status), to); err != nil {
		return err
	}

	b.Status = string(to)

	switch {
	case IsCancelled(to):
		b.CancelledAt = &now
		b.CancelledBy = actor
		b.CancellationReason = reason
	case to == StatusCompleted:
		b.CompletedAt = &now
	}

	return nil
}
