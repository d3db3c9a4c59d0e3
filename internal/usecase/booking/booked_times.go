package booking

import (
	"context"
	"time"

	domain "github.com/mentorlink/mentor-booking-api/internal/domain/booking"
	"github.com/mentorlink/mentor-booking-api/internal/httperr"
)

// BookedInterval is the public shape of an occupied slot: enough for a
// calendar to grey it out, nothing about who booked it.
type BookedInterval struct {
	SessionStart    time.Time `json:"session_start"`
	SessionEnd      time.Time `json:"session_end"`
	DurationMinutes int       `json:"duration_minutes"`
}

type ListBookedTimes struct {
	repo domain.Repository
}

func NewListBookedTimes(repo domain.Repository) *ListBookedTimes {
	return &ListBookedTimes{repo: repo}
}

// Execute returns every non-cancelled interval for the mentor on the given
// UTC calendar day ("2006-01-02").
func (uc *ListBookedTimes) Execute(
	ctx context.Context,
	mentorID uint,
	date string,
) ([]BookedInterval, error) {

	day, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	dayStart := day
	dayEnd := day.Add(24 * time.Hour)

	bookings, err := uc.repo.ListBookingsForDay(ctx, mentorID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	out := make([]BookedInterval, 0, len(bookings))
	for i := range bookings {
		rng := domain.RangeOf(&bookings[i])
		out = append(out, BookedInterval{
			SessionStart:    rng.Start,
			SessionEnd:      rng.End,
			DurationMinutes: bookings[i].DurationMinutes,
		})
	}

	return out, nil
}
