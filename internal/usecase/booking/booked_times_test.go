package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/mentorlink/mentor-booking-api/internal/domain/booking"
	"github.com/mentorlink/mentor-booking-api/internal/mocks"
	"github.com/mentorlink/mentor-booking-api/internal/models"
)

func TestListBookedTimesForDay(t *testing.T) {
	repo := mocks.NewFakeRepository()
	mentor, student, service := seedMentorAndStudent(repo)
	uc := NewListBookedTimes(repo)

	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	add := func(start time.Time, minutes int, status domain.Status) {
		repo.AddBooking(models.Booking{
			MentorID:        mentor.ID,
			StudentID:       student.ID,
			ServiceID:       service.ID,
			SessionStart:    start,
			DurationMinutes: minutes,
			Status:          string(status),
		})
	}

	add(day.Add(10*time.Hour), 60, domain.StatusConfirmed)
	add(day.Add(14*time.Hour), 90, domain.StatusPending)
	// cancelled sessions and other days stay out of the calendar
	add(day.Add(16*time.Hour), 60, domain.StatusCancelledByStudent)
	add(day.Add(26*time.Hour), 60, domain.StatusConfirmed)

	out, err := uc.Execute(context.Background(), mentor.ID, "2026-09-14")
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.True(t, out[0].SessionStart.Equal(day.Add(10*time.Hour)))
	assert.True(t, out[0].SessionEnd.Equal(day.Add(11*time.Hour)))
	assert.Equal(t, 60, out[0].DurationMinutes)

	assert.True(t, out[1].SessionEnd.Equal(day.Add(15*time.Hour+30*time.Minute)))
	assert.Equal(t, 90, out[1].DurationMinutes)
}

func TestListBookedTimesEmptyDay(t *testing.T) {
	repo := mocks.NewFakeRepository()
	mentor, _, _ := seedMentorAndStudent(repo)
	uc := NewListBookedTimes(repo)

	out, err := uc.Execute(context.Background(), mentor.ID, "2026-09-14")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestListBookedTimesBadDate(t *testing.T) {
	repo := mocks.NewFakeRepository()
	uc := NewListBookedTimes(repo)

	for _, bad := range []string{"", "14/09/2026", "2026-9-14", "2026-09-14T10:00:00Z"} {
		_, err := uc.Execute(context.Background(), 1, bad)
		require.Error(t, err, "input %q", bad)
	}
}
