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

func TestCheckBookingWithMentor(t *testing.T) {
	repo := mocks.NewFakeRepository()
	mentor, student, service := seedMentorAndStudent(repo)
	uc := NewCheckBookingWithMentor(repo)

	ok, err := uc.Execute(context.Background(), student.ID, mentor.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	b := repo.AddBooking(models.Booking{
		MentorID:        mentor.ID,
		StudentID:       student.ID,
		ServiceID:       service.ID,
		SessionStart:    time.Now().UTC().Add(24 * time.Hour),
		DurationMinutes: 60,
		Status:          string(domain.StatusConfirmed),
	})

	ok, err = uc.Execute(context.Background(), student.ID, mentor.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	// a cancelled booking no longer counts as a relationship
	b.Status = string(domain.StatusCancelledByStudent)
	ok, err = uc.Execute(context.Background(), student.ID, mentor.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
