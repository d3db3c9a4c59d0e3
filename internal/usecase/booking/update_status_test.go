package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/mentorlink/mentor-booking-api/internal/domain/booking"
	"github.com/mentorlink/mentor-booking-api/internal/httperr"
	"github.com/mentorlink/mentor-booking-api/internal/mocks"
	"github.com/mentorlink/mentor-booking-api/internal/models"
	"github.com/mentorlink/mentor-booking-api/internal/notify"
)

func seedPendingBooking(repo *mocks.FakeRepository) (*models.Booking, *models.User, *models.User) {
	mentor, student, service := seedMentorAndStudent(repo)
	b := repo.AddBooking(models.Booking{
		MentorID:        mentor.ID,
		StudentID:       student.ID,
		ServiceID:       service.ID,
		SessionStart:    time.Now().UTC().Add(48 * time.Hour),
		DurationMinutes: 60,
		Status:          string(domain.StatusPending),
		PaymentStatus:   string(domain.PaymentPending),
	})
	return b, mentor, student
}

func newUpdateStatus(repo *mocks.FakeRepository) *UpdateBookingStatus {
	return NewUpdateBookingStatus(repo, nil, &notify.Mailer{})
}

func TestUpdateStatusMentorConfirmsThenCompletes(t *testing.T) {
	repo := mocks.NewFakeRepository()
	b, mentor, _ := seedPendingBooking(repo)
	uc := newUpdateStatus(repo)

	out, err := uc.Execute(context.Background(), UpdateStatusInput{
		BookingID: b.ID,
		ActorID:   mentor.ID,
		ActorType: models.UserTypeMentor,
		Target:    "confirmed",
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), out.Status)

	out, err = uc.Execute(context.Background(), UpdateStatusInput{
		BookingID: b.ID,
		ActorID:   mentor.ID,
		ActorType: models.UserTypeMentor,
		Target:    "completed",
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), out.Status)
	require.NotNil(t, out.CompletedAt)

	stored, err := repo.GetBookingByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), stored.Status)
}

func TestUpdateStatusStudentCancels(t *testing.T) {
	repo := mocks.NewFakeRepository()
	b, _, student := seedPendingBooking(repo)
	uc := newUpdateStatus(repo)

	out, err := uc.Execute(context.Background(), UpdateStatusInput{
		BookingID: b.ID,
		ActorID:   student.ID,
		ActorType: models.UserTypeStudent,
		Target:    "cancelled_by_student",
		Reason:    "found another time",
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelledByStudent), out.Status)
	require.NotNil(t, out.CancelledAt)
	assert.Equal(t, models.UserTypeStudent, out.CancelledBy)
	assert.Equal(t, "found another time", out.CancellationReason)
}

func TestUpdateStatusUnknownTarget(t *testing.T) {
	repo := mocks.NewFakeRepository()
	b, mentor, _ := seedPendingBooking(repo)
	uc := newUpdateStatus(repo)

	_, err := uc.Execute(context.Background(), UpdateStatusInput{
		BookingID: b.ID,
		ActorID:   mentor.ID,
		ActorType: models.UserTypeMentor,
		Target:    "cancelled",
	})
	require.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestUpdateStatusBookingNotFound(t *testing.T) {
	repo := mocks.NewFakeRepository()
	_, mentor, _ := seedPendingBooking(repo)
	uc := newUpdateStatus(repo)

	_, err := uc.Execute(context.Background(), UpdateStatusInput{
		BookingID: 999,
		ActorID:   mentor.ID,
		ActorType: models.UserTypeMentor,
		Target:    "confirmed",
	})
	require.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

func TestUpdateStatusHidesOtherMentorsBookings(t *testing.T) {
	repo := mocks.NewFakeRepository()
	b, _, _ := seedPendingBooking(repo)
	intruder := repo.AddUser(models.User{Email: "x@example.com", UserType: models.UserTypeMentor})
	uc := newUpdateStatus(repo)

	_, err := uc.Execute(context.Background(), UpdateStatusInput{
		BookingID: b.ID,
		ActorID:   intruder.ID,
		ActorType: models.UserTypeMentor,
		Target:    "confirmed",
	})
	require.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

func TestUpdateStatusStudentCannotConfirm(t *testing.T) {
	repo := mocks.NewFakeRepository()
	b, _, student := seedPendingBooking(repo)
	uc := newUpdateStatus(repo)

	_, err := uc.Execute(context.Background(), UpdateStatusInput{
		BookingID: b.ID,
		ActorID:   student.ID,
		ActorType: models.UserTypeStudent,
		Target:    "confirmed",
	})
	require.True(t, httperr.IsBusiness(err, "status_not_allowed"))
}

func TestUpdateStatusMentorCannotCancelAsStudent(t *testing.T) {
	repo := mocks.NewFakeRepository()
	b, mentor, _ := seedPendingBooking(repo)
	uc := newUpdateStatus(repo)

	_, err := uc.Execute(context.Background(), UpdateStatusInput{
		BookingID: b.ID,
		ActorID:   mentor.ID,
		ActorType: models.UserTypeMentor,
		Target:    "cancelled_by_student",
	})
	require.True(t, httperr.IsBusiness(err, "status_not_allowed"))
}

func TestUpdateStatusIllegalTransition(t *testing.T) {
	repo := mocks.NewFakeRepository()
	b, mentor, _ := seedPendingBooking(repo)
	uc := newUpdateStatus(repo)

	// pending -> completed skips confirmation
	_, err := uc.Execute(context.Background(), UpdateStatusInput{
		BookingID: b.ID,
		ActorID:   mentor.ID,
		ActorType: models.UserTypeMentor,
		Target:    "completed",
	})
	require.True(t, httperr.IsBusiness(err, "invalid_state"))

	stored, err := repo.GetBookingByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), stored.Status)
}

func TestUpdateStatusTerminalStateAbsorbs(t *testing.T) {
	repo := mocks.NewFakeRepository()
	b, mentor, student := seedPendingBooking(repo)
	uc := newUpdateStatus(repo)

	_, err := uc.Execute(context.Background(), UpdateStatusInput{
		BookingID: b.ID,
		ActorID:   student.ID,
		ActorType: models.UserTypeStudent,
		Target:    "cancelled_by_student",
	})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), UpdateStatusInput{
		BookingID: b.ID,
		ActorID:   mentor.ID,
		ActorType: models.UserTypeMentor,
		Target:    "confirmed",
	})
	require.True(t, httperr.IsBusiness(err, "invalid_state"))
}
