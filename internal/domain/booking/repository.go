package booking

import (
	"context"
	"time"

	"github.com/mentorlink/mentor-booking-api/internal/models"
)

type Repository interface {
	// -------- Users --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetMentorByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Services --------
	GetService(
		ctx context.Context,
		mentorID uint,
		serviceID uint,
	) (*models.MentorService, error)

	ListServices(
		ctx context.Context,
		mentorID uint,
	) ([]models.MentorService, error)

	ReplaceServices(
		ctx context.Context,
		mentorID uint,
		services []models.MentorService,
	) error

	// -------- Availability --------
	GetAvailability(
		ctx context.Context,
		mentorID uint,
	) (*models.MentorAvailability, error)

	UpsertAvailability(
		ctx context.Context,
		av *models.MentorAvailability,
	) (*models.MentorAvailability, error)

	// -------- Booking (create / conflict) --------

	// CreateBookingIfFree runs the conflict scan and the insert as one
	// atomically-isolated unit against concurrent attempts for the same
	// mentor. Returns the slot_conflict business error when the proposed
	// interval overlaps a non-cancelled booking.
	CreateBookingIfFree(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (state change / reads) --------
	GetBookingByID(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	ListBookingsForDay(
		ctx context.Context,
		mentorID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Booking, error)

	ListBookingsForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Booking, error)

	HasBookingBetween(
		ctx context.Context,
		studentID uint,
		mentorID uint,
	) (bool, error)
}
