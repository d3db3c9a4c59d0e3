package booking

import (
	"context"

	domain "github.com/mentorlink/mentor-booking-api/internal/domain/booking"
	"github.com/mentorlink/mentor-booking-api/internal/models"
)

type ListUserBookings struct {
	repo domain.Repository
}

func NewListUserBookings(repo domain.Repository) *ListUserBookings {
	return &ListUserBookings{repo: repo}
}

// Execute lists every booking the user is party to, mentor or student side,
// newest session first.
func (uc *ListUserBookings) Execute(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {
	return uc.repo.ListBookingsForUser(ctx, userID)
}
