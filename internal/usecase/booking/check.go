package booking

import (
	"context"

	domain "github.com/mentorlink/mentor-booking-api/internal/domain/booking"
)

type CheckBookingWithMentor struct {
	repo domain.Repository
}

func NewCheckBookingWithMentor(repo domain.Repository) *CheckBookingWithMentor {
	return &CheckBookingWithMentor{repo: repo}
}

// Execute reports whether the student holds any non-cancelled booking with
// the mentor.
func (uc *CheckBookingWithMentor) Execute(
	ctx context.Context,
	studentID uint,
	mentorID uint,
) (bool, error) {
	return uc.repo.HasBookingBetween(ctx, studentID, mentorID)
}
