package booking

import (
	"context"

	"github.com/mentorlink/mentor-booking-api/internal/audit"
	domain "github.com/mentorlink/mentor-booking-api/internal/domain/booking"
	"github.com/mentorlink/mentor-booking-api/internal/httperr"
	"github.com/mentorlink/mentor-booking-api/internal/models"
	"github.com/mentorlink/mentor-booking-api/internal/notify"
	"github.com/mentorlink/mentor-booking-api/internal/timezone"
)

type UpdateStatusInput struct {
	BookingID uint

	ActorID   uint
	ActorType string // models.UserTypeMentor or models.UserTypeStudent

	Target string
	Reason string
}

type UpdateBookingStatus struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	mailer *notify.Mailer
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	mailer *notify.Mailer,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:   repo,
		audit:  auditDispatcher,
		mailer: mailer,
	}
}

// Targets each side of the marketplace may drive. Payment-status changes
// come from the payment webhook, not from here.
var mentorTargets = map[domain.Status]bool{
	domain.StatusConfirmed:         true,
	domain.StatusCompleted:         true,
	domain.StatusCancelledByMentor: true,
	domain.StatusNoShow:            true,
}

var studentTargets = map[domain.Status]bool{
	domain.StatusCancelledByStudent: true,
}

func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*models.Booking, error) {

	if !domain.ValidStatus(in.Target) {
		return nil, httperr.ErrBusiness("invalid_status")
	}
	target := domain.Status(in.Target)

	b, err := uc.repo.GetBookingByID(ctx, in.BookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	switch in.ActorType {
	case models.UserTypeMentor:
		if b.MentorID != in.ActorID {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		if !mentorTargets[target] {
			return nil, httperr.ErrBusiness("status_not_allowed")
		}
	case models.UserTypeStudent:
		if b.StudentID != in.ActorID {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		if !studentTargets[target] {
			return nil, httperr.ErrBusiness("status_not_allowed")
		}
	default:
		return nil, httperr.ErrBusiness("status_not_allowed")
	}

	if err := domain.ApplyStatus(b, target, timezone.NowUTC(), in.ActorType, in.Reason); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.ActorID,
		Action:   audit.ActionBookingStatusChange,
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{"to": in.Target},
	})

	uc.notifyOtherParty(ctx, b, in.ActorType)

	return b, nil
}

func (uc *UpdateBookingStatus) notifyOtherParty(
	ctx context.Context,
	b *models.Booking,
	actorType string,
) {
	recipientID := b.StudentID
	if actorType == models.UserTypeStudent {
		recipientID = b.MentorID
	}

	recipient, err := uc.repo.GetUserByID(ctx, recipientID)
	if err != nil {
		return
	}

	uc.mailer.StatusChanged(b, recipient)
}
