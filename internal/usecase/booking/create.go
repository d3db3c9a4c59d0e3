package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mentorlink/mentor-booking-api/internal/audit"
	domain "github.com/mentorlink/mentor-booking-api/internal/domain/booking"
	"github.com/mentorlink/mentor-booking-api/internal/httperr"
	"github.com/mentorlink/mentor-booking-api/internal/models"
	"github.com/mentorlink/mentor-booking-api/internal/notify"
	"github.com/mentorlink/mentor-booking-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	MentorID  uint
	StudentID uint
	ServiceID uint

	// RFC 3339 UTC instant, e.g. "2026-09-14T10:00:00Z".
	SessionDate string

	SessionTopic string
	Notes        string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	mailer *notify.Mailer
}

func NewCreateBooking(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	mailer *notify.Mailer,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		audit:  auditDispatcher,
		mailer: mailer,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	mentor, err := uc.repo.GetMentorByID(ctx, in.MentorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("mentor_not_found")
		}
		return nil, err
	}

	service, err := uc.repo.GetService(ctx, in.MentorID, in.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}

	start, err := time.Parse(time.RFC3339, in.SessionDate)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_session_date")
	}
	start = start.UTC()

	if !start.After(timezone.NowUTC()) {
		return nil, httperr.ErrBusiness("past_session")
	}

	b := &models.Booking{
		MentorID:  in.MentorID,
		StudentID: in.StudentID,
		ServiceID: service.ID,

		SessionStart:    start,
		DurationMinutes: domain.DefaultDurationMinutes,

		// Pricing snapshot; the service row may change later, this must not.
		MentorPrice: service.MentorPrice,
		PlatformFee: service.PlatformFee,
		TaxesFee:    service.TaxesFee,
		TotalPrice:  service.TotalPrice,

		Status:        string(domain.InitialStatus()),
		PaymentStatus: string(domain.InitialPaymentStatus()),

		SessionTopic: in.SessionTopic,
		Notes:        in.Notes,
	}

	if err := uc.repo.CreateBookingIfFree(ctx, b); err != nil {
		if httperr.IsBusiness(err, "slot_conflict") || httperr.IsExclusionConflict(err) {
			uc.audit.Dispatch(audit.Event{
				ActorID:  &in.StudentID,
				Action:   audit.ActionBookingConflict,
				Entity:   "booking",
				Metadata: map[string]any{"mentor_id": in.MentorID, "start": start},
			})
			return nil, httperr.ErrBusiness("slot_conflict")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.StudentID,
		Action:   audit.ActionBookingCreated,
		Entity:   "booking",
		EntityID: &b.ID,
	})

	uc.notifyCreated(ctx, b, mentor)

	return b, nil
}

func (uc *CreateBooking) notifyCreated(
	ctx context.Context,
	b *models.Booking,
	mentor *models.User,
) {
	student, err := uc.repo.GetUserByID(ctx, b.StudentID)
	if err != nil {
		return
	}

	mentorTZ := timezone.DefaultTimezone
	if av, err := uc.repo.GetAvailability(ctx, b.MentorID); err == nil {
		mentorTZ = av.Timezone
	}

	uc.mailer.BookingCreated(b, mentor, student, mentorTZ)
}
