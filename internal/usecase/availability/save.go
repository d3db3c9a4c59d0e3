package availability

import (
	"context"

	"gorm.io/datatypes"

	"github.com/mentorlink/mentor-booking-api/internal/audit"
	domain "github.com/mentorlink/mentor-booking-api/internal/domain/booking"
	"github.com/mentorlink/mentor-booking-api/internal/domain/schedule"
	"github.com/mentorlink/mentor-booking-api/internal/models"
)

type SaveAvailabilityInput struct {
	MentorID uint
	Timezone string
	Schedule map[string][]schedule.SlotInput
}

type SaveAvailability struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSaveAvailability(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *SaveAvailability {
	return &SaveAvailability{
		repo:  repo,
		audit: auditDispatcher,
	}
}

// Execute validates the submitted weekly schedule and replaces the mentor's
// stored availability document with the normalized form. Validation errors
// come back as *schedule.ValidationError before anything is written.
func (uc *SaveAvailability) Execute(
	ctx context.Context,
	in SaveAvailabilityInput,
) (*models.MentorAvailability, error) {

	if err := schedule.ValidateTimezone(in.Timezone); err != nil {
		return nil, err
	}

	normalized, err := schedule.ValidateWeekly(in.Schedule)
	if err != nil {
		return nil, err
	}

	doc, err := normalized.Document()
	if err != nil {
		return nil, err
	}

	saved, err := uc.repo.UpsertAvailability(ctx, &models.MentorAvailability{
		MentorID: in.MentorID,
		Timezone: in.Timezone,
		Schedule: datatypes.JSON(doc),
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.MentorID,
		Action:   audit.ActionAvailabilitySaved,
		Entity:   "mentor_availability",
		EntityID: &saved.ID,
	})

	return saved, nil
}
