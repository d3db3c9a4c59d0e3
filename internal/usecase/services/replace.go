package services

import (
	"context"
	"strings"

	"github.com/mentorlink/mentor-booking-api/internal/audit"
	domain "github.com/mentorlink/mentor-booking-api/internal/domain/booking"
	"github.com/mentorlink/mentor-booking-api/internal/httperr"
	"github.com/mentorlink/mentor-booking-api/internal/models"
)

// ServiceInput is one priced offering in a replace batch. Amounts are
// integers in the smallest currency unit.
type ServiceInput struct {
	ServiceName string `json:"service_name" binding:"required"`
	MentorPrice int    `json:"mentor_price"`
	PlatformFee int    `json:"platform_fee"`
	TaxesFee    int    `json:"taxes_fee"`
	TotalPrice  int    `json:"total_price"`
}

type ReplaceServices struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewReplaceServices(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *ReplaceServices {
	return &ReplaceServices{
		repo:  repo,
		audit: auditDispatcher,
	}
}

// Execute validates every item before any row is touched, then replaces the
// mentor's whole service list in one transaction. A validation failure
// leaves the existing rows exactly as they were.
func (uc *ReplaceServices) Execute(
	ctx context.Context,
	mentorID uint,
	items []ServiceInput,
) ([]models.MentorService, error) {

	seen := make(map[string]bool, len(items))
	rows := make([]models.MentorService, 0, len(items))

	for _, it := range items {
		name := strings.TrimSpace(it.ServiceName)
		if name == "" {
			return nil, httperr.ErrBusiness("service_name_required")
		}
		if seen[name] {
			return nil, httperr.ErrBusiness("duplicate_service_name")
		}
		seen[name] = true

		if it.MentorPrice <= 0 || it.PlatformFee < 0 || it.TaxesFee < 0 {
			return nil, httperr.ErrBusiness("invalid_service_price")
		}
		if it.TotalPrice != it.MentorPrice+it.PlatformFee+it.TaxesFee {
			return nil, httperr.ErrBusiness("price_total_mismatch")
		}

		rows = append(rows, models.MentorService{
			MentorID:    mentorID,
			ServiceName: name,
			MentorPrice: it.MentorPrice,
			PlatformFee: it.PlatformFee,
			TaxesFee:    it.TaxesFee,
			TotalPrice:  it.TotalPrice,
		})
	}

	if err := uc.repo.ReplaceServices(ctx, mentorID, rows); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness("duplicate_service_name")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &mentorID,
		Action:   audit.ActionServicesReplaced,
		Entity:   "mentor_service",
		Metadata: map[string]any{"count": len(rows)},
	})

	return uc.repo.ListServices(ctx, mentorID)
}
