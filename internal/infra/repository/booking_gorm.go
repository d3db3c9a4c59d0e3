package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/mentorlink/mentor-booking-api/internal/domain/booking"
	"github.com/mentorlink/mentor-booking-api/internal/httperr"
	"github.com/mentorlink/mentor-booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *BookingGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *BookingGormRepository) GetMentorByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var mentor models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_type = ?", id, models.UserTypeMentor).
		First(&mentor).Error; err != nil {
		return nil, err
	}
	return &mentor, nil
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	mentorID uint,
	serviceID uint,
) (*models.MentorService, error) {

	var svc models.MentorService
	if err := r.db.WithContext(ctx).
		Where("id = ? AND mentor_id = ?", serviceID, mentorID).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *BookingGormRepository) ListServices(
	ctx context.Context,
	mentorID uint,
) ([]models.MentorService, error) {

	var services []models.MentorService
	if err := r.db.WithContext(ctx).
		Where("mentor_id = ?", mentorID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// ReplaceServices is a full replace: delete everything the mentor had, then
// insert the new batch, all in one transaction. Validation happens before
// this is called; a failure here rolls the whole thing back.
func (r *BookingGormRepository) ReplaceServices(
	ctx context.Context,
	mentorID uint,
	services []models.MentorService,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("mentor_id = ?", mentorID).
			Delete(&models.MentorService{}).Error; err != nil {
			return err
		}

		if len(services) == 0 {
			return nil
		}

		for i := range services {
			services[i].MentorID = mentorID
		}

		return tx.Create(&services).Error
	})
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) GetAvailability(
	ctx context.Context,
	mentorID uint,
) (*models.MentorAvailability, error) {

	var av models.MentorAvailability
	if err := r.db.WithContext(ctx).
		Where("mentor_id = ?", mentorID).
		First(&av).Error; err != nil {
		return nil, err
	}
	return &av, nil
}

// UpsertAvailability is insert-or-replace on mentor_id. Last writer wins;
// there is deliberately no concurrency token here.
func (r *BookingGormRepository) UpsertAvailability(
	ctx context.Context,
	av *models.MentorAvailability,
) (*models.MentorAvailability, error) {

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "mentor_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"timezone", "schedule", "updated_at"}),
		}).
		Create(av).Error; err != nil {
		return nil, err
	}

	return r.GetAvailability(ctx, av.MentorID)
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

func (r *BookingGormRepository) CreateBookingIfFree(
	ctx context.Context,
	b *models.Booking,
) error {

	rng := domain.RangeOf(b)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// Lock the mentor's overlapping rows so a concurrent attempt for
		// the same mentor waits for this transaction to finish. Each row's
		// own duration feeds the interval math.
		var conflicts []models.Booking
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"mentor_id = ? AND status NOT IN ? AND session_start < ? AND session_start + make_interval(mins => duration_minutes) > ?",
				b.MentorID, domain.CancelledStatuses(), rng.End, rng.Start,
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness("slot_conflict")
		}

		return tx.Create(b).Error
	})
}

// --------------------------------------------------
// Booking (state change / reads)
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingByID(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) ListBookingsForDay(
	ctx context.Context,
	mentorID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Select("id", "code", "session_start", "duration_minutes", "status").
		Where(
			"mentor_id = ? AND status NOT IN ? AND session_start >= ? AND session_start < ?",
			mentorID, domain.CancelledStatuses(), dayStart, dayEnd,
		).
		Order("session_start ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForUser(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Mentor").
		Preload("Student").
		Preload("Service").
		Where("mentor_id = ? OR student_id = ?", userID, userID).
		Order("session_start DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) HasBookingBetween(
	ctx context.Context,
	studentID uint,
	mentorID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"student_id = ? AND mentor_id = ? AND status NOT IN ?",
			studentID, mentorID, domain.CancelledStatuses(),
		).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
