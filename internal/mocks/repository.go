package mocks

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	domain "github.com/mentorlink/mentor-booking-api/internal/domain/booking"
	"github.com/mentorlink/mentor-booking-api/internal/httperr"
	"github.com/mentorlink/mentor-booking-api/internal/models"
)

// FakeRepository is an in-memory booking.Repository for use-case tests. It
// mirrors the store's semantics: one availability row per mentor, conflict
// scan plus insert under one lock, replace-all services.
type FakeRepository struct {
	mu sync.Mutex

	Users          map[uint]*models.User
	Services       map[uint]*models.MentorService
	Availabilities map[uint]*models.MentorAvailability
	Bookings       []*models.Booking

	nextID uint

	ReplaceServiceCalls int
	ReplaceServicesErr  error

	GetMentorErr  error
	GetServiceErr error
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		Users:          make(map[uint]*models.User),
		Services:       make(map[uint]*models.MentorService),
		Availabilities: make(map[uint]*models.MentorAvailability),
	}
}

func (f *FakeRepository) id() uint {
	f.nextID++
	return f.nextID
}

// -------- Seeding helpers --------

func (f *FakeRepository) AddUser(u models.User) *models.User {
	f.mu.Lock()
	defer f.mu.Unlock()

	if u.ID == 0 {
		u.ID = f.id()
	}
	f.Users[u.ID] = &u
	return &u
}

func (f *FakeRepository) AddService(s models.MentorService) *models.MentorService {
	f.mu.Lock()
	defer f.mu.Unlock()

	if s.ID == 0 {
		s.ID = f.id()
	}
	f.Services[s.ID] = &s
	return &s
}

func (f *FakeRepository) AddBooking(b models.Booking) *models.Booking {
	f.mu.Lock()
	defer f.mu.Unlock()

	if b.ID == 0 {
		b.ID = f.id()
	}
	f.Bookings = append(f.Bookings, &b)
	return &b
}

// -------- Users --------

func (f *FakeRepository) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.Users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *FakeRepository) GetMentorByID(ctx context.Context, id uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.GetMentorErr != nil {
		return nil, f.GetMentorErr
	}

	u, ok := f.Users[id]
	if !ok || u.UserType != models.UserTypeMentor {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

// -------- Services --------

func (f *FakeRepository) GetService(ctx context.Context, mentorID, serviceID uint) (*models.MentorService, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.GetServiceErr != nil {
		return nil, f.GetServiceErr
	}

	s, ok := f.Services[serviceID]
	if !ok || s.MentorID != mentorID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *FakeRepository) ListServices(ctx context.Context, mentorID uint) ([]models.MentorService, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.MentorService
	for id := uint(1); id <= f.nextID; id++ {
		if s, ok := f.Services[id]; ok && s.MentorID == mentorID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *FakeRepository) ReplaceServices(ctx context.Context, mentorID uint, services []models.MentorService) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.ReplaceServiceCalls++
	if f.ReplaceServicesErr != nil {
		return f.ReplaceServicesErr
	}

	for id, s := range f.Services {
		if s.MentorID == mentorID {
			delete(f.Services, id)
		}
	}
	for i := range services {
		s := services[i]
		s.ID = f.id()
		s.MentorID = mentorID
		f.Services[s.ID] = &s
	}
	return nil
}

// -------- Availability --------

func (f *FakeRepository) GetAvailability(ctx context.Context, mentorID uint) (*models.MentorAvailability, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	av, ok := f.Availabilities[mentorID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *av
	return &cp, nil
}

func (f *FakeRepository) UpsertAvailability(ctx context.Context, av *models.MentorAvailability) (*models.MentorAvailability, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	cp := *av
	if existing, ok := f.Availabilities[av.MentorID]; ok {
		cp.ID = existing.ID
		cp.CreatedAt = existing.CreatedAt
	} else {
		cp.ID = f.id()
		cp.CreatedAt = time.Now()
	}
	cp.UpdatedAt = time.Now()

	f.Availabilities[av.MentorID] = &cp
	out := cp
	return &out, nil
}

// -------- Booking --------

func (f *FakeRepository) CreateBookingIfFree(ctx context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	proposed := domain.RangeOf(b)
	for _, existing := range f.Bookings {
		if existing.MentorID != b.MentorID {
			continue
		}
		if domain.IsCancelled(domain.Status(existing.Status)) {
			continue
		}
		if proposed.Overlaps(domain.RangeOf(existing)) {
			return httperr.ErrBusiness("slot_conflict")
		}
	}

	b.ID = f.id()
	cp := *b
	f.Bookings = append(f.Bookings, &cp)
	return nil
}

func (f *FakeRepository) GetBookingByID(ctx context.Context, id uint) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, b := range f.Bookings {
		if b.ID == id {
			cp := *b
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *FakeRepository) UpdateBooking(ctx context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, existing := range f.Bookings {
		if existing.ID == b.ID {
			cp := *b
			f.Bookings[i] = &cp
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *FakeRepository) ListBookingsForDay(ctx context.Context, mentorID uint, dayStart, dayEnd time.Time) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Booking
	for _, b := range f.Bookings {
		if b.MentorID != mentorID {
			continue
		}
		if domain.IsCancelled(domain.Status(b.Status)) {
			continue
		}
		if b.SessionStart.Before(dayStart) || !b.SessionStart.Before(dayEnd) {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (f *FakeRepository) ListBookingsForUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Booking
	for _, b := range f.Bookings {
		if b.MentorID == userID || b.StudentID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *FakeRepository) HasBookingBetween(ctx context.Context, studentID, mentorID uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, b := range f.Bookings {
		if b.StudentID == studentID && b.MentorID == mentorID &&
			!domain.IsCancelled(domain.Status(b.Status)) {
			return true, nil
		}
	}
	return false, nil
}

// Compile-time check
var _ domain.Repository = (*FakeRepository)(nil)
