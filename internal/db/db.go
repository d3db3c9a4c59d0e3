package db

import (
	"log"
	"time"

	"github.com/mentorlink/mentor-booking-api/internal/config"
	"github.com/mentorlink/mentor-booking-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.MentorAvailability{},
		&models.MentorService{},
		&models.Booking{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Last line of defense against concurrent double-booking: an exclusion
	// constraint over each booking's [start, start+duration) interval,
	// limited to non-cancelled rows. Row locks cannot serialize two inserts
	// into an empty slot, so starting without this constraint is not an
	// option.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		log.Fatalf("failed to install btree_gist: %v", err)
	}
	if err := db.Exec(`
        DO $$
        BEGIN
            IF NOT EXISTS (
                SELECT 1 FROM pg_constraint WHERE conname = 'bookings_no_overlap'
            ) THEN
                ALTER TABLE bookings ADD CONSTRAINT bookings_no_overlap
                EXCLUDE USING gist (
                    mentor_id WITH =,
                    tstzrange(
                        session_start,
                        session_start + make_interval(mins => duration_minutes)
                    ) WITH &&
                )
                WHERE (status NOT IN ('cancelled_by_student', 'cancelled_by_mentor'));
            END IF;
        END
        $$
    `).Error; err != nil {
		log.Fatalf("failed to create bookings_no_overlap constraint: %v", err)
	}

	return db
}
