package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Public reference handed to both parties.
	Code string `gorm:"size:36;uniqueIndex;not null" json:"code"`

	MentorID uint `gorm:"not null;index" json:"mentor_id"`
	Mentor   User `gorm:"foreignKey:MentorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"mentor"`

	StudentID uint `gorm:"not null;index" json:"student_id"`
	Student   User `gorm:"foreignKey:StudentID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"student"`

	ServiceID uint          `gorm:"not null" json:"service_id"`
	Service   MentorService `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service"`

	SessionStart    time.Time `gorm:"not null" json:"session_start"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`

	// Snapshot copied from the service row at creation time. Later price
	// edits never alter a historical booking.
	MentorPrice int `gorm:"not null" json:"mentor_price"`
	PlatformFee int `gorm:"not null" json:"platform_fee"`
	TaxesFee    int `gorm:"not null" json:"taxes_fee"`
	TotalPrice  int `gorm:"not null" json:"total_price"`

	Status        string `gorm:"size:24;not null;default:'pending'" json:"status"`
	PaymentStatus string `gorm:"size:16;not null;default:'pending'" json:"payment_status"`

	SessionTopic string `gorm:"size:255" json:"session_topic"`
	Notes        string `gorm:"size:1000" json:"notes"`

	CancellationReason string     `gorm:"size:255" json:"cancellation_reason,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at"`
	CancelledBy        string     `gorm:"size:20" json:"cancelled_by,omitempty"`
	CompletedAt        *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Code == "" {
		b.Code = uuid.NewString()
	}
	return nil
}
