package models

import "time"

// Prices are integer amounts in the platform currency's smallest unit.
type MentorService struct {
	ID uint `gorm:"primaryKey" json:"id"`

	MentorID uint `gorm:"not null;uniqueIndex:idx_mentor_service_name" json:"mentor_id"`
	Mentor   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ServiceName string `gorm:"size:100;not null;uniqueIndex:idx_mentor_service_name" json:"service_name"`

	MentorPrice int `gorm:"not null" json:"mentor_price"`
	PlatformFee int `gorm:"not null;default:0" json:"platform_fee"`
	TaxesFee    int `gorm:"not null;default:0" json:"taxes_fee"`
	TotalPrice  int `gorm:"not null" json:"total_price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
