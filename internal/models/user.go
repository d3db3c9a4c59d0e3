package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	UserType     string `gorm:"size:20;not null;default:'student'" json:"user_type"`

	Headline string `gorm:"size:150" json:"headline"`
	Bio      string `gorm:"size:2000" json:"bio"`
	PhotoURL string `gorm:"size:500" json:"photo_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	UserTypeMentor  = "mentor"
	UserTypeStudent = "student"
)
