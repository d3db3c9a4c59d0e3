package models

import (
	"time"

	"gorm.io/datatypes"
)

// One row per mentor; saves always replace the whole schedule document.
type MentorAvailability struct {
	ID uint `gorm:"primaryKey" json:"id"`

	MentorID uint `gorm:"uniqueIndex;not null" json:"mentor_id"`
	Mentor   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Timezone string         `gorm:"size:64;not null" json:"timezone"`
	Schedule datatypes.JSON `gorm:"type:jsonb" json:"schedule"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
