package model

import (
	"time"

	"github.com/google/uuid"
)

// OrganizerProfile holds public organizer data for a user.
// A user has at most one organizer profile.
type OrganizerProfile struct {
	ID               uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID           uuid.UUID `json:"user_id" gorm:"type:char(36);uniqueIndex;not null"`
	OrganizationName string    `json:"organization_name" gorm:"size:200;not null"`
	Bio              string    `json:"bio,omitempty" gorm:"size:2000"`
	Website          string    `json:"website,omitempty" gorm:"size:255"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
