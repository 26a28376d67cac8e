package model

import (
	"time"

	"github.com/google/uuid"
)

// RegistrationStatus is the state of an event registration.
type RegistrationStatus string

const (
	RegistrationActive    RegistrationStatus = "REGISTERED"
	RegistrationCancelled RegistrationStatus = "CANCELLED"
)

// Registration links a user to an event they signed up for.
// A user holds at most one registration per event.
type Registration struct {
	ID        uuid.UUID          `json:"id" gorm:"type:char(36);primaryKey"`
	EventID   uuid.UUID          `json:"event_id" gorm:"type:char(36);uniqueIndex:idx_event_user;not null"`
	UserID    uuid.UUID          `json:"user_id" gorm:"type:char(36);uniqueIndex:idx_event_user;not null"`
	Status    RegistrationStatus `json:"status" gorm:"size:20;not null;default:'REGISTERED'"`
	Attended  bool               `json:"attended" gorm:"not null;default:false"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}
