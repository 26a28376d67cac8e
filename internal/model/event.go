package model

import (
	"time"

	"github.com/google/uuid"
)

// EventStatus is the lifecycle state of an event.
type EventStatus string

const (
	EventDraft     EventStatus = "DRAFT"
	EventPublished EventStatus = "PUBLISHED"
	EventCancelled EventStatus = "CANCELLED"
)

// Event represents a tech community event.
type Event struct {
	ID          uuid.UUID   `json:"id" gorm:"type:char(36);primaryKey"`
	OrganizerID uuid.UUID   `json:"organizer_id" gorm:"type:char(36);index;not null"`
	Title       string      `json:"title" gorm:"size:200;not null"`
	Slug        string      `json:"slug" gorm:"uniqueIndex;size:220;not null"`
	Description string      `json:"description" gorm:"type:text"`
	Category    string      `json:"category,omitempty" gorm:"size:100;index"`
	Location    string      `json:"location,omitempty" gorm:"size:255"`
	Capacity    int         `json:"capacity" gorm:"not null;default:0"`
	StartsAt    time.Time   `json:"starts_at" gorm:"index;not null"`
	EndsAt      time.Time   `json:"ends_at"`
	Status      EventStatus `json:"status" gorm:"size:20;not null;default:'DRAFT'"`
	Featured    bool        `json:"featured" gorm:"not null;default:false"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
