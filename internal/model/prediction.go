package model

import (
	"time"

	"github.com/google/uuid"
)

// Prediction is an AI-assisted attendance estimate for an event.
// At most one prediction exists per event; regeneration overwrites it.
type Prediction struct {
	ID                  uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	EventID             uuid.UUID `json:"event_id" gorm:"type:char(36);uniqueIndex;not null"`
	PredictedAttendance int       `json:"predicted_attendance" gorm:"not null"`
	Confidence          float64   `json:"confidence" gorm:"not null"`
	Insight             string    `json:"insight,omitempty" gorm:"type:text"`
	Model               string    `json:"model,omitempty" gorm:"size:100"`
	GeneratedAt         time.Time `json:"generated_at"`
}
