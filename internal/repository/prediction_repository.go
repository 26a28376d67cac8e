package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"predictify/internal/model"
)

// PredictionRepository defines prediction persistence operations.
type PredictionRepository interface {
	Upsert(ctx context.Context, prediction *model.Prediction) error
	FindByEventID(ctx context.Context, eventID uuid.UUID) (*model.Prediction, error)
}

type predictionRepository struct {
	db *gorm.DB
}

// NewPredictionRepository creates a new prediction repository.
func NewPredictionRepository(db *gorm.DB) PredictionRepository {
	return &predictionRepository{db: db}
}

// Upsert inserts or replaces the single prediction row for the event.
func (r *predictionRepository) Upsert(ctx context.Context, prediction *model.Prediction) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"predicted_attendance", "confidence", "insight", "model", "generated_at"}),
		}).
		Create(prediction).Error
}

func (r *predictionRepository) FindByEventID(ctx context.Context, eventID uuid.UUID) (*model.Prediction, error) {
	var prediction model.Prediction
	if err := r.db.WithContext(ctx).Where("event_id = ?", eventID).First(&prediction).Error; err != nil {
		return nil, err
	}
	return &prediction, nil
}
