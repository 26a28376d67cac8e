package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"predictify/internal/model"
)

// RegistrationRepository defines event registration persistence operations.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *model.Registration) error
	Update(ctx context.Context, reg *model.Registration) error
	FindByEventAndUser(ctx context.Context, eventID, userID uuid.UUID) (*model.Registration, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]model.Registration, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Registration, error)
	CountActiveByEvent(ctx context.Context, eventID uuid.UUID) (int64, error)
}

type registrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository creates a new registration repository.
func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) Create(ctx context.Context, reg *model.Registration) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

func (r *registrationRepository) Update(ctx context.Context, reg *model.Registration) error {
	return r.db.WithContext(ctx).Save(reg).Error
}

func (r *registrationRepository) FindByEventAndUser(ctx context.Context, eventID, userID uuid.UUID) (*model.Registration, error) {
	var reg model.Registration
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		First(&reg).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *registrationRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]model.Registration, error) {
	var regs []model.Registration
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at").
		Find(&regs).Error
	if err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *registrationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Registration, error) {
	var regs []model.Registration
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&regs).Error
	if err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *registrationRepository) CountActiveByEvent(ctx context.Context, eventID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Registration{}).
		Where("event_id = ? AND status = ?", eventID, model.RegistrationActive).
		Count(&count).Error
	return count, err
}
