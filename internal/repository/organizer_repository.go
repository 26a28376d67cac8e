package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"predictify/internal/model"
)

// OrganizerRepository defines organizer profile persistence operations.
type OrganizerRepository interface {
	Create(ctx context.Context, profile *model.OrganizerProfile) error
	Update(ctx context.Context, profile *model.OrganizerProfile) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.OrganizerProfile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.OrganizerProfile, error)
	List(ctx context.Context) ([]model.OrganizerProfile, error)
}

type organizerRepository struct {
	db *gorm.DB
}

// NewOrganizerRepository creates a new organizer repository.
func NewOrganizerRepository(db *gorm.DB) OrganizerRepository {
	return &organizerRepository{db: db}
}

func (r *organizerRepository) Create(ctx context.Context, profile *model.OrganizerProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *organizerRepository) Update(ctx context.Context, profile *model.OrganizerProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *organizerRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.OrganizerProfile, error) {
	var profile model.OrganizerProfile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *organizerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.OrganizerProfile, error) {
	var profile model.OrganizerProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *organizerRepository) List(ctx context.Context) ([]model.OrganizerProfile, error) {
	var profiles []model.OrganizerProfile
	if err := r.db.WithContext(ctx).Order("organization_name").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}
