package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "predictify/internal/errors"
	"predictify/internal/model"
	"predictify/internal/repository"
)

// OrganizerInput carries organizer profile fields for create and update.
type OrganizerInput struct {
	OrganizationName string
	Bio              string
	Website          string
}

// OrganizerService exposes organizer profile operations.
type OrganizerService interface {
	List(ctx context.Context) ([]model.OrganizerProfile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.OrganizerProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.OrganizerProfile, error)
	IsOrganizer(ctx context.Context, userID uuid.UUID) (bool, error)
	Create(ctx context.Context, userID uuid.UUID, in OrganizerInput) (*model.OrganizerProfile, error)
	UpdateOwn(ctx context.Context, userID uuid.UUID, in OrganizerInput) (*model.OrganizerProfile, error)
}

type organizerService struct {
	organizers repository.OrganizerRepository
}

// NewOrganizerService builds an OrganizerService.
func NewOrganizerService(organizers repository.OrganizerRepository) OrganizerService {
	return &organizerService{organizers: organizers}
}

func (s *organizerService) List(ctx context.Context) ([]model.OrganizerProfile, error) {
	return s.organizers.List(ctx)
}

func (s *organizerService) GetByID(ctx context.Context, id uuid.UUID) (*model.OrganizerProfile, error) {
	profile, err := s.organizers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizerNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (s *organizerService) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.OrganizerProfile, error) {
	profile, err := s.organizers.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizerNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (s *organizerService) IsOrganizer(ctx context.Context, userID uuid.UUID) (bool, error) {
	_, err := s.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrganizerNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Create registers an organizer profile for the user. A user may hold at
// most one profile.
func (s *organizerService) Create(ctx context.Context, userID uuid.UUID, in OrganizerInput) (*model.OrganizerProfile, error) {
	if _, err := s.organizers.FindByUserID(ctx, userID); err == nil {
		return nil, apperrors.ErrDuplicateOrganizer
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	profile := &model.OrganizerProfile{
		ID:               uuid.New(),
		UserID:           userID,
		OrganizationName: in.OrganizationName,
		Bio:              in.Bio,
		Website:          in.Website,
	}
	if err := s.organizers.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *organizerService) UpdateOwn(ctx context.Context, userID uuid.UUID, in OrganizerInput) (*model.OrganizerProfile, error) {
	profile, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile.OrganizationName = in.OrganizationName
	profile.Bio = in.Bio
	profile.Website = in.Website
	if err := s.organizers.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
