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

// UserService exposes user account operations.
type UserService interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, name string) (*model.User, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*model.User, error)
	Reactivate(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type userService struct {
	users repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, name string) (*model.User, error) {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Name = name
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Deactivate flips the active flag off. The user's outstanding tokens keep
// verifying, but the authentication filter denies them on the next request.
func (s *userService) Deactivate(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.setActive(ctx, id, false)
}

// Reactivate flips the active flag back on.
func (s *userService) Reactivate(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.setActive(ctx, id, true)
}

func (s *userService) setActive(ctx context.Context, id uuid.UUID, active bool) (*model.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Active = active
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
