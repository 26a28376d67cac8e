package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"predictify/internal/auth"
	apperrors "predictify/internal/errors"
	"predictify/internal/model"
	"predictify/internal/repository"
)

// TokenPair is the access/refresh token pair returned by registration
// and login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthService handles registration and login use cases.
type AuthService interface {
	Register(ctx context.Context, name, email, password string, role model.Role) (*TokenPair, error)
	Authenticate(ctx context.Context, email, password string) (*TokenPair, error)
}

type authService struct {
	users  repository.UserRepository
	tokens *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, tokens *auth.JWTService) AuthService {
	return &authService{users: users, tokens: tokens}
}

// Register creates a user with a hashed password and issues a token pair.
// Email uniqueness is case-insensitive; role defaults to ATTENDEE.
func (s *authService) Register(ctx context.Context, name, email, password string, role model.Role) (*TokenPair, error) {
	email = normalizeEmail(email)

	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrDuplicateEmail
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check email uniqueness: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if !role.Valid() {
		role = model.RoleAttendee
	}

	user := &model.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Active:       true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.issuePair(user.Email)
}

// Authenticate verifies credentials and issues a fresh token pair.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *authService) Authenticate(ctx context.Context, email, password string) (*TokenPair, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.Active {
		return nil, apperrors.ErrAccountInactive
	}

	return s.issuePair(user.Email)
}

func (s *authService) issuePair(subject string) (*TokenPair, error) {
	access, refresh, err := s.tokens.IssuePair(subject, time.Now())
	if err != nil {
		return nil, fmt.Errorf("issue tokens: %w", err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
