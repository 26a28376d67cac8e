package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"predictify/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

// MockOrganizerRepository is a mock implementation of OrganizerRepository.
type MockOrganizerRepository struct {
	mock.Mock
}

func (m *MockOrganizerRepository) Create(ctx context.Context, profile *model.OrganizerProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockOrganizerRepository) Update(ctx context.Context, profile *model.OrganizerProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockOrganizerRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.OrganizerProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrganizerProfile), args.Error(1)
}

func (m *MockOrganizerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.OrganizerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrganizerProfile), args.Error(1)
}

func (m *MockOrganizerRepository) List(ctx context.Context) ([]model.OrganizerProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OrganizerProfile), args.Error(1)
}

// MockEventRepository is a mock implementation of EventRepository.
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event *model.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) Update(ctx context.Context, event *model.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEventRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventRepository) FindBySlug(ctx context.Context, slug string) (*model.Event, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventRepository) ListUpcoming(ctx context.Context, after time.Time) ([]model.Event, error) {
	args := m.Called(ctx, after)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Event), args.Error(1)
}

func (m *MockEventRepository) ListFeatured(ctx context.Context) ([]model.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Event), args.Error(1)
}

func (m *MockEventRepository) ListTrending(ctx context.Context, limit int) ([]model.Event, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Event), args.Error(1)
}

func (m *MockEventRepository) Search(ctx context.Context, keyword string) ([]model.Event, error) {
	args := m.Called(ctx, keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Event), args.Error(1)
}

func (m *MockEventRepository) ListByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]model.Event, error) {
	args := m.Called(ctx, organizerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Event), args.Error(1)
}

// MockRegistrationRepository is a mock implementation of RegistrationRepository.
type MockRegistrationRepository struct {
	mock.Mock
}

func (m *MockRegistrationRepository) Create(ctx context.Context, reg *model.Registration) error {
	args := m.Called(ctx, reg)
	return args.Error(0)
}

func (m *MockRegistrationRepository) Update(ctx context.Context, reg *model.Registration) error {
	args := m.Called(ctx, reg)
	return args.Error(0)
}

func (m *MockRegistrationRepository) FindByEventAndUser(ctx context.Context, eventID, userID uuid.UUID) (*model.Registration, error) {
	args := m.Called(ctx, eventID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Registration), args.Error(1)
}

func (m *MockRegistrationRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]model.Registration, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Registration), args.Error(1)
}

func (m *MockRegistrationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Registration, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Registration), args.Error(1)
}

func (m *MockRegistrationRepository) CountActiveByEvent(ctx context.Context, eventID uuid.UUID) (int64, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).(int64), args.Error(1)
}

// MockPredictionRepository is a mock implementation of PredictionRepository.
type MockPredictionRepository struct {
	mock.Mock
}

func (m *MockPredictionRepository) Upsert(ctx context.Context, prediction *model.Prediction) error {
	args := m.Called(ctx, prediction)
	return args.Error(0)
}

func (m *MockPredictionRepository) FindByEventID(ctx context.Context, eventID uuid.UUID) (*model.Prediction, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Prediction), args.Error(1)
}

// MockGenerator is a mock implementation of ai.Generator.
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockGenerator) ModelName() string {
	args := m.Called()
	return args.String(0)
}
