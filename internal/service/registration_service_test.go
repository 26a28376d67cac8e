package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "predictify/internal/errors"
	"predictify/internal/model"
)

func TestRegistrationService_Register(t *testing.T) {
	eventID := uuid.New()
	userID := uuid.New()

	publishedEvent := func(capacity int) *model.Event {
		return &model.Event{ID: eventID, Status: model.EventPublished, Capacity: capacity}
	}

	tests := []struct {
		name          string
		setupMock     func(*MockRegistrationRepository, *MockEventRepository)
		expectedError error
	}{
		{
			name: "successful registration",
			setupMock: func(regs *MockRegistrationRepository, events *MockEventRepository) {
				events.On("FindByID", mock.Anything, eventID).Return(publishedEvent(100), nil)
				regs.On("CountActiveByEvent", mock.Anything, eventID).Return(int64(10), nil)
				regs.On("FindByEventAndUser", mock.Anything, eventID, userID).Return(nil, gorm.ErrRecordNotFound)
				regs.On("Create", mock.Anything, mock.AnythingOfType("*model.Registration")).Return(nil)
			},
		},
		{
			name: "event not found",
			setupMock: func(regs *MockRegistrationRepository, events *MockEventRepository) {
				events.On("FindByID", mock.Anything, eventID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrEventNotFound,
		},
		{
			name: "draft event rejects registration",
			setupMock: func(regs *MockRegistrationRepository, events *MockEventRepository) {
				events.On("FindByID", mock.Anything, eventID).Return(
					&model.Event{ID: eventID, Status: model.EventDraft, Capacity: 100}, nil)
			},
			expectedError: apperrors.ErrEventNotPublished,
		},
		{
			name: "full event rejects registration",
			setupMock: func(regs *MockRegistrationRepository, events *MockEventRepository) {
				events.On("FindByID", mock.Anything, eventID).Return(publishedEvent(10), nil)
				regs.On("CountActiveByEvent", mock.Anything, eventID).Return(int64(10), nil)
			},
			expectedError: apperrors.ErrEventFull,
		},
		{
			name: "unlimited capacity skips the count",
			setupMock: func(regs *MockRegistrationRepository, events *MockEventRepository) {
				events.On("FindByID", mock.Anything, eventID).Return(publishedEvent(0), nil)
				regs.On("FindByEventAndUser", mock.Anything, eventID, userID).Return(nil, gorm.ErrRecordNotFound)
				regs.On("Create", mock.Anything, mock.AnythingOfType("*model.Registration")).Return(nil)
			},
		},
		{
			name: "already registered",
			setupMock: func(regs *MockRegistrationRepository, events *MockEventRepository) {
				events.On("FindByID", mock.Anything, eventID).Return(publishedEvent(100), nil)
				regs.On("CountActiveByEvent", mock.Anything, eventID).Return(int64(10), nil)
				regs.On("FindByEventAndUser", mock.Anything, eventID, userID).Return(
					&model.Registration{EventID: eventID, UserID: userID, Status: model.RegistrationActive}, nil)
			},
			expectedError: apperrors.ErrAlreadyRegistered,
		},
		{
			name: "cancelled registration is reactivated",
			setupMock: func(regs *MockRegistrationRepository, events *MockEventRepository) {
				events.On("FindByID", mock.Anything, eventID).Return(publishedEvent(100), nil)
				regs.On("CountActiveByEvent", mock.Anything, eventID).Return(int64(10), nil)
				regs.On("FindByEventAndUser", mock.Anything, eventID, userID).Return(
					&model.Registration{EventID: eventID, UserID: userID, Status: model.RegistrationCancelled, Attended: true}, nil)
				regs.On("Update", mock.Anything, mock.AnythingOfType("*model.Registration")).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regs := new(MockRegistrationRepository)
			events := new(MockEventRepository)
			organizers := new(MockOrganizerRepository)
			tt.setupMock(regs, events)

			svc := NewRegistrationService(regs, events, organizers)
			reg, err := svc.Register(context.Background(), eventID, userID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, reg)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.RegistrationActive, reg.Status)
				assert.False(t, reg.Attended)
			}

			regs.AssertExpectations(t)
			events.AssertExpectations(t)
		})
	}
}

func TestRegistrationService_Cancel(t *testing.T) {
	eventID := uuid.New()
	userID := uuid.New()

	t.Run("active registration is cancelled", func(t *testing.T) {
		regs := new(MockRegistrationRepository)
		regs.On("FindByEventAndUser", mock.Anything, eventID, userID).Return(
			&model.Registration{EventID: eventID, UserID: userID, Status: model.RegistrationActive}, nil)
		regs.On("Update", mock.Anything, mock.MatchedBy(func(r *model.Registration) bool {
			return r.Status == model.RegistrationCancelled
		})).Return(nil)

		svc := NewRegistrationService(regs, new(MockEventRepository), new(MockOrganizerRepository))
		assert.NoError(t, svc.Cancel(context.Background(), eventID, userID))
		regs.AssertExpectations(t)
	})

	t.Run("cancelling twice fails", func(t *testing.T) {
		regs := new(MockRegistrationRepository)
		regs.On("FindByEventAndUser", mock.Anything, eventID, userID).Return(
			&model.Registration{EventID: eventID, UserID: userID, Status: model.RegistrationCancelled}, nil)

		svc := NewRegistrationService(regs, new(MockEventRepository), new(MockOrganizerRepository))
		err := svc.Cancel(context.Background(), eventID, userID)
		assert.ErrorIs(t, err, apperrors.ErrRegistrationNotFound)
	})

	t.Run("no registration", func(t *testing.T) {
		regs := new(MockRegistrationRepository)
		regs.On("FindByEventAndUser", mock.Anything, eventID, userID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewRegistrationService(regs, new(MockEventRepository), new(MockOrganizerRepository))
		err := svc.Cancel(context.Background(), eventID, userID)
		assert.ErrorIs(t, err, apperrors.ErrRegistrationNotFound)
	})
}

func TestRegistrationService_IsRegistered(t *testing.T) {
	eventID := uuid.New()
	userID := uuid.New()

	tests := []struct {
		name      string
		setupMock func(*MockRegistrationRepository)
		want      bool
	}{
		{
			name: "active registration",
			setupMock: func(regs *MockRegistrationRepository) {
				regs.On("FindByEventAndUser", mock.Anything, eventID, userID).Return(
					&model.Registration{Status: model.RegistrationActive}, nil)
			},
			want: true,
		},
		{
			name: "cancelled registration",
			setupMock: func(regs *MockRegistrationRepository) {
				regs.On("FindByEventAndUser", mock.Anything, eventID, userID).Return(
					&model.Registration{Status: model.RegistrationCancelled}, nil)
			},
			want: false,
		},
		{
			name: "no registration",
			setupMock: func(regs *MockRegistrationRepository) {
				regs.On("FindByEventAndUser", mock.Anything, eventID, userID).Return(nil, gorm.ErrRecordNotFound)
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regs := new(MockRegistrationRepository)
			tt.setupMock(regs)

			svc := NewRegistrationService(regs, new(MockEventRepository), new(MockOrganizerRepository))
			got, err := svc.IsRegistered(context.Background(), eventID, userID)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegistrationService_OwnerOnlyOperations(t *testing.T) {
	eventID := uuid.New()
	attendeeID := uuid.New()
	ownerUserID := uuid.New()
	ownerProfileID := uuid.New()
	strangerUserID := uuid.New()

	event := &model.Event{ID: eventID, OrganizerID: ownerProfileID, Status: model.EventPublished}

	t.Run("owner lists registrations", func(t *testing.T) {
		regs := new(MockRegistrationRepository)
		events := new(MockEventRepository)
		organizers := new(MockOrganizerRepository)
		events.On("FindByID", mock.Anything, eventID).Return(event, nil)
		organizers.On("FindByUserID", mock.Anything, ownerUserID).Return(
			&model.OrganizerProfile{ID: ownerProfileID, UserID: ownerUserID}, nil)
		regs.On("ListByEvent", mock.Anything, eventID).Return([]model.Registration{{EventID: eventID}}, nil)

		svc := NewRegistrationService(regs, events, organizers)
		got, err := svc.ListByEvent(context.Background(), eventID, ownerUserID)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("non-owner cannot list registrations", func(t *testing.T) {
		regs := new(MockRegistrationRepository)
		events := new(MockEventRepository)
		organizers := new(MockOrganizerRepository)
		events.On("FindByID", mock.Anything, eventID).Return(event, nil)
		organizers.On("FindByUserID", mock.Anything, strangerUserID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewRegistrationService(regs, events, organizers)
		_, err := svc.ListByEvent(context.Background(), eventID, strangerUserID)
		assert.ErrorIs(t, err, apperrors.ErrNotEventOwner)
		regs.AssertNotCalled(t, "ListByEvent", mock.Anything, mock.Anything)
	})

	t.Run("owner marks attendance", func(t *testing.T) {
		regs := new(MockRegistrationRepository)
		events := new(MockEventRepository)
		organizers := new(MockOrganizerRepository)
		events.On("FindByID", mock.Anything, eventID).Return(event, nil)
		organizers.On("FindByUserID", mock.Anything, ownerUserID).Return(
			&model.OrganizerProfile{ID: ownerProfileID, UserID: ownerUserID}, nil)
		regs.On("FindByEventAndUser", mock.Anything, eventID, attendeeID).Return(
			&model.Registration{EventID: eventID, UserID: attendeeID, Status: model.RegistrationActive}, nil)
		regs.On("Update", mock.Anything, mock.MatchedBy(func(r *model.Registration) bool {
			return r.Attended
		})).Return(nil)

		svc := NewRegistrationService(regs, events, organizers)
		reg, err := svc.MarkAttendance(context.Background(), eventID, attendeeID, ownerUserID, true)
		assert.NoError(t, err)
		assert.True(t, reg.Attended)
		regs.AssertExpectations(t)
	})
}
