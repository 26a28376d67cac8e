package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "predictify/internal/errors"
	"predictify/internal/model"
)

func TestEventService_Create(t *testing.T) {
	userID := uuid.New()
	profileID := uuid.New()
	input := EventInput{
		Title:    "Go Conference 2026",
		Category: "CONFERENCE",
		Location: "Berlin",
		Capacity: 300,
		StartsAt: time.Now().AddDate(0, 1, 0),
		EndsAt:   time.Now().AddDate(0, 1, 1),
	}

	t.Run("organizer creates a draft", func(t *testing.T) {
		events := new(MockEventRepository)
		organizers := new(MockOrganizerRepository)
		organizers.On("FindByUserID", mock.Anything, userID).Return(
			&model.OrganizerProfile{ID: profileID, UserID: userID}, nil)
		events.On("Create", mock.Anything, mock.AnythingOfType("*model.Event")).Return(nil)

		svc := NewEventService(events, organizers, nil)
		event, err := svc.Create(context.Background(), userID, input)

		assert.NoError(t, err)
		assert.Equal(t, model.EventDraft, event.Status)
		assert.Equal(t, profileID, event.OrganizerID)
		assert.True(t, strings.HasPrefix(event.Slug, "go-conference-2026-"))
		events.AssertExpectations(t)
		organizers.AssertExpectations(t)
	})

	t.Run("non-organizer is rejected", func(t *testing.T) {
		events := new(MockEventRepository)
		organizers := new(MockOrganizerRepository)
		organizers.On("FindByUserID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewEventService(events, organizers, nil)
		event, err := svc.Create(context.Background(), userID, input)

		assert.ErrorIs(t, err, apperrors.ErrNotOrganizer)
		assert.Nil(t, event)
		events.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestEventService_Update_Ownership(t *testing.T) {
	eventID := uuid.New()
	ownerUserID := uuid.New()
	ownerProfileID := uuid.New()
	strangerUserID := uuid.New()
	strangerProfileID := uuid.New()

	stored := func() *model.Event {
		return &model.Event{ID: eventID, OrganizerID: ownerProfileID, Title: "Old Title", Status: model.EventDraft}
	}
	input := EventInput{Title: "New Title", Capacity: 50}

	t.Run("owner updates", func(t *testing.T) {
		events := new(MockEventRepository)
		organizers := new(MockOrganizerRepository)
		events.On("FindByID", mock.Anything, eventID).Return(stored(), nil)
		organizers.On("FindByUserID", mock.Anything, ownerUserID).Return(
			&model.OrganizerProfile{ID: ownerProfileID, UserID: ownerUserID}, nil)
		events.On("Update", mock.Anything, mock.AnythingOfType("*model.Event")).Return(nil)

		svc := NewEventService(events, organizers, nil)
		event, err := svc.Update(context.Background(), eventID, ownerUserID, input)

		assert.NoError(t, err)
		assert.Equal(t, "New Title", event.Title)
		events.AssertExpectations(t)
	})

	t.Run("another organizer is rejected", func(t *testing.T) {
		events := new(MockEventRepository)
		organizers := new(MockOrganizerRepository)
		events.On("FindByID", mock.Anything, eventID).Return(stored(), nil)
		organizers.On("FindByUserID", mock.Anything, strangerUserID).Return(
			&model.OrganizerProfile{ID: strangerProfileID, UserID: strangerUserID}, nil)

		svc := NewEventService(events, organizers, nil)
		event, err := svc.Update(context.Background(), eventID, strangerUserID, input)

		assert.ErrorIs(t, err, apperrors.ErrNotEventOwner)
		assert.Nil(t, event)
		events.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("missing event", func(t *testing.T) {
		events := new(MockEventRepository)
		organizers := new(MockOrganizerRepository)
		events.On("FindByID", mock.Anything, eventID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewEventService(events, organizers, nil)
		_, err := svc.Update(context.Background(), eventID, ownerUserID, input)

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})
}

func TestEventService_Transitions(t *testing.T) {
	eventID := uuid.New()
	userID := uuid.New()
	profileID := uuid.New()

	setup := func(status model.EventStatus) (*MockEventRepository, *MockOrganizerRepository) {
		events := new(MockEventRepository)
		organizers := new(MockOrganizerRepository)
		events.On("FindByID", mock.Anything, eventID).Return(
			&model.Event{ID: eventID, OrganizerID: profileID, Status: status}, nil)
		organizers.On("FindByUserID", mock.Anything, userID).Return(
			&model.OrganizerProfile{ID: profileID, UserID: userID}, nil)
		return events, organizers
	}

	t.Run("publish draft", func(t *testing.T) {
		events, organizers := setup(model.EventDraft)
		events.On("Update", mock.Anything, mock.AnythingOfType("*model.Event")).Return(nil)

		svc := NewEventService(events, organizers, nil)
		event, err := svc.Publish(context.Background(), eventID, userID)

		assert.NoError(t, err)
		assert.Equal(t, model.EventPublished, event.Status)
	})

	t.Run("publish published fails", func(t *testing.T) {
		events, organizers := setup(model.EventPublished)

		svc := NewEventService(events, organizers, nil)
		_, err := svc.Publish(context.Background(), eventID, userID)

		assert.ErrorIs(t, err, apperrors.ErrInvalidEventState)
		events.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("cancel published", func(t *testing.T) {
		events, organizers := setup(model.EventPublished)
		events.On("Update", mock.Anything, mock.AnythingOfType("*model.Event")).Return(nil)

		svc := NewEventService(events, organizers, nil)
		event, err := svc.Cancel(context.Background(), eventID, userID)

		assert.NoError(t, err)
		assert.Equal(t, model.EventCancelled, event.Status)
	})

	t.Run("cancel cancelled fails", func(t *testing.T) {
		events, organizers := setup(model.EventCancelled)

		svc := NewEventService(events, organizers, nil)
		_, err := svc.Cancel(context.Background(), eventID, userID)

		assert.ErrorIs(t, err, apperrors.ErrInvalidEventState)
	})
}

func TestEventService_GetUpcoming(t *testing.T) {
	events := new(MockEventRepository)
	organizers := new(MockOrganizerRepository)
	upcoming := []model.Event{{ID: uuid.New(), Title: "Meetup"}}
	events.On("ListUpcoming", mock.Anything, mock.AnythingOfType("time.Time")).Return(upcoming, nil)

	// nil cache behaves as a permanent miss, so the repository is hit.
	svc := NewEventService(events, organizers, nil)
	got, err := svc.GetUpcoming(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, upcoming, got)
	events.AssertExpectations(t)
}

func TestSlugify(t *testing.T) {
	slug := slugify("  Go Meetup: Concurrency & Channels!  ")
	assert.True(t, strings.HasPrefix(slug, "go-meetup-concurrency-channels-"))
	assert.NotContains(t, slug, " ")
	assert.NotContains(t, slug, ":")

	// The random suffix keeps equal titles from colliding.
	assert.NotEqual(t, slugify("Same Title"), slugify("Same Title"))
}
