package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"predictify/internal/cache"
	apperrors "predictify/internal/errors"
	"predictify/internal/model"
	"predictify/internal/repository"
)

const (
	upcomingCacheKey = "events:upcoming"
	eventCacheTTL    = 2 * time.Minute
	trendingLimit    = 10
)

// EventInput carries event fields for create and update.
type EventInput struct {
	Title       string
	Description string
	Category    string
	Location    string
	Capacity    int
	StartsAt    time.Time
	EndsAt      time.Time
	Featured    bool
}

// EventService exposes event operations. Mutations enforce ownership: only
// the organizer who created an event may change it.
type EventService interface {
	GetUpcoming(ctx context.Context) ([]model.Event, error)
	GetFeatured(ctx context.Context) ([]model.Event, error)
	GetTrending(ctx context.Context) ([]model.Event, error)
	Search(ctx context.Context, keyword string) ([]model.Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error)
	GetBySlug(ctx context.Context, slug string) (*model.Event, error)
	GetByOrganizerUser(ctx context.Context, userID uuid.UUID) ([]model.Event, error)
	Create(ctx context.Context, userID uuid.UUID, in EventInput) (*model.Event, error)
	Update(ctx context.Context, id, userID uuid.UUID, in EventInput) (*model.Event, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	Publish(ctx context.Context, id, userID uuid.UUID) (*model.Event, error)
	Cancel(ctx context.Context, id, userID uuid.UUID) (*model.Event, error)
}

type eventService struct {
	events     repository.EventRepository
	organizers repository.OrganizerRepository
	cache      *cache.Client
}

// NewEventService builds an EventService.
func NewEventService(events repository.EventRepository, organizers repository.OrganizerRepository, cache *cache.Client) EventService {
	return &eventService{events: events, organizers: organizers, cache: cache}
}

func (s *eventService) GetUpcoming(ctx context.Context) ([]model.Event, error) {
	if data, _ := s.cache.Get(ctx, upcomingCacheKey); data != nil {
		var cached []model.Event
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	events, err := s.events.ListUpcoming(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(events); err == nil {
		_ = s.cache.Set(ctx, upcomingCacheKey, payload, eventCacheTTL)
	}
	return events, nil
}

func (s *eventService) GetFeatured(ctx context.Context) ([]model.Event, error) {
	return s.events.ListFeatured(ctx)
}

func (s *eventService) GetTrending(ctx context.Context) ([]model.Event, error) {
	return s.events.ListTrending(ctx, trendingLimit)
}

func (s *eventService) Search(ctx context.Context, keyword string) ([]model.Event, error) {
	return s.events.Search(ctx, keyword)
}

func (s *eventService) GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (s *eventService) GetBySlug(ctx context.Context, slug string) (*model.Event, error) {
	event, err := s.events.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (s *eventService) GetByOrganizerUser(ctx context.Context, userID uuid.UUID) ([]model.Event, error) {
	profile, err := s.organizerFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.events.ListByOrganizer(ctx, profile.ID)
}

// Create adds a DRAFT event owned by the caller's organizer profile.
func (s *eventService) Create(ctx context.Context, userID uuid.UUID, in EventInput) (*model.Event, error) {
	profile, err := s.organizerFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	event := &model.Event{
		ID:          uuid.New(),
		OrganizerID: profile.ID,
		Title:       in.Title,
		Slug:        slugify(in.Title),
		Description: in.Description,
		Category:    in.Category,
		Location:    in.Location,
		Capacity:    in.Capacity,
		StartsAt:    in.StartsAt,
		EndsAt:      in.EndsAt,
		Status:      model.EventDraft,
		Featured:    in.Featured,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	s.invalidateListings(ctx)
	return event, nil
}

func (s *eventService) Update(ctx context.Context, id, userID uuid.UUID, in EventInput) (*model.Event, error) {
	event, err := s.ownedEvent(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	event.Title = in.Title
	event.Slug = slugify(in.Title)
	event.Description = in.Description
	event.Category = in.Category
	event.Location = in.Location
	event.Capacity = in.Capacity
	event.StartsAt = in.StartsAt
	event.EndsAt = in.EndsAt
	event.Featured = in.Featured

	if err := s.events.Update(ctx, event); err != nil {
		return nil, err
	}
	s.invalidateListings(ctx)
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := s.ownedEvent(ctx, id, userID); err != nil {
		return err
	}
	if err := s.events.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateListings(ctx)
	return nil
}

// Publish moves a DRAFT event to PUBLISHED.
func (s *eventService) Publish(ctx context.Context, id, userID uuid.UUID) (*model.Event, error) {
	event, err := s.ownedEvent(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if event.Status != model.EventDraft {
		return nil, apperrors.ErrInvalidEventState
	}
	event.Status = model.EventPublished
	if err := s.events.Update(ctx, event); err != nil {
		return nil, err
	}
	s.invalidateListings(ctx)
	return event, nil
}

// Cancel moves a non-cancelled event to CANCELLED.
func (s *eventService) Cancel(ctx context.Context, id, userID uuid.UUID) (*model.Event, error) {
	event, err := s.ownedEvent(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if event.Status == model.EventCancelled {
		return nil, apperrors.ErrInvalidEventState
	}
	event.Status = model.EventCancelled
	if err := s.events.Update(ctx, event); err != nil {
		return nil, err
	}
	s.invalidateListings(ctx)
	return event, nil
}

func (s *eventService) organizerFor(ctx context.Context, userID uuid.UUID) (*model.OrganizerProfile, error) {
	profile, err := s.organizers.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotOrganizer
		}
		return nil, err
	}
	return profile, nil
}

func (s *eventService) ownedEvent(ctx context.Context, id, userID uuid.UUID) (*model.Event, error) {
	event, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	profile, err := s.organizerFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID != profile.ID {
		return nil, apperrors.ErrNotEventOwner
	}
	return event, nil
}

func (s *eventService) invalidateListings(ctx context.Context) {
	_ = s.cache.Delete(ctx, upcomingCacheKey)
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugPattern.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	// Unique index on slug; suffix keeps republished titles distinct.
	return fmt.Sprintf("%s-%s", slug, uuid.New().String()[:8])
}
