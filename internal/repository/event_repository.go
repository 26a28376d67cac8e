package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"predictify/internal/model"
)

// EventRepository defines event persistence operations.
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	Update(ctx context.Context, event *model.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error)
	FindBySlug(ctx context.Context, slug string) (*model.Event, error)
	ListUpcoming(ctx context.Context, after time.Time) ([]model.Event, error)
	ListFeatured(ctx context.Context) ([]model.Event, error)
	ListTrending(ctx context.Context, limit int) ([]model.Event, error)
	Search(ctx context.Context, keyword string) ([]model.Event, error)
	ListByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]model.Event, error)
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) Update(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Event{}).Error
}

func (r *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	var event model.Event
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) FindBySlug(ctx context.Context, slug string) (*model.Event, error) {
	var event model.Event
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) ListUpcoming(ctx context.Context, after time.Time) ([]model.Event, error) {
	var events []model.Event
	err := r.db.WithContext(ctx).
		Where("status = ? AND starts_at > ?", model.EventPublished, after).
		Order("starts_at").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) ListFeatured(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	err := r.db.WithContext(ctx).
		Where("status = ? AND featured = ?", model.EventPublished, true).
		Order("starts_at").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// ListTrending orders published events by active registration count.
func (r *eventRepository) ListTrending(ctx context.Context, limit int) ([]model.Event, error) {
	var events []model.Event
	err := r.db.WithContext(ctx).
		Model(&model.Event{}).
		Select("events.*").
		Joins("LEFT JOIN registrations ON registrations.event_id = events.id AND registrations.status = ?", model.RegistrationActive).
		Where("events.status = ?", model.EventPublished).
		Group("events.id").
		Order("COUNT(registrations.id) DESC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) Search(ctx context.Context, keyword string) ([]model.Event, error) {
	var events []model.Event
	pattern := "%" + keyword + "%"
	err := r.db.WithContext(ctx).
		Where("status = ?", model.EventPublished).
		Where("title LIKE ? OR description LIKE ? OR category LIKE ?", pattern, pattern, pattern).
		Order("starts_at").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) ListByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]model.Event, error) {
	var events []model.Event
	err := r.db.WithContext(ctx).
		Where("organizer_id = ?", organizerID).
		Order("starts_at DESC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
