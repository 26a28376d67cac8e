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

// RegistrationService exposes event sign-up operations.
type RegistrationService interface {
	Register(ctx context.Context, eventID, userID uuid.UUID) (*model.Registration, error)
	Cancel(ctx context.Context, eventID, userID uuid.UUID) error
	Get(ctx context.Context, eventID, userID uuid.UUID) (*model.Registration, error)
	IsRegistered(ctx context.Context, eventID, userID uuid.UUID) (bool, error)
	ListByEvent(ctx context.Context, eventID, callerUserID uuid.UUID) ([]model.Registration, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Registration, error)
	MarkAttendance(ctx context.Context, eventID, attendeeID, callerUserID uuid.UUID, attended bool) (*model.Registration, error)
}

type registrationService struct {
	registrations repository.RegistrationRepository
	events        repository.EventRepository
	organizers    repository.OrganizerRepository
}

// NewRegistrationService builds a RegistrationService.
func NewRegistrationService(
	registrations repository.RegistrationRepository,
	events repository.EventRepository,
	organizers repository.OrganizerRepository,
) RegistrationService {
	return &registrationService{
		registrations: registrations,
		events:        events,
		organizers:    organizers,
	}
}

// Register signs the user up for a published event with free capacity.
// A previously cancelled registration is reactivated instead of duplicated.
func (s *registrationService) Register(ctx context.Context, eventID, userID uuid.UUID) (*model.Registration, error) {
	event, err := s.findEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.Status != model.EventPublished {
		return nil, apperrors.ErrEventNotPublished
	}

	if event.Capacity > 0 {
		count, err := s.registrations.CountActiveByEvent(ctx, eventID)
		if err != nil {
			return nil, err
		}
		if count >= int64(event.Capacity) {
			return nil, apperrors.ErrEventFull
		}
	}

	existing, err := s.registrations.FindByEventAndUser(ctx, eventID, userID)
	if err == nil {
		if existing.Status == model.RegistrationActive {
			return nil, apperrors.ErrAlreadyRegistered
		}
		existing.Status = model.RegistrationActive
		existing.Attended = false
		if err := s.registrations.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	reg := &model.Registration{
		ID:      uuid.New(),
		EventID: eventID,
		UserID:  userID,
		Status:  model.RegistrationActive,
	}
	if err := s.registrations.Create(ctx, reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// Cancel withdraws the caller's active registration.
func (s *registrationService) Cancel(ctx context.Context, eventID, userID uuid.UUID) error {
	reg, err := s.Get(ctx, eventID, userID)
	if err != nil {
		return err
	}
	if reg.Status != model.RegistrationActive {
		return apperrors.ErrRegistrationNotFound
	}
	reg.Status = model.RegistrationCancelled
	return s.registrations.Update(ctx, reg)
}

func (s *registrationService) Get(ctx context.Context, eventID, userID uuid.UUID) (*model.Registration, error) {
	reg, err := s.registrations.FindByEventAndUser(ctx, eventID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRegistrationNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (s *registrationService) IsRegistered(ctx context.Context, eventID, userID uuid.UUID) (bool, error) {
	reg, err := s.registrations.FindByEventAndUser(ctx, eventID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return reg.Status == model.RegistrationActive, nil
}

// ListByEvent returns an event's registrations; only the owning organizer
// may see them.
func (s *registrationService) ListByEvent(ctx context.Context, eventID, callerUserID uuid.UUID) ([]model.Registration, error) {
	if err := s.requireEventOwner(ctx, eventID, callerUserID); err != nil {
		return nil, err
	}
	return s.registrations.ListByEvent(ctx, eventID)
}

func (s *registrationService) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Registration, error) {
	return s.registrations.ListByUser(ctx, userID)
}

// MarkAttendance records whether an attendee showed up; organizer-only.
func (s *registrationService) MarkAttendance(ctx context.Context, eventID, attendeeID, callerUserID uuid.UUID, attended bool) (*model.Registration, error) {
	if err := s.requireEventOwner(ctx, eventID, callerUserID); err != nil {
		return nil, err
	}
	reg, err := s.Get(ctx, eventID, attendeeID)
	if err != nil {
		return nil, err
	}
	reg.Attended = attended
	if err := s.registrations.Update(ctx, reg); err != nil {
		return nil, err
	}
	return reg, nil
}

func (s *registrationService) findEvent(ctx context.Context, eventID uuid.UUID) (*model.Event, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (s *registrationService) requireEventOwner(ctx context.Context, eventID, userID uuid.UUID) error {
	event, err := s.findEvent(ctx, eventID)
	if err != nil {
		return err
	}
	profile, err := s.organizers.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotEventOwner
		}
		return err
	}
	if event.OrganizerID != profile.ID {
		return apperrors.ErrNotEventOwner
	}
	return nil
}
