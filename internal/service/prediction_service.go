package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"predictify/internal/ai"
	"predictify/internal/cache"
	apperrors "predictify/internal/errors"
	"predictify/internal/model"
	"predictify/internal/repository"
)

const predictionCacheTTL = 5 * time.Minute

const insightPromptTemplate = `You are an analyst for a tech event platform.
An event titled %q in category %q has %d confirmed registrations out of a
capacity of %d, and starts on %s. In at most two short paragraphs, give a
plain-language assessment of the expected turnout and one suggestion to
improve attendance. Respond with the assessment only.`

// PredictionService exposes attendance prediction operations.
type PredictionService interface {
	Get(ctx context.Context, eventID uuid.UUID) (*model.Prediction, error)
	Generate(ctx context.Context, eventID uuid.UUID) (*model.Prediction, error)
	Insight(ctx context.Context, eventID uuid.UUID) (string, error)
}

type predictionService struct {
	predictions   repository.PredictionRepository
	events        repository.EventRepository
	registrations repository.RegistrationRepository
	generator     ai.Generator
	cache         *cache.Client
}

// NewPredictionService builds a PredictionService.
func NewPredictionService(
	predictions repository.PredictionRepository,
	events repository.EventRepository,
	registrations repository.RegistrationRepository,
	generator ai.Generator,
	cache *cache.Client,
) PredictionService {
	return &predictionService{
		predictions:   predictions,
		events:        events,
		registrations: registrations,
		generator:     generator,
		cache:         cache,
	}
}

func (s *predictionService) cacheKey(eventID uuid.UUID) string {
	return fmt.Sprintf("prediction:%s", eventID)
}

func (s *predictionService) Get(ctx context.Context, eventID uuid.UUID) (*model.Prediction, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(eventID)); data != nil {
		var cached model.Prediction
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	prediction, err := s.predictions.FindByEventID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPredictionNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(prediction); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(eventID), payload, predictionCacheTTL)
	}
	return prediction, nil
}

// Generate recomputes the attendance estimate for an event from its current
// registrations and stores an AI-generated insight alongside it.
func (s *predictionService) Generate(ctx context.Context, eventID uuid.UUID) (*model.Prediction, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	registered, err := s.registrations.CountActiveByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	attendance, confidence := estimateAttendance(int(registered), event.Capacity)

	insight, err := s.generator.GenerateText(ctx, fmt.Sprintf(insightPromptTemplate,
		event.Title, event.Category, registered, event.Capacity,
		event.StartsAt.Format("2006-01-02")))
	if err != nil {
		return nil, fmt.Errorf("generate insight: %w", err)
	}

	prediction := &model.Prediction{
		ID:                  uuid.New(),
		EventID:             eventID,
		PredictedAttendance: attendance,
		Confidence:          confidence,
		Insight:             insight,
		Model:               s.generator.ModelName(),
		GeneratedAt:         time.Now(),
	}
	if err := s.predictions.Upsert(ctx, prediction); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(eventID))
	return prediction, nil
}

// Insight returns the stored insight text, generating a prediction first
// when none exists yet.
func (s *predictionService) Insight(ctx context.Context, eventID uuid.UUID) (string, error) {
	prediction, err := s.Get(ctx, eventID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrPredictionNotFound) {
			return "", err
		}
		prediction, err = s.Generate(ctx, eventID)
		if err != nil {
			return "", err
		}
	}
	return prediction.Insight, nil
}

// estimateAttendance applies a simple show-rate heuristic: registrations
// discounted by a no-show factor, with confidence rising as the event fills.
func estimateAttendance(registered, capacity int) (int, float64) {
	const showRate = 0.8

	attendance := int(float64(registered) * showRate)
	confidence := 0.5
	if capacity > 0 {
		fill := float64(registered) / float64(capacity)
		if fill > 1 {
			fill = 1
		}
		confidence = 0.5 + 0.4*fill
	}
	return attendance, confidence
}
