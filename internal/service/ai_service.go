package service

import (
	"context"
	"fmt"
	"strings"

	"predictify/internal/ai"
)

const eventDescriptionPromptTemplate = `You are an assistant specialized in
tech communities and programming events. Write an engaging, professional
description for a technology event with the following context:

%s

The description must:
- Be concise (three paragraphs at most)
- Highlight benefits for attendees
- Keep a professional but approachable tone

Respond with the description only, no extra explanations.`

// EventDescriptionInput is the context for AI event description generation.
type EventDescriptionInput struct {
	EventTitle        string
	EventType         string
	Technologies      string
	AdditionalContext string
}

// AIService orchestrates AI-powered text generation.
type AIService interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateEventDescription(ctx context.Context, in EventDescriptionInput) (string, error)
	ModelName() string
}

type aiService struct {
	generator ai.Generator
}

// NewAIService builds an AIService on top of a Generator.
func NewAIService(generator ai.Generator) AIService {
	return &aiService{generator: generator}
}

func (s *aiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	return s.generator.GenerateText(ctx, prompt)
}

func (s *aiService) GenerateEventDescription(ctx context.Context, in EventDescriptionInput) (string, error) {
	prompt := fmt.Sprintf(eventDescriptionPromptTemplate, buildEventContext(in))
	return s.generator.GenerateText(ctx, prompt)
}

func (s *aiService) ModelName() string {
	return s.generator.ModelName()
}

func buildEventContext(in EventDescriptionInput) string {
	parts := []string{fmt.Sprintf("Title: %s", in.EventTitle)}
	if in.EventType != "" {
		parts = append(parts, fmt.Sprintf("Type: %s", in.EventType))
	}
	if in.Technologies != "" {
		parts = append(parts, fmt.Sprintf("Technologies: %s", in.Technologies))
	}
	if in.AdditionalContext != "" {
		parts = append(parts, fmt.Sprintf("Additional context: %s", in.AdditionalContext))
	}
	return strings.Join(parts, "\n")
}
