package ai

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned when no AI provider is configured.
var ErrNotConfigured = errors.New("AI generation is not configured")

type disabledGenerator struct{}

// Disabled returns a Generator that rejects every request. It lets the
// server run without an API key while keeping the AI endpoints wired.
func Disabled() Generator {
	return disabledGenerator{}
}

func (disabledGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	return "", ErrNotConfigured
}

func (disabledGenerator) ModelName() string {
	return "disabled"
}
