package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// Generator produces text from a prompt. It is the only contract the rest
// of the system has with the AI provider.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	ModelName() string
}

// GeminiClient adapts the Gemini API to the Generator interface.
type GeminiClient struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	modelName string
	logger    *zap.Logger
}

// NewGemini creates a Gemini-backed generator.
func NewGemini(ctx context.Context, apiKey, modelName string, logger *zap.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.GenerationConfig = genai.GenerationConfig{
		Temperature:     genai.Ptr[float32](0.7),
		TopP:            genai.Ptr[float32](0.9),
		MaxOutputTokens: genai.Ptr[int32](1024),
	}

	logger.Info("gemini client initialized", zap.String("model", modelName))

	return &GeminiClient{
		client:    client,
		model:     model,
		modelName: modelName,
		logger:    logger,
	}, nil
}

// GenerateText sends the prompt and returns the first candidate's text.
func (c *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		c.logger.Error("gemini request failed", zap.Error(err))
		return "", fmt.Errorf("gemini API error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "", fmt.Errorf("unexpected response type from gemini")
	}
	return out, nil
}

// ModelName returns the configured model identifier.
func (c *GeminiClient) ModelName() string {
	return c.modelName
}

// Close releases the underlying client.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}
