package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"predictify/internal/service"
)

// AIHandler handles AI text generation endpoints.
type AIHandler struct {
	aiService service.AIService
}

// NewAIHandler creates a new AI handler.
func NewAIHandler(aiService service.AIService) *AIHandler {
	return &AIHandler{aiService: aiService}
}

// GenerateTextRequest carries a free-form prompt.
type GenerateTextRequest struct {
	Prompt string `json:"prompt" validate:"required,min=10,max=5000"`
}

// GenerateDescriptionRequest carries event context for description generation.
type GenerateDescriptionRequest struct {
	EventTitle        string `json:"eventTitle" validate:"required,max=200"`
	EventType         string `json:"eventType" validate:"omitempty,max=100"`
	Technologies      string `json:"technologies" validate:"omitempty,max=500"`
	AdditionalContext string `json:"additionalContext" validate:"omitempty,max=1000"`
}

// GeneratedTextResponse is the envelope for AI-generated content.
type GeneratedTextResponse struct {
	GeneratedText string    `json:"generated_text"`
	Model         string    `json:"model"`
	GeneratedAt   time.Time `json:"generated_at"`
}

// GenerateText godoc
// @Summary Generate text from a free-form prompt
// @Tags ai
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GenerateTextRequest true "Prompt"
// @Success 200 {object} GeneratedTextResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /ai/generate [post]
func (h *AIHandler) GenerateText(c echo.Context) error {
	var req GenerateTextRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	text, err := h.aiService.GenerateText(c.Request().Context(), req.Prompt)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, GeneratedTextResponse{
		GeneratedText: text,
		Model:         h.aiService.ModelName(),
		GeneratedAt:   time.Now(),
	})
}

// GenerateEventDescription godoc
// @Summary Generate an event description from structured context
// @Tags ai
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GenerateDescriptionRequest true "Event context"
// @Success 200 {object} GeneratedTextResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /ai/generate/event-description [post]
func (h *AIHandler) GenerateEventDescription(c echo.Context) error {
	var req GenerateDescriptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	text, err := h.aiService.GenerateEventDescription(c.Request().Context(), service.EventDescriptionInput{
		EventTitle:        req.EventTitle,
		EventType:         req.EventType,
		Technologies:      req.Technologies,
		AdditionalContext: req.AdditionalContext,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, GeneratedTextResponse{
		GeneratedText: text,
		Model:         h.aiService.ModelName(),
		GeneratedAt:   time.Now(),
	})
}
