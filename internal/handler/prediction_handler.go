package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"predictify/internal/service"
)

// PredictionHandler handles attendance prediction endpoints.
type PredictionHandler struct {
	predictionService service.PredictionService
}

// NewPredictionHandler creates a new prediction handler.
func NewPredictionHandler(predictionService service.PredictionService) *PredictionHandler {
	return &PredictionHandler{predictionService: predictionService}
}

// Get godoc
// @Summary Get the stored attendance prediction for an event
// @Tags predictions
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {object} model.Prediction
// @Failure 404 {object} errors.ErrorResponse
// @Router /predictions/events/{eventId} [get]
func (h *PredictionHandler) Get(c echo.Context) error {
	eventID, err := parseUUIDParam(c, "eventId")
	if err != nil {
		return err
	}
	prediction, err := h.predictionService.Get(c.Request().Context(), eventID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, prediction)
}

// Generate godoc
// @Summary Recompute the attendance prediction for an event
// @Tags predictions
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Success 200 {object} model.Prediction
// @Failure 404 {object} errors.ErrorResponse
// @Router /predictions/events/{eventId}/generate [post]
func (h *PredictionHandler) Generate(c echo.Context) error {
	eventID, err := parseUUIDParam(c, "eventId")
	if err != nil {
		return err
	}
	prediction, err := h.predictionService.Generate(c.Request().Context(), eventID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, prediction)
}

// Insight godoc
// @Summary Get the AI-generated insight for an event's expected turnout
// @Tags predictions
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /predictions/events/{eventId}/insight [get]
func (h *PredictionHandler) Insight(c echo.Context) error {
	eventID, err := parseUUIDParam(c, "eventId")
	if err != nil {
		return err
	}
	insight, err := h.predictionService.Insight(c.Request().Context(), eventID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"insight": insight})
}
