package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"predictify/internal/auth"
	"predictify/internal/service"
)

// RegistrationHandler handles event registration endpoints.
type RegistrationHandler struct {
	registrationService service.RegistrationService
}

// NewRegistrationHandler creates a new registration handler.
func NewRegistrationHandler(registrationService service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrationService: registrationService}
}

// AttendanceRequest marks whether an attendee showed up.
type AttendanceRequest struct {
	Attended bool `json:"attended"`
}

// Register godoc
// @Summary Register the current user for an event
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Success 201 {object} model.Registration
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /events/{eventId}/register [post]
func (h *RegistrationHandler) Register(c echo.Context) error {
	eventID, err := parseUUIDParam(c, "eventId")
	if err != nil {
		return err
	}
	id, _ := auth.CurrentIdentity(c)
	reg, err := h.registrationService.Register(c.Request().Context(), eventID, id.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, reg)
}

// Cancel godoc
// @Summary Cancel the current user's registration
// @Tags registrations
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /events/{eventId}/register [delete]
func (h *RegistrationHandler) Cancel(c echo.Context) error {
	eventID, err := parseUUIDParam(c, "eventId")
	if err != nil {
		return err
	}
	id, _ := auth.CurrentIdentity(c)
	if err := h.registrationService.Cancel(c.Request().Context(), eventID, id.UserID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Get godoc
// @Summary Get the current user's registration for an event
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Success 200 {object} model.Registration
// @Failure 404 {object} errors.ErrorResponse
// @Router /events/{eventId}/registration [get]
func (h *RegistrationHandler) Get(c echo.Context) error {
	eventID, err := parseUUIDParam(c, "eventId")
	if err != nil {
		return err
	}
	id, _ := auth.CurrentIdentity(c)
	reg, err := h.registrationService.Get(c.Request().Context(), eventID, id.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reg)
}

// IsRegistered godoc
// @Summary Check whether the current user is registered for an event
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Success 200 {object} map[string]bool
// @Router /events/{eventId}/registered [get]
func (h *RegistrationHandler) IsRegistered(c echo.Context) error {
	eventID, err := parseUUIDParam(c, "eventId")
	if err != nil {
		return err
	}
	id, _ := auth.CurrentIdentity(c)
	registered, err := h.registrationService.IsRegistered(c.Request().Context(), eventID, id.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"registered": registered})
}

// ListByEvent godoc
// @Summary List an event's registrations (owner only)
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Success 200 {array} model.Registration
// @Failure 403 {object} errors.ErrorResponse
// @Router /events/{eventId}/registrations [get]
func (h *RegistrationHandler) ListByEvent(c echo.Context) error {
	eventID, err := parseUUIDParam(c, "eventId")
	if err != nil {
		return err
	}
	id, _ := auth.CurrentIdentity(c)
	regs, err := h.registrationService.ListByEvent(c.Request().Context(), eventID, id.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, regs)
}

// MarkAttendance godoc
// @Summary Mark an attendee's attendance (owner only)
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Param userId path string true "Attendee user ID"
// @Param request body AttendanceRequest true "Attendance flag"
// @Success 200 {object} model.Registration
// @Failure 403 {object} errors.ErrorResponse
// @Router /events/{eventId}/registrations/{userId}/attendance [post]
func (h *RegistrationHandler) MarkAttendance(c echo.Context) error {
	eventID, err := parseUUIDParam(c, "eventId")
	if err != nil {
		return err
	}
	attendeeID, err := parseUUIDParam(c, "userId")
	if err != nil {
		return err
	}
	var req AttendanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	id, _ := auth.CurrentIdentity(c)
	reg, err := h.registrationService.MarkAttendance(c.Request().Context(), eventID, attendeeID, id.UserID, req.Attended)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reg)
}
