package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"predictify/internal/auth"
	"predictify/internal/service"
)

// OrganizerHandler handles organizer profile endpoints.
type OrganizerHandler struct {
	organizerService service.OrganizerService
	eventService     service.EventService
}

// NewOrganizerHandler creates a new organizer handler.
func NewOrganizerHandler(organizerService service.OrganizerService, eventService service.EventService) *OrganizerHandler {
	return &OrganizerHandler{organizerService: organizerService, eventService: eventService}
}

// OrganizerRequest represents an organizer profile create or update payload.
type OrganizerRequest struct {
	OrganizationName string `json:"organization_name" validate:"required,min=2,max=200"`
	Bio              string `json:"bio" validate:"max=2000"`
	Website          string `json:"website" validate:"max=255"`
}

// List godoc
// @Summary Get all organizers
// @Tags organizers
// @Produce json
// @Success 200 {array} model.OrganizerProfile
// @Router /organizers [get]
func (h *OrganizerHandler) List(c echo.Context) error {
	organizers, err := h.organizerService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, organizers)
}

// GetByID godoc
// @Summary Get organizer by ID
// @Tags organizers
// @Produce json
// @Param id path string true "Organizer ID"
// @Success 200 {object} model.OrganizerProfile
// @Failure 404 {object} errors.ErrorResponse
// @Router /organizers/{id} [get]
func (h *OrganizerHandler) GetByID(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	organizer, err := h.organizerService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, organizer)
}

// GetEvents godoc
// @Summary Get an organizer's events
// @Tags organizers
// @Produce json
// @Param id path string true "Organizer ID"
// @Success 200 {array} model.Event
// @Failure 404 {object} errors.ErrorResponse
// @Router /organizers/{id}/events [get]
func (h *OrganizerHandler) GetEvents(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	organizer, err := h.organizerService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	events, err := h.eventService.GetByOrganizerUser(c.Request().Context(), organizer.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// Me godoc
// @Summary Get the current user's organizer profile
// @Tags organizers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.OrganizerProfile
// @Failure 404 {object} errors.ErrorResponse
// @Router /organizers/me [get]
func (h *OrganizerHandler) Me(c echo.Context) error {
	id, _ := auth.CurrentIdentity(c)
	organizer, err := h.organizerService.GetByUserID(c.Request().Context(), id.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, organizer)
}

// CheckMe godoc
// @Summary Check whether the current user has an organizer profile
// @Tags organizers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]bool
// @Router /organizers/me/check [get]
func (h *OrganizerHandler) CheckMe(c echo.Context) error {
	id, _ := auth.CurrentIdentity(c)
	isOrganizer, err := h.organizerService.IsOrganizer(c.Request().Context(), id.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"is_organizer": isOrganizer})
}

// Create godoc
// @Summary Create an organizer profile for the current user
// @Tags organizers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body OrganizerRequest true "Organizer data"
// @Success 201 {object} model.OrganizerProfile
// @Failure 409 {object} errors.ErrorResponse
// @Router /organizers [post]
func (h *OrganizerHandler) Create(c echo.Context) error {
	var req OrganizerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, _ := auth.CurrentIdentity(c)
	organizer, err := h.organizerService.Create(c.Request().Context(), id.UserID, service.OrganizerInput{
		OrganizationName: req.OrganizationName,
		Bio:              req.Bio,
		Website:          req.Website,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, organizer)
}

// UpdateMe godoc
// @Summary Update the current user's organizer profile
// @Tags organizers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body OrganizerRequest true "Organizer data"
// @Success 200 {object} model.OrganizerProfile
// @Failure 404 {object} errors.ErrorResponse
// @Router /organizers/me [put]
func (h *OrganizerHandler) UpdateMe(c echo.Context) error {
	var req OrganizerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, _ := auth.CurrentIdentity(c)
	organizer, err := h.organizerService.UpdateOwn(c.Request().Context(), id.UserID, service.OrganizerInput{
		OrganizationName: req.OrganizationName,
		Bio:              req.Bio,
		Website:          req.Website,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, organizer)
}
