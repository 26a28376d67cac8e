package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"predictify/internal/auth"
	"predictify/internal/service"
)

// EventHandler handles event management endpoints.
type EventHandler struct {
	eventService service.EventService
}

// NewEventHandler creates a new event handler.
func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// EventRequest represents an event create or update payload.
type EventRequest struct {
	Title       string    `json:"title" validate:"required,min=3,max=200"`
	Description string    `json:"description" validate:"max=10000"`
	Category    string    `json:"category" validate:"max=100"`
	Location    string    `json:"location" validate:"max=255"`
	Capacity    int       `json:"capacity" validate:"gte=0"`
	StartsAt    time.Time `json:"starts_at" validate:"required"`
	EndsAt      time.Time `json:"ends_at"`
	Featured    bool      `json:"featured"`
}

func (r EventRequest) toInput() service.EventInput {
	return service.EventInput{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Location:    r.Location,
		Capacity:    r.Capacity,
		StartsAt:    r.StartsAt,
		EndsAt:      r.EndsAt,
		Featured:    r.Featured,
	}
}

// ListUpcoming godoc
// @Summary Get all upcoming published events
// @Tags events
// @Produce json
// @Success 200 {array} model.Event
// @Router /events [get]
func (h *EventHandler) ListUpcoming(c echo.Context) error {
	events, err := h.eventService.GetUpcoming(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// ListFeatured godoc
// @Summary Get featured events
// @Tags events
// @Produce json
// @Success 200 {array} model.Event
// @Router /events/featured [get]
func (h *EventHandler) ListFeatured(c echo.Context) error {
	events, err := h.eventService.GetFeatured(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// ListTrending godoc
// @Summary Get trending events by registration count
// @Tags events
// @Produce json
// @Success 200 {array} model.Event
// @Router /events/trending [get]
func (h *EventHandler) ListTrending(c echo.Context) error {
	events, err := h.eventService.GetTrending(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// Search godoc
// @Summary Search events by keyword
// @Tags events
// @Produce json
// @Param keyword query string true "Search keyword"
// @Success 200 {array} model.Event
// @Failure 400 {object} errors.ErrorResponse
// @Router /events/search [get]
func (h *EventHandler) Search(c echo.Context) error {
	keyword := c.QueryParam("keyword")
	if keyword == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Required parameter 'keyword' is missing")
	}
	events, err := h.eventService.Search(c.Request().Context(), keyword)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// GetByID godoc
// @Summary Get event by ID
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} model.Event
// @Failure 404 {object} errors.ErrorResponse
// @Router /events/{id} [get]
func (h *EventHandler) GetByID(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	event, err := h.eventService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// GetBySlug godoc
// @Summary Get event by slug
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} model.Event
// @Failure 404 {object} errors.ErrorResponse
// @Router /events/slug/{slug} [get]
func (h *EventHandler) GetBySlug(c echo.Context) error {
	event, err := h.eventService.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// MyEvents godoc
// @Summary Get events organized by the current user
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Event
// @Failure 401 {object} errors.ErrorResponse
// @Router /events/my-events [get]
func (h *EventHandler) MyEvents(c echo.Context) error {
	id, _ := auth.CurrentIdentity(c)
	events, err := h.eventService.GetByOrganizerUser(c.Request().Context(), id.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// Create godoc
// @Summary Create a new event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body EventRequest true "Event data"
// @Success 201 {object} model.Event
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /events [post]
func (h *EventHandler) Create(c echo.Context) error {
	var req EventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, _ := auth.CurrentIdentity(c)
	event, err := h.eventService.Create(c.Request().Context(), id.UserID, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, event)
}

// Update godoc
// @Summary Update an event (owner only)
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body EventRequest true "Event data"
// @Success 200 {object} model.Event
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /events/{id} [put]
func (h *EventHandler) Update(c echo.Context) error {
	eventID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req EventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, _ := auth.CurrentIdentity(c)
	event, err := h.eventService.Update(c.Request().Context(), eventID, id.UserID, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// Delete godoc
// @Summary Delete an event (owner only)
// @Tags events
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /events/{id} [delete]
func (h *EventHandler) Delete(c echo.Context) error {
	eventID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	id, _ := auth.CurrentIdentity(c)
	if err := h.eventService.Delete(c.Request().Context(), eventID, id.UserID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Publish godoc
// @Summary Publish a draft event (owner only)
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} model.Event
// @Failure 409 {object} errors.ErrorResponse
// @Router /events/{id}/publish [post]
func (h *EventHandler) Publish(c echo.Context) error {
	eventID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	id, _ := auth.CurrentIdentity(c)
	event, err := h.eventService.Publish(c.Request().Context(), eventID, id.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// Cancel godoc
// @Summary Cancel an event (owner only)
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} model.Event
// @Failure 409 {object} errors.ErrorResponse
// @Router /events/{id}/cancel [post]
func (h *EventHandler) Cancel(c echo.Context) error {
	eventID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	id, _ := auth.CurrentIdentity(c)
	event, err := h.eventService.Cancel(c.Request().Context(), eventID, id.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

func parseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid UUID format")
	}
	return id, nil
}
