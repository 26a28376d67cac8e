package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"predictify/internal/auth"
	"predictify/internal/service"
)

// UserHandler handles user account endpoints.
type UserHandler struct {
	userService         service.UserService
	registrationService service.RegistrationService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService, registrationService service.RegistrationService) *UserHandler {
	return &UserHandler{userService: userService, registrationService: registrationService}
}

// UpdateProfileRequest updates the current user's profile.
type UpdateProfileRequest struct {
	Name string `json:"name" validate:"required,min=2,max=150"`
}

// Me godoc
// @Summary Get the current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Router /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	id, _ := auth.CurrentIdentity(c)
	user, err := h.userService.GetByID(c.Request().Context(), id.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateMe godoc
// @Summary Update the current user's profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile data"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Router /users/me [put]
func (h *UserHandler) UpdateMe(c echo.Context) error {
	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, _ := auth.CurrentIdentity(c)
	user, err := h.userService.UpdateProfile(c.Request().Context(), id.UserID, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// MyRegistrations godoc
// @Summary List the current user's event registrations
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Registration
// @Router /users/me/registrations [get]
func (h *UserHandler) MyRegistrations(c echo.Context) error {
	id, _ := auth.CurrentIdentity(c)
	regs, err := h.registrationService.ListByUser(c.Request().Context(), id.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, regs)
}

// GetByID godoc
// @Summary Get a user by ID (admin only)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetByID(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	user, err := h.userService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// List godoc
// @Summary List all users (admin only)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Deactivate godoc
// @Summary Deactivate a user account (admin only)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/deactivate [post]
func (h *UserHandler) Deactivate(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	user, err := h.userService.Deactivate(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Reactivate godoc
// @Summary Reactivate a user account (admin only)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/reactivate [post]
func (h *UserHandler) Reactivate(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	user, err := h.userService.Reactivate(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
