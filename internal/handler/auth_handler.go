package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"predictify/internal/model"
	"predictify/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Name     string     `json:"name" validate:"required,min=2,max=150"`
	Email    string     `json:"email" validate:"required,email"`
	Password string     `json:"password" validate:"required,min=8,max=100"`
	Role     model.Role `json:"role,omitempty" validate:"omitempty,oneof=ADMIN ORGANIZER ATTENDEE"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register godoc
// @Summary Register a new user
// @Description Creates a user account and returns JWT tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 200 {object} service.TokenPair
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	pair, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pair)
}

// Login godoc
// @Summary Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} service.TokenPair
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	pair, err := h.authService.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pair)
}

// Authenticate is a deprecated alias of Login kept for older clients.
//
// Authenticate godoc
// @Summary Authenticate user (deprecated alias of /auth/login)
// @Tags auth
// @Accept json
// @Produce json
// @Deprecated
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} service.TokenPair
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/authenticate [post]
func (h *AuthHandler) Authenticate(c echo.Context) error {
	return h.Login(c)
}
