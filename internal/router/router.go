package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"predictify/internal/auth"
	"predictify/internal/config"
	"predictify/internal/handler"
	"predictify/internal/metrics"
	"predictify/internal/model"
)

// DefaultPolicy is the ordered access table for the whole API. First match
// wins, so rules for fixed segments (me, my-events) come before the
// parametric rules that would otherwise swallow them. Anything the table
// does not name requires authentication.
func DefaultPolicy() *auth.Policy {
	return auth.NewPolicy(
		auth.Public("*", "/healthz"),
		auth.Public("*", "/metrics"),
		auth.Public("*", "/swagger/*"),

		auth.Public("POST", "/api/v1/auth/register"),
		auth.Public("POST", "/api/v1/auth/login"),
		auth.Public("POST", "/api/v1/auth/authenticate"),

		auth.Authenticated("GET", "/api/v1/events/my-events"),
		auth.Public("GET", "/api/v1/events"),
		auth.Public("GET", "/api/v1/events/upcoming"),
		auth.Public("GET", "/api/v1/events/featured"),
		auth.Public("GET", "/api/v1/events/trending"),
		auth.Public("GET", "/api/v1/events/search"),
		auth.Public("GET", "/api/v1/events/slug/:slug"),
		auth.Public("GET", "/api/v1/events/:id"),

		auth.Authenticated("GET", "/api/v1/organizers/me"),
		auth.Authenticated("GET", "/api/v1/organizers/me/check"),
		auth.Public("GET", "/api/v1/organizers"),
		auth.Public("GET", "/api/v1/organizers/:id"),
		auth.Public("GET", "/api/v1/organizers/:id/events"),

		auth.Public("GET", "/api/v1/predictions/events/:eventId"),
		auth.Public("GET", "/api/v1/predictions/events/:eventId/insight"),

		auth.Authenticated("GET", "/api/v1/users/me"),
		auth.Authenticated("PUT", "/api/v1/users/me"),
		auth.Authenticated("GET", "/api/v1/users/me/registrations"),
		auth.RequireRole("GET", "/api/v1/users", model.RoleAdmin),
		auth.RequireRole("GET", "/api/v1/users/:id", model.RoleAdmin),
		auth.RequireRole("POST", "/api/v1/users/:id/deactivate", model.RoleAdmin),
		auth.RequireRole("POST", "/api/v1/users/:id/reactivate", model.RoleAdmin),
	)
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	tokens *auth.JWTService,
	users auth.UserResolver,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	organizerHandler *handler.OrganizerHandler,
	eventHandler *handler.EventHandler,
	registrationHandler *handler.RegistrationHandler,
	predictionHandler *handler.PredictionHandler,
	aiHandler *handler.AIHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     strings.Split(cfg.CORSAllowedOrigins, ","),
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch, http.MethodOptions, http.MethodHead},
		AllowHeaders:     []string{echo.HeaderAuthorization, echo.HeaderContentType},
		AllowCredentials: true,
		MaxAge:           3600,
	}))
	e.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(cfg.RateLimit),
			Burst:     int(cfg.RateLimit) * 2,
			ExpiresIn: 3 * time.Minute,
		}),
	}))
	e.Use(metrics.Instrument())
	e.Use(auth.Filter(DefaultPolicy(), tokens, users))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")

	// Auth routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/authenticate", authHandler.Authenticate)

	// User routes
	api.GET("/users/me", userHandler.Me)
	api.PUT("/users/me", userHandler.UpdateMe)
	api.GET("/users/me/registrations", userHandler.MyRegistrations)
	api.GET("/users", userHandler.List)
	api.GET("/users/:id", userHandler.GetByID)
	api.POST("/users/:id/deactivate", userHandler.Deactivate)
	api.POST("/users/:id/reactivate", userHandler.Reactivate)

	// Organizer routes
	api.GET("/organizers", organizerHandler.List)
	api.POST("/organizers", organizerHandler.Create)
	api.GET("/organizers/me", organizerHandler.Me)
	api.PUT("/organizers/me", organizerHandler.UpdateMe)
	api.GET("/organizers/me/check", organizerHandler.CheckMe)
	api.GET("/organizers/:id", organizerHandler.GetByID)
	api.GET("/organizers/:id/events", organizerHandler.GetEvents)

	// Event routes
	api.GET("/events", eventHandler.ListUpcoming)
	api.GET("/events/upcoming", eventHandler.ListUpcoming)
	api.POST("/events", eventHandler.Create)
	api.GET("/events/featured", eventHandler.ListFeatured)
	api.GET("/events/trending", eventHandler.ListTrending)
	api.GET("/events/search", eventHandler.Search)
	api.GET("/events/my-events", eventHandler.MyEvents)
	api.GET("/events/slug/:slug", eventHandler.GetBySlug)
	api.GET("/events/:id", eventHandler.GetByID)
	api.PUT("/events/:id", eventHandler.Update)
	api.DELETE("/events/:id", eventHandler.Delete)
	api.POST("/events/:id/publish", eventHandler.Publish)
	api.POST("/events/:id/cancel", eventHandler.Cancel)

	// Registration routes
	api.POST("/events/:eventId/register", registrationHandler.Register)
	api.DELETE("/events/:eventId/register", registrationHandler.Cancel)
	api.GET("/events/:eventId/registration", registrationHandler.Get)
	api.GET("/events/:eventId/registered", registrationHandler.IsRegistered)
	api.GET("/events/:eventId/registrations", registrationHandler.ListByEvent)
	api.POST("/events/:eventId/registrations/:userId/attendance", registrationHandler.MarkAttendance)

	// Prediction routes
	api.GET("/predictions/events/:eventId", predictionHandler.Get)
	api.POST("/predictions/events/:eventId/generate", predictionHandler.Generate)
	api.GET("/predictions/events/:eventId/insight", predictionHandler.Insight)

	// AI routes
	api.POST("/ai/generate", aiHandler.GenerateText)
	api.POST("/ai/generate/event-description", aiHandler.GenerateEventDescription)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
