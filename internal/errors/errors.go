package errors

import (
	"errors"
	"net/http"
	"time"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	// Unknown email and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrAccountInactive is returned when the account's active flag is false.
	ErrAccountInactive = errors.New("account is deactivated")
	// ErrDuplicateEmail is returned when registering an already used email.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrForbidden is returned when the caller lacks permission.
	ErrForbidden = errors.New("access denied")

	// ErrUserNotFound is returned when a user lookup yields nothing.
	ErrUserNotFound = errors.New("user not found")
	// ErrEventNotFound is returned when an event lookup yields nothing.
	ErrEventNotFound = errors.New("event not found")
	// ErrOrganizerNotFound is returned when an organizer lookup yields nothing.
	ErrOrganizerNotFound = errors.New("organizer not found")
	// ErrRegistrationNotFound is returned when a registration lookup yields nothing.
	ErrRegistrationNotFound = errors.New("registration not found")
	// ErrPredictionNotFound is returned when no prediction exists for an event.
	ErrPredictionNotFound = errors.New("prediction not found for this event")

	// ErrNotOrganizer is returned when an event operation requires an organizer profile.
	ErrNotOrganizer = errors.New("user does not have an organizer profile")
	// ErrNotEventOwner is returned when a caller modifies an event they do not own.
	ErrNotEventOwner = errors.New("only the event organizer can perform this action")
	// ErrDuplicateOrganizer is returned when a user already has an organizer profile.
	ErrDuplicateOrganizer = errors.New("organizer profile already exists for this user")

	// ErrEventNotPublished is returned when registering for a non-published event.
	ErrEventNotPublished = errors.New("event is not open for registration")
	// ErrEventFull is returned when an event reached its capacity.
	ErrEventFull = errors.New("event has reached its capacity")
	// ErrAlreadyRegistered is returned on duplicate registration.
	ErrAlreadyRegistered = errors.New("already registered for this event")
	// ErrInvalidEventState is returned on an illegal status transition.
	ErrInvalidEventState = errors.New("event state does not allow this transition")
)

// ErrorResponse is the uniform error envelope returned by every endpoint.
type ErrorResponse struct {
	Timestamp time.Time         `json:"timestamp"`
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Path      string            `json:"path"`
	Errors    map[string]string `json:"errors,omitempty"`
}

// NewErrorResponse fills the envelope for the given status and message.
func NewErrorResponse(status int, message, path string, fields map[string]string) ErrorResponse {
	return ErrorResponse{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      path,
		Errors:    fields,
	}
}

// StatusFor maps a domain error to its HTTP status.
// Unknown errors map to 500; the boundary layer replaces their message
// with a generic one so internals never leak to clients.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrAccountInactive):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrNotOrganizer), errors.Is(err, ErrNotEventOwner):
		return http.StatusForbidden
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrEventNotFound),
		errors.Is(err, ErrOrganizerNotFound), errors.Is(err, ErrRegistrationNotFound),
		errors.Is(err, ErrPredictionNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateEmail), errors.Is(err, ErrDuplicateOrganizer),
		errors.Is(err, ErrAlreadyRegistered), errors.Is(err, ErrInvalidEventState):
		return http.StatusConflict
	case errors.Is(err, ErrEventNotPublished), errors.Is(err, ErrEventFull):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
