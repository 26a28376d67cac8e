package auth

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"predictify/internal/model"
)

// identityKey is the echo context key for the per-request identity.
const identityKey = "auth.identity"

// Identity is the resolved caller attached to a request after successful
// authentication. It lives for one request and is never persisted.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   model.Role
}

// SetIdentity attaches the identity to the request context.
func SetIdentity(c echo.Context, id Identity) {
	c.Set(identityKey, id)
}

// CurrentIdentity returns the identity attached by the authentication
// filter, or false when the request is anonymous.
func CurrentIdentity(c echo.Context) (Identity, bool) {
	id, ok := c.Get(identityKey).(Identity)
	return id, ok
}
