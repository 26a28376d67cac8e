package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"predictify/internal/model"
)

const bearerPrefix = "Bearer "

// UserResolver resolves the current user record for a token subject.
// The filter consults it on every authenticated request: the token carries
// identity, not authorization, so role and active flag are always current.
type UserResolver interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// Filter returns the per-request authentication middleware. It runs once
// before any handler: it matches the request against the policy table,
// validates the bearer token where required, and attaches the resolved
// identity to the request context. Authorization failures short-circuit
// here and never reach business handlers.
func Filter(policy *Policy, tokens *JWTService, users UserResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			// CORS preflight carries no credentials.
			if req.Method == http.MethodOptions {
				return next(c)
			}

			rule := policy.Evaluate(req.Method, req.URL.Path)
			token, hasToken := bearerToken(req.Header.Get(echo.HeaderAuthorization))

			if rule.Access == AccessPublic {
				// Opportunistic identity: a valid token personalizes the
				// request, an absent or invalid one never fails it.
				if hasToken {
					if id, err := resolveIdentity(req.Context(), tokens, users, token); err == nil {
						SetIdentity(c, id)
					}
				}
				return next(c)
			}

			if !hasToken {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			claims, err := tokens.Verify(token, AccessToken)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			user, err := users.FindByEmail(req.Context(), claims.Subject)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "unknown token subject")
				}
				return err
			}
			if !user.Active {
				// Deactivation is the kill switch: the token still verifies
				// but the account is denied on its next request.
				return echo.NewHTTPError(http.StatusUnauthorized, "account is deactivated")
			}
			if !rule.Satisfies(user.Role) {
				return echo.NewHTTPError(http.StatusForbidden,
					"Access denied. You don't have permission to access this resource.")
			}

			SetIdentity(c, Identity{UserID: user.ID, Email: user.Email, Role: user.Role})
			return next(c)
		}
	}
}

func resolveIdentity(ctx context.Context, tokens *JWTService, users UserResolver, token string) (Identity, error) {
	claims, err := tokens.Verify(token, AccessToken)
	if err != nil {
		return Identity{}, err
	}
	user, err := users.FindByEmail(ctx, claims.Subject)
	if err != nil {
		return Identity{}, err
	}
	if !user.Active {
		return Identity{}, errors.New("account is deactivated")
	}
	return Identity{UserID: user.ID, Email: user.Email, Role: user.Role}, nil
}

func bearerToken(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if len(header) <= len(bearerPrefix) {
		return "", false
	}
	if !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}
