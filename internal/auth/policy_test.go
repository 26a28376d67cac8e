package auth

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"predictify/internal/model"
)

func testPolicy() *Policy {
	return NewPolicy(
		Public("*", "/healthz"),
		Public("POST", "/api/v1/auth/login"),
		Authenticated("GET", "/api/v1/events/my-events"),
		Public("GET", "/api/v1/events"),
		Public("GET", "/api/v1/events/:id"),
		RequireRole("GET", "/api/v1/users", model.RoleAdmin),
		RequireRole("POST", "/api/v1/users/:id/deactivate", model.RoleAdmin),
		Public("*", "/swagger/*"),
	)
}

func TestPolicy_Evaluate(t *testing.T) {
	p := testPolicy()

	tests := []struct {
		name       string
		method     string
		path       string
		wantAccess Access
		wantRole   model.Role
	}{
		{name: "wildcard method", method: http.MethodHead, path: "/healthz", wantAccess: AccessPublic},
		{name: "method must match", method: http.MethodGet, path: "/api/v1/auth/login", wantAccess: AccessAuthenticated},
		{name: "exact before parametric", method: http.MethodGet, path: "/api/v1/events/my-events", wantAccess: AccessAuthenticated},
		{name: "parametric segment", method: http.MethodGet, path: "/api/v1/events/7d4d3f8a", wantAccess: AccessPublic},
		{name: "collection route", method: http.MethodGet, path: "/api/v1/events", wantAccess: AccessPublic},
		{name: "role rule", method: http.MethodGet, path: "/api/v1/users", wantAccess: AccessRole, wantRole: model.RoleAdmin},
		{name: "role rule with param", method: http.MethodPost, path: "/api/v1/users/42/deactivate", wantAccess: AccessRole, wantRole: model.RoleAdmin},
		{name: "trailing wildcard", method: http.MethodGet, path: "/swagger/index.html", wantAccess: AccessPublic},
		{name: "wildcard needs a remainder", method: http.MethodGet, path: "/swagger", wantAccess: AccessAuthenticated},
		{name: "unmatched path denied by default", method: http.MethodDelete, path: "/api/v1/unknown", wantAccess: AccessAuthenticated},
		{name: "longer path does not match shorter pattern", method: http.MethodGet, path: "/api/v1/events/1/registrations", wantAccess: AccessAuthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := p.Evaluate(tt.method, tt.path)
			assert.Equal(t, tt.wantAccess, rule.Access)
			if tt.wantAccess == AccessRole {
				assert.Equal(t, tt.wantRole, rule.Role)
			}
		})
	}
}

func TestPolicy_FirstMatchWins(t *testing.T) {
	p := NewPolicy(
		Public("GET", "/api/v1/things/:id"),
		RequireRole("GET", "/api/v1/things/special", model.RoleAdmin),
	)

	// The parametric rule is listed first, so it shadows the later rule.
	rule := p.Evaluate(http.MethodGet, "/api/v1/things/special")
	assert.Equal(t, AccessPublic, rule.Access)
}

func TestRule_Satisfies(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
		role model.Role
		want bool
	}{
		{name: "public ignores role", rule: Public("GET", "/x"), role: model.RoleAttendee, want: true},
		{name: "authenticated ignores role", rule: Authenticated("GET", "/x"), role: model.RoleAttendee, want: true},
		{name: "matching role", rule: RequireRole("GET", "/x", model.RoleOrganizer), role: model.RoleOrganizer, want: true},
		{name: "mismatched role", rule: RequireRole("GET", "/x", model.RoleOrganizer), role: model.RoleAttendee, want: false},
		{name: "admin overrides any requirement", rule: RequireRole("GET", "/x", model.RoleOrganizer), role: model.RoleAdmin, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.Satisfies(tt.role))
		})
	}
}
