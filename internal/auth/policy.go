package auth

import (
	"strings"

	"predictify/internal/model"
)

// Access is the level a route demands from its callers.
type Access int

const (
	// AccessPublic routes require no token; a valid one is still honored.
	AccessPublic Access = iota
	// AccessAuthenticated routes require a valid access token.
	AccessAuthenticated
	// AccessRole routes additionally require a specific role. ADMIN
	// satisfies any role requirement.
	AccessRole
)

// Rule maps a method and path pattern to an access requirement.
// Patterns are segment-based: ":name" matches exactly one segment and a
// trailing "*" matches one or more remaining segments.
type Rule struct {
	Method  string // "*" matches every method
	Pattern string
	Access  Access
	Role    model.Role // set when Access == AccessRole
}

// Public builds a rule for routes reachable without a token.
func Public(method, pattern string) Rule {
	return Rule{Method: method, Pattern: pattern, Access: AccessPublic}
}

// Authenticated builds a rule for routes requiring a valid token.
func Authenticated(method, pattern string) Rule {
	return Rule{Method: method, Pattern: pattern, Access: AccessAuthenticated}
}

// RequireRole builds a rule for routes restricted to one role.
func RequireRole(method, pattern string, role model.Role) Rule {
	return Rule{Method: method, Pattern: pattern, Access: AccessRole, Role: role}
}

// Policy is a static, ordered rule table. Evaluation is a pure function of
// (method, path): first match wins, and an unmatched request is
// authenticated-by-default. The table is built once at start and read-only
// afterwards, so concurrent evaluation needs no locking.
type Policy struct {
	rules []Rule
}

// NewPolicy builds a policy from the ordered rule list.
func NewPolicy(rules ...Rule) *Policy {
	return &Policy{rules: rules}
}

// Evaluate returns the requirement for the request. Unmatched paths fall
// back to AccessAuthenticated (deny-by-default).
func (p *Policy) Evaluate(method, path string) Rule {
	for _, r := range p.rules {
		if r.Method != "*" && r.Method != method {
			continue
		}
		if matchPattern(r.Pattern, path) {
			return r
		}
	}
	return Rule{Method: method, Pattern: path, Access: AccessAuthenticated}
}

// Satisfies reports whether the given role meets the rule's requirement.
// ADMIN overrides any role restriction.
func (r Rule) Satisfies(role model.Role) bool {
	if r.Access != AccessRole {
		return true
	}
	return role == r.Role || role == model.RoleAdmin
}

func matchPattern(pattern, path string) bool {
	ps := splitPath(pattern)
	ts := splitPath(path)

	for i, seg := range ps {
		if seg == "*" && i == len(ps)-1 {
			return len(ts) > i
		}
		if i >= len(ts) {
			return false
		}
		if strings.HasPrefix(seg, ":") {
			continue
		}
		if seg != ts[i] {
			return false
		}
	}
	return len(ps) == len(ts)
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
