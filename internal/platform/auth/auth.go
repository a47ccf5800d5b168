// Package auth carries the request identity and issues session tokens for
// the dashboard login flow. The practice app performs no real credential
// verification: every request runs as a staff identity, and tokens exist so
// the browser client has a session artifact to hold.
package auth

import (
	"github.com/labstack/echo/v4"
)

const identityKey = "auth_identity"

// Identity describes the staff member a request acts as.
type Identity struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// DevAuthMiddleware stamps every request with the given identity, typically
// the seeded doctor account.
func DevAuthMiddleware(ident Identity) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(identityKey, ident)
			return next(c)
		}
	}
}

// IdentityFrom returns the identity attached to the request, if any.
func IdentityFrom(c echo.Context) (Identity, bool) {
	ident, ok := c.Get(identityKey).(Identity)
	return ident, ok
}
