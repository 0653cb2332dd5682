package middleware

import (
	"net/http"
	"time"

	"yoga-front/internal/domain"
	"yoga-front/internal/infrastructure/token"

	"github.com/labstack/echo/v4"
)

// Decision is the guard's verdict for a single navigation attempt.
type Decision int

const (
	// Allow lets the navigation proceed.
	Allow Decision = iota
	// RedirectToLogin replaces the navigation with the login screen.
	RedirectToLogin
)

// Decide evaluates the guard policy against the current session state.
// Re-evaluated independently on every navigation; there is no memory of
// prior decisions, so logging out and re-entering a protected address
// redirects again. An identity whose token already carries a past exp
// claim is not worth presenting to the backend and counts as logged out.
func Decide(state domain.SessionState) Decision {
	identity := state.Identity()
	if identity == nil {
		return RedirectToLogin
	}
	if token.Expired(identity.Token, time.Now()) {
		return RedirectToLogin
	}
	return Allow
}

// RequireLogin guards protected routes: logged-out navigation is replaced
// with a redirect to /login. A stale identity is dropped on the way out.
func RequireLogin(state domain.SessionState) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if Decide(state) == RedirectToLogin {
				state.LogOut()
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			return next(c)
		}
	}
}

// RequireAdmin guards the session create/update/delete screens. Non-admin
// users are sent back to the sessions list; logged-out users to login.
func RequireAdmin(state domain.SessionState) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if Decide(state) == RedirectToLogin {
				state.LogOut()
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			if !state.Identity().Admin {
				return c.Redirect(http.StatusSeeOther, "/sessions")
			}
			return next(c)
		}
	}
}
