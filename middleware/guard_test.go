package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"yoga-front/internal/domain"
	"yoga-front/internal/infrastructure/state"
	"yoga-front/internal/infrastructure/token"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loggedInHolder(admin bool) *state.Holder {
	h := state.NewHolder()
	h.LogIn(&domain.Identity{Token: "tok", Type: "Bearer", ID: 1, Username: "yoga@studio.com", Admin: admin})
	return h
}

func TestDecide(t *testing.T) {
	h := state.NewHolder()
	assert.Equal(t, RedirectToLogin, Decide(h))

	h.LogIn(&domain.Identity{Token: "tok", Type: "Bearer", ID: 1})
	assert.Equal(t, Allow, Decide(h))

	h.LogOut()
	assert.Equal(t, RedirectToLogin, Decide(h))
}

func request(t *testing.T, e *echo.Echo, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func protectedEcho(h domain.SessionState) *echo.Echo {
	e := echo.New()
	e.GET("/sessions", func(c echo.Context) error {
		return c.String(http.StatusOK, "sessions")
	}, RequireLogin(h))
	e.GET("/sessions/create", func(c echo.Context) error {
		return c.String(http.StatusOK, "create")
	}, RequireAdmin(h))
	return e
}

func TestRequireLogin_RedirectsWhenLoggedOut(t *testing.T) {
	e := protectedEcho(state.NewHolder())

	rec := request(t, e, "/sessions")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRequireLogin_AllowsWhenLoggedIn(t *testing.T) {
	e := protectedEcho(loggedInHolder(false))

	rec := request(t, e, "/sessions")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "sessions", rec.Body.String())
}

func TestRequireLogin_ReEvaluatedPerNavigation(t *testing.T) {
	h := loggedInHolder(false)
	e := protectedEcho(h)

	require.Equal(t, http.StatusOK, request(t, e, "/sessions").Code)

	// Logging out mid-session must re-redirect, even when the address was
	// reachable a moment ago (back/forward history).
	h.LogOut()
	rec := request(t, e, "/sessions")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func expiredTokenHolder(t *testing.T) *state.Holder {
	t.Helper()
	issuer := token.NewIssuer(token.Config{Secret: "guard-test", Issuer: "yoga-backend-mock", TTL: -time.Hour})
	signed, err := issuer.Issue("user@example.com", false)
	require.NoError(t, err)

	h := state.NewHolder()
	h.LogIn(&domain.Identity{Token: signed, Type: "Bearer", ID: 1, Username: "user@example.com"})
	return h
}

func TestRequireLogin_ExpiredTokenIsLoggedOut(t *testing.T) {
	h := expiredTokenHolder(t)
	e := protectedEcho(h)

	rec := request(t, e, "/sessions")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	// The stale identity is dropped, not just hidden for this navigation.
	assert.False(t, h.IsLogged())
}

func TestDecide_ExpiredToken(t *testing.T) {
	assert.Equal(t, RedirectToLogin, Decide(expiredTokenHolder(t)))

	// A token without a readable exp claim is left for the backend to
	// judge.
	h := state.NewHolder()
	h.LogIn(&domain.Identity{Token: "opaque", Type: "Bearer", ID: 1})
	assert.Equal(t, Allow, Decide(h))
}

func TestRequireAdmin(t *testing.T) {
	t.Run("logged out goes to login", func(t *testing.T) {
		rec := request(t, protectedEcho(state.NewHolder()), "/sessions/create")
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
	})

	t.Run("non-admin goes back to the list", func(t *testing.T) {
		rec := request(t, protectedEcho(loggedInHolder(false)), "/sessions/create")
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/sessions", rec.Header().Get("Location"))
	})

	t.Run("admin passes", func(t *testing.T) {
		rec := request(t, protectedEcho(loggedInHolder(true)), "/sessions/create")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
