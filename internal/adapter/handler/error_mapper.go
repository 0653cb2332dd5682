package handler

import (
	"errors"
	"net/http"

	"yoga-front/internal/domain"

	"github.com/labstack/echo/v4"
)

// mapFetchError converts a failed screen fetch into the navigation-level
// outcome. Mutation failures are handled in place by each screen; this
// covers GET screens that cannot render without their data.
func mapFetchError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotLoggedIn):
		return c.Redirect(http.StatusSeeOther, "/login")

	case domain.APIStatus(err) == http.StatusUnauthorized:
		// The backend no longer accepts the held token.
		return c.Redirect(http.StatusSeeOther, "/login")

	case domain.APIStatus(err) == http.StatusNotFound:
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")

	case errors.Is(err, domain.ErrBackendUnavailable):
		return echo.NewHTTPError(http.StatusBadGateway, "backend unavailable")

	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
