package handler

import (
	"net/http"

	"yoga-front/internal/domain"
	"yoga-front/internal/infrastructure/flash"
	"yoga-front/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AccountHandler serves the account screen and the account deletion
// action.
type AccountHandler struct {
	account *usecase.Account
	state   domain.SessionState
	flashes *flash.Store
}

// NewAccountHandler creates the account screen handler.
func NewAccountHandler(account *usecase.Account, state domain.SessionState, flashes *flash.Store) *AccountHandler {
	return &AccountHandler{account: account, state: state, flashes: flashes}
}

type accountPage struct {
	page
	User *domain.User
}

// Me renders the logged in user's details.
func (h *AccountHandler) Me(c echo.Context) error {
	user, err := h.account.Get(c.Request().Context())
	if err != nil {
		return mapFetchError(c, err)
	}
	return c.Render(http.StatusOK, "account", accountPage{
		page: basePage(h.state, h.flashes, c),
		User: user,
	})
}

// DeleteMe removes the account, logs the user out and navigates home.
func (h *AccountHandler) DeleteMe(c echo.Context) error {
	if err := h.account.Delete(c.Request().Context()); err != nil {
		return mapFetchError(c, err)
	}
	addFlash(c, h.flashes, "Your account has been deleted !")
	return c.Redirect(http.StatusSeeOther, "/")
}
