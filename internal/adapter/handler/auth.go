package handler

import (
	"log/slog"
	"net/http"

	"yoga-front/internal/domain"
	"yoga-front/internal/infrastructure/flash"
	"yoga-front/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// AuthHandler serves the login and register screens and the logout
// action.
type AuthHandler struct {
	signIn   *usecase.SignIn
	signUp   *usecase.SignUp
	signOut  *usecase.SignOut
	state    domain.SessionState
	flashes  *flash.Store
	validate *validator.Validate
}

// NewAuthHandler creates the auth screens handler.
func NewAuthHandler(signIn *usecase.SignIn, signUp *usecase.SignUp, signOut *usecase.SignOut, state domain.SessionState, flashes *flash.Store) *AuthHandler {
	return &AuthHandler{
		signIn:   signIn,
		signUp:   signUp,
		signOut:  signOut,
		state:    state,
		flashes:  flashes,
		validate: newValidator(),
	}
}

// basePage assembles the nav state and popped flashes for a screen.
func basePage(state domain.SessionState, flashes *flash.Store, c echo.Context) page {
	p := page{Flashes: flashes.Pop(c.Response(), c.Request())}
	if identity := state.Identity(); identity != nil {
		p.LoggedIn = true
		p.Admin = identity.Admin
	}
	return p
}

// addFlash queues a confirmation message. A cookie save failure only
// loses the confirmation, never the mutation, so the redirect proceeds.
func addFlash(c echo.Context, flashes *flash.Store, message string) {
	if err := flashes.Add(c.Response(), c.Request(), message); err != nil {
		slog.ErrorContext(c.Request().Context(), "failed to set flash message", "error", err)
	}
}

type loginPage struct {
	page
	Form    loginForm
	OnError bool
	Errors  map[string]string
}

type registerPage struct {
	page
	Form    registerForm
	OnError bool
	Errors  map[string]string
}

// LoginPage renders the login form.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login", loginPage{
		page: basePage(h.state, h.flashes, c),
	})
}

// LoginSubmit validates the form and performs the login call. A failing
// call leaves the user on the login screen with the fixed error message;
// success navigates to the sessions list.
func (h *AuthHandler) LoginSubmit(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form")
	}

	if err := h.validate.Struct(form); err != nil {
		// Invalid fields never reach the gateway.
		return c.Render(http.StatusBadRequest, "login", loginPage{
			page:   basePage(h.state, h.flashes, c),
			Form:   form,
			Errors: validationMessages(err),
		})
	}

	_, err := h.signIn.Execute(c.Request().Context(), domain.Credentials{
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		return c.Render(http.StatusUnauthorized, "login", loginPage{
			page:    basePage(h.state, h.flashes, c),
			Form:    form,
			OnError: true,
		})
	}

	return c.Redirect(http.StatusSeeOther, "/sessions")
}

// RegisterPage renders the registration form.
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	return c.Render(http.StatusOK, "register", registerPage{
		page: basePage(h.state, h.flashes, c),
	})
}

// RegisterSubmit validates the form and creates the account. Success
// navigates to the login screen; failure stays put with the fixed error
// message.
func (h *AuthHandler) RegisterSubmit(c echo.Context) error {
	var form registerForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form")
	}

	if err := h.validate.Struct(form); err != nil {
		return c.Render(http.StatusBadRequest, "register", registerPage{
			page:   basePage(h.state, h.flashes, c),
			Form:   form,
			Errors: validationMessages(err),
		})
	}

	if err := h.signUp.Execute(c.Request().Context(), form.request()); err != nil {
		status := domain.APIStatus(err)
		if status == 0 {
			status = http.StatusBadGateway
		}
		return c.Render(status, "register", registerPage{
			page:    basePage(h.state, h.flashes, c),
			Form:    form,
			OnError: true,
		})
	}

	return c.Redirect(http.StatusSeeOther, "/login")
}

// Logout clears the session state and navigates home.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.signOut.Execute(c.Request().Context())
	return c.Redirect(http.StatusSeeOther, "/")
}

// Home renders the landing screen. Logged in users go straight to the
// sessions list.
func (h *AuthHandler) Home(c echo.Context) error {
	if h.state.IsLogged() {
		return c.Redirect(http.StatusSeeOther, "/sessions")
	}
	return c.Render(http.StatusOK, "home", struct{ page }{basePage(h.state, h.flashes, c)})
}
