package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"yoga-front/internal/domain"
	"yoga-front/internal/infrastructure/flash"
	"yoga-front/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// SessionHandler serves the sessions list, the detail screen with its
// participation actions, and the create and update forms.
type SessionHandler struct {
	browse        *usecase.BrowseSessions
	detail        *usecase.GetSessionDetail
	save          *usecase.SaveSession
	del           *usecase.DeleteSession
	participation *usecase.Participation
	teachers      *usecase.ListTeachers
	state         domain.SessionState
	flashes       *flash.Store
	validate      *validator.Validate
}

// NewSessionHandler creates the session screens handler.
func NewSessionHandler(
	browse *usecase.BrowseSessions,
	detail *usecase.GetSessionDetail,
	save *usecase.SaveSession,
	del *usecase.DeleteSession,
	participation *usecase.Participation,
	teachers *usecase.ListTeachers,
	state domain.SessionState,
	flashes *flash.Store,
) *SessionHandler {
	return &SessionHandler{
		browse:        browse,
		detail:        detail,
		save:          save,
		del:           del,
		participation: participation,
		teachers:      teachers,
		state:         state,
		flashes:       flashes,
		validate:      newValidator(),
	}
}

type sessionsPage struct {
	page
	Sessions []domain.Session
}

type sessionDetailPage struct {
	page
	Session      *domain.Session
	Teacher      *domain.Teacher
	Participates bool
}

type sessionFormPage struct {
	page
	Form     sessionForm
	Teachers []domain.Teacher
	OnUpdate bool
	Action   string
	OnError  bool
	Errors   map[string]string
}

func sessionID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusNotFound, "session not found")
	}
	return id, nil
}

// List renders every session.
func (h *SessionHandler) List(c echo.Context) error {
	sessions, err := h.browse.Execute(c.Request().Context())
	if err != nil {
		return mapFetchError(c, err)
	}
	return c.Render(http.StatusOK, "sessions", sessionsPage{
		page:     basePage(h.state, h.flashes, c),
		Sessions: sessions,
	})
}

// Detail renders one session with its teacher and the participation
// state of the logged in user.
func (h *SessionHandler) Detail(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	detail, err := h.detail.Execute(c.Request().Context(), id)
	if err != nil {
		return mapFetchError(c, err)
	}

	identity := h.state.Identity()
	if identity == nil {
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	return c.Render(http.StatusOK, "session_detail", sessionDetailPage{
		page:         basePage(h.state, h.flashes, c),
		Session:      detail.Session,
		Teacher:      detail.Teacher,
		Participates: detail.Session.HasParticipant(identity.ID),
	})
}

// CreatePage renders an empty session form.
func (h *SessionHandler) CreatePage(c echo.Context) error {
	teachers, err := h.teachers.Execute(c.Request().Context())
	if err != nil {
		return mapFetchError(c, err)
	}
	return c.Render(http.StatusOK, "session_form", sessionFormPage{
		page:     basePage(h.state, h.flashes, c),
		Teachers: teachers,
		Action:   "/sessions/create",
	})
}

// CreateSubmit creates a session and navigates back to the list.
func (h *SessionHandler) CreateSubmit(c echo.Context) error {
	return h.submit(c, nil)
}

// UpdatePage renders the form pre-populated with an existing session.
func (h *SessionHandler) UpdatePage(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	session, err := h.save.Load(c.Request().Context(), id)
	if err != nil {
		return mapFetchError(c, err)
	}
	teachers, err := h.teachers.Execute(c.Request().Context())
	if err != nil {
		return mapFetchError(c, err)
	}

	return c.Render(http.StatusOK, "session_form", sessionFormPage{
		page: basePage(h.state, h.flashes, c),
		Form: sessionForm{
			Name:        session.Name,
			Date:        session.Date.Format("2006-01-02"),
			TeacherID:   session.TeacherID,
			Description: session.Description,
		},
		Teachers: teachers,
		OnUpdate: true,
		Action:   fmt.Sprintf("/sessions/update/%d", id),
	})
}

// UpdateSubmit overwrites a session and navigates back to the list.
func (h *SessionHandler) UpdateSubmit(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	return h.submit(c, &id)
}

// submit handles both form submissions. A nil id creates, a non-nil id
// updates.
func (h *SessionHandler) submit(c echo.Context, id *int64) error {
	var form sessionForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form")
	}

	onUpdate := id != nil
	action := "/sessions/create"
	if onUpdate {
		action = fmt.Sprintf("/sessions/update/%d", *id)
	}

	if err := h.validate.Struct(form); err != nil {
		teachers, terr := h.teachers.Execute(c.Request().Context())
		if terr != nil {
			return mapFetchError(c, terr)
		}
		return c.Render(http.StatusBadRequest, "session_form", sessionFormPage{
			page:     basePage(h.state, h.flashes, c),
			Form:     form,
			Teachers: teachers,
			OnUpdate: onUpdate,
			Action:   action,
			Errors:   validationMessages(err),
		})
	}

	if _, err := h.save.Execute(c.Request().Context(), id, form.write()); err != nil {
		return mapFetchError(c, err)
	}

	message := "Session created !"
	if onUpdate {
		message = "Session updated !"
	}
	addFlash(c, h.flashes, message)
	return c.Redirect(http.StatusSeeOther, "/sessions")
}

// Delete removes a session and navigates back to the list.
func (h *SessionHandler) Delete(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	if err := h.del.Execute(c.Request().Context(), id); err != nil {
		return mapFetchError(c, err)
	}

	addFlash(c, h.flashes, "Session deleted !")
	return c.Redirect(http.StatusSeeOther, "/sessions")
}

// Participate adds the logged in user to the session roster.
func (h *SessionHandler) Participate(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	if err := h.participation.Join(c.Request().Context(), id); err != nil {
		return h.participationError(c, id, err)
	}
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/sessions/detail/%d", id))
}

// Unparticipate removes the logged in user from the session roster.
func (h *SessionHandler) Unparticipate(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	if err := h.participation.Leave(c.Request().Context(), id); err != nil {
		return h.participationError(c, id, err)
	}
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/sessions/detail/%d", id))
}

// participationError sends rejected toggles back to the detail screen,
// which re-fetches and shows the authoritative roster.
func (h *SessionHandler) participationError(c echo.Context, id int64, err error) error {
	if domain.APIStatus(err) == http.StatusBadRequest {
		return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/sessions/detail/%d", id))
	}
	return mapFetchError(c, err)
}
