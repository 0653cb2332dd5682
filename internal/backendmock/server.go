// Package backendmock is an in-memory rendition of the yoga REST API,
// used for local development and end to end tests of the front end. It
// speaks the same wire format as the real backend: JWT bearer auth,
// JSON bodies, and the /api resource layout.
package backendmock

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"yoga-front/internal/domain"
	"yoga-front/internal/infrastructure/token"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

type userRecord struct {
	domain.User
	passwordHash []byte
}

type sessionRecord struct {
	domain.Session
}

// Server holds the mock state and its HTTP surface.
type Server struct {
	issuer *token.Issuer

	mu            sync.Mutex
	users         map[int64]*userRecord
	sessions      map[int64]*sessionRecord
	teachers      map[int64]domain.Teacher
	nextUserID    int64
	nextSessionID int64

	echo *echo.Echo
}

// New creates a mock backend seeded with the two studio teachers and the
// admin account yoga@studio.com / test!1234.
func New(issuer *token.Issuer) *Server {
	s := &Server{
		issuer:        issuer,
		users:         make(map[int64]*userRecord),
		sessions:      make(map[int64]*sessionRecord),
		teachers:      make(map[int64]domain.Teacher),
		nextUserID:    1,
		nextSessionID: 1,
	}
	s.seed()
	s.routes()
	return s
}

// Handler returns the HTTP surface of the mock.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) seed() {
	now := time.Now()
	s.teachers[1] = domain.Teacher{ID: 1, FirstName: "Margot", LastName: "DELAHAYE", CreatedAt: now, UpdatedAt: now}
	s.teachers[2] = domain.Teacher{ID: 2, FirstName: "Hélène", LastName: "THIERCELIN", CreatedAt: now, UpdatedAt: now}

	hash, err := bcrypt.GenerateFromPassword([]byte("test!1234"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	s.users[s.nextUserID] = &userRecord{
		User: domain.User{
			ID:        s.nextUserID,
			Email:     "yoga@studio.com",
			FirstName: "Admin",
			LastName:  "Admin",
			Admin:     true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		passwordHash: hash,
	}
	s.nextUserID++
}

func (s *Server) routes() {
	e := echo.New()
	e.HideBanner = true

	api := e.Group("/api")
	api.POST("/auth/register", s.register)
	api.POST("/auth/login", s.login)

	authed := api.Group("", s.requireToken)
	authed.GET("/session", s.listSessions)
	authed.GET("/session/:id", s.getSession)
	authed.POST("/session", s.createSession)
	authed.PUT("/session/:id", s.updateSession)
	authed.DELETE("/session/:id", s.deleteSession)
	authed.POST("/session/:id/participate/:userId", s.participate)
	authed.DELETE("/session/:id/participate/:userId", s.unparticipate)
	authed.GET("/teacher", s.listTeachers)
	authed.GET("/teacher/:id", s.getTeacher)
	authed.GET("/user/:id", s.getUser)
	authed.DELETE("/user/:id", s.deleteUser)

	s.echo = e
}

func message(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]string{"message": msg})
}

// requireToken validates the bearer token on every resource route.
func (s *Server) requireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			return c.NoContent(http.StatusUnauthorized)
		}
		claims, err := s.issuer.Verify(raw)
		if err != nil {
			return c.NoContent(http.StatusUnauthorized)
		}
		c.Set("email", claims.Subject)
		return next(c)
	}
}

func pathID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (s *Server) register(c echo.Context) error {
	var req domain.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Bad request")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, req.Email) {
			return message(c, http.StatusBadRequest, "Error: Email is already taken!")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return message(c, http.StatusInternalServerError, "Internal error")
	}

	now := time.Now()
	s.users[s.nextUserID] = &userRecord{
		User: domain.User{
			ID:        s.nextUserID,
			Email:     req.Email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			CreatedAt: now,
			UpdatedAt: now,
		},
		passwordHash: hash,
	}
	s.nextUserID++

	return message(c, http.StatusOK, "User registered successfully!")
}

func (s *Server) login(c echo.Context) error {
	var creds domain.Credentials
	if err := c.Bind(&creds); err != nil {
		return message(c, http.StatusBadRequest, "Bad request")
	}

	s.mu.Lock()
	var found *userRecord
	for _, u := range s.users {
		if strings.EqualFold(u.Email, creds.Email) {
			found = u
			break
		}
	}
	s.mu.Unlock()

	if found == nil || bcrypt.CompareHashAndPassword(found.passwordHash, []byte(creds.Password)) != nil {
		return message(c, http.StatusUnauthorized, "Bad credentials")
	}

	signed, err := s.issuer.Issue(found.Email, found.Admin)
	if err != nil {
		return message(c, http.StatusInternalServerError, "Internal error")
	}

	return c.JSON(http.StatusOK, domain.Identity{
		Token:     signed,
		Type:      "Bearer",
		ID:        found.ID,
		Username:  found.Email,
		FirstName: found.FirstName,
		LastName:  found.LastName,
		Admin:     found.Admin,
	})
}

func (s *Server) listSessions(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Session, 0, len(s.sessions))
	for id := int64(1); id < s.nextSessionID; id++ {
		if rec, ok := s.sessions[id]; ok {
			out = append(out, rec.Session)
		}
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) getSession(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.NoContent(http.StatusBadRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.sessions[id]
	if !ok {
		return c.NoContent(http.StatusNotFound)
	}
	return c.JSON(http.StatusOK, rec.Session)
}

func (s *Server) createSession(c echo.Context) error {
	var write domain.SessionWrite
	if err := c.Bind(&write); err != nil {
		return c.NoContent(http.StatusBadRequest)
	}
	date, err := time.Parse("2006-01-02", write.Date)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	rec := &sessionRecord{Session: domain.Session{
		ID:          s.nextSessionID,
		Name:        write.Name,
		Date:        date,
		TeacherID:   write.TeacherID,
		Description: write.Description,
		Users:       []int64{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}}
	s.sessions[s.nextSessionID] = rec
	s.nextSessionID++

	return c.JSON(http.StatusOK, rec.Session)
}

func (s *Server) updateSession(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.NoContent(http.StatusBadRequest)
	}

	var write domain.SessionWrite
	if err := c.Bind(&write); err != nil {
		return c.NoContent(http.StatusBadRequest)
	}
	date, err := time.Parse("2006-01-02", write.Date)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, found := s.sessions[id]
	if !found {
		return c.NoContent(http.StatusNotFound)
	}

	rec.Name = write.Name
	rec.Date = date
	rec.TeacherID = write.TeacherID
	rec.Description = write.Description
	rec.UpdatedAt = time.Now()

	return c.JSON(http.StatusOK, rec.Session)
}

func (s *Server) deleteSession(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.NoContent(http.StatusBadRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.sessions[id]; !found {
		return c.NoContent(http.StatusNotFound)
	}
	delete(s.sessions, id)
	return c.NoContent(http.StatusOK)
}

func (s *Server) participate(c echo.Context) error {
	sessionID, ok := pathID(c, "id")
	if !ok {
		return c.NoContent(http.StatusBadRequest)
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return c.NoContent(http.StatusBadRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, found := s.sessions[sessionID]
	if !found {
		return c.NoContent(http.StatusNotFound)
	}
	if _, found := s.users[userID]; !found {
		return c.NoContent(http.StatusNotFound)
	}
	if rec.HasParticipant(userID) {
		return c.NoContent(http.StatusBadRequest)
	}

	rec.Users = append(rec.Users, userID)
	rec.UpdatedAt = time.Now()
	return c.NoContent(http.StatusOK)
}

func (s *Server) unparticipate(c echo.Context) error {
	sessionID, ok := pathID(c, "id")
	if !ok {
		return c.NoContent(http.StatusBadRequest)
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return c.NoContent(http.StatusBadRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, found := s.sessions[sessionID]
	if !found {
		return c.NoContent(http.StatusNotFound)
	}
	if !rec.HasParticipant(userID) {
		return c.NoContent(http.StatusBadRequest)
	}

	kept := rec.Users[:0]
	for _, u := range rec.Users {
		if u != userID {
			kept = append(kept, u)
		}
	}
	rec.Users = kept
	rec.UpdatedAt = time.Now()
	return c.NoContent(http.StatusOK)
}

func (s *Server) listTeachers(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Teacher, 0, len(s.teachers))
	for id := int64(1); id <= int64(len(s.teachers)); id++ {
		if t, ok := s.teachers[id]; ok {
			out = append(out, t)
		}
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) getTeacher(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.NoContent(http.StatusBadRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, found := s.teachers[id]
	if !found {
		return c.NoContent(http.StatusNotFound)
	}
	return c.JSON(http.StatusOK, t)
}

func (s *Server) getUser(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.NoContent(http.StatusBadRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, found := s.users[id]
	if !found {
		return c.NoContent(http.StatusNotFound)
	}
	return c.JSON(http.StatusOK, u.User)
}

func (s *Server) deleteUser(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.NoContent(http.StatusBadRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.users[id]; !found {
		return c.NoContent(http.StatusNotFound)
	}
	delete(s.users, id)

	// Deleted accounts leave every roster they were on.
	for _, rec := range s.sessions {
		if !rec.HasParticipant(id) {
			continue
		}
		kept := rec.Users[:0]
		for _, u := range rec.Users {
			if u != id {
				kept = append(kept, u)
			}
		}
		rec.Users = kept
	}
	return c.NoContent(http.StatusOK)
}
