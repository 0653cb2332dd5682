package flash

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const cookieName = "yoga_front_flash"

// Store carries one-shot confirmation messages across a redirect, backed
// by a signed cookie. Only the transient message travels this way; the
// identity itself never leaves process memory.
type Store struct {
	cookies *sessions.CookieStore
}

// NewStore creates a flash store signing with the given secret.
func NewStore(secret string) *Store {
	cs := sessions.NewCookieStore([]byte(secret))
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{cookies: cs}
}

// Add queues a message for the next rendered screen.
func (s *Store) Add(w http.ResponseWriter, r *http.Request, message string) error {
	session, _ := s.cookies.Get(r, cookieName)
	session.AddFlash(message)
	return session.Save(r, w)
}

// Pop returns queued messages and clears them.
func (s *Store) Pop(w http.ResponseWriter, r *http.Request) []string {
	session, _ := s.cookies.Get(r, cookieName)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = session.Save(r, w)

	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			messages = append(messages, msg)
		}
	}
	return messages
}
