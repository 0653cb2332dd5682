package domain

import "time"

// Identity is the session information returned by a successful login.
// It is held in memory only and discarded on logout or process exit.
type Identity struct {
	Token     string `json:"token"`
	Type      string `json:"type"`
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Admin     bool   `json:"admin"`
}

// Credentials is a login request payload. Transient, never persisted.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is an account creation payload.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// Session is a bookable class offering, owned by the backend. The client
// holds read-only copies and never synthesizes ids.
type Session struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	TeacherID   int64     `json:"teacher_id"`
	Description string    `json:"description"`
	Users       []int64   `json:"users"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// HasParticipant reports whether userID is in the session's participant list.
func (s *Session) HasParticipant(userID int64) bool {
	for _, id := range s.Users {
		if id == userID {
			return true
		}
	}
	return false
}

// SessionWrite is the create/update body for a session. The date travels
// as a plain YYYY-MM-DD string, matching the form input.
type SessionWrite struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	TeacherID   int64  `json:"teacher_id"`
	Description string `json:"description"`
}

// Teacher is read-only reference data.
type Teacher struct {
	ID        int64     `json:"id"`
	LastName  string    `json:"lastName"`
	FirstName string    `json:"firstName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// User is an account as returned by the backend. The password is
// write-only and never appears in responses.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	LastName  string    `json:"lastName"`
	FirstName string    `json:"firstName"`
	Admin     bool      `json:"admin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
