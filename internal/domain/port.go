package domain

import "context"

// AuthGateway wraps the backend's authentication endpoints.
type AuthGateway interface {
	Register(ctx context.Context, req RegisterRequest) error
	Login(ctx context.Context, creds Credentials) (*Identity, error)
}

// SessionGateway wraps the backend's session resource.
type SessionGateway interface {
	All(ctx context.Context) ([]Session, error)
	Detail(ctx context.Context, id int64) (*Session, error)
	Create(ctx context.Context, s SessionWrite) (*Session, error)
	Update(ctx context.Context, id int64, s SessionWrite) (*Session, error)
	Delete(ctx context.Context, id int64) error
	Participate(ctx context.Context, id, userID int64) error
	Unparticipate(ctx context.Context, id, userID int64) error
}

// TeacherGateway wraps the backend's teacher resource (read-only).
type TeacherGateway interface {
	All(ctx context.Context) ([]Teacher, error)
	Detail(ctx context.Context, id int64) (*Teacher, error)
}

// UserGateway wraps the backend's user resource.
type UserGateway interface {
	Detail(ctx context.Context, id int64) (*User, error)
	Delete(ctx context.Context, id int64) error
}

// SessionState holds the single in-memory identity and exposes the
// logged-in status as a replaying observable. Exactly one identity may be
// held at a time; logging in replaces any prior identity and logging out
// clears it unconditionally.
type SessionState interface {
	LogIn(identity *Identity)
	LogOut()
	IsLogged() bool
	Identity() *Identity
	// Subscribe returns a channel that immediately receives the current
	// logged-in value and then every subsequent change, plus a cancel
	// function releasing the subscription.
	Subscribe() (<-chan bool, func())
}

// TokenSource provides the Authorization header value for authenticated
// backend calls. ok is false when no identity is held.
type TokenSource interface {
	AuthToken() (string, bool)
}
