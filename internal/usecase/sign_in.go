package usecase

import (
	"context"
	"log/slog"

	"yoga-front/internal/domain"
)

// SignIn authenticates against the backend and, on success, installs the
// returned identity in the session-state holder. A failed login leaves
// the holder untouched.
type SignIn struct {
	auth   domain.AuthGateway
	state  domain.SessionState
	logger *slog.Logger
}

// NewSignIn creates the sign-in usecase.
func NewSignIn(auth domain.AuthGateway, state domain.SessionState, logger *slog.Logger) *SignIn {
	return &SignIn{auth: auth, state: state, logger: logger}
}

// Execute performs the login round trip.
func (uc *SignIn) Execute(ctx context.Context, creds domain.Credentials) (*domain.Identity, error) {
	identity, err := uc.auth.Login(ctx, creds)
	if err != nil {
		uc.logger.WarnContext(ctx, "login failed", "status", domain.APIStatus(err))
		return nil, err
	}

	uc.state.LogIn(identity)
	uc.logger.InfoContext(ctx, "user logged in", "user_id", identity.ID, "admin", identity.Admin)
	return identity, nil
}
