package usecase

import (
	"context"
	"log/slog"

	"yoga-front/internal/domain"
)

// SignOut clears the held identity. Idempotent.
type SignOut struct {
	state  domain.SessionState
	logger *slog.Logger
}

// NewSignOut creates the sign-out usecase.
func NewSignOut(state domain.SessionState, logger *slog.Logger) *SignOut {
	return &SignOut{state: state, logger: logger}
}

// Execute logs the user out.
func (uc *SignOut) Execute(ctx context.Context) {
	uc.state.LogOut()
	uc.logger.InfoContext(ctx, "user logged out")
}
