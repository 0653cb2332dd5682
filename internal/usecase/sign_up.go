package usecase

import (
	"context"
	"log/slog"

	"yoga-front/internal/domain"
)

// SignUp creates an account. Registration does not log the user in; the
// login screen is the success destination.
type SignUp struct {
	auth   domain.AuthGateway
	logger *slog.Logger
}

// NewSignUp creates the sign-up usecase.
func NewSignUp(auth domain.AuthGateway, logger *slog.Logger) *SignUp {
	return &SignUp{auth: auth, logger: logger}
}

// Execute issues the account creation call.
func (uc *SignUp) Execute(ctx context.Context, req domain.RegisterRequest) error {
	if err := uc.auth.Register(ctx, req); err != nil {
		uc.logger.WarnContext(ctx, "registration failed", "status", domain.APIStatus(err))
		return err
	}

	uc.logger.InfoContext(ctx, "account registered", "email", req.Email)
	return nil
}
