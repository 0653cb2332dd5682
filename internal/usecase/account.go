package usecase

import (
	"context"
	"log/slog"

	"yoga-front/internal/domain"
)

// Account backs the /me screen: it always resolves the authenticated
// identity's own user id, never a caller-supplied one.
type Account struct {
	users  domain.UserGateway
	state  domain.SessionState
	logger *slog.Logger
}

// NewAccount creates the account usecase.
func NewAccount(users domain.UserGateway, state domain.SessionState, logger *slog.Logger) *Account {
	return &Account{users: users, state: state, logger: logger}
}

// Get fetches the logged-in user's profile.
func (uc *Account) Get(ctx context.Context) (*domain.User, error) {
	identity := uc.state.Identity()
	if identity == nil {
		return nil, domain.ErrNotLoggedIn
	}

	user, err := uc.users.Detail(ctx, identity.ID)
	if err != nil {
		uc.logger.ErrorContext(ctx, "failed to fetch account", "user_id", identity.ID, "error", err)
		return nil, err
	}
	return user, nil
}

// Delete removes the logged-in user's account and logs out.
func (uc *Account) Delete(ctx context.Context) error {
	identity := uc.state.Identity()
	if identity == nil {
		return domain.ErrNotLoggedIn
	}

	if err := uc.users.Delete(ctx, identity.ID); err != nil {
		uc.logger.ErrorContext(ctx, "failed to delete account", "user_id", identity.ID, "error", err)
		return err
	}

	uc.state.LogOut()
	uc.logger.InfoContext(ctx, "account deleted", "user_id", identity.ID)
	return nil
}
