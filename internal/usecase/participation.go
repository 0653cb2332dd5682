package usecase

import (
	"context"
	"log/slog"

	"yoga-front/internal/domain"
)

// Participation toggles the logged-in user in and out of a session's
// participant list. Membership pre-checks are not performed here;
// accept/reject semantics are delegated to the backend.
type Participation struct {
	sessions domain.SessionGateway
	state    domain.SessionState
	logger   *slog.Logger
}

// NewParticipation creates the participation usecase.
func NewParticipation(sessions domain.SessionGateway, state domain.SessionState, logger *slog.Logger) *Participation {
	return &Participation{sessions: sessions, state: state, logger: logger}
}

// Join adds the logged-in user to the session.
func (uc *Participation) Join(ctx context.Context, sessionID int64) error {
	identity := uc.state.Identity()
	if identity == nil {
		return domain.ErrNotLoggedIn
	}

	if err := uc.sessions.Participate(ctx, sessionID, identity.ID); err != nil {
		uc.logger.ErrorContext(ctx, "failed to participate", "session_id", sessionID, "user_id", identity.ID, "error", err)
		return err
	}
	uc.logger.InfoContext(ctx, "participation added", "session_id", sessionID, "user_id", identity.ID)
	return nil
}

// Leave removes the logged-in user from the session.
func (uc *Participation) Leave(ctx context.Context, sessionID int64) error {
	identity := uc.state.Identity()
	if identity == nil {
		return domain.ErrNotLoggedIn
	}

	if err := uc.sessions.Unparticipate(ctx, sessionID, identity.ID); err != nil {
		uc.logger.ErrorContext(ctx, "failed to unparticipate", "session_id", sessionID, "user_id", identity.ID, "error", err)
		return err
	}
	uc.logger.InfoContext(ctx, "participation removed", "session_id", sessionID, "user_id", identity.ID)
	return nil
}
