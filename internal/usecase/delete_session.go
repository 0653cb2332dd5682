package usecase

import (
	"context"
	"log/slog"

	"yoga-front/internal/domain"
)

// DeleteSession removes a session.
type DeleteSession struct {
	sessions domain.SessionGateway
	logger   *slog.Logger
}

// NewDeleteSession creates the delete usecase.
func NewDeleteSession(sessions domain.SessionGateway, logger *slog.Logger) *DeleteSession {
	return &DeleteSession{sessions: sessions, logger: logger}
}

// Execute deletes the session by id.
func (uc *DeleteSession) Execute(ctx context.Context, id int64) error {
	if err := uc.sessions.Delete(ctx, id); err != nil {
		uc.logger.ErrorContext(ctx, "failed to delete session", "session_id", id, "error", err)
		return err
	}
	uc.logger.InfoContext(ctx, "session deleted", "session_id", id)
	return nil
}
