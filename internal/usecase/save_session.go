package usecase

import (
	"context"
	"log/slog"

	"yoga-front/internal/domain"
)

// SaveSession backs the shared create/update form screen. The presence of
// an id selects update mode; its absence selects create mode.
type SaveSession struct {
	sessions domain.SessionGateway
	logger   *slog.Logger
}

// NewSaveSession creates the save usecase.
func NewSaveSession(sessions domain.SessionGateway, logger *slog.Logger) *SaveSession {
	return &SaveSession{sessions: sessions, logger: logger}
}

// Execute creates the session when id is nil, updates it otherwise.
func (uc *SaveSession) Execute(ctx context.Context, id *int64, s domain.SessionWrite) (*domain.Session, error) {
	if id == nil {
		created, err := uc.sessions.Create(ctx, s)
		if err != nil {
			uc.logger.ErrorContext(ctx, "failed to create session", "error", err)
			return nil, err
		}
		uc.logger.InfoContext(ctx, "session created", "session_id", created.ID)
		return created, nil
	}

	updated, err := uc.sessions.Update(ctx, *id, s)
	if err != nil {
		uc.logger.ErrorContext(ctx, "failed to update session", "session_id", *id, "error", err)
		return nil, err
	}
	uc.logger.InfoContext(ctx, "session updated", "session_id", *id)
	return updated, nil
}

// Load pre-populates the form for update mode.
func (uc *SaveSession) Load(ctx context.Context, id int64) (*domain.Session, error) {
	return uc.sessions.Detail(ctx, id)
}
