package usecase

import (
	"context"
	"log/slog"

	"yoga-front/internal/domain"
)

// BrowseSessions lists every session. No caching: each screen entry
// re-fetches from the backend.
type BrowseSessions struct {
	sessions domain.SessionGateway
	logger   *slog.Logger
}

// NewBrowseSessions creates the listing usecase.
func NewBrowseSessions(sessions domain.SessionGateway, logger *slog.Logger) *BrowseSessions {
	return &BrowseSessions{sessions: sessions, logger: logger}
}

// Execute fetches all sessions.
func (uc *BrowseSessions) Execute(ctx context.Context) ([]domain.Session, error) {
	sessions, err := uc.sessions.All(ctx)
	if err != nil {
		uc.logger.ErrorContext(ctx, "failed to list sessions", "error", err)
		return nil, err
	}
	return sessions, nil
}
