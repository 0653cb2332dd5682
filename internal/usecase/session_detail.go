package usecase

import (
	"context"
	"log/slog"

	"yoga-front/internal/domain"
)

// SessionDetail is a session joined with its teacher, as the detail
// screen renders it.
type SessionDetail struct {
	Session *domain.Session
	Teacher *domain.Teacher
}

// GetSessionDetail fetches one session and then its teacher. The two
// calls are sequential: the teacher id is only known once the session
// arrives.
type GetSessionDetail struct {
	sessions domain.SessionGateway
	teachers domain.TeacherGateway
	logger   *slog.Logger
}

// NewGetSessionDetail creates the detail usecase.
func NewGetSessionDetail(sessions domain.SessionGateway, teachers domain.TeacherGateway, logger *slog.Logger) *GetSessionDetail {
	return &GetSessionDetail{sessions: sessions, teachers: teachers, logger: logger}
}

// Execute fetches the session and its teacher.
func (uc *GetSessionDetail) Execute(ctx context.Context, id int64) (*SessionDetail, error) {
	session, err := uc.sessions.Detail(ctx, id)
	if err != nil {
		uc.logger.ErrorContext(ctx, "failed to fetch session", "session_id", id, "error", err)
		return nil, err
	}

	teacher, err := uc.teachers.Detail(ctx, session.TeacherID)
	if err != nil {
		uc.logger.ErrorContext(ctx, "failed to fetch teacher", "teacher_id", session.TeacherID, "error", err)
		return nil, err
	}

	return &SessionDetail{Session: session, Teacher: teacher}, nil
}
