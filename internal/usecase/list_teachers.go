package usecase

import (
	"context"
	"log/slog"

	"yoga-front/internal/domain"
)

// ListTeachers fetches the reference teacher list for the session form's
// select control.
type ListTeachers struct {
	teachers domain.TeacherGateway
	logger   *slog.Logger
}

// NewListTeachers creates the teacher listing usecase.
func NewListTeachers(teachers domain.TeacherGateway, logger *slog.Logger) *ListTeachers {
	return &ListTeachers{teachers: teachers, logger: logger}
}

// Execute fetches all teachers.
func (uc *ListTeachers) Execute(ctx context.Context) ([]domain.Teacher, error) {
	teachers, err := uc.teachers.All(ctx)
	if err != nil {
		uc.logger.ErrorContext(ctx, "failed to list teachers", "error", err)
		return nil, err
	}
	return teachers, nil
}
