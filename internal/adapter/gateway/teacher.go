package gateway

import (
	"context"
	"fmt"
	"net/http"

	"yoga-front/internal/domain"
)

// TeacherGateway wraps the backend's read-only teacher resource.
// Implements domain.TeacherGateway.
type TeacherGateway struct {
	client *Client
}

// NewTeacherGateway creates the teacher gateway.
func NewTeacherGateway(client *Client) *TeacherGateway {
	return &TeacherGateway{client: client}
}

// All lists every teacher.
func (g *TeacherGateway) All(ctx context.Context) ([]domain.Teacher, error) {
	var teachers []domain.Teacher
	if err := g.client.do(ctx, http.MethodGet, "/api/teacher", nil, &teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}

// Detail fetches one teacher by id.
func (g *TeacherGateway) Detail(ctx context.Context, id int64) (*domain.Teacher, error) {
	teacher := &domain.Teacher{}
	if err := g.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/teacher/%d", id), nil, teacher); err != nil {
		return nil, err
	}
	return teacher, nil
}
