package gateway

import (
	"context"
	"fmt"
	"net/http"

	"yoga-front/internal/domain"
)

// UserGateway wraps the backend's user resource. Implements
// domain.UserGateway.
type UserGateway struct {
	client *Client
}

// NewUserGateway creates the user gateway.
func NewUserGateway(client *Client) *UserGateway {
	return &UserGateway{client: client}
}

// Detail fetches one user by id.
func (g *UserGateway) Detail(ctx context.Context, id int64) (*domain.User, error) {
	user := &domain.User{}
	if err := g.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/user/%d", id), nil, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user account.
func (g *UserGateway) Delete(ctx context.Context, id int64) error {
	return g.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/user/%d", id), nil, nil)
}
