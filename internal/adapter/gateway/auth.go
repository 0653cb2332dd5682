package gateway

import (
	"context"
	"net/http"

	"yoga-front/internal/domain"
)

// AuthGateway wraps the backend's authentication endpoints. Stateless
// request/response translation; it never retries and never transforms
// errors. Implements domain.AuthGateway.
type AuthGateway struct {
	client *Client
}

// NewAuthGateway creates the auth gateway.
func NewAuthGateway(client *Client) *AuthGateway {
	return &AuthGateway{client: client}
}

// Register issues the account creation call. A success carries no payload
// of interest beyond confirmation.
func (g *AuthGateway) Register(ctx context.Context, req domain.RegisterRequest) error {
	return g.client.do(ctx, http.MethodPost, "/api/auth/register", req, nil)
}

// Login authenticates and returns the session information.
func (g *AuthGateway) Login(ctx context.Context, creds domain.Credentials) (*domain.Identity, error) {
	identity := &domain.Identity{}
	if err := g.client.do(ctx, http.MethodPost, "/api/auth/login", creds, identity); err != nil {
		return nil, err
	}
	return identity, nil
}
