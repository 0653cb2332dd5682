package gateway

import (
	"context"
	"fmt"
	"net/http"

	"yoga-front/internal/domain"
)

// SessionGateway wraps the backend's session resource. Every operation is
// a single round trip; repeated detail screens always re-fetch.
// Implements domain.SessionGateway.
type SessionGateway struct {
	client *Client
}

// NewSessionGateway creates the session gateway.
func NewSessionGateway(client *Client) *SessionGateway {
	return &SessionGateway{client: client}
}

// All lists every session.
func (g *SessionGateway) All(ctx context.Context) ([]domain.Session, error) {
	var sessions []domain.Session
	if err := g.client.do(ctx, http.MethodGet, "/api/session", nil, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// Detail fetches one session by id.
func (g *SessionGateway) Detail(ctx context.Context, id int64) (*domain.Session, error) {
	session := &domain.Session{}
	if err := g.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/session/%d", id), nil, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Create creates a session; the backend assigns id and timestamps.
func (g *SessionGateway) Create(ctx context.Context, s domain.SessionWrite) (*domain.Session, error) {
	created := &domain.Session{}
	if err := g.client.do(ctx, http.MethodPost, "/api/session", s, created); err != nil {
		return nil, err
	}
	return created, nil
}

// Update replaces the session's editable fields.
func (g *SessionGateway) Update(ctx context.Context, id int64, s domain.SessionWrite) (*domain.Session, error) {
	updated := &domain.Session{}
	if err := g.client.do(ctx, http.MethodPut, fmt.Sprintf("/api/session/%d", id), s, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a session.
func (g *SessionGateway) Delete(ctx context.Context, id int64) error {
	return g.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/session/%d", id), nil, nil)
}

// Participate adds a participant. Accept/reject semantics stay with the
// backend; the client does not pre-check membership.
func (g *SessionGateway) Participate(ctx context.Context, id, userID int64) error {
	return g.client.do(ctx, http.MethodPost, fmt.Sprintf("/api/session/%d/participate/%d", id, userID), nil, nil)
}

// Unparticipate removes a participant.
func (g *SessionGateway) Unparticipate(ctx context.Context, id, userID int64) error {
	return g.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/session/%d/participate/%d", id, userID), nil, nil)
}
