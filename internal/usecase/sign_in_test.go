package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"yoga-front/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminIdentity() *domain.Identity {
	return &domain.Identity{
		Token:     "tokentokentokentokentokentokentoken",
		Type:      "Bearer",
		ID:        1,
		Username:  "yoga@studio.com",
		FirstName: "Admin",
		LastName:  "Admin",
		Admin:     true,
	}
}

func TestSignIn_Success(t *testing.T) {
	auth := &mockAuthGateway{identity: adminIdentity()}
	state := &mockState{}

	uc := NewSignIn(auth, state, slog.Default())
	identity, err := uc.Execute(context.Background(), domain.Credentials{
		Email:    "yoga@studio.com",
		Password: "test!1234",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), identity.ID)
	require.Len(t, auth.loginCalls, 1)
	assert.Equal(t, "yoga@studio.com", auth.loginCalls[0].Email)
	require.Len(t, state.logIns, 1)
	assert.Equal(t, identity, state.logIns[0])
}

func TestSignIn_FailureLeavesStateUntouched(t *testing.T) {
	auth := &mockAuthGateway{loginErr: &domain.APIError{Status: http.StatusUnauthorized, Body: `{"message":"Invalid credentials"}`}}
	state := &mockState{}

	uc := NewSignIn(auth, state, slog.Default())
	identity, err := uc.Execute(context.Background(), domain.Credentials{
		Email:    "yoga@studio.com",
		Password: "wrongpassword",
	})

	assert.Nil(t, identity)
	assert.Equal(t, http.StatusUnauthorized, domain.APIStatus(err))
	assert.Empty(t, state.logIns, "a failed login must not touch the holder")
	assert.False(t, state.IsLogged())
}

func TestSignUp(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		auth := &mockAuthGateway{}
		uc := NewSignUp(auth, slog.Default())

		err := uc.Execute(context.Background(), domain.RegisterRequest{
			FirstName: "toto",
			LastName:  "toto",
			Email:     "toto3@toto.com",
			Password:  "test!1234",
		})

		require.NoError(t, err)
		require.Len(t, auth.registerCalls, 1)
		assert.Equal(t, "toto3@toto.com", auth.registerCalls[0].Email)
	})

	t.Run("duplicate email error passes through untransformed", func(t *testing.T) {
		wantErr := &domain.APIError{Status: http.StatusBadRequest, Body: `{"message":"Error: Email is already taken!"}`}
		auth := &mockAuthGateway{registerErr: wantErr}
		uc := NewSignUp(auth, slog.Default())

		err := uc.Execute(context.Background(), domain.RegisterRequest{Email: "yoga@studio.com"})

		var apiErr *domain.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Same(t, wantErr, apiErr)
	})
}

func TestSignOut_Idempotent(t *testing.T) {
	state := &mockState{identity: adminIdentity()}
	uc := NewSignOut(state, slog.Default())

	uc.Execute(context.Background())
	assert.False(t, state.IsLogged())

	uc.Execute(context.Background())
	assert.False(t, state.IsLogged())
	assert.Equal(t, 2, state.logOuts)
}
