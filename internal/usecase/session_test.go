package usecase

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"yoga-front/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mockSession() *domain.Session {
	return &domain.Session{
		ID:          1,
		Name:        "Mock session",
		Date:        time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		TeacherID:   2,
		Description: "Description mock",
		Users:       []int64{1},
	}
}

func TestBrowseSessions(t *testing.T) {
	sessions := &mockSessionGateway{sessions: []domain.Session{*mockSession()}}
	uc := NewBrowseSessions(sessions, slog.Default())

	got, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Mock session", got[0].Name)
}

func TestGetSessionDetail_FetchesSessionThenTeacher(t *testing.T) {
	sessions := &mockSessionGateway{session: mockSession()}
	teachers := &mockTeacherGateway{teacher: &domain.Teacher{ID: 2, LastName: "THIERCELIN", FirstName: "Hélène"}}

	uc := NewGetSessionDetail(sessions, teachers, slog.Default())
	detail, err := uc.Execute(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, []int64{1}, sessions.detailIDs)
	assert.Equal(t, []int64{2}, teachers.detailIDs, "teacher fetch uses the session's teacher id")
	assert.Equal(t, "Hélène", detail.Teacher.FirstName)
	assert.True(t, detail.Session.HasParticipant(1))
}

func TestGetSessionDetail_SessionErrorStopsTeacherFetch(t *testing.T) {
	sessions := &mockSessionGateway{err: &domain.APIError{Status: 404}}
	teachers := &mockTeacherGateway{}

	uc := NewGetSessionDetail(sessions, teachers, slog.Default())
	_, err := uc.Execute(context.Background(), 99)

	assert.Equal(t, 404, domain.APIStatus(err))
	assert.Empty(t, teachers.detailIDs)
}

func TestSaveSession_CreateMode(t *testing.T) {
	sessions := &mockSessionGateway{session: mockSession()}
	uc := NewSaveSession(sessions, slog.Default())

	write := domain.SessionWrite{
		Name:        "Nouvelle session",
		Date:        "2025-10-10",
		TeacherID:   1,
		Description: "Description pour la nouvelle session",
	}
	_, err := uc.Execute(context.Background(), nil, write)

	require.NoError(t, err)
	require.Len(t, sessions.createdWrites, 1)
	assert.Equal(t, write, sessions.createdWrites[0])
	assert.Empty(t, sessions.updatedIDs)
}

func TestSaveSession_UpdateMode(t *testing.T) {
	sessions := &mockSessionGateway{session: mockSession()}
	uc := NewSaveSession(sessions, slog.Default())

	id := int64(123)
	write := domain.SessionWrite{Name: "Test session", Date: "2025-11-01", TeacherID: 1, Description: "Description"}
	_, err := uc.Execute(context.Background(), &id, write)

	require.NoError(t, err)
	assert.Equal(t, []int64{123}, sessions.updatedIDs)
	require.Len(t, sessions.updatedWrites, 1)
	assert.Equal(t, write, sessions.updatedWrites[0])
	assert.Empty(t, sessions.createdWrites)
}

func TestDeleteSession(t *testing.T) {
	sessions := &mockSessionGateway{}
	uc := NewDeleteSession(sessions, slog.Default())

	require.NoError(t, uc.Execute(context.Background(), 1))
	assert.Equal(t, []int64{1}, sessions.deletedIDs)
}

func TestParticipation(t *testing.T) {
	t.Run("join uses the logged-in user's id", func(t *testing.T) {
		sessions := &mockSessionGateway{}
		state := &mockState{identity: adminIdentity()}

		uc := NewParticipation(sessions, state, slog.Default())
		require.NoError(t, uc.Join(context.Background(), 1))

		assert.Equal(t, [][2]int64{{1, 1}}, sessions.participations)
	})

	t.Run("leave uses the logged-in user's id", func(t *testing.T) {
		sessions := &mockSessionGateway{}
		state := &mockState{identity: adminIdentity()}

		uc := NewParticipation(sessions, state, slog.Default())
		require.NoError(t, uc.Leave(context.Background(), 1))

		assert.Equal(t, [][2]int64{{1, 1}}, sessions.unparticipations)
	})

	t.Run("logged out is rejected before any request", func(t *testing.T) {
		sessions := &mockSessionGateway{}
		uc := NewParticipation(sessions, &mockState{}, slog.Default())

		assert.ErrorIs(t, uc.Join(context.Background(), 1), domain.ErrNotLoggedIn)
		assert.ErrorIs(t, uc.Leave(context.Background(), 1), domain.ErrNotLoggedIn)
		assert.Empty(t, sessions.participations)
		assert.Empty(t, sessions.unparticipations)
	})
}

func TestAccount(t *testing.T) {
	t.Run("get resolves the identity's own id", func(t *testing.T) {
		users := &mockUserGateway{user: &domain.User{ID: 1, Email: "yoga@studio.com", Admin: true}}
		state := &mockState{identity: adminIdentity()}

		uc := NewAccount(users, state, slog.Default())
		user, err := uc.Get(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []int64{1}, users.detailIDs)
		assert.Equal(t, "yoga@studio.com", user.Email)
	})

	t.Run("get while logged out", func(t *testing.T) {
		uc := NewAccount(&mockUserGateway{}, &mockState{}, slog.Default())
		_, err := uc.Get(context.Background())
		assert.ErrorIs(t, err, domain.ErrNotLoggedIn)
	})

	t.Run("delete removes the account and logs out", func(t *testing.T) {
		users := &mockUserGateway{}
		state := &mockState{identity: adminIdentity()}

		uc := NewAccount(users, state, slog.Default())
		require.NoError(t, uc.Delete(context.Background()))

		assert.Equal(t, []int64{1}, users.deletedIDs)
		assert.False(t, state.IsLogged())
	})

	t.Run("failed delete keeps the user logged in", func(t *testing.T) {
		users := &mockUserGateway{err: &domain.APIError{Status: 500}}
		state := &mockState{identity: adminIdentity()}

		uc := NewAccount(users, state, slog.Default())
		require.Error(t, uc.Delete(context.Background()))

		assert.True(t, state.IsLogged())
	})
}
