package usecase

import (
	"context"

	"yoga-front/internal/domain"
)

// Hand-rolled mocks implementing the domain ports.

type mockAuthGateway struct {
	identity    *domain.Identity
	loginErr    error
	registerErr error

	loginCalls    []domain.Credentials
	registerCalls []domain.RegisterRequest
}

func (m *mockAuthGateway) Register(_ context.Context, req domain.RegisterRequest) error {
	m.registerCalls = append(m.registerCalls, req)
	return m.registerErr
}

func (m *mockAuthGateway) Login(_ context.Context, creds domain.Credentials) (*domain.Identity, error) {
	m.loginCalls = append(m.loginCalls, creds)
	if m.loginErr != nil {
		return nil, m.loginErr
	}
	return m.identity, nil
}

type mockSessionGateway struct {
	sessions []domain.Session
	session  *domain.Session
	err      error

	detailIDs        []int64
	createdWrites    []domain.SessionWrite
	updatedIDs       []int64
	updatedWrites    []domain.SessionWrite
	deletedIDs       []int64
	participations   [][2]int64
	unparticipations [][2]int64
}

func (m *mockSessionGateway) All(_ context.Context) ([]domain.Session, error) {
	return m.sessions, m.err
}

func (m *mockSessionGateway) Detail(_ context.Context, id int64) (*domain.Session, error) {
	m.detailIDs = append(m.detailIDs, id)
	return m.session, m.err
}

func (m *mockSessionGateway) Create(_ context.Context, s domain.SessionWrite) (*domain.Session, error) {
	m.createdWrites = append(m.createdWrites, s)
	return m.session, m.err
}

func (m *mockSessionGateway) Update(_ context.Context, id int64, s domain.SessionWrite) (*domain.Session, error) {
	m.updatedIDs = append(m.updatedIDs, id)
	m.updatedWrites = append(m.updatedWrites, s)
	return m.session, m.err
}

func (m *mockSessionGateway) Delete(_ context.Context, id int64) error {
	m.deletedIDs = append(m.deletedIDs, id)
	return m.err
}

func (m *mockSessionGateway) Participate(_ context.Context, id, userID int64) error {
	m.participations = append(m.participations, [2]int64{id, userID})
	return m.err
}

func (m *mockSessionGateway) Unparticipate(_ context.Context, id, userID int64) error {
	m.unparticipations = append(m.unparticipations, [2]int64{id, userID})
	return m.err
}

type mockTeacherGateway struct {
	teachers []domain.Teacher
	teacher  *domain.Teacher
	err      error

	detailIDs []int64
}

func (m *mockTeacherGateway) All(_ context.Context) ([]domain.Teacher, error) {
	return m.teachers, m.err
}

func (m *mockTeacherGateway) Detail(_ context.Context, id int64) (*domain.Teacher, error) {
	m.detailIDs = append(m.detailIDs, id)
	return m.teacher, m.err
}

type mockUserGateway struct {
	user *domain.User
	err  error

	detailIDs  []int64
	deletedIDs []int64
}

func (m *mockUserGateway) Detail(_ context.Context, id int64) (*domain.User, error) {
	m.detailIDs = append(m.detailIDs, id)
	return m.user, m.err
}

func (m *mockUserGateway) Delete(_ context.Context, id int64) error {
	m.deletedIDs = append(m.deletedIDs, id)
	return m.err
}

type mockState struct {
	identity *domain.Identity

	logIns  []*domain.Identity
	logOuts int
}

func (m *mockState) LogIn(identity *domain.Identity) {
	m.identity = identity
	m.logIns = append(m.logIns, identity)
}

func (m *mockState) LogOut() {
	m.identity = nil
	m.logOuts++
}

func (m *mockState) IsLogged() bool { return m.identity != nil }

func (m *mockState) Identity() *domain.Identity { return m.identity }

func (m *mockState) Subscribe() (<-chan bool, func()) {
	ch := make(chan bool, 1)
	ch <- m.identity != nil
	return ch, func() {}
}
