package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"partyplanner-backend/internal/domain"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPartyRepo
type MockPartyRepo struct {
	mock.Mock
}

func (m *MockPartyRepo) Create(ctx context.Context, party *domain.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}
func (m *MockPartyRepo) GetByID(ctx context.Context, id int32) (*domain.Party, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}
func (m *MockPartyRepo) Update(ctx context.Context, party *domain.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}
func (m *MockPartyRepo) List(ctx context.Context) ([]domain.Party, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}
func (m *MockPartyRepo) ListByCreator(ctx context.Context, creatorID int32) ([]domain.Party, error) {
	args := m.Called(ctx, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}
func (m *MockPartyRepo) ListAttendees(ctx context.Context, partyID int32) ([]domain.User, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockPartyRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockPartyRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// MockInviteRepo
type MockInviteRepo struct {
	mock.Mock
}

func (m *MockInviteRepo) Create(ctx context.Context, invite *domain.Invite) error {
	args := m.Called(ctx, invite)
	return args.Error(0)
}
func (m *MockInviteRepo) Get(ctx context.Context, userID, partyID int32) (*domain.Invite, error) {
	args := m.Called(ctx, userID, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invite), args.Error(1)
}
func (m *MockInviteRepo) SetStatus(ctx context.Context, userID, partyID int32, status domain.InviteStatus, addAttendee bool) error {
	args := m.Called(ctx, userID, partyID, status, addAttendee)
	return args.Error(0)
}
func (m *MockInviteRepo) RemoveAttendee(ctx context.Context, userID, partyID int32) error {
	args := m.Called(ctx, userID, partyID)
	return args.Error(0)
}

// MockInviteService
type MockInviteService struct {
	mock.Mock
}

func (m *MockInviteService) Invite(ctx context.Context, partyID, userID int32) error {
	args := m.Called(ctx, partyID, userID)
	return args.Error(0)
}
func (m *MockInviteService) RespondToInvite(ctx context.Context, partyID, userID int32, accept bool) error {
	args := m.Called(ctx, partyID, userID, accept)
	return args.Error(0)
}
func (m *MockInviteService) RequestToJoin(ctx context.Context, partyID, userID int32) error {
	args := m.Called(ctx, partyID, userID)
	return args.Error(0)
}
func (m *MockInviteService) RemoveAttendee(ctx context.Context, partyID, userID, actorID int32) error {
	args := m.Called(ctx, partyID, userID, actorID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendPartyInvitation(ctx context.Context, email, creatorName, partyTitle string) error {
	args := m.Called(ctx, email, creatorName, partyTitle)
	return args.Error(0)
}
func (m *MockEmailService) SendPartyReminder(ctx context.Context, email, username string, party *domain.Party) error {
	args := m.Called(ctx, email, username, party)
	return args.Error(0)
}
func (m *MockEmailService) SendJoinRequestNotification(ctx context.Context, creatorEmail, requesterName, partyTitle string) error {
	args := m.Called(ctx, creatorEmail, requesterName, partyTitle)
	return args.Error(0)
}
func (m *MockEmailService) SendInviteResponseNotification(ctx context.Context, creatorEmail, responderName, partyTitle string, status domain.InviteStatus) error {
	args := m.Called(ctx, creatorEmail, responderName, partyTitle, status)
	return args.Error(0)
}

// MockReminderScheduler
type MockReminderScheduler struct {
	mock.Mock
}

func (m *MockReminderScheduler) Schedule(partyID int32, startsAt time.Time) {
	m.Called(partyID, startsAt)
}
func (m *MockReminderScheduler) Remove(partyID int32) {
	m.Called(partyID)
}
