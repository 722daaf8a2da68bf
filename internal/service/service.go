package service

import (
	"context"
	"time"

	"partyplanner-backend/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error) // access token
}

type UserService interface {
	// UpdateProfile applies a partial profile update; empty fields are
	// left unchanged. A non-empty password is re-hashed.
	UpdateProfile(ctx context.Context, userID int32, username, email, password string) (*domain.User, error)
}

type PartyService interface {
	CreateParty(ctx context.Context, creatorID int32, party *domain.Party, inviteEmails []string) (*domain.Party, error)
	GetParty(ctx context.Context, id int32) (*domain.Party, error)
	ListParties(ctx context.Context) ([]domain.Party, error)
	UpdateParty(ctx context.Context, partyID, actorID int32, update *domain.PartyUpdate) (*domain.Party, error)
	DeleteParty(ctx context.Context, partyID, actorID int32) error
}

// InviteService is the authoritative record of who is invited to or
// attending a party, and of which transitions are legal.
type InviteService interface {
	Invite(ctx context.Context, partyID, userID int32) error
	RespondToInvite(ctx context.Context, partyID, userID int32, accept bool) error
	RequestToJoin(ctx context.Context, partyID, userID int32) error
	RemoveAttendee(ctx context.Context, partyID, userID, actorID int32) error
}

type AdminService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	DeleteUser(ctx context.Context, userID int32) error
}

type EmailService interface {
	SendPartyInvitation(ctx context.Context, email, creatorName, partyTitle string) error
	SendPartyReminder(ctx context.Context, email, username string, party *domain.Party) error
	SendJoinRequestNotification(ctx context.Context, creatorEmail, requesterName, partyTitle string) error
	SendInviteResponseNotification(ctx context.Context, creatorEmail, responderName, partyTitle string, status domain.InviteStatus) error
}

// ReminderScheduler is the slice of the reminder subsystem the party
// lifecycle needs: arm (replacing any existing job) and disarm.
type ReminderScheduler interface {
	Schedule(partyID int32, startsAt time.Time)
	Remove(partyID int32)
}
