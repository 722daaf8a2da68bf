package repository

import (
	"context"
	"time"

	"partyplanner-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]domain.User, error)

	// Delete removes the user together with every invite and attendance
	// row referencing them and every party they created (with that
	// party's own cascade), in one transaction.
	Delete(ctx context.Context, id int32) error
}

type PartyRepository interface {
	Create(ctx context.Context, party *domain.Party) error
	GetByID(ctx context.Context, id int32) (*domain.Party, error)
	Update(ctx context.Context, party *domain.Party) error
	List(ctx context.Context) ([]domain.Party, error)
	ListByCreator(ctx context.Context, creatorID int32) ([]domain.Party, error)
	ListAttendees(ctx context.Context, partyID int32) ([]domain.User, error)

	// Delete removes the party and all of its invite and attendance rows
	// in one transaction.
	Delete(ctx context.Context, id int32) error

	// DeleteOlderThan removes parties whose start time predates cutoff,
	// cascading like Delete. Returns the number of parties removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type InviteRepository interface {
	Create(ctx context.Context, invite *domain.Invite) error
	Get(ctx context.Context, userID, partyID int32) (*domain.Invite, error)

	// SetStatus updates the invite's status and, when addAttendee is set,
	// inserts the attendance row in the same transaction. Inserting an
	// attendance row that already exists is a no-op.
	SetStatus(ctx context.Context, userID, partyID int32, status domain.InviteStatus, addAttendee bool) error

	RemoveAttendee(ctx context.Context, userID, partyID int32) error
}
