package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"partyplanner-backend/internal/domain"
	"partyplanner-backend/internal/repository"
)

var (
	ErrInviteNotFound   = errors.New("invite not found")
	ErrAlreadyInvited   = errors.New("user already invited to this party")
	ErrAlreadyRequested = errors.New("join request already exists for this party")
)

type inviteService struct {
	inviteRepo repository.InviteRepository
	partyRepo  repository.PartyRepository
	userRepo   repository.UserRepository
	emailSvc   EmailService
	dispatch   *Dispatcher
}

func NewInviteService(
	inviteRepo repository.InviteRepository,
	partyRepo repository.PartyRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
	dispatch *Dispatcher,
) InviteService {
	return &inviteService{
		inviteRepo: inviteRepo,
		partyRepo:  partyRepo,
		userRepo:   userRepo,
		emailSvc:   emailSvc,
		dispatch:   dispatch,
	}
}

func (s *inviteService) Invite(ctx context.Context, partyID, userID int32) error {
	_, err := s.inviteRepo.Get(ctx, userID, partyID)
	if err == nil {
		return ErrAlreadyInvited
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("check existing invite: %w", err)
	}

	return s.inviteRepo.Create(ctx, &domain.Invite{
		UserID:  userID,
		PartyID: partyID,
		Status:  domain.InviteStatusPending,
	})
}

func (s *inviteService) RespondToInvite(ctx context.Context, partyID, userID int32, accept bool) error {
	party, err := s.partyRepo.GetByID(ctx, partyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPartyNotFound
		}
		return err
	}

	status := domain.InviteStatusDeclined
	if accept {
		status = domain.InviteStatusAccepted
	}

	// A resolved invite may be re-responded to; the attendance insert is
	// a no-op when the user is already attending.
	if err := s.inviteRepo.SetStatus(ctx, userID, partyID, status, accept); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInviteNotFound
		}
		return err
	}

	s.notifyCreator(party, userID, "invite_response", func(creatorEmail, responderName string) error {
		return s.emailSvc.SendInviteResponseNotification(context.Background(), creatorEmail, responderName, party.Title, status)
	})

	return nil
}

func (s *inviteService) RequestToJoin(ctx context.Context, partyID, userID int32) error {
	party, err := s.partyRepo.GetByID(ctx, partyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPartyNotFound
		}
		return err
	}

	_, err = s.inviteRepo.Get(ctx, userID, partyID)
	if err == nil {
		return ErrAlreadyRequested
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("check existing request: %w", err)
	}

	if err := s.inviteRepo.Create(ctx, &domain.Invite{
		UserID:  userID,
		PartyID: partyID,
		Status:  domain.InviteStatusPending,
	}); err != nil {
		return err
	}

	s.notifyCreator(party, userID, "join_request", func(creatorEmail, requesterName string) error {
		return s.emailSvc.SendJoinRequestNotification(context.Background(), creatorEmail, requesterName, party.Title)
	})

	return nil
}

func (s *inviteService) RemoveAttendee(ctx context.Context, partyID, userID, actorID int32) error {
	party, err := s.partyRepo.GetByID(ctx, partyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPartyNotFound
		}
		return err
	}
	if party.CreatorID != actorID {
		return ErrUnauthorized
	}

	return s.inviteRepo.RemoveAttendee(ctx, userID, partyID)
}

// notifyCreator dispatches a best-effort email to the party creator.
// Lookup or delivery failure never fails the triggering operation.
func (s *inviteService) notifyCreator(party *domain.Party, actorID int32, task string, send func(creatorEmail, actorName string) error) {
	s.dispatch.Go(task, func() error {
		ctx := context.Background()
		creator, err := s.userRepo.GetByID(ctx, party.CreatorID)
		if err != nil {
			return fmt.Errorf("load creator %d: %w", party.CreatorID, err)
		}
		actor, err := s.userRepo.GetByID(ctx, actorID)
		if err != nil {
			return fmt.Errorf("load user %d: %w", actorID, err)
		}
		return send(creator.Email, actor.Username)
	})
}
