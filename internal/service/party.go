package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"partyplanner-backend/internal/domain"
	"partyplanner-backend/internal/logger"
	"partyplanner-backend/internal/repository"
)

var (
	ErrPartyNotFound = errors.New("party not found")
	ErrUnauthorized  = errors.New("not allowed to modify this party")
)

type partyService struct {
	partyRepo repository.PartyRepository
	userRepo  repository.UserRepository
	inviteSvc InviteService
	reminders ReminderScheduler
	emailSvc  EmailService
	dispatch  *Dispatcher
}

func NewPartyService(
	partyRepo repository.PartyRepository,
	userRepo repository.UserRepository,
	inviteSvc InviteService,
	reminders ReminderScheduler,
	emailSvc EmailService,
	dispatch *Dispatcher,
) PartyService {
	return &partyService{
		partyRepo: partyRepo,
		userRepo:  userRepo,
		inviteSvc: inviteSvc,
		reminders: reminders,
		emailSvc:  emailSvc,
		dispatch:  dispatch,
	}
}

func (s *partyService) CreateParty(ctx context.Context, creatorID int32, party *domain.Party, inviteEmails []string) (*domain.Party, error) {
	creator, err := s.userRepo.GetByID(ctx, creatorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	party.CreatorID = creatorID
	party.DateTime = party.DateTime.UTC()
	if err := s.partyRepo.Create(ctx, party); err != nil {
		return nil, fmt.Errorf("create party: %w", err)
	}

	s.reminders.Schedule(party.ID, party.DateTime)

	// Invite every distinct email that resolves to a known user; unknown
	// emails are skipped without error.
	seen := make(map[string]bool)
	for _, email := range inviteEmails {
		if seen[email] {
			continue
		}
		seen[email] = true

		invited, err := s.userRepo.GetByEmail(ctx, email)
		if err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				logger.Warn("Failed to resolve invite email", "party_id", party.ID, "email", email, "error", err)
			}
			continue
		}

		if err := s.inviteSvc.Invite(ctx, party.ID, invited.ID); err != nil {
			logger.Warn("Failed to create invite", "party_id", party.ID, "user_id", invited.ID, "error", err)
			continue
		}

		recipient := invited.Email
		s.dispatch.Go("party_invitation", func() error {
			return s.emailSvc.SendPartyInvitation(context.Background(), recipient, creator.Username, party.Title)
		})
	}

	return party, nil
}

func (s *partyService) GetParty(ctx context.Context, id int32) (*domain.Party, error) {
	party, err := s.partyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPartyNotFound
		}
		return nil, err
	}

	attendees, err := s.partyRepo.ListAttendees(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	party.Attendees = attendees
	return party, nil
}

func (s *partyService) ListParties(ctx context.Context) ([]domain.Party, error) {
	return s.partyRepo.List(ctx)
}

func (s *partyService) UpdateParty(ctx context.Context, partyID, actorID int32, update *domain.PartyUpdate) (*domain.Party, error) {
	party, err := s.partyRepo.GetByID(ctx, partyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPartyNotFound
		}
		return nil, err
	}
	if party.CreatorID != actorID {
		return nil, ErrUnauthorized
	}

	oldTime := party.DateTime

	if update.Title != nil {
		party.Title = *update.Title
	}
	if update.Platform != nil {
		party.Platform = *update.Platform
	}
	if update.Description != nil {
		party.Description = *update.Description
	}

	// Both sides are UTC-normalized before comparison.
	timeChanged := false
	if update.DateTime != nil {
		newTime := update.DateTime.UTC()
		if !newTime.Equal(oldTime) {
			party.DateTime = newTime
			timeChanged = true
		}
	}

	// Rearm before committing so a reschedule is never observable with a
	// stale reminder; Schedule replaces any existing job for the party.
	if timeChanged {
		s.reminders.Schedule(partyID, party.DateTime)
	}

	if err := s.partyRepo.Update(ctx, party); err != nil {
		if timeChanged {
			// Persistence failed; restore the previous arming.
			s.reminders.Schedule(partyID, oldTime)
		}
		return nil, fmt.Errorf("update party: %w", err)
	}

	return party, nil
}

func (s *partyService) DeleteParty(ctx context.Context, partyID, actorID int32) error {
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

	s.reminders.Remove(partyID)

	// Invites, attendance and the party row go in one transaction.
	if err := s.partyRepo.Delete(ctx, partyID); err != nil {
		// The cascade rolled back; restore the reminder.
		s.reminders.Schedule(partyID, party.DateTime)
		return fmt.Errorf("delete party: %w", err)
	}

	return nil
}
