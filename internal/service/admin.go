package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"partyplanner-backend/internal/domain"
	"partyplanner-backend/internal/repository"
)

type adminService struct {
	userRepo  repository.UserRepository
	partyRepo repository.PartyRepository
	reminders ReminderScheduler
}

func NewAdminService(userRepo repository.UserRepository, partyRepo repository.PartyRepository, reminders ReminderScheduler) AdminService {
	return &adminService{
		userRepo:  userRepo,
		partyRepo: partyRepo,
		reminders: reminders,
	}
}

func (s *adminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

func (s *adminService) DeleteUser(ctx context.Context, userID int32) error {
	// Parties the user created disappear with them, so their reminders
	// must be disarmed first.
	parties, err := s.partyRepo.ListByCreator(ctx, userID)
	if err != nil {
		return fmt.Errorf("list created parties: %w", err)
	}
	for _, p := range parties {
		s.reminders.Remove(p.ID)
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		// The cascade rolled back; restore reminders for parties that
		// still have a future start.
		for _, p := range parties {
			s.reminders.Schedule(p.ID, p.DateTime)
		}
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}

	return nil
}
