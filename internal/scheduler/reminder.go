package scheduler

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	"partyplanner-backend/internal/domain"
	"partyplanner-backend/internal/logger"
)

// PartyReader is the slice of the persistence layer the reminder
// scheduler needs at fire time. Attendees are read lazily when the
// reminder fires, not when it is armed.
type PartyReader interface {
	GetByID(ctx context.Context, id int32) (*domain.Party, error)
	ListAttendees(ctx context.Context, partyID int32) ([]domain.User, error)
}

// ReminderSender delivers a single reminder email to one attendee.
type ReminderSender interface {
	SendPartyReminder(ctx context.Context, email, username string, party *domain.Party) error
}

// ReminderScheduler keeps at most one armed one-shot reminder per
// party. Arming a party that already has a job replaces it; it never
// stacks. All state lives in memory, so jobs do not survive a restart.
type ReminderScheduler struct {
	mu      sync.Mutex
	jobs    map[int32]Timer
	clock   Clock
	lead    time.Duration
	parties PartyReader
	sender  ReminderSender
}

func NewReminderScheduler(parties PartyReader, sender ReminderSender, lead time.Duration, clock Clock) *ReminderScheduler {
	return &ReminderScheduler{
		jobs:    make(map[int32]Timer),
		clock:   clock,
		lead:    lead,
		parties: parties,
		sender:  sender,
	}
}

// Schedule arms a reminder to fire lead time before startsAt. If that
// moment has already passed, no job is armed and any existing job for
// the party is dropped.
func (s *ReminderScheduler) Schedule(partyID int32, startsAt time.Time) {
	fireAt := startsAt.UTC().Add(-s.lead)
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.jobs[partyID]; ok {
		t.Stop()
		delete(s.jobs, partyID)
	}

	if !fireAt.After(now) {
		logger.Debug("Reminder time already passed, not arming", "party_id", partyID, "fire_at", fireAt)
		return
	}

	s.jobs[partyID] = s.clock.AfterFunc(fireAt.Sub(now), func() {
		s.fire(partyID)
	})
	logger.Debug("Reminder armed", "party_id", partyID, "fire_at", fireAt)
}

// Remove cancels the armed reminder for the party, if any.
func (s *ReminderScheduler) Remove(partyID int32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.jobs[partyID]; ok {
		t.Stop()
		delete(s.jobs, partyID)
		logger.Debug("Reminder disarmed", "party_id", partyID)
	}
}

// Active returns the number of armed reminder jobs.
func (s *ReminderScheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

// Shutdown cancels every armed reminder.
func (s *ReminderScheduler) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, t := range s.jobs {
		t.Stop()
		delete(s.jobs, id)
	}
}

func (s *ReminderScheduler) fire(partyID int32) {
	s.mu.Lock()
	delete(s.jobs, partyID)
	s.mu.Unlock()

	ctx := context.Background()

	party, err := s.parties.GetByID(ctx, partyID)
	if err != nil {
		// The party may have been deleted while the job was armed.
		if errors.Is(err, sql.ErrNoRows) {
			logger.Debug("Party gone before reminder fired, skipping", "party_id", partyID)
		} else {
			logger.Error("Failed to load party for reminder", "party_id", partyID, "error", err)
		}
		return
	}

	attendees, err := s.parties.ListAttendees(ctx, partyID)
	if err != nil {
		logger.Error("Failed to load attendees for reminder", "party_id", partyID, "error", err)
		return
	}

	sent := 0
	for _, attendee := range attendees {
		if err := s.sender.SendPartyReminder(ctx, attendee.Email, attendee.Username, party); err != nil {
			logger.Error("Failed to send party reminder",
				"party_id", partyID,
				"email", attendee.Email,
				"error", err)
			continue
		}
		sent++
	}
	logger.Info("Party reminders sent", "party_id", partyID, "sent", sent, "attendees", len(attendees))
}
