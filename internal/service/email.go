package service

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"partyplanner-backend/internal/domain"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) send(email, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via gomail: %w", err)
	}

	return nil
}

func (s *emailService) SendPartyInvitation(ctx context.Context, email, creatorName, partyTitle string) error {
	subject := fmt.Sprintf("Invitation to Party: %s", partyTitle)
	body := fmt.Sprintf("You've been invited to join %s's party!", creatorName)
	return s.send(email, subject, body)
}

func (s *emailService) SendPartyReminder(ctx context.Context, email, username string, party *domain.Party) error {
	subject := fmt.Sprintf("Reminder: Party '%s' starts in 1 hour!", party.Title)
	body := fmt.Sprintf(`Hello %s!

This is a reminder that the party '%s' starts in 1 hour!

Details:
Time: %s
Platform: %s
Description: %s

Don't forget to join on time!`,
		username, party.Title, party.DateTime.Format("2006-01-02 15:04 MST"), party.Platform, party.Description)
	return s.send(email, subject, body)
}

func (s *emailService) SendJoinRequestNotification(ctx context.Context, creatorEmail, requesterName, partyTitle string) error {
	subject := "New Join Request"
	body := fmt.Sprintf("%s has requested to join your party '%s'!", requesterName, partyTitle)
	return s.send(creatorEmail, subject, body)
}

func (s *emailService) SendInviteResponseNotification(ctx context.Context, creatorEmail, responderName, partyTitle string, status domain.InviteStatus) error {
	subject := "Response to Party Invitation"
	body := fmt.Sprintf("%s has %s your invitation to '%s'!", responderName, strings.ToLower(string(status)), partyTitle)
	return s.send(creatorEmail, subject, body)
}
