package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"partyplanner-backend/internal/domain"
	"partyplanner-backend/internal/repository"
)

type inviteRepository struct {
	db *sql.DB
}

func NewInviteRepository(db *sql.DB) repository.InviteRepository {
	return &inviteRepository{db: db}
}

func (r *inviteRepository) Create(ctx context.Context, inv *domain.Invite) error {
	query := `INSERT INTO party_invites (user_id, party_id, status, created_on) VALUES ($1, $2, $3, $4)`
	inv.CreatedOn = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query, inv.UserID, inv.PartyID, inv.Status, inv.CreatedOn)
	return err
}

func (r *inviteRepository) Get(ctx context.Context, userID, partyID int32) (*domain.Invite, error) {
	inv := &domain.Invite{}
	query := `SELECT user_id, party_id, status, created_on FROM party_invites WHERE user_id = $1 AND party_id = $2`
	err := r.db.QueryRowContext(ctx, query, userID, partyID).Scan(&inv.UserID, &inv.PartyID, &inv.Status, &inv.CreatedOn)
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *inviteRepository) SetStatus(ctx context.Context, userID, partyID int32, status domain.InviteStatus, addAttendee bool) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin invite response: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE party_invites SET status = $1 WHERE user_id = $2 AND party_id = $3`, status, userID, partyID)
	if err != nil {
		return fmt.Errorf("update invite status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	if addAttendee {
		// Accepting an already accepted invite must not duplicate the row.
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO party_attendees (user_id, party_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`, userID, partyID); err != nil {
			return fmt.Errorf("insert attendance: %w", err)
		}
	}

	return tx.Commit()
}

func (r *inviteRepository) RemoveAttendee(ctx context.Context, userID, partyID int32) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM party_attendees WHERE user_id = $1 AND party_id = $2`, userID, partyID)
	return err
}
