package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"partyplanner-backend/internal/domain"
	"partyplanner-backend/internal/repository"
)

type partyRepository struct {
	db *sql.DB
}

func NewPartyRepository(db *sql.DB) repository.PartyRepository {
	return &partyRepository{db: db}
}

func (r *partyRepository) Create(ctx context.Context, p *domain.Party) error {
	query := `INSERT INTO parties (title, platform, date_time, description, creator_id, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	p.CreatedOn = time.Now().UTC()
	return r.db.QueryRowContext(ctx, query,
		p.Title, p.Platform, p.DateTime.UTC(), p.Description, p.CreatorID, p.CreatedOn).Scan(&p.ID)
}

func (r *partyRepository) GetByID(ctx context.Context, id int32) (*domain.Party, error) {
	p := &domain.Party{}
	query := `SELECT id, title, platform, date_time, description, creator_id, created_on FROM parties WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Platform, &p.DateTime, &p.Description, &p.CreatorID, &p.CreatedOn)
	if err != nil {
		return nil, err
	}
	p.DateTime = p.DateTime.UTC()
	return p, nil
}

func (r *partyRepository) Update(ctx context.Context, p *domain.Party) error {
	query := `UPDATE parties SET title = $1, platform = $2, date_time = $3, description = $4 WHERE id = $5`
	_, err := r.db.ExecContext(ctx, query, p.Title, p.Platform, p.DateTime.UTC(), p.Description, p.ID)
	return err
}

func (r *partyRepository) List(ctx context.Context) ([]domain.Party, error) {
	query := `SELECT id, title, platform, date_time, description, creator_id, created_on FROM parties ORDER BY date_time`
	return r.queryParties(ctx, query)
}

func (r *partyRepository) ListByCreator(ctx context.Context, creatorID int32) ([]domain.Party, error) {
	query := `SELECT id, title, platform, date_time, description, creator_id, created_on FROM parties WHERE creator_id = $1 ORDER BY date_time`
	return r.queryParties(ctx, query, creatorID)
}

func (r *partyRepository) queryParties(ctx context.Context, query string, args ...any) ([]domain.Party, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var parties []domain.Party
	for rows.Next() {
		var p domain.Party
		if err := rows.Scan(&p.ID, &p.Title, &p.Platform, &p.DateTime, &p.Description, &p.CreatorID, &p.CreatedOn); err != nil {
			return nil, err
		}
		p.DateTime = p.DateTime.UTC()
		parties = append(parties, p)
	}
	return parties, rows.Err()
}

func (r *partyRepository) ListAttendees(ctx context.Context, partyID int32) ([]domain.User, error) {
	query := `SELECT u.id, u.username, u.email, u.password_hash, u.is_admin, u.created_on
	          FROM users u
	          JOIN party_attendees pa ON pa.user_id = u.id
	          WHERE pa.party_id = $1
	          ORDER BY u.id`
	rows, err := r.db.QueryContext(ctx, query, partyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.CreatedOn); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *partyRepository) Delete(ctx context.Context, id int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin party delete: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM party_invites WHERE party_id = $1`, id); err != nil {
		return fmt.Errorf("delete party invites: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM party_attendees WHERE party_id = $1`, id); err != nil {
		return fmt.Errorf("delete party attendees: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM parties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete party: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return tx.Commit()
}

func (r *partyRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin party purge: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM party_invites WHERE party_id IN (SELECT id FROM parties WHERE date_time < $1)`, cutoff.UTC()); err != nil {
		return 0, fmt.Errorf("purge party invites: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM party_attendees WHERE party_id IN (SELECT id FROM parties WHERE date_time < $1)`, cutoff.UTC()); err != nil {
		return 0, fmt.Errorf("purge party attendees: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM parties WHERE date_time < $1`, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("purge parties: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	return affected, tx.Commit()
}
