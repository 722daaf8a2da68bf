package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"partyplanner-backend/internal/domain"
	"partyplanner-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (username, email, password_hash, is_admin, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	u.CreatedOn = time.Now().UTC()
	return r.db.QueryRowContext(ctx, query, u.Username, u.Email, u.PasswordHash, u.IsAdmin, u.CreatedOn).Scan(&u.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, username, email, password_hash, is_admin, created_on FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.CreatedOn)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, username, email, password_hash, is_admin, created_on FROM users WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.CreatedOn)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET username = $1, email = $2, password_hash = $3 WHERE id = $4`
	_, err := r.db.ExecContext(ctx, query, u.Username, u.Email, u.PasswordHash, u.ID)
	return err
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	query := `SELECT id, username, email, password_hash, is_admin, created_on FROM users ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
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

func (r *userRepository) Delete(ctx context.Context, id int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin user delete: %w", err)
	}
	defer tx.Rollback()

	// Rows tied to parties this user created go first, then the parties,
	// then everything referencing the user directly.
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM party_invites WHERE party_id IN (SELECT id FROM parties WHERE creator_id = $1)`, id); err != nil {
		return fmt.Errorf("delete invites of created parties: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM party_attendees WHERE party_id IN (SELECT id FROM parties WHERE creator_id = $1)`, id); err != nil {
		return fmt.Errorf("delete attendees of created parties: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM parties WHERE creator_id = $1`, id); err != nil {
		return fmt.Errorf("delete created parties: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM party_invites WHERE user_id = $1`, id); err != nil {
		return fmt.Errorf("delete user invites: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM party_attendees WHERE user_id = $1`, id); err != nil {
		return fmt.Errorf("delete user attendance: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
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
