package postgres_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partyplanner-backend/internal/domain"
	"partyplanner-backend/internal/repository/postgres"
)

func TestInviteSetStatusAcceptInsertsAttendance(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewInviteRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE party_invites SET status = $1 WHERE user_id = $2 AND party_id = $3`)).
		WithArgs(domain.InviteStatusAccepted, int32(5), int32(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO party_attendees (user_id, party_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`)).
		WithArgs(int32(5), int32(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = repo.SetStatus(context.Background(), 5, 7, domain.InviteStatusAccepted, true)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInviteSetStatusDeclineSkipsAttendance(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewInviteRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE party_invites SET status = $1`)).
		WithArgs(domain.InviteStatusDeclined, int32(5), int32(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = repo.SetStatus(context.Background(), 5, 7, domain.InviteStatusDeclined, false)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInviteSetStatusUnknownInviteRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewInviteRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE party_invites SET status = $1`)).
		WithArgs(domain.InviteStatusAccepted, int32(5), int32(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err = repo.SetStatus(context.Background(), 5, 404, domain.InviteStatusAccepted, true)

	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInviteCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewInviteRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO party_invites (user_id, party_id, status, created_on) VALUES ($1, $2, $3, $4)`)).
		WithArgs(int32(5), int32(7), domain.InviteStatusPending, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Create(context.Background(), &domain.Invite{UserID: 5, PartyID: 7, Status: domain.InviteStatusPending})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
