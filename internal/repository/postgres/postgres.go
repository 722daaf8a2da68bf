package postgres

import (
	"database/sql"

	"partyplanner-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.PartyRepository
	repository.InviteRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:               db,
		UserRepository:   NewUserRepository(db),
		PartyRepository:  NewPartyRepository(db),
		InviteRepository: NewInviteRepository(db),
	}
}
