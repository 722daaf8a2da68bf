package service

import (
	"context"
	"database/sql"
	"errors"

	"partyplanner-backend/internal/domain"
	"partyplanner-backend/internal/repository"
	"partyplanner-backend/internal/security"
)

var ErrUserNotFound = errors.New("user not found")

type userService struct {
	userRepo repository.UserRepository
	hasher   security.PasswordHasher
}

func NewUserService(userRepo repository.UserRepository, hasher security.PasswordHasher) UserService {
	return &userService{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

func (s *userService) UpdateProfile(ctx context.Context, userID int32, username, email, password string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if username != "" {
		user.Username = username
	}
	if email != "" {
		user.Email = email
	}
	if password != "" {
		hash, err := s.hasher.Hash(password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
