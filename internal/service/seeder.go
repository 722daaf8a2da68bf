package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"partyplanner-backend/internal/config"
	"partyplanner-backend/internal/domain"
	"partyplanner-backend/internal/logger"
	"partyplanner-backend/internal/repository"
	"partyplanner-backend/internal/security"
)

// SeedAdminUser creates the configured admin account if it does not
// exist yet. Called once at startup.
func SeedAdminUser(ctx context.Context, userRepo repository.UserRepository, hasher security.PasswordHasher, cfg config.AdminConfig) error {
	if cfg.Email == "" || cfg.Password == "" {
		logger.Warn("Admin seed credentials not configured, skipping admin seeding")
		return nil
	}

	_, err := userRepo.GetByEmail(ctx, cfg.Email)
	if err == nil {
		logger.Debug("Admin user already exists", "email", cfg.Email)
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("check admin user: %w", err)
	}

	hash, err := hasher.Hash(cfg.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &domain.User{
		Username:     "admin",
		Email:        cfg.Email,
		PasswordHash: hash,
		IsAdmin:      true,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	logger.Info("Admin user created", "email", cfg.Email)
	return nil
}
