package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"

	"github.com/rs/cors"
	_ "github.com/lib/pq"

	httpapi "partyplanner-backend/internal/api/http"
	"partyplanner-backend/internal/config"
	"partyplanner-backend/internal/logger"
	"partyplanner-backend/internal/repository/postgres"
	"partyplanner-backend/internal/scheduler"
	"partyplanner-backend/internal/security"
	"partyplanner-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Party Planner Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("SMTP configuration", "host", cfg.SMTP.Host, "port", cfg.SMTP.Port)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Run migrations
	if err := postgres.Migrate(db); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		log.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Database schema up to date")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	hasher := security.NewPasswordHasher()
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.AccessTokenExpiry())

	// Seed the admin account
	if err := service.SeedAdminUser(context.Background(), store.UserRepository, hasher, cfg.Admin); err != nil {
		logger.Error("Failed to seed admin user", "error", err)
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	// Initialize Reminder Scheduler
	reminders := scheduler.NewReminderScheduler(store.PartyRepository, emailSvc, cfg.ReminderLead(), scheduler.NewClock())
	defer reminders.Shutdown()

	// Initialize Services
	dispatch := service.NewDispatcher()
	authSvc := service.NewAuthService(store.UserRepository, hasher, tokenManager)
	userSvc := service.NewUserService(store.UserRepository, hasher)
	inviteSvc := service.NewInviteService(store.InviteRepository, store.PartyRepository, store.UserRepository, emailSvc, dispatch)
	partySvc := service.NewPartyService(store.PartyRepository, store.UserRepository, inviteSvc, reminders, emailSvc, dispatch)
	adminSvc := service.NewAdminService(store.UserRepository, store.PartyRepository, reminders)

	// Initialize HTTP handlers
	authHandler := httpapi.NewAuthHandler(authSvc)
	userHandler := httpapi.NewUserHandler(userSvc)
	partyHandler := httpapi.NewPartyHandler(partySvc, inviteSvc)
	adminHandler := httpapi.NewAdminHandler(adminSvc)

	router := httpapi.NewRouter(tokenManager, authHandler, userHandler, partyHandler, adminHandler)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), corsHandler.Handler(router)); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
