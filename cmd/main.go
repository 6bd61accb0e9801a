package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"

	"github.com/AhapraxAhmed/mockrithm/config"
	"github.com/AhapraxAhmed/mockrithm/db"
	"github.com/AhapraxAhmed/mockrithm/internal/auth/handler"
	"github.com/AhapraxAhmed/mockrithm/internal/auth/identity"
	repo "github.com/AhapraxAhmed/mockrithm/internal/auth/repository/postgres"
	"github.com/AhapraxAhmed/mockrithm/internal/auth/service"
	"github.com/AhapraxAhmed/mockrithm/internal/logging"
	"github.com/AhapraxAhmed/mockrithm/internal/mailer"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logging.New(cfg.Env)
	clock := clockwork.NewRealClock()
	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer pool.Close()

	store := repo.NewDocumentStore(pool)
	provider := identity.NewJWTProvider(store, cfg.IdentityTokenSecret, cfg.SessionTokenSecret, clock)
	smtpMailer := mailer.NewSMTPMailer(mailer.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
		FromName: cfg.SMTPFromName,
	})

	rateLimiter := service.NewRateLimitService(store, clock, log)
	sessions := service.NewSessionService(provider, store, cfg.IsProduction(), log)
	directory := service.NewDirectoryService(store, clock, cfg.OperatorEmail, log)
	cascade := service.NewCascadeService(store, provider, cfg.DrainBatchSize, log)
	resets := service.NewPasswordResetService(store, provider, smtpMailer, clock)
	admin := service.NewAdminService(store, clock)

	authHandler := handler.NewAuthHandler(rateLimiter, sessions, directory, cascade, resets,
		provider, cfg.IsProduction(), log)
	adminHandler := handler.NewAdminHandler(admin, cascade, log)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler, adminHandler)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
