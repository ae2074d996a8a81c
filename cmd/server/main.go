package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pawprint/cattery-api/internal/api"
	"github.com/pawprint/cattery-api/internal/core/domain"
	"github.com/pawprint/cattery-api/internal/infrastructure/config"
	pgdb "github.com/pawprint/cattery-api/internal/infrastructure/db/postgres"
	redisdb "github.com/pawprint/cattery-api/internal/infrastructure/db/redis"
	"github.com/pawprint/cattery-api/pkg/logger"
)

// @title        Cattery API
// @version      1.0
// @description  CRUD REST API for cats, breeds, users and clients with JWT authentication and role/ownership authorization.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	db, err := pgdb.Connect(ctx, pgdb.Config{DSN: cfg.Postgres.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	if err := pgdb.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate schema")
	}

	if err := seedAdmin(ctx, db, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin user")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() { _ = rdb.Close() }()

	e := api.NewRouter(db, rdb, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// seedAdmin creates the bootstrap admin account when configured and absent.
// Without it a fresh deployment has no way to mint the first admin:
// anonymous registration always yields the user role.
func seedAdmin(ctx context.Context, db *gorm.DB, cfg *config.Config, log zerolog.Logger) error {
	if cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		return nil
	}

	users := pgdb.NewUserRepository(db)
	if _, err := users.FindByEmail(ctx, cfg.Seed.AdminEmail); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if _, err := users.Create(ctx, &domain.User{
		Name:         "admin",
		Email:        cfg.Seed.AdminEmail,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}); err != nil && !errors.Is(err, domain.ErrEmailTaken) {
		return err
	}

	log.Info().Str("email", cfg.Seed.AdminEmail).Msg("seeded admin user")
	return nil
}
