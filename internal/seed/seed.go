package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/adityar/sekolahku/internal/app/models"
	appRepos "github.com/adityar/sekolahku/internal/app/repositories"
	"github.com/adityar/sekolahku/internal/config"
	"github.com/adityar/sekolahku/internal/pkg/auth"
)

// CreateDefaultData seeds the default admin account so a fresh deployment can
// be signed into. Runs after migrations; safe to call on every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	if cfg.Admin.Password == "" {
		lgr.Warn().Str("email", cfg.Admin.Email).Msg("Admin password not configured, skipping admin seeding")
		return nil
	}

	exists, err := userRepo.EmailExists(ctx, cfg.Admin.Email)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		return err
	}
	if exists {
		lgr.Info().Str("email", cfg.Admin.Email).Msg("Admin user already exists, skipping creation")
		return nil
	}

	lgr.Info().Str("email", cfg.Admin.Email).Msg("Creating default admin user...")

	hashedPassword, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	admin := &appModels.User{
		Email:     cfg.Admin.Email,
		Password:  hashedPassword,
		FirstName: "System",
		LastName:  "Administrator",
		RoleType:  appModels.RoleAdmin,
		IsActive:  true,
	}

	adminID, err := userRepo.CreateUser(ctx, admin)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating admin user")
		return errors.Join(errors.New("failed to seed admin user"), err)
	}

	lgr.Info().Int64("adminID", adminID).Msg("Default admin user created successfully")
	return nil
}
