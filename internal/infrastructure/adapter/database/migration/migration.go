package migration

import (
	"context"
	"errors"

	"github.com/fundr-ph/donation-ledger/internal/domain/entity"
	errs "github.com/fundr-ph/donation-ledger/internal/domain/error"
	authport "github.com/fundr-ph/donation-ledger/internal/domain/port/auth"
	coreport "github.com/fundr-ph/donation-ledger/internal/domain/port/core"
	"github.com/fundr-ph/donation-ledger/internal/domain/port/persistence"
	"github.com/fundr-ph/donation-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// MigrateAll creates or updates the schema for every model
func MigrateAll(db *gorm.DB, logger coreport.Logger) error {
	logger.Info("Running database migrations", nil)

	if err := db.AutoMigrate(
		&model.UserAccount{},
		&model.DonationEvent{},
	); err != nil {
		logger.Error("Migration failed", map[string]any{"error": err.Error()})
		return err
	}

	logger.Info("Database migrations complete", nil)
	return nil
}

// SeedAdmin ensures an administrator account exists so the aggregate
// report is reachable on a fresh deployment. Idempotent: an existing
// account with the email is left untouched.
func SeedAdmin(
	ctx context.Context,
	userRepo persistence.UserRepository,
	hasher authport.PasswordHasher,
	idGen coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	email, password string,
) error {
	if email == "" || password == "" {
		logger.Warn("Admin seed skipped: no credentials configured", nil)
		return nil
	}

	_, err := userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrUserNotFound) {
		return err
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return err
	}

	admin, err := entity.NewUserAccount(idGen.NewID(), email, "Administrator", hash, timeProvider)
	if err != nil {
		return err
	}
	admin.Role = entity.RoleAdmin

	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info("Admin account seeded", map[string]any{"email": email})
	return nil
}
