package user

import (
	"context"

	"github.com/fundr-ph/donation-ledger/internal/domain/entity"
	errs "github.com/fundr-ph/donation-ledger/internal/domain/error"
	coreport "github.com/fundr-ph/donation-ledger/internal/domain/port/core"
	"github.com/fundr-ph/donation-ledger/internal/domain/port/persistence"
)

// UserUseCase handles account profile logic. Donation totals are read-only
// here; only the donation recorder mutates them.
type UserUseCase struct {
	userRepo     persistence.UserRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	userRepo persistence.UserRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetProfile returns the caller's own account
func (u *UserUseCase) GetProfile(ctx context.Context, caller entity.Identity) (*entity.UserAccount, error) {
	if caller.UserID == "" {
		return nil, errs.ErrUnauthenticated
	}
	return u.userRepo.GetByID(ctx, caller.UserID)
}

// UpdateProfileRequest carries owner-editable profile fields. Empty fields
// are left unchanged.
type UpdateProfileRequest struct {
	Email       string
	DisplayName string
}

// UpdateProfile applies a partial mutation of the caller's profile fields.
// The donation counter is never part of the update.
func (u *UserUseCase) UpdateProfile(ctx context.Context, caller entity.Identity, req UpdateProfileRequest) (*entity.UserAccount, error) {
	if caller.UserID == "" {
		return nil, errs.ErrUnauthenticated
	}

	// Validate through the entity before touching the store
	account, err := u.userRepo.GetByID(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	if err := account.UpdateProfile(req.Email, req.DisplayName, u.timeProvider); err != nil {
		return nil, err
	}

	fields := map[string]any{"updated_at": account.UpdatedAt}
	if req.Email != "" {
		fields["email"] = account.Email
	}
	if req.DisplayName != "" {
		fields["display_name"] = account.DisplayName
	}

	updated, err := u.userRepo.UpdateProfile(ctx, caller.UserID, fields)
	if err != nil {
		return nil, err
	}

	u.logger.Info("Profile updated", map[string]any{
		"user_id": caller.UserID,
	})

	return updated, nil
}
