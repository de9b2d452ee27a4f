package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/fundr-ph/donation-ledger/internal/domain/entity"
	errs "github.com/fundr-ph/donation-ledger/internal/domain/error"
	coreport "github.com/fundr-ph/donation-ledger/internal/domain/port/core"
	"github.com/fundr-ph/donation-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository implements the UserRepository port using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts an account model to a domain entity
func modelToAccount(m *model.UserAccount) *entity.UserAccount {
	account := &entity.UserAccount{
		ID:           m.ID,
		Email:        m.Email,
		DisplayName:  m.DisplayName,
		PasswordHash: m.PasswordHash,
		Role:         entity.Role(m.Role),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	account.SetTotalDonated(m.TotalDonated)
	return account
}

// accountToModel converts a domain entity to an account model
func accountToModel(u *entity.UserAccount) model.UserAccount {
	return model.UserAccount{
		ID:           u.ID,
		Email:        u.Email,
		DisplayName:  u.DisplayName,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		TotalDonated: u.TotalDonated(),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling for accounts
func (r *UserRepository) handleDatabaseError(operation string, err error, userID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrUserNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateEmail
	}
	if r.errorClassifier.IsTimeoutError(err) {
		return fmt.Errorf("%w: %s", errs.ErrTimeout, operation)
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves an account by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.UserAccount, error) {
	var m model.UserAccount
	result := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, id)
	}
	return modelToAccount(&m), nil
}

// GetByEmail retrieves an account by its sign-in address
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.UserAccount, error) {
	var m model.UserAccount
	result := r.db.WithContext(ctx).First(&m, "email = ?", email)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user by email", result.Error, email)
	}
	return modelToAccount(&m), nil
}

// Create stores a new account
func (r *UserRepository) Create(ctx context.Context, user *entity.UserAccount) error {
	m := accountToModel(user)
	result := r.db.WithContext(ctx).Create(&m)
	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error, user.ID)
	}

	r.logger.Info("Account created", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return nil
}

// UpdateProfile applies a partial mutation of owner-editable fields. The
// donation counter is deliberately not updatable through this path.
func (r *UserRepository) UpdateProfile(ctx context.Context, id string, fields map[string]any) (*entity.UserAccount, error) {
	delete(fields, "total_donated")

	result := r.db.WithContext(ctx).Model(&model.UserAccount{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return nil, r.handleDatabaseError("updating profile", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return nil, errs.ErrUserNotFound
	}

	return r.GetByID(ctx, id)
}

// IncrementTotalDonated atomically adds to the running total using an SQL
// increment expression, so concurrent donations from the same donor neither
// lose nor double-count an event.
func (r *UserRepository) IncrementTotalDonated(ctx context.Context, id string, amountCentavos int64) (*entity.UserAccount, error) {
	result := r.db.WithContext(ctx).Model(&model.UserAccount{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"total_donated": gorm.Expr("total_donated + ?", amountCentavos),
			"updated_at":    r.timeProvider.Now(),
		})
	if result.Error != nil {
		return nil, r.handleDatabaseError("incrementing donation total", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return nil, errs.ErrUserNotFound
	}

	account, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Donation total incremented", map[string]any{
		"user_id":   id,
		"increment": entity.FormatCentavos(amountCentavos),
		"new_total": account.FormattedTotal(),
	})

	return account, nil
}

// ListByTotalDonated reads every account ordered by running total
// descending, ties broken by earliest creation time
func (r *UserRepository) ListByTotalDonated(ctx context.Context) ([]entity.UserAccount, error) {
	var models []model.UserAccount
	result := r.db.WithContext(ctx).
		Order("total_donated DESC").
		Order("created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing users by total", result.Error, "")
	}

	accounts := make([]entity.UserAccount, 0, len(models))
	for i := range models {
		accounts = append(accounts, *modelToAccount(&models[i]))
	}
	return accounts, nil
}
