package persistence

import (
	"context"

	"github.com/fundr-ph/donation-ledger/internal/domain/entity"
)

// UserRepository defines persistence operations for donor and admin accounts
type UserRepository interface {
	// GetByID retrieves an account by ID
	//
	// Possible errors:
	// - ErrUserNotFound: if no account with the given ID exists
	// - ErrDatabaseConnection: if the read fails
	GetByID(ctx context.Context, id string) (*entity.UserAccount, error)

	// GetByEmail retrieves an account by its sign-in address
	//
	// Possible errors:
	// - ErrUserNotFound: if no account with the given email exists
	// - ErrDatabaseConnection: if the read fails
	GetByEmail(ctx context.Context, email string) (*entity.UserAccount, error)

	// Create stores a new account with a zero donation total
	//
	// Possible errors:
	// - ErrDuplicateEmail: if an account with the same email exists
	// - ErrDatabaseConnection: if the write fails
	Create(ctx context.Context, user *entity.UserAccount) error

	// UpdateProfile applies a partial mutation of owner-editable fields.
	// It never touches the donation counter.
	//
	// Possible errors:
	// - ErrUserNotFound: if no account with the given ID exists
	// - ErrDuplicateEmail: if the new email is already taken
	// - ErrDatabaseConnection: if the write fails
	UpdateProfile(ctx context.Context, id string, fields map[string]any) (*entity.UserAccount, error)

	// IncrementTotalDonated atomically adds amountCentavos to an account's
	// running total using the store's native increment, and returns the
	// account with its new total. Concurrent increments for the same donor
	// must neither lose nor double-count an event.
	//
	// Possible errors:
	// - ErrUserNotFound: if no account with the given ID exists
	// - ErrDatabaseConnection: if the write fails
	IncrementTotalDonated(ctx context.Context, id string, amountCentavos int64) (*entity.UserAccount, error)

	// ListByTotalDonated reads every account ordered by running total
	// descending, ties broken by earliest CreatedAt. Backs the donor
	// ranking in the aggregation view.
	//
	// Possible errors:
	// - ErrDatabaseConnection: if the read fails
	ListByTotalDonated(ctx context.Context) ([]entity.UserAccount, error)
}
