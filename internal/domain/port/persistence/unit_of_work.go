package persistence

import (
	"context"
)

// UnitOfWork coordinates the donation recorder's two writes (event append
// and counter increment) inside one database transaction so that neither
// can be observed without the other.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetDonationRepository returns a donation repository bound to the current transaction
	GetDonationRepository(ctx context.Context) DonationRepository
}
