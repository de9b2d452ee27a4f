package persistence

import (
	"context"

	"github.com/fundr-ph/donation-ledger/internal/domain/entity"
)

// DonationRepository defines the ledger's persistence operations. The log
// is append-only: there is no update or delete for completed events.
type DonationRepository interface {
	// Append durably stores a new donation event
	//
	// Possible errors:
	// - ErrDuplicateEvent: if an event with the same EventID already exists
	// - ErrUserNotFound: if the referenced donor does not exist
	// - ErrDatabaseConnection: if the durable append fails
	Append(ctx context.Context, event *entity.DonationEvent) error

	// GetByEventID retrieves one event by its opaque identifier
	//
	// Possible errors:
	// - ErrEventNotFound: if no event with the given ID exists
	// - ErrDatabaseConnection: if the read fails
	GetByEventID(ctx context.Context, eventID string) (*entity.DonationEvent, error)

	// GetAll reads back the full ledger in insertion order. Aggregation
	// depends on this being complete; a partial read must fail instead.
	//
	// Possible errors:
	// - ErrDatabaseConnection: if the log cannot be read in full
	GetAll(ctx context.Context) ([]entity.DonationEvent, error)

	// GetByDonor reads a single donor's events in insertion order
	//
	// Possible errors:
	// - ErrDatabaseConnection: if the read fails
	GetByDonor(ctx context.Context, donorID string) ([]entity.DonationEvent, error)
}
