package payment

import (
	"context"

	"github.com/fundr-ph/donation-ledger/internal/domain/entity"
)

// Verifier is the payment confirmation hook invoked before a donation is
// recorded. The production implementation would receive a gateway callback;
// the bundled adapter simulates approval after a configurable delay.
type Verifier interface {
	// Confirm blocks until the payment for the pending event is confirmed
	// or the context expires.
	//
	// Possible errors:
	// - ErrTimeout: if confirmation does not arrive before the deadline
	// - context.Canceled: if the caller gave up
	Confirm(ctx context.Context, event *entity.DonationEvent) error
}
