package payment

import (
	"context"

	"github.com/fundr-ph/donation-ledger/internal/domain/entity"
	coreport "github.com/fundr-ph/donation-ledger/internal/domain/port/core"
	paymentport "github.com/fundr-ph/donation-ledger/internal/domain/port/payment"
)

// SimulatedVerifier approves every payment after a configurable processing
// delay. It stands in for a real e-wallet gateway callback; the delay
// mirrors the confirmation wait a real integration would have, but remains
// bounded by the caller's context deadline.
type SimulatedVerifier struct {
	delay        coreport.Duration
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewSimulatedVerifier creates a simulated payment verifier
func NewSimulatedVerifier(delay coreport.Duration, timeProvider coreport.TimeProvider, logger coreport.Logger) paymentport.Verifier {
	return &SimulatedVerifier{
		delay:        delay,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Confirm waits out the simulated processing delay, honoring the deadline
func (v *SimulatedVerifier) Confirm(ctx context.Context, event *entity.DonationEvent) error {
	v.logger.Debug("Simulating payment confirmation", map[string]any{
		"event_id": event.EventID,
		"method":   string(event.Method),
		"delay_ms": v.delay.Std().Milliseconds(),
	})

	timer := make(chan struct{})
	go func() {
		v.timeProvider.Sleep(v.delay)
		close(timer)
	}()

	select {
	case <-timer:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
