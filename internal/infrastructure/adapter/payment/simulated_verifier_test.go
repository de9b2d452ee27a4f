package payment

import (
	"context"
	"testing"
	"time"

	"github.com/fundr-ph/donation-ledger/internal/domain/entity"
	coreport "github.com/fundr-ph/donation-ledger/internal/domain/port/core"
	timeAdapter "github.com/fundr-ph/donation-ledger/internal/infrastructure/adapter/time"
	mcore "github.com/fundr-ph/donation-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
)

func TestConfirm(t *testing.T) {
	event := &entity.DonationEvent{EventID: "evt-1", Method: entity.MethodGCash}

	t.Run("Approves after the delay", func(t *testing.T) {
		verifier := NewSimulatedVerifier(coreport.Millisecond, timeAdapter.NewRealTimeProvider(), mcore.NewSilentLogger())

		err := verifier.Confirm(context.Background(), event)
		assert.NoError(t, err)
	})

	t.Run("Honors the context deadline", func(t *testing.T) {
		verifier := NewSimulatedVerifier(10*coreport.Second, timeAdapter.NewRealTimeProvider(), mcore.NewSilentLogger())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
		defer cancel()

		err := verifier.Confirm(ctx, event)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("Honors cancellation", func(t *testing.T) {
		verifier := NewSimulatedVerifier(10*coreport.Second, timeAdapter.NewRealTimeProvider(), mcore.NewSilentLogger())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := verifier.Confirm(ctx, event)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
