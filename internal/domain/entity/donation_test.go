package entity

import (
	"testing"
	"time"

	errs "github.com/fundr-ph/donation-ledger/internal/domain/error"
	mcore "github.com/fundr-ph/donation-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDonationEvent(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	tp := mcore.NewFixedTimeProvider(now)

	t.Run("Valid donation", func(t *testing.T) {
		event, err := NewDonationEvent("evt-1", "donor-1", "500", string(CategoryHealth), string(MethodGCash), tp)
		require.NoError(t, err)

		assert.Equal(t, "evt-1", event.EventID)
		assert.Equal(t, "donor-1", event.DonorID)
		assert.Equal(t, "500.00", event.Amount)
		assert.Equal(t, int64(50000), event.AmountCentavos)
		assert.Equal(t, CategoryHealth, event.Category)
		assert.Equal(t, MethodGCash, event.Method)
		assert.Equal(t, DonationPending, event.Status)
		assert.Equal(t, now, event.CreatedAt)
		assert.Nil(t, event.ProcessedAt)
	})

	t.Run("Invalid inputs", func(t *testing.T) {
		testCases := []struct {
			name      string
			eventID   string
			donorID   string
			amount    string
			category  string
			method    string
			errorType error
		}{
			{"Empty event ID", "", "donor-1", "500", "Health", "GCash", errs.ErrInvalidEventID},
			{"Empty donor ID", "evt-1", "", "500", "Health", "GCash", errs.ErrInvalidDonorID},
			{"Zero amount", "evt-1", "donor-1", "0", "Health", "GCash", errs.ErrInvalidAmount},
			{"Negative amount", "evt-1", "donor-1", "-10", "Health", "GCash", errs.ErrNegativeAmount},
			{"Malformed amount", "evt-1", "donor-1", "abc", "Health", "GCash", errs.ErrInvalidAmount},
			{"Three decimal places", "evt-1", "donor-1", "10.123", "Health", "GCash", errs.ErrInvalidAmount},
			{"Unknown category", "evt-1", "donor-1", "500", "Sports", "GCash", errs.ErrInvalidCategory},
			{"All is not a donation category", "evt-1", "donor-1", "500", "All", "GCash", errs.ErrInvalidCategory},
			{"Unknown method", "evt-1", "donor-1", "500", "Health", "PayPal", errs.ErrInvalidMethod},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := NewDonationEvent(tc.eventID, tc.donorID, tc.amount, tc.category, tc.method, tp)
				assert.ErrorIs(t, err, tc.errorType)
			})
		}
	})
}

func TestDonationEventLifecycle(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	tp := mcore.NewFixedTimeProvider(now)

	t.Run("MarkCompleted", func(t *testing.T) {
		event, err := NewDonationEvent("evt-1", "donor-1", "25.5", string(CategoryEducation), string(MethodMaya), tp)
		require.NoError(t, err)

		event.MarkCompleted(tp, "125.50")

		assert.Equal(t, DonationCompleted, event.Status)
		assert.Equal(t, "125.50", event.ResultTotal)
		require.NotNil(t, event.ProcessedAt)
		assert.Equal(t, now, *event.ProcessedAt)
		assert.Empty(t, event.ErrorMessage)
	})

	t.Run("MarkFailed", func(t *testing.T) {
		event, err := NewDonationEvent("evt-2", "donor-1", "25.5", string(CategoryEducation), string(MethodMaya), tp)
		require.NoError(t, err)

		event.MarkFailed(tp, "payment confirmation timed out")

		assert.Equal(t, DonationFailed, event.Status)
		assert.Equal(t, "payment confirmation timed out", event.ErrorMessage)
		require.NotNil(t, event.ProcessedAt)
		assert.Empty(t, event.ResultTotal)
	})
}

func TestCategories(t *testing.T) {
	categories := Categories()

	assert.Len(t, categories, 5)
	assert.Equal(t, []Category{
		CategoryEmergency,
		CategoryHealth,
		CategoryChildren,
		CategoryEnvironment,
		CategoryEducation,
	}, categories)

	for _, c := range categories {
		assert.True(t, IsValidCategory(string(c)))
	}
}

func TestIsValidMethod(t *testing.T) {
	assert.True(t, IsValidMethod("GCash"))
	assert.True(t, IsValidMethod("Maya"))
	assert.False(t, IsValidMethod("gcash"))
	assert.False(t, IsValidMethod("PayPal"))
	assert.False(t, IsValidMethod(""))
}
