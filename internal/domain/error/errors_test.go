package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"Invalid amount", ErrInvalidAmount, CodeInvalidAmount},
		{"Negative amount", ErrNegativeAmount, CodeInvalidAmount},
		{"Invalid category", ErrInvalidCategory, CodeInvalidCategory},
		{"Invalid method", ErrInvalidMethod, CodeInvalidMethod},
		{"Invalid donor ID", ErrInvalidDonorID, CodeInvalidDonorID},
		{"Duplicate event", ErrDuplicateEvent, CodeDuplicateEvent},
		{"Invalid email", ErrInvalidEmail, CodeInvalidEmail},
		{"Duplicate email", ErrDuplicateEmail, CodeDuplicateEmail},
		{"Unauthenticated", ErrUnauthenticated, CodeUnauthenticated},
		{"Invalid credentials", ErrInvalidCredentials, CodeUnauthenticated},
		{"Invalid token", ErrInvalidToken, CodeInvalidToken},
		{"Forbidden", ErrForbidden, CodeForbidden},
		{"User not found", ErrUserNotFound, CodeUserNotFound},
		{"Event not found", ErrEventNotFound, CodeEventNotFound},
		{"Timeout", ErrTimeout, CodeTimeout},
		{"Database connection", ErrDatabaseConnection, CodePersistence},
		{"Uncertain outcome", ErrUncertainOutcome, CodePersistence},
		{"Unknown error", errors.New("something else"), CodeInternalServer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ErrorCode(tc.err))
		})
	}

	t.Run("Wrapped errors keep their code", func(t *testing.T) {
		wrapped := fmt.Errorf("while recording: %w", ErrInvalidAmount)
		assert.Equal(t, CodeInvalidAmount, ErrorCode(wrapped))
	})
}

func TestErrorClassification(t *testing.T) {
	t.Run("Validation errors", func(t *testing.T) {
		for _, err := range []error{ErrInvalidAmount, ErrNegativeAmount, ErrInvalidCategory, ErrInvalidMethod, ErrInvalidDonorID, ErrInvalidEventID, ErrInvalidEmail} {
			assert.True(t, IsValidationError(err), "%v should classify as validation", err)
			assert.False(t, IsAuthError(err))
			assert.False(t, IsPersistenceError(err))
		}
	})

	t.Run("Auth errors", func(t *testing.T) {
		for _, err := range []error{ErrUnauthenticated, ErrInvalidCredentials, ErrInvalidToken, ErrForbidden} {
			assert.True(t, IsAuthError(err), "%v should classify as auth", err)
			assert.False(t, IsValidationError(err))
		}
	})

	t.Run("Persistence errors", func(t *testing.T) {
		for _, err := range []error{ErrDatabaseConnection, ErrUncertainOutcome} {
			assert.True(t, IsPersistenceError(err), "%v should classify as persistence", err)
		}
	})

	t.Run("Not found errors", func(t *testing.T) {
		assert.True(t, IsNotFoundError(ErrUserNotFound))
		assert.True(t, IsNotFoundError(ErrEventNotFound))
		assert.False(t, IsNotFoundError(ErrInvalidAmount))
	})
}

func TestDonationError(t *testing.T) {
	underlying := ErrDatabaseConnection
	err := NewDonationError("evt-1", "donor-1", "500.00", "Health", "append failed", underlying)

	var donationErr *DonationError
	assert.ErrorAs(t, err, &donationErr)
	assert.ErrorIs(t, err, ErrDatabaseConnection)
	assert.Contains(t, err.Error(), "evt-1")
	assert.Contains(t, err.Error(), "donor-1")

	fields := donationErr.LogFields()
	assert.Equal(t, "donation_error", fields["error_type"])
	assert.Equal(t, "evt-1", fields["event_id"])
	assert.Equal(t, CodePersistence, fields["error_code"])
}

func TestUncertainOutcomeError(t *testing.T) {
	underlying := errors.New("commit: connection reset")
	err := NewUncertainOutcomeError("evt-1", "donor-1", underlying)

	assert.ErrorIs(t, err, ErrUncertainOutcome, "uncertain outcome must be detectable via errors.Is")
	assert.ErrorIs(t, err, underlying)

	var uncertainErr *UncertainOutcomeError
	assert.ErrorAs(t, err, &uncertainErr)
	fields := uncertainErr.LogFields()
	assert.Equal(t, "uncertain_outcome", fields["error_type"])
	assert.Equal(t, CodePersistence, fields["error_code"])
}
