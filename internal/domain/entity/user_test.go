package entity

import (
	"testing"
	"time"

	errs "github.com/fundr-ph/donation-ledger/internal/domain/error"
	mcore "github.com/fundr-ph/donation-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserAccount(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	tp := mcore.NewFixedTimeProvider(now)

	t.Run("Valid account", func(t *testing.T) {
		account, err := NewUserAccount("user-1", "Ana@Example.COM", "Ana", "hashed", tp)
		require.NoError(t, err)

		assert.Equal(t, "user-1", account.ID)
		assert.Equal(t, "ana@example.com", account.Email, "email is normalized to lower case")
		assert.Equal(t, "Ana", account.DisplayName)
		assert.Equal(t, RoleDonor, account.Role)
		assert.Equal(t, int64(0), account.TotalDonated())
		assert.Equal(t, "0.00", account.FormattedTotal())
		assert.Equal(t, now, account.CreatedAt)
		assert.False(t, account.IsAdmin())
	})

	t.Run("Invalid inputs", func(t *testing.T) {
		testCases := []struct {
			name      string
			id        string
			email     string
			hash      string
			errorType error
		}{
			{"Empty ID", "", "ana@example.com", "hashed", errs.ErrInvalidDonorID},
			{"Empty email", "user-1", "", "hashed", errs.ErrInvalidEmail},
			{"Email without at sign", "user-1", "not-an-email", "hashed", errs.ErrInvalidEmail},
			{"Empty password hash", "user-1", "ana@example.com", "", errs.ErrInvalidCredentials},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := NewUserAccount(tc.id, tc.email, "Ana", tc.hash, tp)
				assert.ErrorIs(t, err, tc.errorType)
			})
		}
	})
}

func TestApplyDonation(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	tp := mcore.NewFixedTimeProvider(now)

	account, err := NewUserAccount("user-1", "ana@example.com", "Ana", "hashed", tp)
	require.NoError(t, err)

	account.ApplyDonation(50000, tp)
	assert.Equal(t, int64(50000), account.TotalDonated())
	assert.Equal(t, "500.00", account.FormattedTotal())

	account.ApplyDonation(30000, tp)
	assert.Equal(t, int64(80000), account.TotalDonated())
	assert.Equal(t, "800.00", account.FormattedTotal())
}

func TestUpdateProfile(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	tp := mcore.NewFixedTimeProvider(now)

	t.Run("Updates both fields", func(t *testing.T) {
		account, err := NewUserAccount("user-1", "ana@example.com", "Ana", "hashed", tp)
		require.NoError(t, err)

		err = account.UpdateProfile("New@Example.com", "Ana Cruz", tp)
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", account.Email)
		assert.Equal(t, "Ana Cruz", account.DisplayName)
	})

	t.Run("Empty values leave fields untouched", func(t *testing.T) {
		account, err := NewUserAccount("user-1", "ana@example.com", "Ana", "hashed", tp)
		require.NoError(t, err)

		err = account.UpdateProfile("", "", tp)
		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", account.Email)
		assert.Equal(t, "Ana", account.DisplayName)
	})

	t.Run("Rejects malformed email", func(t *testing.T) {
		account, err := NewUserAccount("user-1", "ana@example.com", "Ana", "hashed", tp)
		require.NoError(t, err)

		err = account.UpdateProfile("not-an-email", "", tp)
		assert.ErrorIs(t, err, errs.ErrInvalidEmail)
		assert.Equal(t, "ana@example.com", account.Email, "email unchanged after rejected update")
	})

	t.Run("Never touches the donation counter", func(t *testing.T) {
		account, err := NewUserAccount("user-1", "ana@example.com", "Ana", "hashed", tp)
		require.NoError(t, err)
		account.ApplyDonation(1015, tp)

		err = account.UpdateProfile("new@example.com", "Ana Cruz", tp)
		require.NoError(t, err)
		assert.Equal(t, int64(1015), account.TotalDonated())
	})
}

func TestIdentityIsAdmin(t *testing.T) {
	admin := Identity{UserID: "user-1", Email: "admin@example.com", Role: RoleAdmin}
	donor := Identity{UserID: "user-2", Email: "ana@example.com", Role: RoleDonor}

	assert.True(t, admin.IsAdmin())
	assert.False(t, donor.IsAdmin())
	assert.False(t, Identity{}.IsAdmin())
}
