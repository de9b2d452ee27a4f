package auth

import (
	"context"
	"testing"
	"time"

	"github.com/fundr-ph/donation-ledger/internal/domain/entity"
	errs "github.com/fundr-ph/donation-ledger/internal/domain/error"
	mauth "github.com/fundr-ph/donation-ledger/mocks/port/auth"
	mcore "github.com/fundr-ph/donation-ledger/mocks/port/core"
	mpers "github.com/fundr-ph/donation-ledger/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	userRepo *mpers.MockUserRepository
	hasher   *mauth.MockPasswordHasher
	tokens   *mauth.MockTokenService
	idGen    *mcore.MockIDGenerator
	tp       *mcore.MockTimeProvider
	service  *Service
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	f := &authFixture{
		userRepo: new(mpers.MockUserRepository),
		hasher:   new(mauth.MockPasswordHasher),
		tokens:   new(mauth.MockTokenService),
		idGen:    new(mcore.MockIDGenerator),
		tp:       mcore.NewFixedTimeProvider(time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)),
	}
	f.service = NewService(f.userRepo, f.hasher, f.tokens, f.idGen, f.tp, mcore.NewSilentLogger())
	return f
}

func existingAccount(t *testing.T, tp *mcore.MockTimeProvider) *entity.UserAccount {
	t.Helper()
	account, err := entity.NewUserAccount("user-1", "ana@example.com", "Ana", "stored-hash", tp)
	require.NoError(t, err)
	return account
}

func TestSignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful registration", func(t *testing.T) {
		f := newAuthFixture(t)
		f.userRepo.On("GetByEmail", ctx, "ana@example.com").Return(nil, errs.ErrUserNotFound)
		f.hasher.On("Hash", "secret-password").Return("hashed", nil)
		f.idGen.On("NewID").Return("user-1")
		f.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.UserAccount")).Return(nil)
		f.tokens.On("Issue", entity.Identity{UserID: "user-1", Email: "ana@example.com", Role: entity.RoleDonor}).
			Return("signed-token", nil)

		account, token, err := f.service.SignUp(ctx, "Ana@Example.com", "secret-password", "Ana")
		require.NoError(t, err)

		assert.Equal(t, "signed-token", token)
		assert.Equal(t, "ana@example.com", account.Email)
		assert.Equal(t, entity.RoleDonor, account.Role)
		assert.Equal(t, int64(0), account.TotalDonated(), "new accounts start with a zero donation total")
		assert.Equal(t, "hashed", account.PasswordHash, "raw password is never stored")
	})

	t.Run("Short password", func(t *testing.T) {
		f := newAuthFixture(t)

		_, _, err := f.service.SignUp(ctx, "ana@example.com", "short", "Ana")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		f.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		f := newAuthFixture(t)
		f.userRepo.On("GetByEmail", ctx, "ana@example.com").Return(existingAccount(t, f.tp), nil)

		_, _, err := f.service.SignUp(ctx, "ana@example.com", "secret-password", "Ana")
		assert.ErrorIs(t, err, errs.ErrDuplicateEmail)
		f.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Lookup failure is surfaced, not treated as free email", func(t *testing.T) {
		f := newAuthFixture(t)
		f.userRepo.On("GetByEmail", ctx, "ana@example.com").Return(nil, errs.ErrDatabaseConnection)

		_, _, err := f.service.SignUp(ctx, "ana@example.com", "secret-password", "Ana")
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		f.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Malformed email", func(t *testing.T) {
		f := newAuthFixture(t)
		f.userRepo.On("GetByEmail", ctx, "not-an-email").Return(nil, errs.ErrUserNotFound)
		f.hasher.On("Hash", "secret-password").Return("hashed", nil)
		f.idGen.On("NewID").Return("user-1")

		_, _, err := f.service.SignUp(ctx, "not-an-email", "secret-password", "Ana")
		assert.ErrorIs(t, err, errs.ErrInvalidEmail)
		f.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestSignIn(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful sign-in", func(t *testing.T) {
		f := newAuthFixture(t)
		account := existingAccount(t, f.tp)
		f.userRepo.On("GetByEmail", ctx, "ana@example.com").Return(account, nil)
		f.hasher.On("Compare", "stored-hash", "secret-password").Return(nil)
		f.tokens.On("Issue", entity.Identity{UserID: "user-1", Email: "ana@example.com", Role: entity.RoleDonor}).
			Return("signed-token", nil)

		got, token, err := f.service.SignIn(ctx, "Ana@Example.com ", "secret-password")
		require.NoError(t, err)
		assert.Equal(t, account, got)
		assert.Equal(t, "signed-token", token)
	})

	t.Run("Unknown email and wrong password are indistinguishable", func(t *testing.T) {
		f := newAuthFixture(t)
		f.userRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, errs.ErrUserNotFound)

		_, _, unknownErr := f.service.SignIn(ctx, "ghost@example.com", "whatever")
		assert.ErrorIs(t, unknownErr, errs.ErrInvalidCredentials)

		account := existingAccount(t, f.tp)
		f.userRepo.On("GetByEmail", ctx, "ana@example.com").Return(account, nil)
		f.hasher.On("Compare", "stored-hash", "wrong").Return(errs.ErrInvalidCredentials)

		_, _, wrongErr := f.service.SignIn(ctx, "ana@example.com", "wrong")
		assert.ErrorIs(t, wrongErr, errs.ErrInvalidCredentials)

		assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	})

	t.Run("Store failure is not a credentials failure", func(t *testing.T) {
		f := newAuthFixture(t)
		f.userRepo.On("GetByEmail", ctx, "ana@example.com").Return(nil, errs.ErrDatabaseConnection)

		_, _, err := f.service.SignIn(ctx, "ana@example.com", "secret-password")
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.NotErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}

func TestCurrentUser(t *testing.T) {
	t.Run("Valid token", func(t *testing.T) {
		f := newAuthFixture(t)
		identity := entity.Identity{UserID: "user-1", Email: "ana@example.com", Role: entity.RoleDonor}
		f.tokens.On("Parse", "signed-token").Return(identity, nil)

		got, err := f.service.CurrentUser("signed-token")
		require.NoError(t, err)
		assert.Equal(t, identity, got)
	})

	t.Run("Empty token", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.service.CurrentUser("")
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
		f.tokens.AssertNotCalled(t, "Parse", mock.Anything)
	})

	t.Run("Invalid token", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tokens.On("Parse", "garbage").Return(entity.Identity{}, errs.ErrInvalidToken)

		_, err := f.service.CurrentUser("garbage")
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})
}
