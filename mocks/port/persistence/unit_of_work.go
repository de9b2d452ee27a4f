package persistence

import (
	"context"

	persistence "github.com/fundr-ph/donation-ledger/internal/domain/port/persistence"
	"github.com/stretchr/testify/mock"
)

// MockUnitOfWork is a mock implementation of the UnitOfWork port
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(context.Context), args.Error(1)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) GetUserRepository(ctx context.Context) persistence.UserRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.UserRepository)
}

func (m *MockUnitOfWork) GetDonationRepository(ctx context.Context) persistence.DonationRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.DonationRepository)
}
