package persistence

import (
	"context"

	"github.com/fundr-ph/donation-ledger/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of the UserRepository port
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*entity.UserAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserAccount), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entity.UserAccount, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserAccount), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.UserAccount) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id string, fields map[string]any) (*entity.UserAccount, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserAccount), args.Error(1)
}

func (m *MockUserRepository) IncrementTotalDonated(ctx context.Context, id string, amountCentavos int64) (*entity.UserAccount, error) {
	args := m.Called(ctx, id, amountCentavos)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserAccount), args.Error(1)
}

func (m *MockUserRepository) ListByTotalDonated(ctx context.Context) ([]entity.UserAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.UserAccount), args.Error(1)
}
