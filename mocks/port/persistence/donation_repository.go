package persistence

import (
	"context"

	"github.com/fundr-ph/donation-ledger/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockDonationRepository is a mock implementation of the DonationRepository port
type MockDonationRepository struct {
	mock.Mock
}

func (m *MockDonationRepository) Append(ctx context.Context, event *entity.DonationEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockDonationRepository) GetByEventID(ctx context.Context, eventID string) (*entity.DonationEvent, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DonationEvent), args.Error(1)
}

func (m *MockDonationRepository) GetAll(ctx context.Context) ([]entity.DonationEvent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.DonationEvent), args.Error(1)
}

func (m *MockDonationRepository) GetByDonor(ctx context.Context, donorID string) ([]entity.DonationEvent, error) {
	args := m.Called(ctx, donorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.DonationEvent), args.Error(1)
}
