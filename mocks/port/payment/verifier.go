package payment

import (
	"context"

	"github.com/fundr-ph/donation-ledger/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockVerifier is a mock implementation of the payment Verifier port
type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) Confirm(ctx context.Context, event *entity.DonationEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
