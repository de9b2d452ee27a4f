package auth

import (
	"github.com/fundr-ph/donation-ledger/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockTokenService is a mock implementation of the TokenService port
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Issue(identity entity.Identity) (string, error) {
	args := m.Called(identity)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Parse(token string) (entity.Identity, error) {
	args := m.Called(token)
	return args.Get(0).(entity.Identity), args.Error(1)
}

// MockPasswordHasher is a mock implementation of the PasswordHasher port
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash, password string) error {
	args := m.Called(hash, password)
	return args.Error(0)
}
