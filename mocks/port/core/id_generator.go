package core

import (
	"github.com/stretchr/testify/mock"
)

// MockIDGenerator is a mock implementation of the IDGenerator port
type MockIDGenerator struct {
	mock.Mock
}

func (m *MockIDGenerator) NewID() string {
	args := m.Called()
	return args.String(0)
}
