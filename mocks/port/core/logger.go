package core

import (
	core "github.com/fundr-ph/donation-ledger/internal/domain/port/core"
	"github.com/stretchr/testify/mock"
)

// MockLogger is a mock implementation of the Logger port
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) SetLevel(level core.LogLevel) {
	m.Called(level)
}

func (m *MockLogger) GetLevel() core.LogLevel {
	args := m.Called()
	return args.Get(0).(core.LogLevel)
}

func (m *MockLogger) Debug(message string, fields map[string]any) {
	m.Called(message, fields)
}

func (m *MockLogger) Info(message string, fields map[string]any) {
	m.Called(message, fields)
}

func (m *MockLogger) Warn(message string, fields map[string]any) {
	m.Called(message, fields)
}

func (m *MockLogger) Error(message string, fields map[string]any) {
	m.Called(message, fields)
}

func (m *MockLogger) Flush() error {
	args := m.Called()
	return args.Error(0)
}

// NewSilentLogger returns a MockLogger that accepts any call. Most tests
// only care that logging does not blow up.
func NewSilentLogger() *MockLogger {
	logger := new(MockLogger)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()
	logger.On("Flush").Return(nil).Maybe()
	return logger
}
