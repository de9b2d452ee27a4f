package core

import (
	"context"
	"time"

	core "github.com/fundr-ph/donation-ledger/internal/domain/port/core"
	"github.com/stretchr/testify/mock"
)

// MockTimeProvider is a mock implementation of the TimeProvider port
type MockTimeProvider struct {
	mock.Mock
}

func (m *MockTimeProvider) Now() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}

func (m *MockTimeProvider) Since(t time.Time) core.Duration {
	args := m.Called(t)
	return args.Get(0).(core.Duration)
}

func (m *MockTimeProvider) Sleep(d core.Duration) {
	m.Called(d)
}

func (m *MockTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	args := m.Called(ctx, timeout)

	var r0 context.Context
	if rf, ok := args.Get(0).(func(context.Context, core.Duration) context.Context); ok {
		r0 = rf(ctx, timeout)
	} else if args.Get(0) != nil {
		r0 = args.Get(0).(context.Context)
	}

	var r1 context.CancelFunc
	if rf, ok := args.Get(1).(func(context.Context, core.Duration) context.CancelFunc); ok {
		r1 = rf(ctx, timeout)
	} else if args.Get(1) != nil {
		r1 = args.Get(1).(context.CancelFunc)
	}

	return r0, r1
}

// NewFixedTimeProvider returns a MockTimeProvider pinned to the given
// instant. WithTimeout passes the context through unchanged so tests are
// not subject to real deadlines.
func NewFixedTimeProvider(now time.Time) *MockTimeProvider {
	tp := new(MockTimeProvider)
	tp.On("Now").Return(now).Maybe()
	tp.On("Since", mock.Anything).Return(core.Duration(0)).Maybe()
	tp.On("Sleep", mock.Anything).Maybe()
	tp.On("WithTimeout", mock.Anything, mock.Anything).Return(
		func(ctx context.Context, timeout core.Duration) context.Context { return ctx },
		func(ctx context.Context, timeout core.Duration) context.CancelFunc { return func() {} },
	).Maybe()
	return tp
}
