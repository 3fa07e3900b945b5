package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sullhouse/sullstice/internal/notify"
)

// MockMailer is a mock implementation of the outbound mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg notify.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockMailer) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockMailer) IsConfigured() bool {
	args := m.Called()
	return args.Bool(0)
}
