package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sullhouse/sullstice/internal/claude"
)

// MockGenerator is a mock implementation of the generation provider
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, req claude.Request) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockGenerator) IsConfigured() bool {
	args := m.Called()
	return args.Bool(0)
}
