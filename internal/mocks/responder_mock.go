package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sullhouse/sullstice/internal/models"
	"github.com/sullhouse/sullstice/internal/responder"
)

// MockResponder is a mock implementation of the response pipeline
type MockResponder struct {
	mock.Mock
}

func (m *MockResponder) RespondToRSVP(ctx context.Context, rsvp models.RsvpRecord) responder.GeneratedResponse {
	args := m.Called(ctx, rsvp)
	return args.Get(0).(responder.GeneratedResponse)
}

func (m *MockResponder) AnswerQuestion(ctx context.Context, question string) string {
	args := m.Called(ctx, question)
	return args.String(0)
}
