// Package mocks provides mock implementations of the enigma use case interfaces for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	enigmaDomain "github.com/allisson/enigma/internal/enigma/domain"
	"github.com/allisson/enigma/internal/enigma/usecase"
)

// MockSessionUseCase is a mock implementation of SessionUseCase.
type MockSessionUseCase struct {
	mock.Mock
}

// Run mocks the Run method of SessionUseCase.
func (m *MockSessionUseCase) Run(
	ctx context.Context,
	settings enigmaDomain.Settings,
	source usecase.KeyEventSource,
	sink usecase.OutputSink,
) (*enigmaDomain.SessionSummary, error) {
	args := m.Called(ctx, settings, source, sink)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*enigmaDomain.SessionSummary), args.Error(1)
}

// EncryptText mocks the EncryptText method of SessionUseCase.
func (m *MockSessionUseCase) EncryptText(
	ctx context.Context,
	settings enigmaDomain.Settings,
	text string,
	opts enigmaDomain.TextOptions,
) (string, error) {
	args := m.Called(ctx, settings, text, opts)
	return args.String(0), args.Error(1)
}

// MockOutputSink is a mock implementation of OutputSink.
type MockOutputSink struct {
	mock.Mock
}

// Display mocks the Display method of OutputSink.
func (m *MockOutputSink) Display(ctx context.Context, keystroke enigmaDomain.Keystroke) {
	m.Called(ctx, keystroke)
}

// MockKeyEventSource is a mock implementation of KeyEventSource.
type MockKeyEventSource struct {
	mock.Mock
}

// Next mocks the Next method of KeyEventSource.
func (m *MockKeyEventSource) Next(ctx context.Context) (enigmaDomain.KeyEvent, error) {
	args := m.Called(ctx)
	return args.Get(0).(enigmaDomain.KeyEvent), args.Error(1)
}
