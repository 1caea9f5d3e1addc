package mock

import (
	"context"
)

// MockCompleter is a test double for ai.Completer.
// It allows custom behavior injection via function fields.
type MockCompleter struct {
	// CompleteFunc is called by Complete if set.
	// If nil, returns an empty JSON array.
	CompleteFunc func(ctx context.Context, system, user string) (string, error)

	callCount int

	// LastSystem and LastUser record the most recent prompts for assertions.
	LastSystem string
	LastUser   string
}

// NewMockCompleter creates a mock completer with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockCompleter().
func NewMockCompleter() *MockCompleter {
	return &MockCompleter{}
}

// Complete records the prompts and returns the injected response,
// or "[]" when no custom function is set.
func (m *MockCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	m.callCount++
	m.LastSystem = system
	m.LastUser = user

	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, system, user)
	}

	return "[]", nil
}

// CallCount returns the number of times Complete was called.
func (m *MockCompleter) CallCount() int {
	return m.callCount
}

// Reset clears the call count and any injected behavior.
func (m *MockCompleter) Reset() {
	m.callCount = 0
	m.CompleteFunc = nil
	m.LastSystem = ""
	m.LastUser = ""
}
