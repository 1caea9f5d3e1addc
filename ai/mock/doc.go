// Package mock provides test double implementations of AI service interfaces.
//
// This package contains mock implementations of ai.Embedder, ai.Completer,
// and ai.Provider for use in unit tests. The mocks allow tests to run without
// external AI service dependencies and enable controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	mockProvider := mock.NewMockProvider()
//	embedding, err := mockProvider.Embedder().EmbedText(ctx, "test")
//
//	// Custom behavior injection
//	mockCompleter := mock.NewMockCompleter()
//	mockCompleter.CompleteFunc = func(ctx context.Context, system, user string) (string, error) {
//	    return `[{"rank": 1, "title": "Bijzondere bijstand", ...}]`, nil
//	}
//
//	// Check call counts
//	count := mockCompleter.CallCount()
//
// # Default Behavior
//
// The mock implementations provide sensible defaults:
//
//   - MockEmbedder: Returns deterministic unit vectors based on text hash
//   - MockCompleter: Returns an empty JSON array
//   - MockProvider: Aggregates mock embedder and completer
package mock
