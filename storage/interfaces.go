// Copyright 2026 Steunwijzer Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"context"

	"github.com/steunwijzer/steunwijzer/core"
)

// SessionRepository provides operations for managing intake sessions.
// Implementations must be thread-safe and support concurrent access.
type SessionRepository interface {
	// PutSession stores or replaces the session record.
	// Sets UpdatedAt to the current time.
	PutSession(ctx context.Context, record *core.SessionRecord) error

	// GetSession retrieves a session record by its session ID.
	// Returns ErrNotFound if the session doesn't exist.
	GetSession(ctx context.Context, sessionID string) (*core.SessionRecord, error)

	// DeleteSession removes a session record.
	// Returns ErrNotFound if the session doesn't exist.
	DeleteSession(ctx context.Context, sessionID string) error

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}
