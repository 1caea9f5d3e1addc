package badger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/steunwijzer/steunwijzer/core"
	"github.com/steunwijzer/steunwijzer/storage"
)

// SessionRepository implements storage.SessionRepository for BadgerDB.
type SessionRepository struct {
	backend *Backend
}

var _ storage.SessionRepository = (*SessionRepository)(nil)

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(backend *Backend) (*SessionRepository, error) {
	if backend == nil {
		return nil, errors.New("backend cannot be nil")
	}
	return &SessionRepository{backend: backend}, nil
}

// Close is a no-op; the backend owns the database handle.
func (r *SessionRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *SessionRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// PutSession stores or replaces the session record.
func (r *SessionRepository) PutSession(ctx context.Context, record *core.SessionRecord) error {
	if record == nil || record.SessionID == "" {
		return storage.ErrEmptySessionID
	}
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	record.UpdatedAt = time.Now().UTC()

	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeSessionKey(record.SessionID)
		value := storage.MarshalSessionRecord(record)
		if err := tx.Set(key, value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetSession retrieves a session record by its session ID.
func (r *SessionRepository) GetSession(ctx context.Context, sessionID string) (*core.SessionRecord, error) {
	if sessionID == "" {
		return nil, storage.ErrEmptySessionID
	}
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var record *core.SessionRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeSessionKey(sessionID))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			record, err = storage.UnmarshalSessionRecord(val)
			if err != nil {
				return fmt.Errorf("%w: %v", storage.ErrSerializationFailed, err)
			}
			return nil
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// DeleteSession removes a session record.
func (r *SessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return storage.ErrEmptySessionID
	}
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeSessionKey(sessionID)
		if _, err := tx.Get(key); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		if err := tx.Delete(key); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}
