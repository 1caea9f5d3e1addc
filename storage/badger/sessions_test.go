package badger

import (
	"context"
	"testing"

	"github.com/steunwijzer/steunwijzer/core"
	"github.com/steunwijzer/steunwijzer/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(sessionID string) *core.SessionRecord {
	children := 2
	return &core.SessionRecord{
		SessionID: sessionID,
		Profile: core.UserProfile{
			IsSingleParent: true,
			ChildrenU18:    &children,
			Municipality:   "Utrecht",
		},
	}
}

func TestSessionRepository_PutGet(t *testing.T) {
	repo, backend, err := NewMemorySessionRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()
	record := testRecord("sess-1")
	require.NoError(t, repo.PutSession(ctx, record))
	assert.False(t, record.UpdatedAt.IsZero(), "PutSession sets UpdatedAt")

	got, err := repo.GetSession(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", got.SessionID)
	assert.True(t, got.Profile.IsSingleParent)
	assert.Equal(t, "Utrecht", got.Profile.Municipality)
	require.NotNil(t, got.Profile.ChildrenU18)
	assert.Equal(t, 2, *got.Profile.ChildrenU18)
}

func TestSessionRepository_PutReplaces(t *testing.T) {
	repo, backend, err := NewMemorySessionRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()
	require.NoError(t, repo.PutSession(ctx, testRecord("sess-1")))

	updated := testRecord("sess-1")
	updated.Profile.Municipality = "Delft"
	require.NoError(t, repo.PutSession(ctx, updated))

	got, err := repo.GetSession(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "Delft", got.Profile.Municipality)
}

func TestSessionRepository_GetMissing(t *testing.T) {
	repo, backend, err := NewMemorySessionRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	_, err = repo.GetSession(context.Background(), "nope")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSessionRepository_Delete(t *testing.T) {
	repo, backend, err := NewMemorySessionRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()
	require.NoError(t, repo.PutSession(ctx, testRecord("sess-1")))
	require.NoError(t, repo.DeleteSession(ctx, "sess-1"))

	_, err = repo.GetSession(ctx, "sess-1")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	err = repo.DeleteSession(ctx, "sess-1")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSessionRepository_EmptyID(t *testing.T) {
	repo, backend, err := NewMemorySessionRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()
	assert.ErrorIs(t, repo.PutSession(ctx, &core.SessionRecord{}), storage.ErrEmptySessionID)
	_, err = repo.GetSession(ctx, "")
	assert.ErrorIs(t, err, storage.ErrEmptySessionID)
	assert.ErrorIs(t, repo.DeleteSession(ctx, ""), storage.ErrEmptySessionID)
}

func TestSessionRepository_ClosedBackend(t *testing.T) {
	repo, backend, err := NewMemorySessionRepository()
	require.NoError(t, err)
	repo.Close()
	backend.Close()

	ctx := context.Background()
	assert.ErrorIs(t, repo.PutSession(ctx, testRecord("sess-1")), storage.ErrStorageClosed)
	_, err = repo.GetSession(ctx, "sess-1")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
