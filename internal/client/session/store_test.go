package session

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/facecam/internal/client/models"
	"github.com/dmitrijs2005/facecam/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/facecam/internal/client/storage"
	"github.com/dmitrijs2005/facecam/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*SQLiteStore, *sql.DB) {
	t.Helper()
	db, err := storage.Open(context.Background(), filepath.Join(t.TempDir(), "facecam.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteStore(db), db
}

func TestRestore_Empty(t *testing.T) {
	store, _ := setupStore(t)

	_, ok, err := store.Restore(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEstablish_ThenRestore(t *testing.T) {
	store, db := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Establish(ctx, "alice", "tok1"))

	sess, ok, err := store.Restore(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, models.Session{Username: "alice", Token: "tok1"}, sess)

	repo := metadata.NewSQLiteRepository(db)
	v, _, err := repo.Get(ctx, "username")
	require.NoError(t, err)
	assert.Equal(t, "alice", v)
	v, _, err = repo.Get(ctx, "session_token")
	require.NoError(t, err)
	assert.Equal(t, "tok1", v)
}

func TestEstablish_OverwritesPreviousSession(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Establish(ctx, "alice", "tok1"))
	require.NoError(t, store.Establish(ctx, "bob", "tok2"))

	sess, ok, err := store.Restore(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, models.Session{Username: "bob", Token: "tok2"}, sess)
}

func TestEstablish_RejectsPartialSession(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	require.ErrorIs(t, store.Establish(ctx, "alice", ""), common.ErrInvalidSession)
	require.ErrorIs(t, store.Establish(ctx, "", "tok1"), common.ErrInvalidSession)

	_, ok, err := store.Restore(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRestore_PartialPersistedIdentityIsAbsent(t *testing.T) {
	store, db := setupStore(t)
	ctx := context.Background()

	require.NoError(t, metadata.NewSQLiteRepository(db).Set(ctx, "username", "alice"))

	_, ok, err := store.Restore(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClear_RemovesBothKeysAndIsIdempotent(t *testing.T) {
	store, db := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Establish(ctx, "alice", "tok1"))
	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))

	_, ok, err := store.Restore(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	m, err := metadata.NewSQLiteRepository(db).List(ctx)
	require.NoError(t, err)
	assert.NotContains(t, m, "username")
	assert.NotContains(t, m, "session_token")
}

func TestRestore_DBErrorWrapped(t *testing.T) {
	store, db := setupStore(t)
	require.NoError(t, db.Close())

	_, _, err := store.Restore(context.Background())
	require.ErrorContains(t, err, "restore session")
}
