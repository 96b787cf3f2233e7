package tokens

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/client/localdb"
)

func newStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "client.db")
	db, err := localdb.Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteStore(db)
}

func TestStore_EmptySlotIsBlank(t *testing.T) {
	s := newStore(t)
	tok, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", tok)
}

func TestStore_SetGetClear(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "tok-1"))
	tok, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)

	// overwrite wins
	require.NoError(t, s.Set(ctx, "tok-2"))
	tok, err = s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-2", tok)

	require.NoError(t, s.Clear(ctx))
	tok, err = s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", tok)
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx))
}
