package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"i18n-catalog/internal/parser"
)

func newTestStore(t *testing.T) *SnapshotStore {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := Connect(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	s := NewSnapshotStore(pool)
	require.NoError(t, s.EnsureSchema(ctx))
	return s
}

func TestSnapshotStore_RecordAndList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	file := filepath.Join(t.TempDir(), "zh.ts")

	_, ok, err := s.Latest(ctx, file)
	require.NoError(t, err)
	assert.False(t, ok)

	first, err := s.Record(ctx, file, parser.NewKeySet("b", "a"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, first.Keys)
	assert.Equal(t, 2, first.KeyCount)

	second, err := s.Record(ctx, file, parser.NewKeySet("a", "b", "c"))
	require.NoError(t, err)
	assert.NotEqual(t, first.Digest, second.Digest)

	snaps, err := s.List(ctx, file, 10)
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.Equal(t, second.ID, snaps[0].ID)
	assert.Equal(t, first.ID, snaps[1].ID)

	latest, ok, err := s.Latest(ctx, file)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, latest.Keys)
}

func TestConnect_BadURL(t *testing.T) {
	_, err := Connect(context.Background(), "not a url ::")
	assert.Error(t, err)
}
