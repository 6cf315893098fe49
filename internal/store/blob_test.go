package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobs_GetSet(t *testing.T) {
	ctx := context.Background()

	for name, blob := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, found, err := blob.Get(ctx, "missing")
			require.NoError(t, err)
			assert.False(t, found)

			require.NoError(t, blob.Set(ctx, "k", []byte("one")))
			require.NoError(t, blob.Set(ctx, "k", []byte("two")))

			value, found, err := blob.Get(ctx, "k")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, []byte("two"), value)
		})
	}
}

func TestMemoryBlob_CopiesValues(t *testing.T) {
	ctx := context.Background()
	blob := NewMemoryBlob()

	value := []byte("abc")
	require.NoError(t, blob.Set(ctx, "k", value))
	value[0] = 'x'

	got, _, err := blob.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)
}

func TestFileBlob_Layout(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "nested", "data")
	blob := NewFileBlob(dir)

	require.NoError(t, blob.Set(ctx, StorageKey, []byte("[]")))

	content, err := os.ReadFile(filepath.Join(dir, StorageKey+".json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(content))

	// No temp files left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSQLiteBlob_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "learner.db")

	blob, err := NewSQLiteBlob(path)
	require.NoError(t, err)
	require.NoError(t, blob.Set(ctx, "k", []byte("persisted")))
	require.NoError(t, blob.Close())

	blob, err = NewSQLiteBlob(path)
	require.NoError(t, err)
	defer blob.Close()

	value, found, err := blob.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("persisted"), value)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		backend string
		want    interface{}
	}{
		{BackendMemory, &MemoryBlob{}},
		{BackendFile, &FileBlob{}},
		{"", &FileBlob{}},
		{BackendSQLite, &SQLiteBlob{}},
	}

	for _, tt := range tests {
		t.Run("backend_"+tt.backend, func(t *testing.T) {
			blob, err := Open(tt.backend, dir)
			require.NoError(t, err)
			defer blob.Close()
			assert.IsType(t, tt.want, blob)
		})
	}

	_, err := Open("redis", dir)
	assert.ErrorIs(t, err, ErrUnknownBackend)
}
