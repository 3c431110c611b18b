package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDoc struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestFileStore_ReadMissingCollection(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	var docs []testDoc
	found, err := fs.Read(context.Background(), CollectionProjects, &docs)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, docs)
}

func TestFileStore_ReplaceAndRead(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	require.NoError(t, err)

	ctx := context.Background()
	in := []testDoc{{ID: "1", Name: "first"}, {ID: "2", Name: "second"}}
	require.NoError(t, fs.Replace(ctx, CollectionProjects, in))

	var out []testDoc
	found, err := fs.Read(ctx, CollectionProjects, &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)

	// On disk the collection is a single pretty-printed JSON document.
	raw, err := os.ReadFile(filepath.Join(dir, "projects.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "  \"id\": \"1\"")
}

func TestFileStore_ReplaceOverwrites(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, fs.Replace(ctx, CollectionUsers, []testDoc{{ID: "1"}, {ID: "2"}}))
	require.NoError(t, fs.Replace(ctx, CollectionUsers, []testDoc{{ID: "3"}}))

	var out []testDoc
	found, err := fs.Read(ctx, CollectionUsers, &out)
	require.NoError(t, err)
	assert.True(t, found)
	require.Len(t, out, 1)
	assert.Equal(t, "3", out[0].ID)
}

func TestFileStore_CollectionsAreIndependent(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, fs.Replace(ctx, CollectionUsers, []testDoc{{ID: "u"}}))

	var out []testDoc
	found, err := fs.Read(ctx, CollectionSettings, &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStore_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	_, err := NewFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
