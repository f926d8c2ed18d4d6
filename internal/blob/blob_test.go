package blob

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStoreUpload(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir, "/images")
	require.NoError(t, err)

	url, err := store.Upload(context.Background(), []byte("jpeg-bytes"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "/images/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, "/images/")))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
}

func TestDiskStoreUniqueNames(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "/images")
	require.NoError(t, err)

	first, err := store.Upload(context.Background(), []byte("a"))
	require.NoError(t, err)
	second, err := store.Upload(context.Background(), []byte("b"))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestDiskStoreCanceledContext(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "/images")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = store.Upload(ctx, []byte("a"))
	assert.Error(t, err)
}

func TestNewDiskStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "images")
	_, err := NewDiskStore(dir, "/images")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
