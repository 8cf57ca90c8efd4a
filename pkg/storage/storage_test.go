package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir, "uploads/")
	require.NoError(t, err)
	ctx := context.Background()

	name := NewFileName("My Resume.PDF")
	assert.True(t, strings.HasSuffix(name, ".pdf"))

	require.NoError(t, s.Save(ctx, name, strings.NewReader("%PDF-1.4"), "application/pdf"))
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))
	assert.Equal(t, "/uploads/"+name, s.URL(name))

	t.Run("refuses to overwrite", func(t *testing.T) {
		assert.Error(t, s.Save(ctx, name, strings.NewReader("x"), "text/plain"))
	})

	t.Run("rejects traversal", func(t *testing.T) {
		assert.Error(t, s.Save(ctx, "../evil.txt", strings.NewReader("x"), "text/plain"))
		assert.Error(t, s.Delete(ctx, "a/b.txt"))
		assert.Error(t, s.Save(ctx, ".hidden", strings.NewReader("x"), "text/plain"))
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		require.NoError(t, s.Delete(ctx, name))
		require.NoError(t, s.Delete(ctx, name))
		_, err := os.Stat(filepath.Join(dir, name))
		assert.True(t, os.IsNotExist(err))
	})
}

func TestNewFileNameIsUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		n := NewFileName("logo.png")
		assert.False(t, seen[n])
		seen[n] = true
	}
}

func TestNewUnsupportedDriver(t *testing.T) {
	_, err := New(context.Background(), Config{Driver: "ftp"})
	assert.Error(t, err)
}
