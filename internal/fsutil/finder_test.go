package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.hcl", "a.hcl", "notes.txt", "nested/c.hcl"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, nil, 0o600))
	}

	t.Run("directory", func(t *testing.T) {
		files, err := FindFiles(dir, ".hcl")
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "a.hcl"),
			filepath.Join(dir, "b.hcl"),
			filepath.Join(dir, "nested", "c.hcl"),
		}, files)
	})

	t.Run("single file", func(t *testing.T) {
		file := filepath.Join(dir, "notes.txt")
		files, err := FindFiles(file, ".hcl")
		require.NoError(t, err)
		assert.Equal(t, []string{file}, files)
	})

	t.Run("empty directory", func(t *testing.T) {
		_, err := FindFiles(t.TempDir(), ".hcl")
		assert.ErrorContains(t, err, "no .hcl files found")
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := FindFiles(filepath.Join(dir, "nope"), ".hcl")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
