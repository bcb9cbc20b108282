package filesystem

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/lockstate/rspec-api-documentation/pkg/errors"
	"github.com/lockstate/rspec-api-documentation/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetDir(t *testing.T) {
	t.Run("removes existing contents", func(t *testing.T) {
		fsys := NewMemory()
		require.NoError(t, fsys.MkdirAll("/out/widgets", 0755))
		require.NoError(t, fsys.WriteFile("/out/test", []byte("stale"), 0644))
		require.NoError(t, fsys.WriteFile("/out/widgets/create.html", []byte("stale"), 0644))

		require.NoError(t, ResetDir(fsys, "/out"))

		info, err := fsys.Stat("/out")
		require.NoError(t, err)
		assert.True(t, info.IsDir())

		entries, err := fsys.ReadDir("/out")
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("creates missing directory", func(t *testing.T) {
		fsys := NewMemory()

		require.NoError(t, ResetDir(fsys, "/public/docs"))

		info, err := fsys.Stat("/public/docs")
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("is idempotent", func(t *testing.T) {
		fsys := NewMemory()
		require.NoError(t, fsys.MkdirAll("/out", 0755))
		require.NoError(t, fsys.WriteFile("/out/test", []byte("x"), 0644))

		require.NoError(t, ResetDir(fsys, "/out"))
		require.NoError(t, ResetDir(fsys, "/out"))

		entries, err := fsys.ReadDir("/out")
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("works on the OS filesystem", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "docs")
		fsys := NewOS()
		require.NoError(t, fsys.MkdirAll(filepath.Join(dir, "nested"), 0755))
		require.NoError(t, fsys.WriteFile(filepath.Join(dir, "nested", "a.html"), []byte("a"), 0644))

		require.NoError(t, ResetDir(fsys, dir))

		entries, err := fsys.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("reports a violated post-condition", func(t *testing.T) {
		inner := NewMemory()
		require.NoError(t, inner.MkdirAll("/out", 0755))
		require.NoError(t, inner.WriteFile("/out/test", []byte("x"), 0644))
		fsys := &stickyFS{FS: inner}

		err := ResetDir(fsys, "/out")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrDirReset))
	})

	t.Run("passes filesystem errors through", func(t *testing.T) {
		fsys := &failingFS{FS: NewMemory(), err: fs.ErrPermission}

		err := ResetDir(fsys, "/out")
		assert.Equal(t, fs.ErrPermission, err)
	})
}

// stickyFS ignores removals
type stickyFS struct {
	types.FS
}

func (s *stickyFS) RemoveAll(string) error { return nil }

type failingFS struct {
	types.FS
	err error
}

func (f *failingFS) RemoveAll(string) error { return f.err }
