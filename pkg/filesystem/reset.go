package filesystem

import (
	"io/fs"

	"github.com/lockstate/rspec-api-documentation/pkg/errors"
	"github.com/lockstate/rspec-api-documentation/pkg/types"
)

const (
	// DirPerm is the mode for directories created under the docs roots
	DirPerm fs.FileMode = 0755

	// FilePerm is the mode for rendered documentation files
	FilePerm fs.FileMode = 0644
)

// ResetDir leaves path as an existing, empty directory. A missing path is
// not an error and calling it twice yields the same state. Errors from the
// underlying filesystem are returned as-is; a violated post-condition is
// reported as ErrDirReset.
func ResetDir(fsys types.FS, path string) error {
	if err := fsys.RemoveAll(path); err != nil {
		return err
	}
	if err := fsys.MkdirAll(path, DirPerm); err != nil {
		return err
	}

	info, err := fsys.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrDirReset, "%s is not a directory after reset", path).
			WithDetail("path", path)
	}

	entries, err := fsys.ReadDir(path)
	if err != nil {
		return err
	}
	if len(entries) > 0 {
		return errors.Newf(errors.ErrDirReset, "%s still has %d entries after reset", path, len(entries)).
			WithDetail("path", path).
			WithDetail("entries", len(entries))
	}

	return nil
}
