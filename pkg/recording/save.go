package recording

import (
	"bytes"
	"path/filepath"

	"github.com/lockstate/rspec-api-documentation/pkg/errors"
	"github.com/lockstate/rspec-api-documentation/pkg/filesystem"
	"github.com/lockstate/rspec-api-documentation/pkg/types"
	"gopkg.in/yaml.v3"
)

// Save writes examples to path as a YAML list, creating parent directories
func Save(fsys types.FS, path string, examples []*Example) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if examples == nil {
		examples = []*Example{}
	}
	if err := enc.Encode(examples); err != nil {
		return errors.Wrapf(err, errors.ErrRecordSave, "failed to encode recording %s", path)
	}
	if err := enc.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrRecordSave, "failed to encode recording %s", path)
	}

	if err := fsys.MkdirAll(filepath.Dir(path), filesystem.DirPerm); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(path))
	}
	if err := fsys.WriteFile(path, buf.Bytes(), filesystem.FilePerm); err != nil {
		return errors.Wrapf(err, errors.ErrRecordSave, "failed to write recording %s", path).
			WithDetail("path", path)
	}
	return nil
}
