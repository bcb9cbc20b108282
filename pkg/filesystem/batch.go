package filesystem

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/synthfs/pkg/synthfs"
	sfsfs "github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/lockstate/rspec-api-documentation/pkg/errors"
	"github.com/lockstate/rspec-api-documentation/pkg/logging"
	"github.com/lockstate/rspec-api-documentation/pkg/types"
)

// Batch collects file writes and applies them together on Commit.
// Parent directories are created as needed.
type Batch interface {
	WriteFile(path string, content []byte)
	Paths() []string
	Commit(ctx context.Context) error
}

type pendingFile struct {
	path    string
	content []byte
}

// fsBatch applies its writes one by one through a types.FS
type fsBatch struct {
	fsys  types.FS
	files []pendingFile
}

// NewFSBatch returns a Batch writing through fsys
func NewFSBatch(fsys types.FS) Batch {
	return &fsBatch{fsys: fsys}
}

func (b *fsBatch) WriteFile(path string, content []byte) {
	b.files = append(b.files, pendingFile{path: path, content: content})
}

func (b *fsBatch) Paths() []string {
	return pendingPaths(b.files)
}

func (b *fsBatch) Commit(ctx context.Context) error {
	for _, f := range b.files {
		if err := ctx.Err(); err != nil {
			return err
		}
		dir := filepath.Dir(f.path)
		if err := b.fsys.MkdirAll(dir, DirPerm); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", dir).
				WithDetail("path", dir)
		}
		if err := b.fsys.WriteFile(f.path, f.content, FilePerm); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", f.path).
				WithDetail("path", f.path)
		}
	}
	b.files = nil
	return nil
}

// synthfsBatch turns its writes into one synthfs pipeline
type synthfsBatch struct {
	target sfsfs.FullFileSystem
	files  []pendingFile
}

// NewSynthfsBatch returns a Batch that runs its writes as a synthfs pipeline
// against target. target must accept absolute paths.
func NewSynthfsBatch(target sfsfs.FullFileSystem) Batch {
	return &synthfsBatch{target: target}
}

// NewOSBatch returns a synthfs Batch over the OS filesystem
func NewOSBatch() Batch {
	osfs := sfsfs.NewOSFileSystem("/")
	return NewSynthfsBatch(synthfs.NewPathAwareFileSystem(osfs, "/").WithAbsolutePaths())
}

func (b *synthfsBatch) WriteFile(path string, content []byte) {
	b.files = append(b.files, pendingFile{path: filepath.Clean(path), content: content})
}

func (b *synthfsBatch) Paths() []string {
	return pendingPaths(b.files)
}

func (b *synthfsBatch) Commit(ctx context.Context) error {
	if len(b.files) == 0 {
		return nil
	}
	logger := logging.GetLogger("filesystem.batch")

	sfs := synthfs.New()
	var ops []synthfs.Operation

	// Directories first, parents before children
	for i, dir := range b.missingDirs() {
		ops = append(ops, sfs.CreateDirWithID(fmt.Sprintf("mkdir_%d_%s", i, dir), dir, DirPerm))
	}
	for i, f := range b.files {
		ops = append(ops, sfs.CreateFileWithID(fmt.Sprintf("write_%d_%s", i, f.path), f.path, f.content, FilePerm))
	}

	logger.Debug().
		Int("files", len(b.files)).
		Int("operationCount", len(ops)).
		Msg("Executing synthfs operations")

	options := synthfs.DefaultPipelineOptions()
	options.RollbackOnError = true

	if _, err := synthfs.RunWithOptions(ctx, b.target, options, ops...); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %d files", len(b.files)).
			WithDetail("paths", b.Paths())
	}

	b.files = nil
	return nil
}

// missingDirs lists the parent directories of pending files that do not
// exist yet, sorted so every parent precedes its children
func (b *synthfsBatch) missingDirs() []string {
	seen := make(map[string]bool)
	var dirs []string
	for _, f := range b.files {
		for dir := filepath.Dir(f.path); !seen[dir]; dir = filepath.Dir(dir) {
			seen[dir] = true
			if _, err := b.target.Stat(dir); err == nil {
				break
			}
			dirs = append(dirs, dir)
			if dir == filepath.Dir(dir) {
				break
			}
		}
	}
	sort.Strings(dirs)
	return dirs
}

func pendingPaths(files []pendingFile) []string {
	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.path)
	}
	return paths
}
