package testutil

import (
	"path/filepath"
	"testing"

	"github.com/lockstate/rspec-api-documentation/pkg/filesystem"
	"github.com/lockstate/rspec-api-documentation/pkg/paths"
	"github.com/lockstate/rspec-api-documentation/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment provides a project layout with its own config and state
type TestEnvironment struct {
	ProjectRoot string
	ConfigDir   string
	StateDir    string

	FS    types.FS
	Paths *paths.Paths

	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		t:    t,
		Type: envType,
	}

	switch envType {
	case EnvMemoryOnly:
		env.setupMemoryEnvironment()
	case EnvIsolated:
		env.setupIsolatedEnvironment()
	}

	for _, dir := range []string{env.ProjectRoot, env.ConfigDir, env.StateDir} {
		if err := env.FS.MkdirAll(dir, filesystem.DirPerm); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	t.Setenv(paths.EnvProjectRoot, env.ProjectRoot)
	t.Setenv(paths.EnvConfigDir, env.ConfigDir)
	t.Setenv(paths.EnvStateDir, env.StateDir)

	p, err := paths.New(env.ProjectRoot)
	if err != nil {
		t.Fatalf("Failed to create paths: %v", err)
	}
	env.Paths = p

	return env
}

func (env *TestEnvironment) setupMemoryEnvironment() {
	env.ProjectRoot = "/virtual/project"
	env.ConfigDir = "/virtual/home/.config/apidocs"
	env.StateDir = "/virtual/home/.local/state/apidocs"
	env.FS = filesystem.NewMemory()
}

func (env *TestEnvironment) setupIsolatedEnvironment() {
	tempDir := env.t.TempDir()

	env.ProjectRoot = filepath.Join(tempDir, "project")
	env.ConfigDir = filepath.Join(tempDir, "home", ".config", "apidocs")
	env.StateDir = filepath.Join(tempDir, "home", ".local", "state", "apidocs")
	env.FS = filesystem.NewOS()
}

// Path joins elem onto the project root
func (env *TestEnvironment) Path(elem ...string) string {
	return filepath.Join(append([]string{env.ProjectRoot}, elem...)...)
}

// WithFileTree creates tree under the project root
func (env *TestEnvironment) WithFileTree(tree FileTree) {
	env.t.Helper()
	CreateFileTree(env.t, env.FS, env.ProjectRoot, tree)
}

// Exists reports whether path exists in the environment's filesystem
func (env *TestEnvironment) Exists(path string) bool {
	_, err := env.FS.Stat(path)
	return err == nil
}

// ReadFile returns the content of path, failing the test if it can't be read
func (env *TestEnvironment) ReadFile(path string) string {
	env.t.Helper()
	data, err := env.FS.ReadFile(path)
	if err != nil {
		env.t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

// FileTree represents a directory structure for testing
type FileTree map[string]interface{}

// CreateFileTree recursively creates tree under basePath
func CreateFileTree(t *testing.T, fs types.FS, basePath string, tree FileTree) {
	t.Helper()

	for name, content := range tree {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			if err := fs.MkdirAll(filepath.Dir(fullPath), filesystem.DirPerm); err != nil {
				t.Fatalf("Failed to create directory for %s: %v", fullPath, err)
			}
			if err := fs.WriteFile(fullPath, []byte(v), filesystem.FilePerm); err != nil {
				t.Fatalf("Failed to write file %s: %v", fullPath, err)
			}
		case FileTree:
			if err := fs.MkdirAll(fullPath, filesystem.DirPerm); err != nil {
				t.Fatalf("Failed to create directory %s: %v", fullPath, err)
			}
			CreateFileTree(t, fs, fullPath, v)
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}
