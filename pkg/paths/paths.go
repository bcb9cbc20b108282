package paths

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/lockstate/rspec-api-documentation/pkg/errors"
)

// Environment variable names
const (
	// EnvProjectRoot pins the project root instead of discovering it
	EnvProjectRoot = "APIDOCS_ROOT"

	// EnvConfigDir overrides the XDG config directory for apidocs
	EnvConfigDir = "APIDOCS_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for apidocs
	EnvStateDir = "APIDOCS_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name used under the XDG base directories
	AppDirName = "apidocs"

	// UserConfigFile is the name of the per-user configuration file
	UserConfigFile = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "apidocs.log"
)

// ProjectConfigFiles are looked up in the project root, first match wins
var ProjectConfigFiles = []string{
	"apidocs.toml",
	".apidocs.toml",
	"apidocs.yaml",
	"apidocs.yml",
}

// Paths resolves the locations apidocs reads from and writes to
type Paths struct {
	projectRoot  string
	configDir    string
	stateDir     string
	usedFallback bool
}

// New creates a Paths instance. If projectRoot is empty it is taken from
// APIDOCS_ROOT, then the enclosing git repository, then the working directory.
func New(projectRoot string) (*Paths, error) {
	p := &Paths{}

	if projectRoot == "" {
		root, usedFallback, err := findProjectRoot()
		if err != nil {
			return nil, err
		}
		p.projectRoot = root
		p.usedFallback = usedFallback
	} else {
		p.projectRoot = ExpandHome(projectRoot)
	}

	absRoot, err := filepath.Abs(p.projectRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for project root")
	}
	p.projectRoot = absRoot

	p.setupXDGDirs()
	return p, nil
}

func (p *Paths) setupXDGDirs() {
	p.configDir = DefaultConfigDir()
	p.stateDir = DefaultStateDir()
}

// DefaultConfigDir returns APIDOCS_CONFIG_DIR or $XDG_CONFIG_HOME/apidocs
func DefaultConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// DefaultStateDir returns APIDOCS_STATE_DIR or $XDG_STATE_HOME/apidocs
func DefaultStateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// ProjectRoot returns the absolute project root
func (p *Paths) ProjectRoot() string {
	return p.projectRoot
}

// UsedFallback reports whether the working directory was used as project root
func (p *Paths) UsedFallback() bool {
	return p.usedFallback
}

// ConfigDir returns the per-user configuration directory
func (p *Paths) ConfigDir() string {
	return p.configDir
}

// StateDir returns the per-user state directory
func (p *Paths) StateDir() string {
	return p.stateDir
}

// UserConfigPath returns the path of the per-user configuration file
func (p *Paths) UserConfigPath() string {
	return filepath.Join(p.configDir, UserConfigFile)
}

// LogFilePath returns the path to the apidocs log file
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// ProjectConfigPath returns the first project configuration file that
// exists, or an empty string.
func (p *Paths) ProjectConfigPath() string {
	for _, name := range ProjectConfigFiles {
		path := filepath.Join(p.projectRoot, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// Resolve expands ~ and anchors relative paths at the project root
func (p *Paths) Resolve(path string) string {
	if path == "" {
		return p.projectRoot
	}
	path = ExpandHome(path)
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(p.projectRoot, path)
}

func findProjectRoot() (string, bool, error) {
	if root := os.Getenv(EnvProjectRoot); root != "" {
		return ExpandHome(root), false, nil
	}

	gitRoot, err := findGitRoot()
	if err == nil && gitRoot != "" {
		return gitRoot, false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}

	return cwd, true, nil
}

func findGitRoot() (string, error) {
	output, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", err
	}

	gitRoot := strings.TrimSpace(string(output))
	if gitRoot == "" {
		return "", errors.New(errors.ErrNotFound, "git root is empty")
	}
	return gitRoot, nil
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := GetHomeDirectory()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~user is not supported
	return path
}

// GetHomeDirectory returns the user's home directory
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		if home := os.Getenv(EnvHome); home != "" {
			return home, nil
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get home directory")
	}
	return homeDir, nil
}
