package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		projectRoot string
		envSetup    map[string]string
		validate    func(t *testing.T, p *Paths)
	}{
		{
			name:        "explicit project root",
			projectRoot: "/tmp/project",
			validate: func(t *testing.T, p *Paths) {
				assert.Equal(t, "/tmp/project", p.ProjectRoot())
				assert.False(t, p.UsedFallback())
			},
		},
		{
			name: "from APIDOCS_ROOT env",
			envSetup: map[string]string{
				EnvProjectRoot: "/env/project",
			},
			validate: func(t *testing.T, p *Paths) {
				assert.Equal(t, "/env/project", p.ProjectRoot())
			},
		},
		{
			name: "git repository or fallback",
			validate: func(t *testing.T, p *Paths) {
				assert.NotEmpty(t, p.ProjectRoot())
				assert.True(t, filepath.IsAbs(p.ProjectRoot()))
			},
		},
		{
			name:        "expand tilde in explicit path",
			projectRoot: "~/my-api",
			validate: func(t *testing.T, p *Paths) {
				homeDir, _ := os.UserHomeDir()
				assert.Equal(t, filepath.Join(homeDir, "my-api"), p.ProjectRoot())
			},
		},
		{
			name: "custom config and state directories",
			envSetup: map[string]string{
				EnvConfigDir: "/custom/config",
				EnvStateDir:  "/custom/state",
			},
			validate: func(t *testing.T, p *Paths) {
				assert.Equal(t, "/custom/config/config.toml", p.UserConfigPath())
				assert.Equal(t, "/custom/state/apidocs.log", p.LogFilePath())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvProjectRoot, "")
			t.Setenv(EnvConfigDir, "")
			t.Setenv(EnvStateDir, "")
			for k, v := range tt.envSetup {
				t.Setenv(k, v)
			}

			p, err := New(tt.projectRoot)
			require.NoError(t, err)
			tt.validate(t, p)
		})
	}
}

func TestXDGDefaults(t *testing.T) {
	stateHome := t.TempDir()
	configHome := t.TempDir()
	t.Setenv(EnvConfigDir, "")
	t.Setenv(EnvStateDir, "")
	t.Setenv("XDG_STATE_HOME", stateHome)
	t.Setenv("XDG_CONFIG_HOME", configHome)
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	p, err := New("/tmp/project")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(stateHome, "apidocs", "apidocs.log"), p.LogFilePath())
	assert.Equal(t, filepath.Join(configHome, "apidocs", "config.toml"), p.UserConfigPath())
}

func TestResolve(t *testing.T) {
	p, err := New("/srv/api")
	require.NoError(t, err)

	homeDir, _ := os.UserHomeDir()

	assert.Equal(t, "/srv/api/docs/api", p.Resolve("docs/api"))
	assert.Equal(t, "/out", p.Resolve("/out/"))
	assert.Equal(t, filepath.Join(homeDir, "docs"), p.Resolve("~/docs"))
	assert.Equal(t, "/srv/api", p.Resolve(""))
}

func TestProjectConfigPath(t *testing.T) {
	root := t.TempDir()
	p, err := New(root)
	require.NoError(t, err)

	assert.Empty(t, p.ProjectConfigPath())

	require.NoError(t, os.WriteFile(filepath.Join(root, "apidocs.yaml"), []byte("format: md\n"), 0644))
	assert.Equal(t, filepath.Join(root, "apidocs.yaml"), p.ProjectConfigPath())

	require.NoError(t, os.WriteFile(filepath.Join(root, ".apidocs.toml"), []byte(""), 0644))
	assert.Equal(t, filepath.Join(root, ".apidocs.toml"), p.ProjectConfigPath())
}

func TestExpandHome(t *testing.T) {
	homeDir, _ := os.UserHomeDir()

	assert.Equal(t, "", ExpandHome(""))
	assert.Equal(t, homeDir, ExpandHome("~"))
	assert.Equal(t, filepath.Join(homeDir, "x"), ExpandHome("~/x"))
	assert.Equal(t, "~other/x", ExpandHome("~other/x"))
	assert.Equal(t, "/abs", ExpandHome("/abs"))
}
