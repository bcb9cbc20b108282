package testutil

import (
	"os"
	"testing"

	"github.com/lockstate/rspec-api-documentation/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestEnvironment_MemoryOnly(t *testing.T) {
	env := NewTestEnvironment(t, EnvMemoryOnly)

	assert.Equal(t, "/virtual/project", env.ProjectRoot)
	assert.Equal(t, env.ProjectRoot, env.Paths.ProjectRoot())
	assert.True(t, env.Exists(env.ConfigDir))

	_, err := os.Stat(env.ProjectRoot)
	assert.True(t, os.IsNotExist(err), "memory environment must not touch disk")

	assert.Equal(t, env.ProjectRoot, os.Getenv(paths.EnvProjectRoot))
	assert.Equal(t, env.ConfigDir, os.Getenv(paths.EnvConfigDir))
	assert.Equal(t, env.StateDir, os.Getenv(paths.EnvStateDir))
}

func TestTestEnvironment_Isolated(t *testing.T) {
	env := NewTestEnvironment(t, EnvIsolated)

	info, err := os.Stat(env.ProjectRoot)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, env.StateDir, env.Paths.StateDir())
}

func TestWithFileTree(t *testing.T) {
	env := NewTestEnvironment(t, EnvMemoryOnly)

	env.WithFileTree(FileTree{
		"apidocs.toml": `format = "md"`,
		"records": FileTree{
			"widgets.yml": "[]",
		},
		"templates/example.md.tmpl": "{{.description}}",
	})

	assert.Equal(t, `format = "md"`, env.ReadFile(env.Path("apidocs.toml")))
	assert.Equal(t, "[]", env.ReadFile(env.Path("records", "widgets.yml")))
	assert.True(t, env.Exists(env.Path("templates", "example.md.tmpl")))
	assert.False(t, env.Exists(env.Path("missing")))
}
