package apidocs

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/lockstate/rspec-api-documentation/pkg/config"
	"github.com/lockstate/rspec-api-documentation/pkg/errors"
	"github.com/lockstate/rspec-api-documentation/pkg/filesystem"
	"github.com/lockstate/rspec-api-documentation/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const widgetRecording = `
- description: Create Widget
  resource_name: Widgets
  http_method: POST
  route: /widgets
  public: true
  requests:
    - request_method: POST
      request_path: /widgets
      request_body: '{"name":"gear"}'
      request_content_type: application/json
      response_status: 201
      response_body: '{"id":1}'
- description: List Widgets
  resource_name: Widgets
  http_method: GET
  route: /widgets
- description: Purge Cache
  resource_name: Admin
  http_method: DELETE
  route: /cache
  document: false
`

// writeRecording puts the widget recording under root/records
func writeRecording(t *testing.T, root string) string {
	t.Helper()
	testutil.CreateFileTree(t, filesystem.NewOS(), root, testutil.FileTree{
		"records": testutil.FileTree{"widgets.yml": widgetRecording},
	})
	return filepath.Join(root, "records", "widgets.yml")
}

func testConfig(t *testing.T, root string) config.Config {
	t.Helper()
	cfg, err := config.Load(config.LoadOptions{
		SkipUserConfig:    true,
		SkipProjectConfig: true,
		SkipEnv:           true,
		Overrides: map[string]interface{}{
			"docs_dir":        filepath.Join(root, "docs"),
			"public_docs_dir": filepath.Join(root, "public"),
		},
	})
	require.NoError(t, err)
	return cfg
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestGenerate(t *testing.T) {
	root := t.TempDir()
	writeRecording(t, root)
	cfg := testConfig(t, root)

	// stale output from a previous run is removed
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs", "old"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "docs", "old", "page.html"), []byte("x"), 0644))

	summary, err := Generate(GenerateOptions{
		Config:   cfg,
		FS:       filesystem.NewOS(),
		Patterns: []string{filepath.Join(root, "records", "*.yml")},
		Batches:  filesystem.NewOSBatch,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Recordings)
	assert.Equal(t, 3, summary.Examples)
	assert.Equal(t, 2, summary.Documented)
	assert.Equal(t, 1, summary.Public)
	require.Len(t, summary.Resources, 1)
	assert.Equal(t, "Widgets", summary.Resources[0].Name)
	require.Len(t, summary.Resources[0].Examples, 2)

	assert.True(t, exists(filepath.Join(root, "docs", "widgets", "create_widget.html")))
	assert.True(t, exists(filepath.Join(root, "docs", "widgets", "list_widgets.html")))
	assert.True(t, exists(filepath.Join(root, "docs", "index.html")))
	assert.False(t, exists(filepath.Join(root, "docs", "admin")))
	assert.False(t, exists(filepath.Join(root, "docs", "old")))

	assert.True(t, exists(filepath.Join(root, "public", "widgets", "create_widget.html")))
	assert.False(t, exists(filepath.Join(root, "public", "widgets", "list_widgets.html")))

	index, err := os.ReadFile(filepath.Join(root, "public", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), `href="widgets/create_widget.html"`)
	assert.NotContains(t, string(index), "List Widgets")
}

func TestGenerate_DryRun(t *testing.T) {
	root := t.TempDir()
	writeRecording(t, root)

	summary, err := Generate(GenerateOptions{
		Config:   testConfig(t, root),
		FS:       filesystem.NewOS(),
		Patterns: []string{filepath.Join(root, "records", "*.yml")},
		DryRun:   true,
	})
	require.NoError(t, err)

	assert.True(t, summary.DryRun)
	assert.Equal(t, 2, summary.Documented)
	assert.False(t, exists(filepath.Join(root, "docs")))
	assert.False(t, exists(filepath.Join(root, "public")))
}

func TestGenerate_MemoryFS(t *testing.T) {
	fsys := filesystem.NewMemory()
	root := filepath.FromSlash("/project")
	testutil.CreateFileTree(t, fsys, root, testutil.FileTree{
		"records": testutil.FileTree{"widgets.yml": widgetRecording},
	})
	cfg := testConfig(t, root)
	cfg.Records = []string{filepath.Join(root, "records", "**", "*.yml")}

	summary, err := Generate(GenerateOptions{Config: cfg, FS: fsys})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Recordings)
	assert.Equal(t, 2, summary.Documented)

	page, err := fsys.ReadFile(filepath.Join(root, "public", "widgets", "create_widget.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "Create Widget")

	_, err = fsys.Stat(filepath.Join(root, "docs", "index.html"))
	assert.NoError(t, err)
}

func TestGenerate_RecordsFromConfig(t *testing.T) {
	root := t.TempDir()
	writeRecording(t, root)
	cfg := testConfig(t, root)
	cfg.Records = []string{filepath.Join(root, "records", "**", "*.yml")}

	summary, err := Generate(GenerateOptions{Config: cfg, FS: filesystem.NewOS(), DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Recordings)
}

func TestGenerate_NoRecordings(t *testing.T) {
	root := t.TempDir()

	_, err := Generate(GenerateOptions{
		Config:   testConfig(t, root),
		FS:       filesystem.NewOS(),
		Patterns: []string{filepath.Join(root, "*.yml")},
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRecordNotFound))
}

func TestGenerate_BrokenRecording(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "broken.yml")
	require.NoError(t, os.WriteFile(path, []byte("- description: [unclosed"), 0644))

	_, err := Generate(GenerateOptions{
		Config:   testConfig(t, root),
		FS:       filesystem.NewOS(),
		Patterns: []string{path},
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRecordParse))
}

// project sets up an isolated project root for running the CLI
func project(t *testing.T) string {
	t.Helper()
	return testutil.NewTestEnvironment(t, testutil.EnvIsolated).ProjectRoot
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateCmd(t *testing.T) {
	root := project(t)
	writeRecording(t, root)

	out, err := run(t, "generate",
		"--format", "markdown",
		"--docs-dir", "out",
		"--public-docs-dir", "pub",
		filepath.Join(root, "records", "*.yml"),
	)
	require.NoError(t, err)

	assert.Contains(t, out, "1 recordings, 3 examples, 2 documented, 1 public")
	assert.True(t, exists(filepath.Join(root, "out", "widgets", "create_widget.md")))
	assert.True(t, exists(filepath.Join(root, "out", "index.md")))
	assert.True(t, exists(filepath.Join(root, "pub", "widgets", "create_widget.md")))
}

func TestGenerateCmd_Filter(t *testing.T) {
	root := project(t)
	writeRecording(t, root)

	out, err := run(t, "generate", "--dry-run",
		"--filter", "public_api",
		filepath.Join(root, "records", "*.yml"),
	)
	require.NoError(t, err)

	assert.Contains(t, out, "(dry run)")
	assert.Contains(t, out, "0 documented")
	assert.False(t, exists(filepath.Join(root, "docs")))
}

func TestGenerateCmd_ProjectConfig(t *testing.T) {
	root := project(t)
	writeRecording(t, root)
	require.NoError(t, os.WriteFile(filepath.Join(root, "apidocs.toml"), []byte(`
format = "txt"
docs_dir = "site/private"
public_docs_dir = "site/public"
records = ["records/*.yml"]
`), 0644))

	_, err := run(t, "generate")
	require.NoError(t, err)

	assert.True(t, exists(filepath.Join(root, "site", "private", "widgets", "list_widgets.txt")))
	assert.True(t, exists(filepath.Join(root, "site", "public", "index.txt")))
}
