package docs

import (
	"io/fs"
	"path/filepath"
	"sort"
	"testing"

	"github.com/lockstate/rspec-api-documentation/pkg/config"
	"github.com/lockstate/rspec-api-documentation/pkg/recording"
	"github.com/lockstate/rspec-api-documentation/pkg/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Config{
		APIName:           "Widgets API",
		Format:            config.FormatHTML,
		DocsDir:           "/out",
		PublicDocsDir:     "/pub",
		TemplatePath:      "/templates",
		TemplateExtension: "html",
		Filter:            []string{config.FilterAll},
	}
}

type mockIndex struct {
	mock.Mock
}

func (m *mockIndex) AddExample(raw *recording.Example) {
	m.Called(raw)
}

// stubExample is a wrapped example with canned answers
type stubExample struct {
	documentable bool
	public       bool
	dirname      string
	filename     string
	content      string
	renderErr    error

	templatePath      string
	templateExtension string
	renders           *[]string
}

func (s *stubExample) ShouldDocument() bool { return s.documentable }
func (s *stubExample) Public() bool         { return s.public }
func (s *stubExample) Dirname() string      { return s.dirname }
func (s *stubExample) Filename() string     { return s.filename }

func (s *stubExample) Metadata() map[string]interface{} {
	return map[string]interface{}{"dirname": s.dirname, "filename": s.filename}
}

func (s *stubExample) SetTemplatePath(path string)     { s.templatePath = path }
func (s *stubExample) SetTemplateExtension(ext string) { s.templateExtension = ext }

func (s *stubExample) Render() (string, error) {
	if s.renders != nil {
		*s.renders = append(*s.renders, s.filename)
	}
	if s.renderErr != nil {
		return "", s.renderErr
	}
	return s.content, nil
}

// wrapWith returns a wrapper handing out ex for every raw example
func wrapWith(ex Example) Wrapper {
	return func(*recording.Example) Example { return ex }
}

// wrapByRaw returns a wrapper looking raw examples up in a table
func wrapByRaw(table map[*recording.Example]Example) Wrapper {
	return func(raw *recording.Example) Example { return table[raw] }
}

// files lists every regular file below root, sorted
func files(t *testing.T, fsys types.FS, root string) []string {
	t.Helper()
	var out []string
	var walk func(dir string)
	walk = func(dir string) {
		entries, err := fsys.ReadDir(dir)
		require.NoError(t, err)
		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			if entry.IsDir() {
				walk(path)
				continue
			}
			out = append(out, path)
		}
	}
	walk(root)
	sort.Strings(out)
	return out
}

// brokenFS fails the named operation with err
type brokenFS struct {
	types.FS
	op  string
	err error
}

func (b *brokenFS) RemoveAll(path string) error {
	if b.op == "RemoveAll" {
		return b.err
	}
	return b.FS.RemoveAll(path)
}

func (b *brokenFS) MkdirAll(path string, perm fs.FileMode) error {
	if b.op == "MkdirAll" {
		return b.err
	}
	return b.FS.MkdirAll(path, perm)
}

func (b *brokenFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if b.op == "WriteFile" {
		return b.err
	}
	return b.FS.WriteFile(name, data, perm)
}
