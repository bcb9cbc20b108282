package render

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"sync"
	texttemplate "text/template"

	"github.com/lockstate/rspec-api-documentation/pkg/errors"
	"github.com/lockstate/rspec-api-documentation/pkg/filesystem"
	"github.com/lockstate/rspec-api-documentation/pkg/logging"
	"github.com/lockstate/rspec-api-documentation/pkg/types"
)

// Template names used by the documentation writers
const (
	ExampleTemplate = "example"
	IndexTemplate   = "index"
)

// TemplateSuffix is appended to "<name>.<extension>" to form a file name
const TemplateSuffix = ".tmpl"

//go:embed templates/*.tmpl
var builtin embed.FS

var funcs = map[string]interface{}{
	"join":  strings.Join,
	"upper": strings.ToUpper,
	"lower": strings.ToLower,
	"trim":  strings.TrimSpace,
}

type executor interface {
	Execute(w io.Writer, data interface{}) error
}

type cacheKey struct {
	path      string
	name      string
	extension string
}

// Engine renders templates read from a filesystem or from the built-in set.
// Parsed templates are cached, so an Engine must not be pointed at templates
// that change while it is in use.
type Engine struct {
	fsys types.FS

	mu    sync.Mutex
	cache map[cacheKey]executor
}

// New returns an Engine reading custom templates from fsys
func New(fsys types.FS) *Engine {
	return &Engine{
		fsys:  fsys,
		cache: make(map[cacheKey]executor),
	}
}

var defaultEngine = New(filesystem.NewOS())

// Default returns the shared engine backed by the OS filesystem
func Default() *Engine {
	return defaultEngine
}

// Render executes the template <templatePath>/<name>.<extension>.tmpl with data
func (e *Engine) Render(templatePath, name, extension string, data interface{}) (string, error) {
	key := cacheKey{path: templatePath, name: name, extension: strings.TrimPrefix(extension, ".")}

	tmpl, err := e.lookup(key)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrapf(err, errors.ErrRender, "failed to render %s", fileName(key)).
			WithDetail("template", fileName(key))
	}
	return buf.String(), nil
}

// Builtin lists the extensions the built-in templates exist for
func Builtin() []string {
	entries, _ := fs.ReadDir(builtin, "templates")
	var exts []string
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), TemplateSuffix)
		if ext, ok := strings.CutPrefix(name, ExampleTemplate+"."); ok {
			exts = append(exts, ext)
		}
	}
	return exts
}

func (e *Engine) lookup(key cacheKey) (executor, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.cache[key]; ok {
		return tmpl, nil
	}

	src, source, err := e.read(key)
	if err != nil {
		return nil, err
	}

	tmpl, err := parse(key, src)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTemplateParse, "failed to parse template %s", source).
			WithDetail("template", source)
	}

	logger := logging.GetLogger("render")
	logger.Debug().
		Str("template", source).
		Msg("Parsed template")

	e.cache[key] = tmpl
	return tmpl, nil
}

func (e *Engine) read(key cacheKey) ([]byte, string, error) {
	name := fileName(key)

	if key.path == "" {
		source := path.Join("templates", name)
		src, err := builtin.ReadFile(source)
		if err != nil {
			return nil, source, errors.Newf(errors.ErrTemplateNotFound, "no built-in template %s", name).
				WithDetail("template", name)
		}
		return src, "builtin:" + name, nil
	}

	source := filepath.Join(key.path, name)
	src, err := e.fsys.ReadFile(source)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, source, errors.Wrapf(err, errors.ErrTemplateNotFound, "template %s not found", source).
				WithDetail("template", source)
		}
		return nil, source, errors.Wrapf(err, errors.ErrFileAccess, "failed to read template %s", source).
			WithDetail("template", source)
	}
	return src, source, nil
}

func parse(key cacheKey, src []byte) (executor, error) {
	name := fileName(key)
	if escapes(key.extension) {
		return htmltemplate.New(name).Funcs(htmltemplate.FuncMap(funcs)).Parse(string(src))
	}
	return texttemplate.New(name).Funcs(texttemplate.FuncMap(funcs)).Parse(string(src))
}

// escapes reports whether output with this extension is HTML
func escapes(extension string) bool {
	switch strings.ToLower(extension) {
	case "html", "htm", "xhtml":
		return true
	}
	return false
}

func fileName(key cacheKey) string {
	return fmt.Sprintf("%s.%s%s", key.name, key.extension, TemplateSuffix)
}
