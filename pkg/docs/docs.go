package docs

import (
	"path/filepath"

	"github.com/lockstate/rspec-api-documentation/pkg/config"
	"github.com/lockstate/rspec-api-documentation/pkg/example"
	"github.com/lockstate/rspec-api-documentation/pkg/filesystem"
	"github.com/lockstate/rspec-api-documentation/pkg/index"
	"github.com/lockstate/rspec-api-documentation/pkg/logging"
	"github.com/lockstate/rspec-api-documentation/pkg/recording"
	"github.com/lockstate/rspec-api-documentation/pkg/render"
	"github.com/lockstate/rspec-api-documentation/pkg/types"
)

// Example is what the aggregator needs from a wrapped example
type Example interface {
	ShouldDocument() bool
	Public() bool
	Metadata() map[string]interface{}
	Dirname() string
	Filename() string
	SetTemplatePath(path string)
	SetTemplateExtension(ext string)
	Render() (string, error)
}

// Index receives the raw examples that were documented
type Index interface {
	AddExample(raw *recording.Example)
}

var (
	_ Example = (*example.Example)(nil)
	_ Index   = (*index.Index)(nil)
)

// Wrapper builds the wrapped view of a raw example
type Wrapper func(raw *recording.Example) Example

// Documentation collects documentable examples and writes their pages
type Documentation struct {
	cfg      config.Config
	fsys     types.FS
	renderer example.Renderer
	wrap     Wrapper

	privateIndex Index
	publicIndex  Index
	examples     []Example
}

// Option configures a Documentation
type Option func(*Documentation)

// WithFS sets the filesystem output is written to. Defaults to the OS.
func WithFS(fsys types.FS) Option {
	return func(d *Documentation) {
		d.fsys = fsys
	}
}

// WithRenderer sets the template engine used by the default wrapper and
// indices
func WithRenderer(r example.Renderer) Option {
	return func(d *Documentation) {
		d.renderer = r
	}
}

// WithWrapper replaces example.New as the way raw examples are wrapped
func WithWrapper(wrap Wrapper) Option {
	return func(d *Documentation) {
		d.wrap = wrap
	}
}

// WithIndices replaces the two default index.Index instances
func WithIndices(private, public Index) Option {
	return func(d *Documentation) {
		d.privateIndex = private
		d.publicIndex = public
	}
}

// New creates an aggregator for one run
func New(cfg config.Config, opts ...Option) *Documentation {
	d := &Documentation{cfg: cfg}
	for _, opt := range opts {
		opt(d)
	}

	if d.fsys == nil {
		d.fsys = filesystem.NewOS()
	}
	if d.renderer == nil {
		d.renderer = render.New(d.fsys)
	}
	if d.wrap == nil {
		renderer := d.renderer
		d.wrap = func(raw *recording.Example) Example {
			return example.New(raw, example.WithConfig(cfg), example.WithRenderer(renderer))
		}
	}
	if d.privateIndex == nil {
		d.privateIndex = index.New(example.WithConfig(cfg), example.WithRenderer(d.renderer))
	}
	if d.publicIndex == nil {
		d.publicIndex = index.New(example.WithConfig(cfg), example.WithRenderer(d.renderer))
	}
	return d
}

// Configuration returns the configuration the aggregator was created with
func (d *Documentation) Configuration() config.Config {
	return d.cfg
}

// PrivateIndex returns the index of every documented example
func (d *Documentation) PrivateIndex() Index {
	return d.privateIndex
}

// PublicIndex returns the index of documented public examples
func (d *Documentation) PublicIndex() Index {
	return d.publicIndex
}

// Examples returns the documented examples in the order they were documented
func (d *Documentation) Examples() []Example {
	out := make([]Example, len(d.examples))
	copy(out, d.examples)
	return out
}

// Document wraps raw and, if the wrapper says it should be documented,
// keeps it and files the raw example into the indices. Rejection is silent.
func (d *Documentation) Document(raw *recording.Example) {
	logger := logging.GetLogger("docs")

	ex := d.wrap(raw)
	if !ex.ShouldDocument() {
		event := logger.Trace()
		if raw != nil {
			event = event.Str("description", raw.Description)
		}
		event.Msg("Skipping example")
		return
	}

	d.examples = append(d.examples, ex)
	d.privateIndex.AddExample(raw)

	public := ex.Public()
	if public {
		d.publicIndex.AddExample(raw)
	}

	event := logger.Debug().Bool("public", public)
	if raw != nil {
		event = event.Str("resource", raw.ResourceName).Str("description", raw.Description)
	}
	event.Msg("Documented example")
}

// ResetOutput leaves the private and public docs roots existing and empty
func (d *Documentation) ResetOutput() error {
	logger := logging.GetLogger("docs")
	for _, dir := range []string{d.cfg.DocsDir, d.cfg.PublicDocsDir} {
		if err := filesystem.ResetDir(d.fsys, dir); err != nil {
			return err
		}
		logger.Debug().Str("path", dir).Msg("Reset output directory")
	}
	return nil
}

// WriteAll writes every documented example in order, stopping at the first
// error
func (d *Documentation) WriteAll() error {
	logger := logging.GetLogger("docs")
	done := logging.LogOperationStart(logger, "write examples")
	defer done()

	for _, ex := range d.examples {
		if err := d.WriteOne(ex); err != nil {
			return err
		}
	}

	logger.Info().Int("count", len(d.examples)).Str("path", d.cfg.DocsDir).Msg("Wrote example pages")
	return nil
}

// WriteOne binds the configured template to ex, renders it and writes the
// result under the private docs root. Errors are returned as produced by
// the renderer or the filesystem.
func (d *Documentation) WriteOne(ex Example) error {
	ex.SetTemplatePath(d.cfg.TemplatePath)
	ex.SetTemplateExtension(d.cfg.TemplateExtension)

	content, err := ex.Render()
	if err != nil {
		return err
	}

	path := d.OutputPath(ex)
	if err := d.fsys.MkdirAll(filepath.Dir(path), filesystem.DirPerm); err != nil {
		return err
	}
	if err := d.fsys.WriteFile(path, []byte(content), filesystem.FilePerm); err != nil {
		return err
	}

	logger := logging.GetLogger("docs")
	logger.Trace().Str("path", path).Msg("Wrote example page")
	return nil
}

// OutputPath is where WriteOne puts the page of ex
func (d *Documentation) OutputPath(ex Example) string {
	return filepath.Join(d.cfg.DocsDir, ex.Dirname(), ex.Filename()+"."+d.cfg.TemplateExtension)
}
