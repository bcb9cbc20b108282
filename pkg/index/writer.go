package index

import (
	"context"
	"path/filepath"

	"github.com/lockstate/rspec-api-documentation/pkg/config"
	"github.com/lockstate/rspec-api-documentation/pkg/example"
	"github.com/lockstate/rspec-api-documentation/pkg/filesystem"
	"github.com/lockstate/rspec-api-documentation/pkg/logging"
	"github.com/lockstate/rspec-api-documentation/pkg/render"
	"github.com/lockstate/rspec-api-documentation/pkg/types"
)

// IndexFile is the base name of index pages
const IndexFile = "index"

// Writer renders index pages and example pages for an Index. Each Write
// call renders everything first and then commits the files as one batch.
type Writer struct {
	renderer example.Renderer
	cfg      config.Config
	newBatch func() filesystem.Batch
}

// WriterOption configures a Writer
type WriterOption func(*Writer)

// WithBatches replaces the default batch, which writes through the
// Writer's types.FS. filesystem.NewOSBatch runs the writes through synthfs.
func WithBatches(newBatch func() filesystem.Batch) WriterOption {
	return func(w *Writer) {
		w.newBatch = newBatch
	}
}

// NewWriter returns a Writer using the template settings of cfg
func NewWriter(fsys types.FS, renderer example.Renderer, cfg config.Config, opts ...WriterOption) *Writer {
	w := &Writer{
		renderer: renderer,
		cfg:      cfg,
		newBatch: func() filesystem.Batch { return filesystem.NewFSBatch(fsys) },
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Data is the mapping index templates see
func (w *Writer) Data(idx *Index) map[string]interface{} {
	resources := make([]map[string]interface{}, 0)
	for _, res := range idx.Resources() {
		examples := make([]map[string]interface{}, 0, len(res.Examples))
		for _, ex := range res.Examples {
			raw := ex.Raw()
			examples = append(examples, map[string]interface{}{
				"description": raw.Description,
				"http_method": raw.HTTPMethod,
				"route":       raw.Route,
				"dirname":     ex.Dirname(),
				"filename":    ex.Filename(),
				"link":        w.link(ex),
			})
		}
		resources = append(resources, map[string]interface{}{
			"name":     res.Name,
			"examples": examples,
		})
	}

	return map[string]interface{}{
		"api_name":  w.cfg.APIName,
		"resources": resources,
	}
}

// WriteIndex renders the index page of idx into root and returns its path
func (w *Writer) WriteIndex(root string, idx *Index) (string, error) {
	batch := w.newBatch()
	path, err := w.planIndex(batch, root, idx)
	if err != nil {
		return "", err
	}
	if err := w.commit(batch); err != nil {
		return "", err
	}
	return path, nil
}

// WritePages renders every example of idx into root/<dirname>/<filename>.<ext>
func (w *Writer) WritePages(root string, idx *Index) ([]string, error) {
	batch := w.newBatch()
	if err := w.planPages(batch, root, idx); err != nil {
		return nil, err
	}
	if err := w.commit(batch); err != nil {
		return nil, err
	}
	return batch.Paths(), nil
}

// WritePublic writes the public example pages and the public index page
// under the configured public docs root
func (w *Writer) WritePublic(idx *Index) ([]string, error) {
	root := w.cfg.PublicDocsDir
	batch := w.newBatch()
	if err := w.planPages(batch, root, idx); err != nil {
		return nil, err
	}
	if _, err := w.planIndex(batch, root, idx); err != nil {
		return nil, err
	}
	written := batch.Paths()
	if err := w.commit(batch); err != nil {
		return nil, err
	}
	return written, nil
}

func (w *Writer) planIndex(batch filesystem.Batch, root string, idx *Index) (string, error) {
	content, err := w.renderer.Render(w.cfg.TemplatePath, render.IndexTemplate, w.cfg.TemplateExtension, w.Data(idx))
	if err != nil {
		return "", err
	}

	path := filepath.Join(root, IndexFile+"."+w.cfg.TemplateExtension)
	batch.WriteFile(path, []byte(content))
	return path, nil
}

func (w *Writer) planPages(batch filesystem.Batch, root string, idx *Index) error {
	for _, ex := range idx.Examples() {
		ex.SetTemplatePath(w.cfg.TemplatePath)
		ex.SetTemplateExtension(w.cfg.TemplateExtension)

		content, err := ex.Render()
		if err != nil {
			return err
		}
		batch.WriteFile(filepath.Join(root, w.link(ex)), []byte(content))
	}
	return nil
}

func (w *Writer) link(ex *example.Example) string {
	return filepath.ToSlash(filepath.Join(ex.Dirname(), ex.Filename()+"."+w.cfg.TemplateExtension))
}

func (w *Writer) commit(batch filesystem.Batch) error {
	paths := batch.Paths()
	if err := batch.Commit(context.Background()); err != nil {
		return err
	}

	logger := logging.GetLogger("index")
	logger.Debug().
		Strs("paths", paths).
		Msg("Wrote pages")
	return nil
}
