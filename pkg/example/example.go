package example

import (
	"regexp"
	"slices"
	"strings"

	"github.com/lockstate/rspec-api-documentation/pkg/config"
	"github.com/lockstate/rspec-api-documentation/pkg/recording"
	"github.com/lockstate/rspec-api-documentation/pkg/render"
)

// Renderer is the template engine a wrapped example renders through
type Renderer interface {
	Render(templatePath, name, extension string, data interface{}) (string, error)
}

// Example is a recorded example prepared for documentation
type Example struct {
	raw *recording.Example

	filter          []string
	exclusionFilter []string
	apiName         string
	renderer        Renderer

	templatePath      string
	templateExtension string
}

// Option configures a wrapped example
type Option func(*Example)

// WithFilters sets the documentation tag filters. A filter containing
// config.FilterAll admits every tag.
func WithFilters(filter, exclusion []string) Option {
	return func(e *Example) {
		e.filter = filter
		e.exclusionFilter = exclusion
	}
}

// WithRenderer replaces the shared template engine
func WithRenderer(r Renderer) Option {
	return func(e *Example) {
		e.renderer = r
	}
}

// WithAPIName sets the API title exposed to templates
func WithAPIName(name string) Option {
	return func(e *Example) {
		e.apiName = name
	}
}

// WithConfig applies the filters and API name of cfg
func WithConfig(cfg config.Config) Option {
	return func(e *Example) {
		WithFilters(cfg.Filter, cfg.ExclusionFilter)(e)
		WithAPIName(cfg.APIName)(e)
	}
}

// New wraps raw. Without options every tag is admitted and rendering uses
// render.Default().
func New(raw *recording.Example, opts ...Option) *Example {
	e := &Example{
		raw:    raw,
		filter: []string{config.FilterAll},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.renderer == nil {
		e.renderer = render.Default()
	}
	return e
}

// Raw returns the wrapped record
func (e *Example) Raw() *recording.Example {
	return e.raw
}

// ShouldDocument reports whether the example belongs in the documentation
func (e *Example) ShouldDocument() bool {
	if e.raw == nil || e.raw.Pending {
		return false
	}
	if strings.TrimSpace(e.raw.ResourceName) == "" {
		return false
	}

	tags := e.raw.Document
	if tags.Disabled {
		return false
	}
	if intersects(tags.Names, e.exclusionFilter) {
		return false
	}
	if len(e.filter) == 0 || slices.Contains(e.filter, config.FilterAll) {
		return true
	}
	return intersects(tags.Names, e.filter)
}

// Public reports whether the example goes into the public documentation
func (e *Example) Public() bool {
	return e.raw != nil && e.raw.Public
}

var (
	whitespace  = regexp.MustCompile(`\s+`)
	unsafeChars = regexp.MustCompile(`[^a-z0-9_]`)
)

// Dirname is the directory of the example's page, relative to a docs root
func (e *Example) Dirname() string {
	return whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(e.raw.ResourceName)), "_")
}

// Filename is the base name of the example's page, without extension
func (e *Example) Filename() string {
	name := whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(e.raw.Description)), "_")
	return unsafeChars.ReplaceAllString(name, "")
}

// SetTemplatePath binds the template reference used by Render
func (e *Example) SetTemplatePath(path string) {
	e.templatePath = path
}

// SetTemplateExtension binds the output extension used by Render
func (e *Example) SetTemplateExtension(ext string) {
	e.templateExtension = strings.TrimPrefix(ext, ".")
}

func (e *Example) TemplatePath() string {
	return e.templatePath
}

func (e *Example) TemplateExtension() string {
	return e.templateExtension
}

// Render renders Metadata through the bound example template
func (e *Example) Render() (string, error) {
	return e.renderer.Render(e.templatePath, render.ExampleTemplate, e.templateExtension, e.Metadata())
}

func intersects(a, b []string) bool {
	for _, s := range a {
		if slices.Contains(b, s) {
			return true
		}
	}
	return false
}
