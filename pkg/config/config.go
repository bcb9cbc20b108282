package config

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/lockstate/rspec-api-documentation/pkg/errors"
)

// FilterAll matches every documentation tag
const FilterAll = "all"

// Supported built-in output formats
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
	FormatText     = "txt"
)

// formatExtensions maps a built-in format to the extension of its templates
var formatExtensions = map[string]string{
	FormatHTML:     "html",
	FormatMarkdown: "md",
	FormatText:     "txt",
}

// formatAliases maps accepted spellings to the canonical format name
var formatAliases = map[string]string{
	"html":     FormatHTML,
	"htm":      FormatHTML,
	"markdown": FormatMarkdown,
	"md":       FormatMarkdown,
	"txt":      FormatText,
	"text":     FormatText,
}

// Config holds the settings for one documentation run
type Config struct {
	// APIName is the title used on index pages
	APIName string `koanf:"api_name" toml:"api_name"`

	// Format selects the built-in templates and the default extension
	Format string `koanf:"format" toml:"format"`

	// DocsDir is the root of the private documentation tree
	DocsDir string `koanf:"docs_dir" toml:"docs_dir"`

	// PublicDocsDir is the root of the public documentation tree
	PublicDocsDir string `koanf:"public_docs_dir" toml:"public_docs_dir"`

	// TemplatePath is a directory of *.tmpl files; empty means built-in
	TemplatePath string `koanf:"template_path" toml:"template_path"`

	// TemplateExtension is the output file extension, without a leading dot
	TemplateExtension string `koanf:"template_extension" toml:"template_extension"`

	Filter          []string `koanf:"filter" toml:"filter"`
	ExclusionFilter []string `koanf:"exclusion_filter" toml:"exclusion_filter"`

	// Records are glob patterns locating recorded example files
	Records []string `koanf:"records" toml:"records"`
}

// Default returns the embedded defaults without reading any file or the
// environment. Paths are left relative.
func Default() Config {
	cfg, err := Load(LoadOptions{SkipUserConfig: true, SkipProjectConfig: true, SkipEnv: true})
	if err != nil {
		// The embedded defaults are part of the binary
		panic(err)
	}
	return cfg
}

// normalize fills derived values and canonicalizes user input
func (c *Config) normalize() {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if canonical, ok := formatAliases[c.Format]; ok {
		c.Format = canonical
	}

	c.TemplateExtension = strings.TrimPrefix(strings.TrimSpace(c.TemplateExtension), ".")
	if c.TemplateExtension == "" {
		if ext, ok := formatExtensions[c.Format]; ok {
			c.TemplateExtension = ext
		} else {
			c.TemplateExtension = c.Format
		}
	}

	c.Filter = cleanList(c.Filter)
	if len(c.Filter) == 0 {
		c.Filter = []string{FilterAll}
	}
	c.ExclusionFilter = cleanList(c.ExclusionFilter)
	c.Records = cleanList(c.Records)
}

// Validate reports the first setting that makes a run impossible
func (c Config) Validate() error {
	switch {
	case c.DocsDir == "":
		return errors.New(errors.ErrConfigValid, "docs_dir must not be empty")
	case c.PublicDocsDir == "":
		return errors.New(errors.ErrConfigValid, "public_docs_dir must not be empty")
	case c.DocsDir == c.PublicDocsDir:
		return errors.Newf(errors.ErrConfigValid, "docs_dir and public_docs_dir must differ, both are %s", c.DocsDir).
			WithDetail("docs_dir", c.DocsDir)
	case isTopLevel(c.DocsDir):
		return errors.Newf(errors.ErrConfigValid, "docs_dir %q must be a dedicated directory", c.DocsDir).
			WithDetail("docs_dir", c.DocsDir)
	case isTopLevel(c.PublicDocsDir):
		return errors.Newf(errors.ErrConfigValid, "public_docs_dir %q must be a dedicated directory", c.PublicDocsDir).
			WithDetail("public_docs_dir", c.PublicDocsDir)
	case c.TemplateExtension == "":
		return errors.New(errors.ErrConfigValid, "template_extension must not be empty")
	case strings.ContainsAny(c.TemplateExtension, `/\`):
		return errors.Newf(errors.ErrConfigValid, "template_extension %q must not contain a path separator", c.TemplateExtension)
	}
	return nil
}

// ValidateRoot rejects output directories that are the project root or one
// of its ancestors. Output directories are emptied on every run.
func (c Config) ValidateRoot(projectRoot string) error {
	for _, dir := range []struct{ key, path string }{
		{"docs_dir", c.DocsDir},
		{"public_docs_dir", c.PublicDocsDir},
	} {
		if contains(dir.path, projectRoot) {
			return errors.Newf(errors.ErrConfigValid, "%s %s contains the project root %s", dir.key, dir.path, projectRoot).
				WithDetail(dir.key, dir.path).
				WithDetail("projectRoot", projectRoot)
		}
	}
	return nil
}

// contains reports whether path is dir or lies below it
func contains(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// isTopLevel matches "." and the filesystem root
func isTopLevel(dir string) bool {
	clean := filepath.Clean(dir)
	return clean == "." || clean == filepath.Dir(clean) && filepath.IsAbs(clean)
}

// DocumentsAll reports whether the filter admits every tag
func (c Config) DocumentsAll() bool {
	return slices.Contains(c.Filter, FilterAll)
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" || slices.Contains(out, s) {
			continue
		}
		out = append(out, s)
	}
	return out
}
