package recording

import (
	"bytes"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/lockstate/rspec-api-documentation/pkg/errors"
	"github.com/lockstate/rspec-api-documentation/pkg/logging"
	"github.com/lockstate/rspec-api-documentation/pkg/types"
	"gopkg.in/yaml.v3"
)

// Load reads every example recorded in the file at path
func Load(fsys types.FS, path string) ([]*Example, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRecordLoad, "failed to read recording %s", path).
			WithDetail("path", path)
	}

	examples, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRecordParse, "failed to parse recording %s", path).
			WithDetail("path", path)
	}

	for _, ex := range examples {
		ex.Source = path
	}

	logger := logging.GetLogger("recording")
	logger.Debug().
		Str("path", path).
		Int("examples", len(examples)).
		Msg("Loaded recording")

	return examples, nil
}

// Parse decodes a YAML stream. Each document holds one example or a list.
func Parse(data []byte) ([]*Example, error) {
	var examples []*Example

	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var node yaml.Node
		err := dec.Decode(&node)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(node.Content) == 0 {
			continue
		}

		root := node.Content[0]
		switch root.Kind {
		case yaml.SequenceNode:
			var list []*Example
			if err := root.Decode(&list); err != nil {
				return nil, err
			}
			for _, ex := range list {
				if ex != nil {
					examples = append(examples, ex)
				}
			}
		case yaml.MappingNode:
			var ex Example
			if err := root.Decode(&ex); err != nil {
				return nil, err
			}
			examples = append(examples, &ex)
		case yaml.ScalarNode:
			if root.Tag == "!!null" {
				continue
			}
			return nil, errors.Newf(errors.ErrRecordParse, "line %d: expected an example or a list of examples", root.Line)
		default:
			return nil, errors.Newf(errors.ErrRecordParse, "line %d: expected an example or a list of examples", root.Line)
		}
	}

	return examples, nil
}

// Discover expands the glob patterns (with ** support) against fsys.
// Relative patterns are taken from the working directory. The result is
// sorted and free of duplicates; a pattern that matches nothing contributes
// nothing.
func Discover(fsys types.FS, patterns []string) ([]string, error) {
	tree := fsys.IOFS()

	var files []string
	for _, pattern := range patterns {
		abs, err := filepath.Abs(pattern)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid record pattern %q", pattern).
				WithDetail("pattern", pattern)
		}

		matches, err := doublestar.Glob(tree, strings.TrimPrefix(filepath.ToSlash(abs), "/"))
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid record pattern %q", pattern).
				WithDetail("pattern", pattern)
		}
		for _, m := range matches {
			path := filepath.FromSlash("/" + m)
			if info, err := fsys.Stat(path); err != nil || info.IsDir() {
				continue
			}
			files = append(files, path)
		}
	}

	slices.Sort(files)
	return slices.Compact(files), nil
}

// LoadAll discovers the recording files matching patterns and loads them in
// discovery order
func LoadAll(fsys types.FS, patterns []string) ([]*Example, error) {
	files, err := Discover(fsys, patterns)
	if err != nil {
		return nil, err
	}

	var all []*Example
	for _, file := range files {
		examples, err := Load(fsys, file)
		if err != nil {
			return nil, err
		}
		all = append(all, examples...)
	}
	return all, nil
}
