package recording

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Example is one recorded interaction, as produced by the test runner
type Example struct {
	Description    string      `yaml:"description"`
	ResourceName   string      `yaml:"resource_name"`
	HTTPMethod     string      `yaml:"http_method,omitempty"`
	Route          string      `yaml:"route,omitempty"`
	Explanation    string      `yaml:"explanation,omitempty"`
	Document       Tags        `yaml:"document,omitempty"`
	Public         bool        `yaml:"public,omitempty"`
	Pending        bool        `yaml:"pending,omitempty"`
	Parameters     []Parameter `yaml:"parameters,omitempty"`
	ResponseFields []Parameter `yaml:"response_fields,omitempty"`
	Requests       []Request   `yaml:"requests,omitempty"`

	// Source is the file the example was loaded from, if any
	Source string `yaml:"-"`
}

// Parameter describes a request parameter or a response field
type Parameter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Type        string `yaml:"type,omitempty"`
	Scope       string `yaml:"scope,omitempty"`
	Required    bool   `yaml:"required,omitempty"`
}

// Request is one HTTP round trip made by an example
type Request struct {
	Method              string            `yaml:"request_method"`
	Path                string            `yaml:"request_path"`
	QueryParameters     map[string]string `yaml:"request_query_parameters,omitempty"`
	Headers             map[string]string `yaml:"request_headers,omitempty"`
	Body                string            `yaml:"request_body,omitempty"`
	ContentType         string            `yaml:"request_content_type,omitempty"`
	ResponseStatus      int               `yaml:"response_status"`
	ResponseStatusText  string            `yaml:"response_status_text,omitempty"`
	ResponseHeaders     map[string]string `yaml:"response_headers,omitempty"`
	ResponseBody        string            `yaml:"response_body,omitempty"`
	ResponseContentType string            `yaml:"response_content_type,omitempty"`
	Curl                string            `yaml:"curl,omitempty"`
}

// Tags is the documentation marker of an example. In YAML it is written as
// true/false, a single tag, or a list of tags. An absent marker documents
// the example without tags; false or an empty list disables documentation.
type Tags struct {
	Disabled bool
	Names    []string
}

// Enabled returns a marker carrying the given tags
func Enabled(names ...string) Tags {
	return Tags{Names: names}
}

// Disabled returns a marker that keeps an example out of the docs
func Disabled() Tags {
	return Tags{Disabled: true}
}

// UnmarshalYAML implements yaml.Unmarshaler
func (t *Tags) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!bool" {
			var enabled bool
			if err := node.Decode(&enabled); err != nil {
				return err
			}
			*t = Tags{Disabled: !enabled}
			return nil
		}
		if node.Tag == "!!null" {
			*t = Tags{}
			return nil
		}
		*t = Tags{Names: []string{node.Value}}
		return nil
	case yaml.SequenceNode:
		var names []string
		if err := node.Decode(&names); err != nil {
			return err
		}
		*t = Tags{Names: names, Disabled: len(names) == 0}
		return nil
	default:
		return fmt.Errorf("line %d: document must be a bool, a tag or a list of tags", node.Line)
	}
}

// MarshalYAML implements yaml.Marshaler
func (t Tags) MarshalYAML() (interface{}, error) {
	switch {
	case t.Disabled:
		return false, nil
	case len(t.Names) == 0:
		return true, nil
	default:
		return t.Names, nil
	}
}
