package index

import (
	"slices"
	"strings"

	"github.com/lockstate/rspec-api-documentation/pkg/example"
	"github.com/lockstate/rspec-api-documentation/pkg/recording"
)

// Resource is one group of examples sharing a resource name
type Resource struct {
	Name     string
	Examples []*example.Example
}

// Index is a resource-grouped collection of wrapped examples. It is not
// safe for concurrent use.
type Index struct {
	opts      []example.Option
	resources map[string]*Resource
	count     int
}

// New creates an empty Index. opts are applied to every example it wraps.
func New(opts ...example.Option) *Index {
	return &Index{
		opts:      opts,
		resources: make(map[string]*Resource),
	}
}

// AddExample wraps raw and files it under its resource name. A nil raw
// example is ignored.
func (i *Index) AddExample(raw *recording.Example) {
	if raw == nil {
		return
	}
	ex := example.New(raw, i.opts...)

	res, ok := i.resources[raw.ResourceName]
	if !ok {
		res = &Resource{Name: raw.ResourceName}
		i.resources[raw.ResourceName] = res
	}
	res.Examples = append(res.Examples, ex)
	i.count++
}

// Resources returns the resources sorted by name
func (i *Index) Resources() []Resource {
	out := make([]Resource, 0, len(i.resources))
	for _, res := range i.resources {
		out = append(out, Resource{Name: res.Name, Examples: slices.Clone(res.Examples)})
	}
	slices.SortFunc(out, func(a, b Resource) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// Examples returns every example, resource by resource
func (i *Index) Examples() []*example.Example {
	out := make([]*example.Example, 0, i.count)
	for _, res := range i.Resources() {
		out = append(out, res.Examples...)
	}
	return out
}

// Len is the number of examples added
func (i *Index) Len() int {
	return i.count
}

// Contains reports whether raw was added
func (i *Index) Contains(raw *recording.Example) bool {
	if raw == nil {
		return false
	}
	res, ok := i.resources[raw.ResourceName]
	if !ok {
		return false
	}
	return slices.ContainsFunc(res.Examples, func(ex *example.Example) bool {
		return ex.Raw() == raw
	})
}
