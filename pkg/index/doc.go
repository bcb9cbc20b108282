// Package index groups documented examples by resource for index pages.
//
// An Index receives raw examples and wraps them itself. Resources are listed
// by name; examples within a resource keep the order they were added in.
// Writer renders an index page for an Index and, for the public view, the
// example pages that go with it.
package index
