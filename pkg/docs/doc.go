// Package docs is the documentation aggregator.
//
// A run has two phases. While the test suite runs, Document is called once
// per recorded example: the example is wrapped, and if it is documentable it
// is kept and filed into the private index, and into the public index as
// well when it is public. After the suite, ResetOutput empties both output
// roots and WriteAll renders every kept example to
//
//	<docs_dir>/<dirname>/<filename>.<template_extension>
//
// Nothing enforces the phase boundary; calling WriteAll again simply
// rewrites the same files. Public pages and index pages are written by
// index.Writer, not here.
//
// A Documentation is not safe for concurrent use.
package docs
