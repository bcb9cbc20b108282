// Package render turns a template reference and a data mapping into text.
//
// A template is addressed by a directory (the template path), a name such as
// "example" or "index", and the output extension. The file read is
//
//	<template path>/<name>.<extension>.tmpl
//
// An empty template path selects the templates built into the binary, which
// exist for the html, md and txt extensions. HTML output goes through
// html/template so recorded bodies are escaped; everything else uses
// text/template.
package render
