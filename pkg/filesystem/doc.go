// Package filesystem provides filesystem implementations for apidocs.
//
// This package contains implementations of the types.FS interface backed by
// the OS and by afero, plus ResetDir, the ensure-empty-directory primitive used
// to rebuild documentation output roots.
//
// Batch collects rendered pages and writes them in one commit. NewOSBatch runs
// the commit as a synthfs pipeline that rolls back on error.
package filesystem
