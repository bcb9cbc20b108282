// Package types defines the interfaces shared across apidocs packages,
// most importantly the FS abstraction every reader and writer goes through.
package types
