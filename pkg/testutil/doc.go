// Package testutil provides test environments for apidocs components.
//
// Key components:
//   - TestEnvironment: isolated project root, user config and state
//     directories, with the APIDOCS_* variables pointing at them
//   - FileTree: declarative file setup on any types.FS
//
// Use EnvMemoryOnly for code that takes a types.FS and EnvIsolated for
// anything that globs or shells out to the real filesystem, such as the CLI.
package testutil
