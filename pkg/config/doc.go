// Package config handles configuration management for apidocs.
// It supports loading configuration from multiple sources including
// TOML and YAML files, environment variables, and command-line flags.
//
// Sources are layered with koanf, lowest precedence first:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config, $XDG_CONFIG_HOME/apidocs/config.toml
//  3. the project config (apidocs.toml, .apidocs.toml, apidocs.yaml) or --config
//  4. APIDOCS_* environment variables (APIDOCS_DOCS_DIR, APIDOCS_FORMAT, ...)
//  5. command-line overrides
//
// The resulting Config is a value; it is created once per run and only read
// afterwards.
package config
