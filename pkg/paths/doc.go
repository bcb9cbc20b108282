// Package paths provides centralized path handling for apidocs.
//
// It resolves the project root that relative output directories are anchored
// to, and the XDG locations used for user configuration and logs.
//
// # Environment Variables
//
//   - APIDOCS_ROOT: project root (default: git repository root, then cwd)
//   - APIDOCS_CONFIG_DIR: override $XDG_CONFIG_HOME/apidocs
//   - APIDOCS_STATE_DIR: override $XDG_STATE_HOME/apidocs
//
// # Usage
//
//	p, err := paths.New("")
//	if err != nil {
//	    return err
//	}
//	docs := p.Resolve("docs/api") // /home/user/project/docs/api
//	cfg := p.UserConfigPath()     // ~/.config/apidocs/config.toml
package paths
