package apidocs

import (
	_ "embed"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Render recorded API examples into documentation"
	MsgGenerateShort   = "Generate the private and public documentation trees"
	MsgPreviewShort    = "Render recorded examples as markdown in the terminal"
	MsgConfigShort     = "Show the effective configuration"
	MsgConfigInitShort = "Write a commented apidocs.toml to the project root"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgNoRecordings     = "no recordings match %s"
	MsgConfigWritten    = "Wrote [path]%s[/path]\n"
	MsgNothingToPreview = "No documentable examples in %s\n"
	MsgFallbackWarning  = "[warning]Not inside a git repository, using %s as project root[/warning]\n"

	// Error messages
	MsgErrInitPaths    = "failed to initialize paths: %w"
	MsgErrLoadConfig   = "failed to load configuration: %w"
	MsgErrConfigExists = "%s already exists, use --force to overwrite"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig       = "Config file (default: apidocs.toml in the project root)"
	MsgFlagDryRun       = "Document examples and report without writing files"
	MsgFlagFormat       = "Output format: html, markdown or txt"
	MsgFlagDocsDir      = "Root of the private documentation tree"
	MsgFlagPublicDir    = "Root of the public documentation tree"
	MsgFlagTemplatePath = "Directory of custom templates"
	MsgFlagFilter       = "Only document examples carrying one of these tags"
	MsgFlagExclude      = "Leave out examples carrying one of these tags"
	MsgFlagStyle        = "Glamour style: auto, dark, light, notty or a style file"
	MsgFlagWidth        = "Word wrap width, 0 for the terminal default"
	MsgFlagForce        = "Overwrite an existing file"
)

// Long messages
var (
	MsgRootLong = heredoc.Doc(`
		apidocs turns the examples recorded by an API test suite into browsable
		documentation. Every documentable example is rendered to its own page
		under docs_dir, and the public subset gets its own tree under
		public_docs_dir together with an index page.

		Configuration comes from apidocs.toml (or .yaml) in the project root,
		the user config in $XDG_CONFIG_HOME/apidocs/config.toml and APIDOCS_*
		environment variables.
	`)

	MsgGenerateLong = heredoc.Doc(`
		Generate loads every recording matching the given globs (or the records
		setting), keeps the documentable examples, empties both output
		directories and writes:

		  <docs_dir>/<resource>/<example>.<ext>         every documented example
		  <docs_dir>/index.<ext>                        index of all examples
		  <public_docs_dir>/<resource>/<example>.<ext>  public examples
		  <public_docs_dir>/index.<ext>                 index of public examples
	`)

	MsgGenerateExample = strings.TrimRight(heredoc.Doc(`
		  # Use the records globs from apidocs.toml
		  apidocs generate

		  # Markdown docs from a specific recording directory
		  apidocs generate --format markdown 'spec/records/**/*.yml'

		  # Only examples tagged public_api
		  apidocs generate --filter public_api
	`), "\n")

	MsgPreviewLong = heredoc.Doc(`
		Preview renders each documentable example of a recording file through
		the markdown example template and shows it with glamour. Nothing is
		written to disk.
	`)

	MsgConfigLong = heredoc.Doc(`
		Config prints the configuration apidocs would use, after merging the
		built-in defaults, config files, environment variables and flags.
	`)
)

// Long messages from embedded files
var (
	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
