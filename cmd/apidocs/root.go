package apidocs

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/lockstate/rspec-api-documentation/internal/version"
	"github.com/lockstate/rspec-api-documentation/pkg/cobrax/topics"
	"github.com/lockstate/rspec-api-documentation/pkg/config"
	"github.com/lockstate/rspec-api-documentation/pkg/logging"
	"github.com/lockstate/rspec-api-documentation/pkg/paths"
	"github.com/lockstate/rspec-api-documentation/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicFiles embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity  int
		configFile string
	)

	rootCmd := &cobra.Command{
		Use:     "apidocs",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			logging.LogCommand(cmd.CommandPath(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	topicFS, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		_, err = topics.Initialize(rootCmd, topicFS, topics.Options{
			Extensions: []string{".txt", ".md"},
			Renderer:   topics.NewGlamourRenderer(),
		})
	}
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// initPaths resolves the project paths and warns when falling back to the
// working directory
func initPaths(cmd *cobra.Command) (*paths.Paths, error) {
	p, err := paths.New("")
	if err != nil {
		return nil, fmt.Errorf(MsgErrInitPaths, err)
	}
	if p.UsedFallback() {
		fmt.Fprint(cmd.ErrOrStderr(), style.Render(fmt.Sprintf(MsgFallbackWarning, p.ProjectRoot())))
	}
	return p, nil
}

// loadConfig builds the configuration for cmd from files, environment and
// the given flag overrides
func loadConfig(cmd *cobra.Command, overrides map[string]interface{}) (config.Config, *paths.Paths, error) {
	p, err := initPaths(cmd)
	if err != nil {
		return config.Config{}, nil, err
	}

	configFile, _ := cmd.Root().PersistentFlags().GetString("config")
	cfg, err := config.Load(config.LoadOptions{
		Paths:      p,
		ConfigFile: configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return config.Config{}, nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	return cfg, p, nil
}

// Execute runs the root command, printing errors the way the CLI shows them
func Execute() int {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.RenderError(err))
		return 1
	}
	return 0
}
