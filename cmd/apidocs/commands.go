package apidocs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lockstate/rspec-api-documentation/internal/version"
	"github.com/lockstate/rspec-api-documentation/pkg/cobrax/topics"
	"github.com/lockstate/rspec-api-documentation/pkg/config"
	"github.com/lockstate/rspec-api-documentation/pkg/example"
	"github.com/lockstate/rspec-api-documentation/pkg/filesystem"
	"github.com/lockstate/rspec-api-documentation/pkg/paths"
	"github.com/lockstate/rspec-api-documentation/pkg/recording"
	"github.com/lockstate/rspec-api-documentation/pkg/render"
	"github.com/lockstate/rspec-api-documentation/pkg/style"
	"github.com/lockstate/rspec-api-documentation/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// flagOverrides maps changed flags to config keys
func flagOverrides(cmd *cobra.Command, keys map[string]string) map[string]interface{} {
	overrides := make(map[string]interface{})
	for flag, key := range keys {
		f := cmd.Flags().Lookup(flag)
		if f == nil || !f.Changed {
			continue
		}
		if slice, err := cmd.Flags().GetStringSlice(flag); err == nil {
			overrides[key] = slice
			continue
		}
		overrides[key] = f.Value.String()
	}
	return overrides
}

func newGenerateCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "generate [record-globs...]",
		Short:   MsgGenerateShort,
		Long:    MsgGenerateLong,
		Example: MsgGenerateExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd, flagOverrides(cmd, map[string]string{
				"format":          "format",
				"docs-dir":        "docs_dir",
				"public-docs-dir": "public_docs_dir",
				"template-path":   "template_path",
				"filter":          "filter",
				"exclude":         "exclusion_filter",
			}))
			if err != nil {
				return err
			}

			log.Info().
				Str("docs_dir", cfg.DocsDir).
				Str("public_docs_dir", cfg.PublicDocsDir).
				Bool("dry_run", dryRun).
				Msg("Generating documentation")

			summary, err := Generate(GenerateOptions{
				Config:   cfg,
				FS:       filesystem.NewOS(),
				Patterns: args,
				DryRun:   dryRun,
				Batches:  filesystem.NewOSBatch,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), style.RenderSummary(summary))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	cmd.Flags().String("format", "", MsgFlagFormat)
	cmd.Flags().String("docs-dir", "", MsgFlagDocsDir)
	cmd.Flags().String("public-docs-dir", "", MsgFlagPublicDir)
	cmd.Flags().String("template-path", "", MsgFlagTemplatePath)
	cmd.Flags().StringSlice("filter", nil, MsgFlagFilter)
	cmd.Flags().StringSlice("exclude", nil, MsgFlagExclude)

	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return render.Builtin(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func newPreviewCmd() *cobra.Command {
	var (
		glamourStyle string
		width        int
	)

	cmd := &cobra.Command{
		Use:     "preview <record-file>",
		Short:   MsgPreviewShort,
		Long:    MsgPreviewLong,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd, nil)
			if err != nil {
				return err
			}

			out, err := Preview(PreviewOptions{
				Config: cfg,
				FS:     filesystem.NewOS(),
				File:   args[0],
				Style:  previewStyle(glamourStyle),
				Width:  width,
			})
			if err != nil {
				return err
			}
			if out == "" {
				fmt.Fprintf(cmd.OutOrStdout(), MsgNothingToPreview, args[0])
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&glamourStyle, "style", "auto", MsgFlagStyle)
	cmd.Flags().IntVar(&width, "width", 0, MsgFlagWidth)
	return cmd
}

// PreviewOptions holds the inputs of a preview
type PreviewOptions struct {
	Config config.Config
	FS     types.FS
	File   string
	Style  string
	Width  int
}

// Preview renders the documentable examples of one recording as terminal
// markdown. The built-in markdown template is used unless template_path
// provides one.
func Preview(opts PreviewOptions) (string, error) {
	examples, err := recording.Load(opts.FS, opts.File)
	if err != nil {
		return "", err
	}

	engine := render.New(opts.FS)
	var out string
	for _, raw := range examples {
		ex := example.New(raw, example.WithConfig(opts.Config), example.WithRenderer(engine))
		if !ex.ShouldDocument() {
			continue
		}
		ex.SetTemplatePath(opts.Config.TemplatePath)
		ex.SetTemplateExtension("md")

		md, err := ex.Render()
		if err != nil && opts.Config.TemplatePath != "" {
			ex.SetTemplatePath("")
			md, err = ex.Render()
		}
		if err != nil {
			return "", err
		}

		rendered, err := topics.RenderMarkdown(md, opts.Style, opts.Width)
		if err != nil {
			rendered = md
		}
		out += rendered
	}
	return out, nil
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd, nil)
			if err != nil {
				return err
			}

			out, err := cfg.TOML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.AddCommand(newConfigInitCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := initPaths(cmd)
			if err != nil {
				return err
			}

			path := filepath.Join(p.ProjectRoot(), paths.ProjectConfigFiles[0])
			if err := WriteConfigTemplate(path, force); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), style.Render(fmt.Sprintf(MsgConfigWritten, path)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	return cmd
}

// WriteConfigTemplate writes the commented default configuration to path
func WriteConfigTemplate(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf(MsgErrConfigExists, path)
	}
	return os.WriteFile(path, []byte(config.GenerateConfigContent()), filesystem.FilePerm)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "apidocs version %s\n", version.Version)
			fmt.Fprintf(w, "  commit: %s\n", version.Commit)
			fmt.Fprintf(w, "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
