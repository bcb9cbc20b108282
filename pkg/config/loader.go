package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/lockstate/rspec-api-documentation/pkg/errors"
	"github.com/lockstate/rspec-api-documentation/pkg/logging"
	"github.com/lockstate/rspec-api-documentation/pkg/paths"
)

// EnvPrefix is the prefix of environment variables read as configuration
const EnvPrefix = "APIDOCS_"

// LoadOptions selects the sources Load reads
type LoadOptions struct {
	// Paths locates config files and anchors relative directories.
	// Without it, paths in the result stay as configured.
	Paths *paths.Paths

	// ConfigFile replaces the project config lookup; it must exist
	ConfigFile string

	// Overrides are applied last, keyed like the config file (docs_dir, ...)
	Overrides map[string]interface{}

	SkipUserConfig    bool
	SkipProjectConfig bool
	SkipEnv           bool
}

// Load builds the configuration from the layered sources
func Load(opts LoadOptions) (Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config
	if !opts.SkipUserConfig && opts.Paths != nil {
		userPath := opts.Paths.UserConfigPath()
		if _, err := os.Stat(userPath); err == nil {
			if err := loadFile(k, userPath); err != nil {
				return Config{}, err
			}
			logger.Debug().Str("path", userPath).Msg("Loaded user config")
		}
	}

	// 3. Project config
	if !opts.SkipProjectConfig {
		projectPath := opts.ConfigFile
		if projectPath != "" {
			if _, err := os.Stat(projectPath); err != nil {
				return Config{}, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", projectPath).
					WithDetail("path", projectPath)
			}
		} else if opts.Paths != nil {
			projectPath = opts.Paths.ProjectConfigPath()
		}

		if projectPath != "" {
			if err := loadFile(k, projectPath); err != nil {
				return Config{}, err
			}
			logger.Debug().Str("path", projectPath).Msg("Loaded project config")
		}
	}

	// 4. Environment
	if !opts.SkipEnv {
		err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
			return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		}), nil)
		if err != nil {
			return Config{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
	}

	// 5. Command-line overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return Config{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	cfg.normalize()

	if opts.Paths != nil {
		cfg.DocsDir = opts.Paths.Resolve(cfg.DocsDir)
		cfg.PublicDocsDir = opts.Paths.Resolve(cfg.PublicDocsDir)
		if cfg.TemplatePath != "" {
			cfg.TemplatePath = opts.Paths.Resolve(cfg.TemplatePath)
		}
		for i, pattern := range cfg.Records {
			cfg.Records[i] = opts.Paths.Resolve(pattern)
		}
		if err := cfg.ValidateRoot(opts.Paths.ProjectRoot()); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	logger.Debug().
		Str("docsDir", cfg.DocsDir).
		Str("publicDocsDir", cfg.PublicDocsDir).
		Str("format", cfg.Format).
		Str("extension", cfg.TemplateExtension).
		Msg("Configuration loaded")

	return cfg, nil
}

// loadFile merges a TOML or YAML file into k, picking the parser by extension
func loadFile(k *koanf.Koanf, path string) error {
	var parser koanf.Parser = toml.Parser()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	return nil
}
