package apidocs

import (
	"strings"

	"github.com/lockstate/rspec-api-documentation/pkg/config"
	"github.com/lockstate/rspec-api-documentation/pkg/docs"
	"github.com/lockstate/rspec-api-documentation/pkg/errors"
	"github.com/lockstate/rspec-api-documentation/pkg/example"
	"github.com/lockstate/rspec-api-documentation/pkg/filesystem"
	"github.com/lockstate/rspec-api-documentation/pkg/index"
	"github.com/lockstate/rspec-api-documentation/pkg/logging"
	"github.com/lockstate/rspec-api-documentation/pkg/recording"
	"github.com/lockstate/rspec-api-documentation/pkg/render"
	"github.com/lockstate/rspec-api-documentation/pkg/style"
	"github.com/lockstate/rspec-api-documentation/pkg/types"
)

// GenerateOptions holds the inputs of one generate run
type GenerateOptions struct {
	Config config.Config
	FS     types.FS

	// Patterns replace Config.Records when set
	Patterns []string
	DryRun   bool

	// Batches creates the batch index and public pages are committed with.
	// Nil writes through FS.
	Batches func() filesystem.Batch
}

// Generate loads recordings, documents them and, unless DryRun is set,
// writes the private and public trees
func Generate(opts GenerateOptions) (style.Summary, error) {
	logger := logging.GetLogger("cmd.generate")
	cfg := opts.Config

	patterns := opts.Patterns
	if len(patterns) == 0 {
		patterns = cfg.Records
	}

	files, err := recording.Discover(opts.FS, patterns)
	if err != nil {
		return style.Summary{}, err
	}
	if len(files) == 0 {
		return style.Summary{}, errors.Newf(errors.ErrRecordNotFound, MsgNoRecordings, strings.Join(patterns, ", ")).
			WithDetail("patterns", patterns)
	}

	engine := render.New(opts.FS)
	private := index.New(example.WithConfig(cfg), example.WithRenderer(engine))
	public := index.New(example.WithConfig(cfg), example.WithRenderer(engine))
	d := docs.New(cfg,
		docs.WithFS(opts.FS),
		docs.WithRenderer(engine),
		docs.WithIndices(private, public),
	)

	total := 0
	for _, file := range files {
		examples, err := recording.Load(opts.FS, file)
		if err != nil {
			return style.Summary{}, err
		}
		for _, ex := range examples {
			d.Document(ex)
		}
		total += len(examples)
	}

	summary := buildSummary(cfg, private, public, len(files), total, opts.DryRun)
	logger.Info().
		Int("recordings", summary.Recordings).
		Int("examples", summary.Examples).
		Int("documented", summary.Documented).
		Int("public", summary.Public).
		Bool("dryRun", opts.DryRun).
		Msg("Collected examples")

	if opts.DryRun {
		return summary, nil
	}

	if err := d.ResetOutput(); err != nil {
		return summary, err
	}
	if err := d.WriteAll(); err != nil {
		return summary, err
	}

	var writerOpts []index.WriterOption
	if opts.Batches != nil {
		writerOpts = append(writerOpts, index.WithBatches(opts.Batches))
	}
	writer := index.NewWriter(opts.FS, engine, cfg, writerOpts...)
	if _, err := writer.WriteIndex(cfg.DocsDir, private); err != nil {
		return summary, err
	}
	if _, err := writer.WritePublic(public); err != nil {
		return summary, err
	}

	return summary, nil
}

func buildSummary(cfg config.Config, private, public *index.Index, recordings, total int, dryRun bool) style.Summary {
	s := style.Summary{
		APIName:       cfg.APIName,
		Recordings:    recordings,
		Examples:      total,
		Documented:    private.Len(),
		Public:        public.Len(),
		DocsDir:       cfg.DocsDir,
		PublicDocsDir: cfg.PublicDocsDir,
		DryRun:        dryRun,
	}

	for _, res := range private.Resources() {
		line := style.ResourceLine{Name: res.Name}
		for _, ex := range res.Examples {
			raw := ex.Raw()
			line.Examples = append(line.Examples, style.ExampleLine{
				Method:      raw.HTTPMethod,
				Route:       raw.Route,
				Description: raw.Description,
				Public:      public.Contains(raw),
			})
		}
		s.Resources = append(s.Resources, line)
	}
	return s
}
