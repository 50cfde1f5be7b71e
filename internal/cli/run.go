package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/smallworld/pkg/config"
	"github.com/matzehuels/smallworld/pkg/experiment"
	"github.com/matzehuels/smallworld/pkg/render/circular"
	"github.com/matzehuels/smallworld/pkg/report"
)

// runFlags holds the raw flag values of the run command. Only flags the user
// actually set override the config file.
type runFlags struct {
	configPath string
	n, k       int
	betas      []float64
	seed       uint64
	parallel   int
	output     string
	formats    string
	noRender   bool
	report     string
	empirical  bool
	keepGoing  bool
	noCache    bool
}

// runCommand creates the run command.
func (c *CLI) runCommand() *cobra.Command {
	var f runFlags
	def := config.Default()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate graphs for each beta, print metrics and draw them",
		Long: `Generate a Watts-Strogatz graph for every rewiring probability (beta),
print the average shortest path length, the clustering coefficient and the
network category of each, and draw every graph on a circle.

Without flags this reproduces the classic demo: 20 nodes, degree 4 and
betas 0, 0.2, 0.4 and 1, written to graph0.png .. graph3.png.

Settings can also come from a TOML or YAML file (--config); flags win.`,
		Example: `  smallworld run
  smallworld run -n 100 -k 6 --beta 0,0.01,0.1,1 --seed 42
  smallworld run --config experiment.toml --report json --no-render`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveRunConfig(cmd, f)
			if err != nil {
				return err
			}
			return c.runExperiment(cmd.Context(), cmd.OutOrStdout(), cfg, f)
		},
	}

	cmd.Flags().StringVar(&f.configPath, "config", "", "config file (.toml, .yaml, .yml)")
	cmd.Flags().IntVarP(&f.n, "nodes", "n", def.N, "number of nodes")
	cmd.Flags().IntVarP(&f.k, "degree", "k", def.K, "ring lattice degree (even, smaller than n)")
	cmd.Flags().Float64SliceVar(&f.betas, "beta", def.Betas, "rewiring probabilities in [0,1] (repeatable or comma-separated)")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "random seed (default: random, printed after the run)")
	cmd.Flags().IntVar(&f.parallel, "parallel", 0, "generate up to N betas concurrently (each with its own derived stream)")
	cmd.Flags().StringVarP(&f.output, "output", "o", def.Output, "output directory for images")
	cmd.Flags().StringVarP(&f.formats, "format", "f", "png", "image format(s): png, svg, dot (comma-separated)")
	cmd.Flags().BoolVar(&f.noRender, "no-render", false, "skip drawing images")
	cmd.Flags().StringVar(&f.report, "report", def.Report, "report format: table, json")
	cmd.Flags().BoolVar(&f.empirical, "empirical", false, "also measure the clustering coefficient of each generated graph")
	cmd.Flags().BoolVar(&f.keepGoing, "keep-going", false, "skip betas that fail (e.g. disconnected graphs) instead of aborting")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the result cache")

	return cmd
}

// resolveRunConfig loads the config file, if any, and applies changed flags.
func resolveRunConfig(cmd *cobra.Command, f runFlags) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("nodes") {
		cfg.N = f.n
	}
	if flags.Changed("degree") {
		cfg.K = f.k
	}
	if flags.Changed("beta") {
		cfg.Betas = f.betas
	}
	if flags.Changed("seed") {
		seed := f.seed
		cfg.Seed = &seed
	}
	if flags.Changed("parallel") {
		cfg.Parallel = f.parallel
	}
	if flags.Changed("output") {
		cfg.Output = f.output
	}
	if flags.Changed("format") {
		cfg.Formats = parseFormats(f.formats)
	}
	if flags.Changed("report") {
		cfg.Report = f.report
	}
	if flags.Changed("empirical") {
		cfg.Empirical = f.empirical
	}
	if f.noRender {
		cfg.Visualize = false
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// runExperiment runs the experiment, writes the report to out and renders
// images when enabled.
func (c *CLI) runExperiment(ctx context.Context, out io.Writer, cfg config.Config, f runFlags) error {
	// Status lines would corrupt a JSON report on stdout.
	quiet := cfg.Report == report.FormatJSON

	if cfg.Visualize {
		if err := circular.Check(cfg.N); err != nil {
			return err
		}
	}

	runner := c.newRunner(ctx, cfg.Cache, f.noCache)
	defer runner.Close()

	params := cfg.Params()
	prog := newProgress(c.Logger)

	total := len(params.Betas)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Generating %d graphs...", total))
	spinner.Start()

	finished := 0
	res, err := runner.RunEach(ctx, params, func(idx int, e *experiment.Entry, err error) error {
		finished++
		spinner.Update("Generated %d/%d graphs...", finished, total)
		if err != nil && f.keepGoing {
			c.Logger.Warn("skipping beta", "error", err)
			return nil
		}
		return err
	})
	if err != nil {
		spinner.StopWithError("Experiment failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Generated %d graphs", len(res.Entries)))

	if err := report.Write(out, res, cfg.Report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if !quiet {
		printNewline()
		printDetail("run %s · seed %d · %d cached", res.RunID, res.Seed, res.Stats.CacheHits)
		if res.Stats.Failed > 0 {
			printWarning("%d of %d betas failed", res.Stats.Failed, len(params.Betas))
		}
	}

	if !cfg.Visualize {
		return nil
	}
	return c.renderImages(ctx, res, cfg, quiet)
}

func (c *CLI) renderImages(ctx context.Context, res *experiment.Result, cfg config.Config, quiet bool) error {
	v := circular.NewVisualizer(c.Logger)
	spinner := newSpinnerWithContext(ctx, "Drawing graphs...")
	spinner.Start()
	paths, err := v.WriteAll(ctx, res, cfg.Output, cfg.Formats)
	if err != nil {
		spinner.StopWithError("Visualization failed")
		return fmt.Errorf("visualize: %w", err)
	}
	spinner.Stop()

	if !quiet {
		printSuccess("Wrote %d images", len(paths))
		for _, p := range paths {
			printFile(p)
		}
	}
	return nil
}
