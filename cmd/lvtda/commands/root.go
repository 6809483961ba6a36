// Package commands implements the lvtda command tree.
package commands

import (
	"fmt"
	"io"

	"github.com/katalvlaran/lvtda"
	"github.com/katalvlaran/lvtda/internal/config"
	"github.com/katalvlaran/lvtda/internal/logging"
	"github.com/katalvlaran/lvtda/internal/pointio"
	"github.com/katalvlaran/lvtda/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	configPath  string
	debug       bool
	workers     int
	showMetrics bool
	format      string
	header      bool
	delimiter   string

	cfg      *config.Config
	logger   *zap.Logger
	registry *prometheus.Registry
	recorder *metrics.Metrics
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds a fresh command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "lvtda",
		Short: "Topological data analysis of point clouds",
		Long: `lvtda computes distances, DBSCAN clusters, Vietoris-Rips persistence
intervals and Mapper graphs for a point cloud.

Settings come from an optional YAML file (--config) and are overridden by
flags. Results are written to stdout as JSON.

Example:
  lvtda persistence --max-dim 1 points.csv
  lvtda mapper --resolution 4 --overlap 0.3 --lens pca points.json`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	pf.BoolVar(&a.debug, "debug", false, "human-readable debug logging")
	pf.IntVar(&a.workers, "workers", 0, "parallel workers (default GOMAXPROCS)")
	pf.BoolVar(&a.showMetrics, "metrics", false, "print Prometheus metrics to stderr after the run")
	pf.StringVar(&a.format, "format", "", `input format "csv" or "json" (default from extension)`)
	pf.BoolVar(&a.header, "header", false, "skip the first CSV record")
	pf.StringVar(&a.delimiter, "delimiter", "", `CSV field delimiter (default ",")`)

	root.AddCommand(
		a.newDistancesCommand(),
		a.newDBSCANCommand(),
		a.newPersistenceCommand(),
		a.newMapperCommand(),
	)

	return root
}

// setup loads the config, applies flag overrides and builds the logger and
// metrics registry.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Debug = a.debug
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if flags.Changed("format") {
		cfg.Input.Format = a.format
	}
	if flags.Changed("header") {
		cfg.Input.Header = a.header
	}
	if flags.Changed("delimiter") {
		cfg.Input.Delimiter = a.delimiter
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	a.logger = logger

	a.registry = prometheus.NewRegistry()
	a.recorder, err = metrics.New(a.registry)
	if err != nil {
		return err
	}

	return nil
}

func (a *app) teardown(cmd *cobra.Command, _ []string) error {
	defer func() { _ = a.logger.Sync() }()
	if !a.showMetrics {
		return nil
	}

	return writeMetrics(cmd.ErrOrStderr(), a.registry)
}

// writeMetrics renders every gathered family in the text exposition format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}

	return nil
}

// loadCloud reads the points named by path ("-" for stdin) and wraps them
// in a Cloud configured from the app.
func (a *app) loadCloud(cmd *cobra.Command, path string) (*lvtda.Cloud, error) {
	opts := pointio.ReadOptions{
		Header:    a.cfg.Input.Header,
		Delimiter: []rune(a.cfg.Input.Delimiter)[0],
	}

	var (
		points [][]float64
		err    error
	)
	if path == "-" {
		format := a.cfg.Input.Format
		if format == "" {
			format = pointio.FormatCSV
		}
		points, err = pointio.Read(cmd.InOrStdin(), format, opts)
	} else {
		points, err = pointio.ReadFile(path, a.cfg.Input.Format, opts)
	}
	if err != nil {
		return nil, err
	}
	a.logger.Debug("points loaded", zap.String("source", path), zap.Int("points", len(points)))

	return lvtda.NewCloud(points,
		lvtda.WithLogger(a.logger),
		lvtda.WithWorkers(a.cfg.Workers),
		lvtda.WithMaxSimplices(a.cfg.MaxSimplices),
		lvtda.WithRecorder(a.recorder),
	)
}
