package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridastar/astar"
	"github.com/katalvlaran/gridastar/grid"
	"github.com/katalvlaran/gridastar/internal/config"
	"github.com/katalvlaran/gridastar/internal/input"
	"github.com/katalvlaran/gridastar/internal/logging"
	"github.com/katalvlaran/gridastar/internal/report"
)

// newRootCmd builds the gridpath command. A fresh command per call keeps
// flag state out of package globals, so tests can run it repeatedly.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gridpath <file>",
		Short: "Find the least-cost path across a grid of cell costs",
		Long: `gridpath reads a grid of non-negative costs, one row per line with
numbers separated by whitespace, and runs an A* search between two cells.
Entering a cell costs its value; the reported weight sums every cell on the
path, both endpoints included.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	f := cmd.Flags()
	f.String("config", "", "YAML or JSON config file")
	f.String("start", "", `start cell "x,y" (default top-left)`)
	f.String("end", "", `end cell "x,y" (default bottom-right)`)
	f.StringP("format", "f", config.FormatText, "output format: text, json or yaml")
	f.Bool("path", false, "include the path cells in the output")
	f.String("heuristic", config.HeuristicManhattan, "heuristic: manhattan or zero")
	f.Float64("max-cost", 0, "do not expand beyond this accumulated cost")
	f.String("log-level", "info", "log level: debug, info, warn or error")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log := logging.New(level, cmd.ErrOrStderr())

	matrix, err := input.ParseFile(args[0])
	if err != nil {
		log.Error("parse input", "file", args[0], "error", err)
		return err
	}
	log.Debug("input parsed", "file", args[0], "rows", len(matrix))

	begin := time.Now()
	g := grid.Build(matrix)
	if err := g.Validate(); err != nil {
		log.Error("invalid grid", "file", args[0], "error", err)
		return err
	}

	start, end, err := cfg.Endpoints(g)
	if err != nil {
		return err
	}

	res, err := astar.Search(g, start, end, searchOptions(cfg, log)...)
	elapsed := time.Since(begin)
	if err != nil {
		log.Error("search", "start", start.String(), "end", end.String(), "error", err)
		return err
	}
	log.Debug("search done", "found", res.Found(), "expanded", res.Expanded, "elapsed", elapsed)

	return report.Write(cmd.OutOrStdout(), report.New(res, elapsed, cfg.ShowPath), cfg.Format)
}

// loadConfig starts from the config file (or defaults) and lets every
// explicitly set flag override it.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	f := cmd.Flags()
	cfg := config.Default()
	if path, _ := f.GetString("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}

	strFlags := map[string]*string{
		"start":     &cfg.Start,
		"end":       &cfg.End,
		"format":    &cfg.Format,
		"heuristic": &cfg.Heuristic,
		"log-level": &cfg.LogLevel,
	}
	for name, dst := range strFlags {
		if f.Changed(name) {
			*dst, _ = f.GetString(name)
		}
	}
	if f.Changed("path") {
		cfg.ShowPath, _ = f.GetBool("path")
	}
	if f.Changed("max-cost") {
		v, _ := f.GetFloat64("max-cost")
		cfg.MaxCost = &v
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("gridpath: %w", err)
	}

	return cfg, nil
}

func searchOptions(cfg config.Config, log *slog.Logger) []astar.Option {
	opts := []astar.Option{astar.WithLogger(log)}
	if cfg.Heuristic == config.HeuristicZero {
		opts = append(opts, astar.WithHeuristic(astar.Zero))
	}
	if cfg.MaxCost != nil {
		opts = append(opts, astar.WithMaxCost(*cfg.MaxCost))
	}

	return opts
}
