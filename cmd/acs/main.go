// Command acs runs an Ant Colony System search over a TOML-described
// instance and writes a full decision trace to a report file.
package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/acs"
	"github.com/katalvlaran/acs/config"
	"github.com/katalvlaran/acs/logger"
	"github.com/katalvlaran/acs/report"
)

var (
	configPath  string
	outPath     string
	generations int
	seed        int64
	jsonLogs    bool
)

var rootCmd = &cobra.Command{
	Use:   "acs",
	Short: "Ant Colony System solver for shortest open paths",
	Long: `acs searches for the shortest open path visiting every city of a
distance matrix exactly once, using the Ant Colony System metaheuristic.

The instance and all coefficients come from a TOML file (see --config);
the full per-ant decision trace is written to the report file when one
is configured.

Examples:
  acs --config demo.toml
  acs --config demo.toml --generations 200 --seed 7
  acs --config demo.toml --out trace.txt`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.Initialize(jsonLogs); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "acs.toml", "run description file (TOML)")
	rootCmd.Flags().StringVarP(&outPath, "out", "o", "", "report file (overrides report.path)")
	rootCmd.Flags().IntVarP(&generations, "generations", "g", 0, "generation count (overrides run.generations)")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (overrides run.seed; 0 keeps the config value)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "emit JSON logs instead of console output")
}

func run(cmd *cobra.Command, args []string) error {
	log := logger.Logger

	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return err
	}
	if generations > 0 {
		cfg.Run.Generations = generations
	}
	if seed != 0 {
		cfg.Run.Seed = seed
	}
	if outPath != "" {
		cfg.Report.Path = outPath
	}

	dist, err := cfg.Matrix()
	if err != nil {
		return fmt.Errorf("invalid distance matrix: %w", err)
	}

	log.Infow("run configured",
		"config", configPath,
		"cities", dist.Rows(),
		"ants", cfg.Run.Ants,
		"generations", cfg.Run.Generations,
		"seed", cfg.Run.Seed,
	)

	opts := cfg.Options()

	var sink *report.Sink
	if cfg.Report.Path != "" {
		f, ferr := os.Create(cfg.Report.Path)
		if ferr != nil {
			return fmt.Errorf("failed to create report file: %w", ferr)
		}
		defer f.Close()

		sink = report.New(f, cfg.Cities.Names)
		if err = sink.WriteParams(report.Params{
			Ants:             cfg.Run.Ants,
			Generations:      cfg.Run.Generations,
			InitialCity:      cfg.Run.InitialCity,
			Seed:             cfg.Run.Seed,
			Alpha:            cfg.Coefficients.Alpha,
			Beta:             cfg.Coefficients.Beta,
			Rho:              cfg.Coefficients.Rho,
			Q:                cfg.Coefficients.Q,
			Q0:               cfg.Coefficients.Q0,
			Phi:              cfg.Coefficients.Phi,
			InitialPheromone: cfg.Coefficients.InitialPheromone,
		}); err != nil {
			return fmt.Errorf("failed to write report header: %w", err)
		}
		opts = append(opts, acs.WithHooks(sink.Hooks()))
	}

	colony, err := acs.New(cfg.Run.Ants, cfg.Run.InitialCity, dist, opts...)
	if err != nil {
		return err
	}

	bar, err := pterm.DefaultProgressbar.
		WithTotal(cfg.Run.Generations).
		WithTitle("Searching").
		Start()
	if err != nil {
		return err
	}

	for gen := 0; gen < cfg.Run.Generations; gen++ {
		if _, err = colony.RunGeneration(); err != nil {
			bar.Stop()
			return fmt.Errorf("generation %d failed: %w", gen+1, err)
		}
		bar.Increment()
	}
	bar.Stop()

	tour, cost := colony.Best()
	if sink != nil {
		if err = sink.WriteFinal(tour, cost); err != nil {
			return fmt.Errorf("failed to finish report: %w", err)
		}
		log.Infow("report written", "path", cfg.Report.Path)
	}

	pterm.Success.Printf("Best path: %s (cost %g)\n", report.Path(tour, cfg.Cities.Names), cost)

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Logger.Errorw("run failed", "error", err)
		os.Exit(1)
	}
}
