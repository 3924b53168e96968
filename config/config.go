// Package config loads and validates run descriptions for the acs engine.
//
// A run description is a TOML file with three sections: [run] (driver
// parameters), [coefficients] (engine tuning) and [cities] (the instance
// itself). Loading goes through Viper, so every key can also be overridden
// via ACS_-prefixed environment variables.
package config

import (
	"github.com/katalvlaran/acs"
)

// Config is the top-level run description.
type Config struct {
	Run          RunConfig          `mapstructure:"run"`
	Coefficients CoefficientsConfig `mapstructure:"coefficients"`
	Cities       CitiesConfig       `mapstructure:"cities"`
	Report       ReportConfig       `mapstructure:"report"`
}

// RunConfig drives the outer loop: how many agents, how many generations,
// where tours start and which random stream to use.
type RunConfig struct {
	Ants        int   `mapstructure:"ants"`         // agents per generation (default: 4)
	Generations int   `mapstructure:"generations"`  // generations to run (default: 10)
	InitialCity int   `mapstructure:"initial_city"` // anchor city of every tour (default: 0)
	Seed        int64 `mapstructure:"seed"`         // 0 selects the fixed default stream
}

// CoefficientsConfig mirrors the engine options one to one. Defaults match
// acs.DefaultOptions().
type CoefficientsConfig struct {
	Alpha            float64 `mapstructure:"alpha"`             // pheromone exponent (diversification)
	Beta             float64 `mapstructure:"beta"`              // visibility exponent (both branches)
	Rho              float64 `mapstructure:"rho"`               // global evaporation coefficient
	Q                float64 `mapstructure:"q"`                 // global reward scale
	Q0               float64 `mapstructure:"q0"`                // exploitation threshold
	Phi              float64 `mapstructure:"phi"`               // local decay coefficient
	InitialPheromone float64 `mapstructure:"initial_pheromone"` // tau0
}

// CitiesConfig describes the instance: an optional list of display names and
// the full square distance matrix, row by row. Distance literals must be
// written as floats (2.0, not 2) for strict TOML decoding.
type CitiesConfig struct {
	Names     []string    `mapstructure:"names"`     // optional; letters A, B, C, ... when empty
	Distances [][]float64 `mapstructure:"distances"` // square, positive off-diagonal
}

// ReportConfig controls the trace report the CLI writes after a run.
type ReportConfig struct {
	Path string `mapstructure:"path"` // output file; empty disables the report
}

// Options translates the coefficient section into engine options, with the
// seed threaded through from the run section.
func (c *Config) Options() []acs.Option {
	return []acs.Option{
		acs.WithAlpha(c.Coefficients.Alpha),
		acs.WithBeta(c.Coefficients.Beta),
		acs.WithRho(c.Coefficients.Rho),
		acs.WithQ(c.Coefficients.Q),
		acs.WithQ0(c.Coefficients.Q0),
		acs.WithPhi(c.Coefficients.Phi),
		acs.WithInitialPheromone(c.Coefficients.InitialPheromone),
		acs.WithSeed(c.Run.Seed),
	}
}
