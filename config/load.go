package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/acs"
)

// LoadFromFile loads a run description from a specific TOML file, applying
// defaults for every omitted key and validating the result.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	SetDefaults(v)

	// Environment overrides, e.g. ACS_RUN_SEED=7.
	v.SetEnvPrefix("ACS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	return LoadWithViper(v)
}

// LoadWithViper decodes and validates a run description from a prepared
// Viper instance. Callers that assemble configuration programmatically (or
// tests) use this directly.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// SetDefaults configures default values for every tunable key. The instance
// itself ([cities]) has no default and must come from the file.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("run.ants", 4)
	v.SetDefault("run.generations", 10)
	v.SetDefault("run.initial_city", 0)
	v.SetDefault("run.seed", 0)

	v.SetDefault("coefficients.alpha", acs.DefaultAlpha)
	v.SetDefault("coefficients.beta", acs.DefaultBeta)
	v.SetDefault("coefficients.rho", acs.DefaultRho)
	v.SetDefault("coefficients.q", acs.DefaultQ)
	v.SetDefault("coefficients.q0", acs.DefaultQ0)
	v.SetDefault("coefficients.phi", acs.DefaultPhi)
	v.SetDefault("coefficients.initial_pheromone", acs.DefaultInitialPheromone)

	v.SetDefault("report.path", "")
}
