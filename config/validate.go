package config

import (
	"fmt"

	"github.com/katalvlaran/acs/matrix"
)

// Validate checks the structural constraints a run description must satisfy
// before it reaches the engine. Coefficient domains are the engine's concern
// and are validated again (authoritatively) by acs.New.
func (c *Config) Validate() error {
	if c.Run.Ants < 1 {
		return fmt.Errorf("run.ants must be at least 1, got %d", c.Run.Ants)
	}
	if c.Run.Generations < 1 {
		return fmt.Errorf("run.generations must be at least 1, got %d", c.Run.Generations)
	}

	n := len(c.Cities.Distances)
	if n < 2 {
		return fmt.Errorf("cities.distances must describe at least 2 cities, got %d", n)
	}
	for i, row := range c.Cities.Distances {
		if len(row) != n {
			return fmt.Errorf("cities.distances row %d has %d entries, want %d", i, len(row), n)
		}
	}
	if c.Run.InitialCity < 0 || c.Run.InitialCity >= n {
		return fmt.Errorf("run.initial_city %d is out of range [0, %d)", c.Run.InitialCity, n)
	}
	if len(c.Cities.Names) != 0 && len(c.Cities.Names) != n {
		return fmt.Errorf("cities.names has %d entries, want %d (or omit it)", len(c.Cities.Names), n)
	}

	return nil
}

// Matrix builds the distance matrix of the instance. Call after Validate;
// entry-level checks (positivity, finiteness) happen in the engine.
func (c *Config) Matrix() (*matrix.Dense, error) {
	return matrix.NewDenseFromRows(c.Cities.Distances)
}
