// Package acs - tunable options for the Ant Colony System engine.
//
// Options follow the functional-option pattern: public entry points accept
// ...Option applied over DefaultOptions(). Option constructors panic only on
// programmer error (nil injections); value ranges are validated once, in
// validateOptions, when a Colony is built.
package acs

// Default coefficient values. These mirror the classic ACS parameterization
// and are safe starting points for small instances.
const (
	// DefaultAlpha weighs pheromone in the diversification rule.
	DefaultAlpha = 1.0

	// DefaultBeta weighs visibility in both decision branches.
	DefaultBeta = 1.0

	// DefaultRho is the global evaporation/reinforcement coefficient.
	DefaultRho = 0.5

	// DefaultQ is the constant reward scale of the global update.
	DefaultQ = 1.0

	// DefaultQ0 is the exploitation threshold: q <= q0 intensifies.
	DefaultQ0 = 0.5

	// DefaultPhi is the local pheromone decay coefficient.
	DefaultPhi = 0.5

	// DefaultInitialPheromone is the uniform off-diagonal pheromone level
	// the field starts from (tau0).
	DefaultInitialPheromone = 0.1
)

// Options configures a Colony run. All fields are run-wide configuration;
// nothing here changes between generations.
//
// Alpha, Beta       - heuristic exponents (>= 0).
// Rho, Q0, Phi      - coefficients in [0,1].
// Q                 - reward scale (>= 0).
// InitialPheromone  - tau0, the uniform starting pheromone level (>= 0).
// Seed              - seed for the default RandomSource (ignored when Rand
//
//	is injected directly; seed 0 selects a fixed default stream).
//
// Rand              - uniform [0,1) source; nil selects NewSeededSource(Seed).
// Hooks             - optional observation callbacks; zero value is silent.
type Options struct {
	Alpha            float64
	Beta             float64
	Rho              float64
	Q                float64
	Q0               float64
	Phi              float64
	InitialPheromone float64
	Seed             int64
	Rand             RandomSource
	Hooks            Hooks
}

// Option represents a functional option for configuring a Colony.
type Option func(*Options)

// WithAlpha sets the pheromone exponent used by diversification.
func WithAlpha(alpha float64) Option {
	return func(o *Options) { o.Alpha = alpha }
}

// WithBeta sets the visibility exponent used by both decision branches.
func WithBeta(beta float64) Option {
	return func(o *Options) { o.Beta = beta }
}

// WithRho sets the global evaporation/reinforcement coefficient in [0,1].
func WithRho(rho float64) Option {
	return func(o *Options) { o.Rho = rho }
}

// WithQ sets the constant reward scale of the global update.
func WithQ(q float64) Option {
	return func(o *Options) { o.Q = q }
}

// WithQ0 sets the exploitation threshold in [0,1]. A drawn q <= q0 selects
// intensification; a threshold of 1 forces pure greedy construction.
func WithQ0(q0 float64) Option {
	return func(o *Options) { o.Q0 = q0 }
}

// WithPhi sets the local pheromone decay coefficient in [0,1].
func WithPhi(phi float64) Option {
	return func(o *Options) { o.Phi = phi }
}

// WithInitialPheromone sets tau0, the uniform off-diagonal level the
// pheromone field is initialized to and decays toward under local updates.
func WithInitialPheromone(tau0 float64) Option {
	return func(o *Options) { o.InitialPheromone = tau0 }
}

// WithSeed selects the deterministic stream of the default RandomSource.
// Seed 0 maps to a fixed default stream; identical seeds yield identical
// runs. Ignored when WithRandomSource is also applied.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRandomSource injects a custom uniform [0,1) source. Panics on nil
// (programmer error); use WithSeed for the common reproducibility case.
func WithRandomSource(src RandomSource) Option {
	if src == nil {
		panic("acs: WithRandomSource: nil source")
	}

	return func(o *Options) { o.Rand = src }
}

// WithHooks registers observation callbacks. Unset fields stay silent; the
// engine never alters behavior based on hook presence.
func WithHooks(h Hooks) Option {
	return func(o *Options) { o.Hooks = h }
}

// DefaultOptions returns an Options struct initialized with the documented
// defaults. Use this as a starting point for further overrides.
func DefaultOptions() Options {
	return Options{
		Alpha:            DefaultAlpha,
		Beta:             DefaultBeta,
		Rho:              DefaultRho,
		Q:                DefaultQ,
		Q0:               DefaultQ0,
		Phi:              DefaultPhi,
		InitialPheromone: DefaultInitialPheromone,
		Seed:             0,
		Rand:             nil,
		Hooks:            Hooks{},
	}
}

// gatherOptions applies user-provided setters on top of defaults
// (last-writer-wins) and resolves the RandomSource.
func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, set := range user {
		set(&o)
	}
	if o.Rand == nil {
		o.Rand = NewSeededSource(o.Seed)
	}

	return o
}
