package core

// DefaultMaxTerms bounds the number of series terms used to compute recursive
// filter initial conditions when the signal is shorter than the bound.
const DefaultMaxTerms = 4096

// Config holds the tunable parameters shared by the recursive filters and
// the spline solvers.
type Config struct {
	// Precision bounds the truncation error of the initial-condition series.
	Precision float64
	// Lambda is the smoothing strength of a spline fit. Zero means interpolation.
	Lambda float64
	// MaxTerms caps the initial-condition series length. The effective cap is
	// max(MaxTerms, N) for a sequence of length N.
	MaxTerms int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a config with the given default precision and no smoothing.
func DefaultConfig(precision float64) Config {
	return Config{
		Precision: precision,
		MaxTerms:  DefaultMaxTerms,
	}
}

// WithPrecision sets the series precision. Values outside (0, 1] are ignored
// so the caller's default stays in effect.
func WithPrecision(precision float64) Option {
	return func(cfg *Config) {
		if ValidPrecision(precision) {
			cfg.Precision = precision
		}
	}
}

// WithLambda sets the smoothing strength. Validation is left to the
// consuming solver so unsupported values surface as errors.
func WithLambda(lambda float64) Option {
	return func(cfg *Config) {
		cfg.Lambda = lambda
	}
}

// WithMaxTerms sets the series term cap.
func WithMaxTerms(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.MaxTerms = n
		}
	}
}

// ApplyOptions applies zero or more options on top of base.
func ApplyOptions(base Config, opts ...Option) Config {
	cfg := base
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.MaxTerms <= 0 {
		cfg.MaxTerms = DefaultMaxTerms
	}
	return cfg
}

// TermCap returns the effective series term cap for a sequence of length n.
func (c Config) TermCap(n int) int {
	limit := c.MaxTerms
	if limit <= 0 {
		limit = DefaultMaxTerms
	}
	if n > limit {
		return n
	}
	return limit
}

// Default series precisions for the recursive filters and the spline
// solvers, by element precision.
const (
	SymIIRPrecisionSingle = 1e-6
	SymIIRPrecisionDouble = 1e-11
	SplinePrecisionSingle = 1e-3
	SplinePrecisionDouble = 1e-6
)

// DefaultSymIIRPrecision returns the default precision of the symmetric
// recursive filters for single or double precision elements.
func DefaultSymIIRPrecision(single bool) float64 {
	if single {
		return SymIIRPrecisionSingle
	}
	return SymIIRPrecisionDouble
}

// DefaultSplinePrecision returns the default precision of the spline solvers.
func DefaultSplinePrecision(single bool) float64 {
	if single {
		return SplinePrecisionSingle
	}
	return SplinePrecisionDouble
}
