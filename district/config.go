package district

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Default tunables of the balancing algorithm.
const (
	// DefaultMaxIterations bounds the number of moves per run.
	DefaultMaxIterations = 10000

	// DefaultTolerancePercent is the accepted population spread, as a
	// percentage of the per-district target.
	DefaultTolerancePercent = 0.5

	// DefaultShiftCapFraction caps a single move at this share of the donor
	// region's total population, keeping convergence gradual.
	DefaultShiftCapFraction = 0.05

	// DefaultEpsilon is the threshold under which an allocation is zero.
	DefaultEpsilon = 1e-9
)

// Config holds the balancing tunables.
type Config struct {
	MaxIterations    int     `yaml:"maxIterations" json:"maxIterations"`
	TolerancePercent float64 `yaml:"tolerancePercent" json:"tolerancePercent"`
	ShiftCapFraction float64 `yaml:"shiftCapFraction" json:"shiftCapFraction"`
	Epsilon          float64 `yaml:"epsilon" json:"epsilon"`
}

// DefaultConfig returns the stock tunables.
func DefaultConfig() Config {
	return Config{
		MaxIterations:    DefaultMaxIterations,
		TolerancePercent: DefaultTolerancePercent,
		ShiftCapFraction: DefaultShiftCapFraction,
		Epsilon:          DefaultEpsilon,
	}
}

// Validate checks every tunable's range.
func (c Config) Validate() error {
	switch {
	case c.MaxIterations <= 0:
		return fmt.Errorf("%w: maxIterations must be positive (%d)", ErrBadConfig, c.MaxIterations)
	case c.TolerancePercent <= 0 || c.TolerancePercent >= 100:
		return fmt.Errorf("%w: tolerancePercent must be in (0,100) (%g)", ErrBadConfig, c.TolerancePercent)
	case c.ShiftCapFraction <= 0 || c.ShiftCapFraction > 1:
		return fmt.Errorf("%w: shiftCapFraction must be in (0,1] (%g)", ErrBadConfig, c.ShiftCapFraction)
	case c.Epsilon <= 0 || c.Epsilon >= 1e-3:
		return fmt.Errorf("%w: epsilon must be in (0,1e-3) (%g)", ErrBadConfig, c.Epsilon)
	}

	return nil
}

// LoadConfig reads YAML tunables from r over DefaultConfig. Keys that are
// absent keep their defaults; unknown keys are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
