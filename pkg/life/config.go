package life

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
)

// Config holds the parameters of a simulation run.
type Config struct {
	Dim     int
	MaxStep int
	Seed    int64
	Density float64

	Strategy string
	Workers  int
	Rule     string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Dim:      500,
		MaxStep:  1000,
		Seed:     42,
		Density:  0.2,
		Strategy: StrategyConvolutional,
		Workers:  1,
		Rule:     ConwayNotation,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Dim, "dim", c.Dim, "board side length")
	fs.IntVar(&c.MaxStep, "steps", c.MaxStep, "generations to advance")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial board")
	fs.Float64Var(&c.Density, "density", c.Density, "probability a cell starts alive, in (0, 1)")
	fs.StringVar(&c.Strategy, "strategy", c.Strategy, "step strategy: naive or convolutional")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row bands stepped concurrently by the convolutional strategy")
	fs.StringVar(&c.Rule, "rule", c.Rule, "birth/survival rule")
}

// FromMap populates a Config from a string map (flag-style key/value pairs)
// on top of DefaultConfig.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	err := c.Apply(cfg)
	return c, err
}

// Apply overrides fields from a string map. Unparseable values and unknown
// keys are reported rather than ignored and leave their field unchanged.
func (c *Config) Apply(cfg map[string]string) error {
	setInt := func(dst *int, v string) error {
		parsed, err := strconv.Atoi(v)
		if err == nil {
			*dst = parsed
		}
		return err
	}
	var errs []error
	for key, v := range cfg {
		var err error
		switch key {
		case "dim", "w", "h":
			err = setInt(&c.Dim, v)
		case "steps", "max_step":
			err = setInt(&c.MaxStep, v)
		case "workers":
			err = setInt(&c.Workers, v)
		case "seed":
			var parsed int64
			if parsed, err = strconv.ParseInt(v, 10, 64); err == nil {
				c.Seed = parsed
			}
		case "density", "sparseness":
			var parsed float64
			if parsed, err = strconv.ParseFloat(v, 64); err == nil {
				c.Density = parsed
			}
		case "strategy":
			c.Strategy = v
		case "rule":
			c.Rule = v
		default:
			err = errors.New("unknown key")
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("config %q=%q: %w", key, v, err))
		}
	}
	return errors.Join(errs...)
}

// Validate reports configuration problems that must abort a run.
func (c Config) Validate() error {
	if c.Dim <= 0 {
		return fmt.Errorf("%w: dim %d must be positive", ErrInvalidDimension, c.Dim)
	}
	if c.MaxStep < 0 {
		return fmt.Errorf("max_step %d must not be negative", c.MaxStep)
	}
	if _, err := ParseRule(c.Rule); err != nil {
		return err
	}
	if _, err := NewStrategy(c.Strategy, nil, c.Workers); err != nil {
		return err
	}
	return nil
}

// Warnings returns soft problems that callers should surface but not act on.
func (c Config) Warnings() []error {
	if err := CheckDensity(c.Density); err != nil {
		return []error{err}
	}
	return nil
}
