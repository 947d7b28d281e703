package life

import (
	"context"
	"fmt"
)

// Snapshot is the board at a given 0-based generation. The grid is never
// written after it is published.
type Snapshot struct {
	Generation int
	Grid       *Grid
}

// Publisher consumes snapshots between steps.
type Publisher interface {
	Publish(Snapshot) error
}

// PublisherFunc adapts a function to the Publisher interface.
type PublisherFunc func(Snapshot) error

// Publish calls f.
func (f PublisherFunc) Publish(s Snapshot) error { return f(s) }

// Simulation owns the current board and advances it one generation at a
// time.
type Simulation struct {
	cfg      Config
	strategy StepStrategy
	grid     *Grid
	gen      int
}

// NewSimulation validates cfg, builds the initial board and selects the
// step strategy.
func NewSimulation(cfg Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rule, err := ParseRule(cfg.Rule)
	if err != nil {
		return nil, err
	}
	strategy, err := NewStrategy(cfg.Strategy, rule, cfg.Workers)
	if err != nil {
		return nil, err
	}
	grid, err := Initialize(cfg.Dim, cfg.Seed, cfg.Density)
	if err != nil {
		return nil, err
	}
	return &Simulation{cfg: cfg, strategy: strategy, grid: grid}, nil
}

// NewSimulationFromGrid starts a simulation from an explicit board that Run
// advances maxStep times.
func NewSimulationFromGrid(g *Grid, strategy StepStrategy, maxStep int) (*Simulation, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if maxStep < 0 {
		return nil, fmt.Errorf("max_step %d must not be negative", maxStep)
	}
	if strategy == nil {
		strategy = Convolutional{}
	}
	cfg := DefaultConfig()
	cfg.Dim = g.Dim()
	cfg.MaxStep = maxStep
	cfg.Strategy = strategy.Name()
	return &Simulation{cfg: cfg, strategy: strategy, grid: g}, nil
}

// Config returns the configuration the simulation was built from.
func (s *Simulation) Config() Config { return s.cfg }

// Strategy returns the step strategy in use.
func (s *Simulation) Strategy() StepStrategy { return s.strategy }

// Generation returns the index of the current board.
func (s *Simulation) Generation() int { return s.gen }

// Grid returns the current board.
func (s *Simulation) Grid() *Grid { return s.grid }

// Snapshot returns the current board with its generation index.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{Generation: s.gen, Grid: s.grid}
}

// Advance replaces the current board with the next generation.
func (s *Simulation) Advance() error {
	next, err := s.strategy.Step(s.grid)
	if err != nil {
		return fmt.Errorf("step %d: %w", s.gen, err)
	}
	s.grid = next
	s.gen++
	return nil
}

// Run publishes the current board, then advances and publishes until
// MaxStep generations have been computed. A cancelled context stops the run
// at the next generation boundary and its error is returned along with the
// last completed board. p may be nil.
func (s *Simulation) Run(ctx context.Context, p Publisher) (*Grid, error) {
	publish := func() error {
		if p == nil {
			return nil
		}
		if err := p.Publish(s.Snapshot()); err != nil {
			return fmt.Errorf("publish generation %d: %w", s.gen, err)
		}
		return nil
	}

	if err := publish(); err != nil {
		return s.grid, err
	}
	for s.gen < s.cfg.MaxStep {
		if err := ctx.Err(); err != nil {
			return s.grid, err
		}
		if err := s.Advance(); err != nil {
			return s.grid, err
		}
		if err := publish(); err != nil {
			return s.grid, err
		}
	}
	return s.grid, nil
}
