package life

import (
	"golife/pkg/core"
)

// Life adapts a Simulation to core.Sim so it can be driven by the viewer.
type Life struct {
	cfg     Config
	sim     *Simulation
	display []uint8
	err     error
}

// New returns a Life sim built from cfg.
func New(cfg Config) (*Life, error) {
	sim, err := NewSimulation(cfg)
	if err != nil {
		return nil, err
	}
	l := &Life{cfg: cfg, sim: sim, display: make([]uint8, cfg.Dim*cfg.Dim)}
	l.refresh()
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cfg.Dim, H: l.cfg.Dim} }

// Cells exposes the current grid values as 0/1 bytes.
func (l *Life) Cells() []uint8 { return l.display }

// Simulation returns the wrapped simulation.
func (l *Life) Simulation() *Simulation { return l.sim }

// Generation returns the index of the displayed board.
func (l *Life) Generation() int { return l.sim.Generation() }

// Population counts live cells on the displayed board.
func (l *Life) Population() int { return l.sim.Grid().Population() }

// Strategy returns the name of the step strategy in use.
func (l *Life) Strategy() string { return l.sim.Strategy().Name() }

// Err returns the error that stopped stepping, if any.
func (l *Life) Err() error { return l.err }

// Reset rebuilds the board from the provided seed.
func (l *Life) Reset(seed int64) {
	cfg := l.cfg
	cfg.Seed = seed
	sim, err := NewSimulation(cfg)
	if err != nil {
		l.err = err
		return
	}
	l.cfg, l.sim, l.err = cfg, sim, nil
	l.refresh()
}

// Step advances the simulation by one generation. After a failure the sim
// stays on its last good board.
func (l *Life) Step() {
	if l.err != nil {
		return
	}
	if err := l.sim.Advance(); err != nil {
		l.err = err
		return
	}
	l.refresh()
}

func (l *Life) refresh() {
	for i, c := range l.sim.Grid().Cells() {
		l.display[i] = uint8(c)
	}
}
