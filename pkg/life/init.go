package life

import (
	"fmt"
	"math"

	"golife/pkg/core"
)

// Initialize builds a dim×dim board where each cell, in row-major order, is
// independently alive with probability density. The same arguments always
// produce the same board. Densities outside (0, 1) are accepted and yield
// all-dead or all-alive boards; see CheckDensity.
func Initialize(dim int, seed int64, density float64) (*Grid, error) {
	g, err := NewGrid(dim)
	if err != nil {
		return nil, err
	}
	rng := core.NewRNG(seed)
	for i := range g.cells {
		if rng.Chance(density) {
			g.cells[i] = Alive
		}
	}
	return g, nil
}

// CheckDensity returns an error wrapping ErrInvalidDensity when p lies
// outside the open interval (0, 1). The error is advisory.
func CheckDensity(p float64) error {
	switch {
	case math.IsNaN(p):
		return fmt.Errorf("%w: NaN", ErrInvalidDensity)
	case p < 0 || p > 1:
		return fmt.Errorf("%w: %g is outside [0, 1]", ErrInvalidDensity, p)
	case p == 0:
		return fmt.Errorf("%w: 0 produces an all-dead board", ErrInvalidDensity)
	case p == 1:
		return fmt.Errorf("%w: 1 produces an all-alive board", ErrInvalidDensity)
	}
	return nil
}
