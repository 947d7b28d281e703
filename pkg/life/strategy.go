package life

import (
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
)

// StepStrategy advances a grid by one generation. Step must not modify its
// input and must return a freshly allocated grid.
type StepStrategy interface {
	Name() string
	Step(g *Grid) (*Grid, error)
}

const (
	StrategyNaive         = "naive"
	StrategyConvolutional = "convolutional"
)

// Naive counts the eight wrapped neighbours of every cell one by one. It is
// the reference implementation.
type Naive struct {
	Rule Rule
}

// Name returns the strategy identifier.
func (Naive) Name() string { return StrategyNaive }

// Step computes the next generation.
func (s Naive) Step(g *Grid) (*Grid, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	rule := ruleOrDefault(s.Rule)
	n := g.n
	next := newGrid(n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + n) % n
					ny := (y + dy + n) % n
					neighbors += int(g.cells[ny*n+nx])
				}
			}
			idx := y*n + x
			next.cells[idx] = rule(g.cells[idx], neighbors)
		}
	}
	return next, nil
}

// Convolutional computes every neighbour sum in one bulk pass equivalent to
// convolving with LifeKernel under wrap boundaries, then applies the rule
// pointwise. With Workers > 1 the rows are split into bands that are
// processed concurrently.
type Convolutional struct {
	Rule    Rule
	Workers int
}

// Name returns the strategy identifier.
func (Convolutional) Name() string { return StrategyConvolutional }

// Step computes the next generation.
func (s Convolutional) Step(g *Grid) (*Grid, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	rule := ruleOrDefault(s.Rule)
	n := g.n
	next := newGrid(n)
	sums := make([]int, n*n)

	band := func(lo, hi int) {
		convolveRows(g, LifeKernel, sums, lo, hi)
		for i := lo * n; i < hi*n; i++ {
			next.cells[i] = rule(g.cells[i], sums[i])
		}
	}

	workers := s.Workers
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		band(0, n)
		return next, nil
	}

	var eg errgroup.Group
	eg.SetLimit(workers)
	rows := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += rows {
		lo, hi := lo, min(lo+rows, n)
		eg.Go(func() error {
			band(lo, hi)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return next, nil
}

func ruleOrDefault(r Rule) Rule {
	if r == nil {
		return Conway
	}
	return r
}

// Strategies lists the selectable strategy names.
func Strategies() []string {
	names := []string{StrategyNaive, StrategyConvolutional}
	sort.Strings(names)
	return names
}

// NewStrategy returns the strategy registered under name.
func NewStrategy(name string, rule Rule, workers int) (StepStrategy, error) {
	switch name {
	case StrategyNaive:
		return Naive{Rule: rule}, nil
	case StrategyConvolutional, "":
		return Convolutional{Rule: rule, Workers: workers}, nil
	}
	return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownStrategy, name, Strategies())
}
