package life

import (
	"fmt"
	"slices"
	"strings"
)

// Cell is the state of a single board position.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// Grid is a square board of cells stored in row-major order. The dimension
// is fixed when the grid is created.
type Grid struct {
	n     int
	cells []Cell
}

// NewGrid allocates an all-dead n×n grid.
func NewGrid(n int) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDimension, n)
	}
	return &Grid{n: n, cells: make([]Cell, n*n)}, nil
}

func newGrid(n int) *Grid {
	return &Grid{n: n, cells: make([]Cell, n*n)}
}

// FromRows builds a grid from a slice of rows. Rows must be non-empty, all
// of the same length as the row count, and contain only Dead or Alive.
func FromRows(rows [][]Cell) (*Grid, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidGrid)
	}
	g := newGrid(n)
	for y, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidGrid, y, len(row), n)
		}
		for x, c := range row {
			if c != Dead && c != Alive {
				return nil, fmt.Errorf("%w: cell (%d,%d) has state %d", ErrInvalidGrid, y, x, c)
			}
			g.cells[y*n+x] = c
		}
	}
	return g, nil
}

// Parse reads a grid drawn with '#' or 'O' for live cells and '.' for dead
// ones, one row per line. Blank lines are ignored.
func Parse(s string) (*Grid, error) {
	var rows [][]Cell
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]Cell, 0, len(line))
		for _, r := range line {
			switch r {
			case '#', 'O':
				row = append(row, Alive)
			case '.':
				row = append(row, Dead)
			default:
				return nil, fmt.Errorf("%w: unexpected rune %q", ErrInvalidGrid, r)
			}
		}
		rows = append(rows, row)
	}
	return FromRows(rows)
}

// Validate checks that the grid is square, non-empty and binary.
func (g *Grid) Validate() error {
	if g == nil {
		return fmt.Errorf("%w: nil grid", ErrInvalidGrid)
	}
	if g.n <= 0 {
		return fmt.Errorf("%w: dimension %d", ErrInvalidDimension, g.n)
	}
	if len(g.cells) != g.n*g.n {
		return fmt.Errorf("%w: %d cells for dimension %d", ErrInvalidGrid, len(g.cells), g.n)
	}
	for i, c := range g.cells {
		if c != Dead && c != Alive {
			return fmt.Errorf("%w: cell (%d,%d) has state %d", ErrInvalidGrid, i/g.n, i%g.n, c)
		}
	}
	return nil
}

// Dim returns the side length of the grid.
func (g *Grid) Dim() int { return g.n }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.n + col }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	return wrap(row, g.n), wrap(col, g.n)
}

func wrap(i, n int) int {
	return (i%n + n) % n
}

// At returns the cell at (row, col) with toroidal wrapping.
func (g *Grid) At(row, col int) Cell {
	row, col = g.Wrap(row, col)
	return g.cells[row*g.n+col]
}

// Set stores c at (row, col) with toroidal wrapping.
func (g *Grid) Set(row, col int, c Cell) {
	row, col = g.Wrap(row, col)
	g.cells[row*g.n+col] = c
}

// Cells exposes the backing slice. Callers must not write to the cells of a
// grid that has been published as a snapshot.
func (g *Grid) Cells() []Cell { return g.cells }

// Rows returns a copy of the grid as a slice of rows.
func (g *Grid) Rows() [][]Cell {
	rows := make([][]Cell, g.n)
	for y := range rows {
		rows[y] = slices.Clone(g.cells[y*g.n : (y+1)*g.n])
	}
	return rows
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{n: g.n, cells: slices.Clone(g.cells)}
}

// Equal reports whether both grids have the same dimension and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	return g.n == o.n && slices.Equal(g.cells, o.cells)
}

// Diff returns the number of cells that differ between two grids of the
// same dimension.
func (g *Grid) Diff(o *Grid) (int, error) {
	if g.n != o.n {
		return 0, fmt.Errorf("%w: cannot diff %dx%d against %dx%d", ErrInvalidGrid, g.n, g.n, o.n, o.n)
	}
	diff := 0
	for i, c := range g.cells {
		if c != o.cells[i] {
			diff++
		}
	}
	return diff, nil
}

// Population counts live cells.
func (g *Grid) Population() int {
	total := 0
	for _, c := range g.cells {
		if c == Alive {
			total++
		}
	}
	return total
}

// String draws the grid using '#' for live and '.' for dead cells.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.n * (g.n + 1))
	for y := 0; y < g.n; y++ {
		for _, c := range g.cells[y*g.n : (y+1)*g.n] {
			if c == Alive {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
