package maze

import (
	"fmt"
	"math"
	"math/rand"
)

// Maze is a rectangular grid of cells plus the random source that carves it.
// Cells are stored row-major: the cell at (row, col) lives at row*width+col.
type Maze struct {
	width, height int
	cells         []Cell
	rng           *rand.Rand
	seed          int64
	seedKnown     bool
	generated     bool
}

// New allocates a width×height grid with every wall closed and no cell visited.
// Returns ErrInvalidDimension if either dimension is not positive or the cell
// count overflows int.
// Complexity: O(W×H) time and memory.
func New(width, height int, opts ...Option) (*Maze, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, width, height)
	}
	if width > math.MaxInt/height {
		return nil, fmt.Errorf("%w: %dx%d cells overflow", ErrInvalidDimension, width, height)
	}
	cfg := newConfig(opts...)

	cells := make([]Cell, width*height)
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			cells[r*width+c] = Cell{
				Row:   r,
				Col:   c,
				Walls: [4]bool{true, true, true, true},
			}
		}
	}

	return &Maze{
		width:     width,
		height:    height,
		cells:     cells,
		rng:       cfg.rng,
		seed:      cfg.seed,
		seedKnown: cfg.seedKnown,
	}, nil
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// TotalCells returns Width()*Height(), the vertex count of exported graphs.
func (m *Maze) TotalCells() int { return len(m.cells) }

// Seed returns the seed of the maze's random source. It is meaningful only
// when SeedKnown is true.
func (m *Maze) Seed() int64 { return m.seed }

// SeedKnown reports whether Seed can replay this maze (false for WithRand).
func (m *Maze) SeedKnown() bool { return m.seedKnown }

// Generated reports whether Generate has run.
func (m *Maze) Generated() bool { return m.generated }

// Cell returns a copy of the cell at (row, col) and whether it exists.
func (m *Maze) Cell(row, col int) (Cell, bool) {
	if !m.isValid(row, col) {
		return Cell{}, false
	}
	return m.cells[m.index(row, col)], true
}

// CellToIndex maps (row, col) to its row-major index row*width+col.
// Returns -1 for coordinates outside the grid.
// Complexity: O(1).
func (m *Maze) CellToIndex(row, col int) int {
	if !m.isValid(row, col) {
		return -1
	}
	return m.index(row, col)
}

// IndexToCell converts a row-major index back to (row, col).
// Returns (-1, -1) for indices outside [0, TotalCells()).
// Complexity: O(1).
func (m *Maze) IndexToCell(index int) (row, col int) {
	if index < 0 || index >= len(m.cells) {
		return -1, -1
	}
	return index / m.width, index % m.width
}

// index is CellToIndex without the bounds check.
func (m *Maze) index(row, col int) int {
	return row*m.width + col
}

// isValid reports whether (row, col) lies within [0,height)×[0,width).
// Coordinates are signed so that neighbor candidates of border cells are
// rejected instead of wrapping around.
func (m *Maze) isValid(row, col int) bool {
	return row >= 0 && row < m.height && col >= 0 && col < m.width
}

// unvisitedNeighbors returns the in-bounds, unvisited neighbors of
// (row, col) in N, E, S, W order. An out-of-bounds origin has none.
func (m *Maze) unvisitedNeighbors(row, col int) []Coord {
	if !m.isValid(row, col) {
		return nil
	}
	neighbors := make([]Coord, 0, len(directions))
	for _, d := range directions {
		dr, dc := d.Delta()
		nr, nc := row+dr, col+dc
		if m.isValid(nr, nc) && !m.cells[m.index(nr, nc)].Visited {
			neighbors = append(neighbors, Coord{Row: nr, Col: nc})
		}
	}

	return neighbors
}

// removeWall opens the wall shared by (r1, c1) and (r2, c2), clearing both
// facing flags together. It returns false and leaves the grid untouched when
// either cell is out of bounds or the cells are not orthogonally adjacent.
func (m *Maze) removeWall(r1, c1, r2, c2 int) bool {
	if !m.isValid(r1, c1) || !m.isValid(r2, c2) {
		return false
	}
	d, ok := directionBetween(r1, c1, r2, c2)
	if !ok {
		return false
	}
	m.cells[m.index(r1, c1)].Walls[d] = false
	m.cells[m.index(r2, c2)].Walls[d.Opposite()] = false

	return true
}

// directionBetween returns the direction leading from (r1, c1) to (r2, c2)
// when the two are Manhattan-adjacent.
func directionBetween(r1, c1, r2, c2 int) (Direction, bool) {
	dr, dc := r2-r1, c2-c1
	for _, d := range directions {
		if ddr, ddc := d.Delta(); ddr == dr && ddc == dc {
			return d, true
		}
	}
	return 0, false
}

// markVisited sets the visited flag of c. Flags are never cleared.
func (m *Maze) markVisited(c Coord) {
	m.cells[m.index(c.Row, c.Col)].Visited = true
}
