package maze

import "fmt"

// carver holds the mutable state of one depth-first carving run.
type carver struct {
	m     *Maze
	opts  GenerateOptions
	stack []Coord
}

// Generate carves a perfect maze in place with a randomized, iterative
// depth-first search:
//
//  1. Pick a random start cell, mark it visited, push it.
//  2. Peek the top cell. If it has unvisited neighbors, push it again,
//     shuffle the neighbors, open the wall to the first one, mark that
//     neighbor visited and push it. Otherwise pop (backtrack).
//  3. Stop when the stack is empty.
//
// Every cell ends up visited exactly once and exactly TotalCells()-1 walls
// are removed. A Maze can be generated only once; a second call returns
// ErrAlreadyGenerated. Cancelling the context leaves a partially carved
// maze and returns the context error.
//
// Complexity: O(W×H) time, O(W×H) stack.
func (m *Maze) Generate(opts ...GenerateOption) error {
	if m.generated {
		return ErrAlreadyGenerated
	}
	o := DefaultGenerateOptions()
	for _, opt := range opts {
		opt(&o)
	}
	m.generated = true

	c := &carver{
		m:     m,
		opts:  o,
		stack: make([]Coord, 0, 2*len(m.cells)),
	}

	return c.run()
}

// run drives the carving loop until the stack drains.
func (c *carver) run() error {
	m := c.m
	start := Coord{Row: m.rng.Intn(m.height), Col: m.rng.Intn(m.width)}
	m.markVisited(start)
	c.push(start)

	for len(c.stack) > 0 {
		select {
		case <-c.opts.Ctx.Done():
			return fmt.Errorf("maze: generation interrupted: %w", c.opts.Ctx.Err())
		default:
		}

		if err := c.step(); err != nil {
			return err
		}
	}

	return nil
}

// step performs one carve or one backtrack for the cell on top of the stack.
func (c *carver) step() error {
	m := c.m
	current := c.stack[len(c.stack)-1]

	neighbors := m.unvisitedNeighbors(current.Row, current.Col)
	if len(neighbors) == 0 {
		c.stack = c.stack[:len(c.stack)-1]
		c.opts.OnBacktrack(current)
		return nil
	}

	// current stays below next so the search returns to it later.
	c.push(current)
	shuffleCoords(neighbors, m.rng)
	next := neighbors[0]

	if !m.removeWall(current.Row, current.Col, next.Row, next.Col) {
		return fmt.Errorf("%w: carve (%d,%d)->(%d,%d)",
			ErrInvalidCell, current.Row, current.Col, next.Row, next.Col)
	}
	m.markVisited(next)
	c.push(next)
	c.opts.OnCarve(current, next)

	return nil
}

func (c *carver) push(p Coord) {
	c.stack = append(c.stack, p)
}
