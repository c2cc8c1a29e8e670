// File: maze/example_test.go
package maze_test

import (
	"fmt"

	"github.com/katalvlaran/mazegraph/maze"
)

////////////////////////////////////////////////////////////////////////////////
// Example: a corridor
////////////////////////////////////////////////////////////////////////////////

// ExampleMaze_AdjacencyList carves a 3×1 maze. A single row admits exactly
// one perfect maze, so the output does not depend on the seed.
//
// Lists follow N, E, S, W order: the middle cell lists East (2) before West (0).
func ExampleMaze_AdjacencyList() {
	m, _ := maze.New(3, 1, maze.WithSeed(12345))
	_ = m.Generate()

	fmt.Println(m.AdjacencyList())
	fmt.Println(m.AdjacencyMatrix())
	fmt.Println("passages:", m.Passages())
	// Output:
	// [[1] [2 0] [1]]
	// [[0 1 0] [1 0 1] [0 1 0]]
	// passages: 2
}

// ExampleMaze_Render draws a 1×2 maze (one column, two rows).
func ExampleMaze_Render() {
	m, _ := maze.New(1, 2, maze.WithSeed(7))
	_ = m.Generate()

	fmt.Print(m)
	// Output:
	// +---+
	// |   |
	// +   +
	// |   |
	// +---+
}

// ExampleMaze_IndexToCell shows the row-major index space used by exports.
func ExampleMaze_IndexToCell() {
	m, _ := maze.New(4, 3)

	row, col := m.IndexToCell(6)
	fmt.Println(row, col, m.CellToIndex(row, col))
	// Output:
	// 1 2 6
}
