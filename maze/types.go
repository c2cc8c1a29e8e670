package maze

import "strconv"

// Direction names one side of a cell. The numeric order N, E, S, W is the
// order used for neighbor discovery and for adjacency export.
type Direction uint8

const (
	// North points to row-1.
	North Direction = iota
	// East points to col+1.
	East
	// South points to row+1.
	South
	// West points to col-1.
	West
)

// directions lists the cardinal directions in their canonical order.
var directions = [...]Direction{North, East, South, West}

// deltas holds the signed (row, col) offset of every Direction.
var deltas = [...][2]int{
	North: {-1, 0},
	East:  {0, 1},
	South: {1, 0},
	West:  {0, -1},
}

// Delta returns the signed row and column offset of d.
// Unknown directions yield (0, 0).
func (d Direction) Delta() (dr, dc int) {
	if d > West {
		return 0, 0
	}
	return deltas[d][0], deltas[d][1]
}

// Opposite returns the direction facing back towards d's origin.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Direction(" + strconv.Itoa(int(d)) + ")"
	}
}

// Coord is a (row, col) position in the grid.
type Coord struct {
	Row, Col int
}

// Cell is one grid position. Walls[d] == true means the side facing d is
// closed; false means a passage. Visited is driven by Generate only.
type Cell struct {
	Row, Col int
	Visited  bool
	Walls    [4]bool
}

// HasWall reports whether the side of c facing d is closed.
func (c Cell) HasWall(d Direction) bool {
	if d > West {
		return false
	}
	return c.Walls[d]
}

// Edge is an undirected passage between two linear cell indices, From < To.
type Edge struct {
	From int `json:"from"`
	To   int `json:"to"`
}
