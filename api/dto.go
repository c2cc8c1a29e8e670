package api

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/mazegraph/maze"
)

// Output formats accepted by the format query parameter.
const (
	FormatList   = "list"
	FormatMatrix = "matrix"
	FormatEdges  = "edges"
)

// MazeRequest is bound from the query string of GET /mazes.
type MazeRequest struct {
	Width  int    `form:"width" binding:"required,gt=0"`
	Height int    `form:"height" binding:"required,gt=0"`
	Seed   *int64 `form:"seed"`
	Format string `form:"format"`
	Render bool   `form:"render"`
}

// MazeResponse describes one generated maze. Exactly one of the graph
// fields is populated, matching the requested format.
type MazeResponse struct {
	ID              uuid.UUID   `json:"id"`
	Width           int         `json:"width"`
	Height          int         `json:"height"`
	Seed            int64       `json:"seed"`
	Passages        int         `json:"passages"`
	AdjacencyList   [][]int     `json:"adjacency_list,omitempty"`
	AdjacencyMatrix [][]int     `json:"adjacency_matrix,omitempty"`
	Edges           []maze.Edge `json:"edges,omitempty"`
	Drawing         string      `json:"drawing,omitempty"`
}
