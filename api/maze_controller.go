package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/mazegraph/maze"
)

// maxMatrixCells bounds the matrix format, whose size grows with cells².
const maxMatrixCells = 1024

// MazeController serves maze generation requests.
type MazeController struct {
	maxCells int
}

// NewMazeController creates a controller that refuses mazes larger than
// maxCells cells.
func NewMazeController(maxCells int) *MazeController {
	return &MazeController{maxCells: maxCells}
}

// Register mounts GET /mazes.
func (mc *MazeController) Register(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("", mc.generate)
	}
}

// generate builds, carves and exports one maze per request.
func (mc *MazeController) generate(ctx *gin.Context) {
	var request MazeRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	format := request.Format
	if format == "" {
		format = FormatList
	}
	if err := mc.checkSize(request.Width, request.Height, format); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var opts []maze.Option
	if request.Seed != nil {
		opts = append(opts, maze.WithSeed(*request.Seed))
	}
	m, err := maze.New(request.Width, request.Height, opts...)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := m.Generate(maze.WithContext(ctx.Request.Context())); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating maze"})
		return
	}

	response := &MazeResponse{
		ID:       uuid.New(),
		Width:    m.Width(),
		Height:   m.Height(),
		Seed:     m.Seed(),
		Passages: m.Passages(),
	}
	switch format {
	case FormatList:
		response.AdjacencyList = m.AdjacencyList()
	case FormatMatrix:
		response.AdjacencyMatrix = toInts(m.AdjacencyMatrix())
	case FormatEdges:
		response.Edges = m.Edges()
	}
	if request.Render {
		response.Drawing = m.String()
	}

	ctx.JSON(http.StatusOK, response)
}

// checkSize validates the format and the requested cell count.
func (mc *MazeController) checkSize(width, height int, format string) error {
	limit := mc.maxCells
	switch format {
	case FormatList, FormatEdges:
	case FormatMatrix:
		if limit > maxMatrixCells {
			limit = maxMatrixCells
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	if int64(width)*int64(height) > int64(limit) {
		return fmt.Errorf("maze of %dx%d cells exceeds the limit of %d cells", width, height, limit)
	}
	return nil
}

// toInts widens a 0/1 matrix so it encodes as JSON numbers rather than
// base64 strings.
func toInts(mat [][]uint8) [][]int {
	out := make([][]int, len(mat))
	for i, row := range mat {
		out[i] = make([]int, len(row))
		for j, x := range row {
			out[i][j] = int(x)
		}
	}
	return out
}
