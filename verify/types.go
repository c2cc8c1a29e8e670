// Package verify provides options, results and error definitions for
// spanning-tree verification.
package verify

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for verification.
var (
	// ErrEmptyGraph is returned for a graph without vertices.
	ErrEmptyGraph = errors.New("verify: graph has no vertices")

	// ErrBadIndex is returned when an index falls outside [0, V).
	ErrBadIndex = errors.New("verify: vertex index out of range")

	// ErrAsymmetric is returned when u→v is listed but v→u is not.
	ErrAsymmetric = errors.New("verify: adjacency is not symmetric")

	// ErrEdgeCount is returned when the edge count is not V-1.
	ErrEdgeCount = errors.New("verify: edge count is not V-1")

	// ErrNotConnected is returned when some vertex is unreachable.
	ErrNotConnected = errors.New("verify: graph is not connected")

	// ErrCycle is returned when the graph contains a cycle.
	ErrCycle = errors.New("verify: graph contains a cycle")

	// ErrMismatch is returned when list and matrix forms disagree.
	ErrMismatch = errors.New("verify: adjacency list and matrix disagree")
)

// Option configures BFS via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for a BFS run.
type Options struct {
	// Ctx allows cancellation between dequeues.
	Ctx context.Context

	// OnVisit is called when a vertex is dequeued. Returning an error
	// aborts the search.
	OnVisit func(id, depth int) error
}

// DefaultOptions returns a background context and a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(int, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on every visit.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices in visit sequence.
//   - Depth: distance in edges from the start.
//   - Parent: predecessor in the BFS tree (absent for the start).
type Result struct {
	Order  []int
	Depth  map[int]int
	Parent map[int]int
}

// PathTo reconstructs the path from the start vertex to dest.
// In a maze this is the unique solution path between the two cells.
func (r *Result) PathTo(dest int) ([]int, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("verify: no path to %d", dest)
	}
	path := []int{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Report summarizes a SpanningTree check. Fields after the failing check
// keep their zero values.
type Report struct {
	Vertices  int
	Edges     int
	Symmetric bool
	Connected bool
	Acyclic   bool
}

func (r Report) String() string {
	return fmt.Sprintf("vertices=%d edges=%d symmetric=%t connected=%t acyclic=%t",
		r.Vertices, r.Edges, r.Symmetric, r.Connected, r.Acyclic)
}
