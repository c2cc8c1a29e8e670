package verify

import (
	"context"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	adj     [][]int
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited mapset.Set[int]
	res     *Result
}

// BFS runs breadth-first search over adj starting from start. Neighbors are
// enqueued in list order, so the visit sequence is reproducible.
// Returns ErrEmptyGraph, ErrBadIndex for an out-of-range start or neighbor,
// the context error on cancellation, or a wrapped OnVisit error.
func BFS(adj [][]int, start int, opts ...Option) (*Result, error) {
	if len(adj) == 0 {
		return nil, ErrEmptyGraph
	}
	if start < 0 || start >= len(adj) {
		return nil, fmt.Errorf("%w: start %d, vertices %d", ErrBadIndex, start, len(adj))
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := len(adj)
	w := &walker{
		adj:     adj,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: mapset.New[int](),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}
	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// enqueue marks id visited at depth d and records its parent (-1 for root).
func (w *walker) enqueue(id, d, parent int) {
	w.visited.Put(id)
	w.res.Depth[id] = d
	if parent >= 0 {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("verify: OnVisit error at %d: %w", item.id, err)
		}

		for _, nbr := range w.adj[item.id] {
			if nbr < 0 || nbr >= len(w.adj) {
				return fmt.Errorf("%w: %d lists neighbor %d", ErrBadIndex, item.id, nbr)
			}
			if w.visited.Has(nbr) {
				continue
			}
			w.enqueue(nbr, item.depth+1, item.id)
		}
	}

	return nil
}

// Connected reports whether a BFS from vertex 0 reaches every vertex.
// Arcs are followed as listed; pass a symmetric list for undirected graphs.
func Connected(adj [][]int) (bool, error) {
	res, err := BFS(adj, 0)
	if err != nil {
		return false, err
	}

	return len(res.Order) == len(adj), nil
}
