package verify

import "fmt"

// frame is one pending vertex of the iterative DFS together with the vertex
// it was discovered from (-1 for roots).
type frame struct {
	id     int
	parent int
}

// Acyclic reports whether the undirected graph described by adj has no
// cycle. adj is expected to be symmetric; every component is searched.
// A self-loop or a repeated neighbor counts as a cycle.
//
// Vertices are marked when pushed. In a forest every neighbor of v other than
// its parent is still unmarked when v is expanded, so meeting a marked
// non-parent neighbor proves a second path, i.e. a cycle.
//
// Complexity: O(V + E) time, O(V) memory.
func Acyclic(adj [][]int) (bool, error) {
	n := len(adj)
	if n == 0 {
		return false, ErrEmptyGraph
	}
	marked := make([]bool, n)
	stack := make([]frame, 0, n)

	for root := 0; root < n; root++ {
		if marked[root] {
			continue
		}
		marked[root] = true
		stack = append(stack, frame{id: root, parent: -1})

		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			parentSkipped := false
			for _, nbr := range adj[f.id] {
				if nbr < 0 || nbr >= n {
					return false, fmt.Errorf("%w: %d lists neighbor %d", ErrBadIndex, f.id, nbr)
				}
				// The tree edge back to the parent appears once; a second
				// occurrence is a parallel edge.
				if nbr == f.parent && !parentSkipped {
					parentSkipped = true
					continue
				}
				if marked[nbr] {
					return false, nil
				}
				marked[nbr] = true
				stack = append(stack, frame{id: nbr, parent: f.id})
			}
		}
	}

	return true, nil
}
