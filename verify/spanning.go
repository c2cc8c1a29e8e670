package verify

import "fmt"

// SpanningTree checks that adj is the adjacency list of a spanning tree over
// its vertices: symmetric, exactly V-1 undirected edges, connected and
// acyclic. The returned Report is filled up to the first failing check.
//
// Complexity: O(V + E).
func SpanningTree(adj [][]int) (Report, error) {
	rep := Report{Vertices: len(adj)}
	if len(adj) == 0 {
		return rep, ErrEmptyGraph
	}
	if _, err := arcSet(adj); err != nil {
		return rep, err
	}

	edges, err := EdgeCount(adj)
	if err != nil {
		return rep, err
	}
	rep.Symmetric = true
	rep.Edges = edges
	if edges != len(adj)-1 {
		return rep, fmt.Errorf("%w: %d edges over %d vertices", ErrEdgeCount, edges, len(adj))
	}

	connected, err := Connected(adj)
	if err != nil {
		return rep, err
	}
	rep.Connected = connected
	if !connected {
		return rep, ErrNotConnected
	}

	acyclic, err := Acyclic(adj)
	if err != nil {
		return rep, err
	}
	rep.Acyclic = acyclic
	if !acyclic {
		return rep, ErrCycle
	}

	return rep, nil
}
