package maze

// Graph export over the linear index space 0..TotalCells()-1.
// All exporters are read-only and return freshly allocated values.

// eachPassage calls fn for every open wall of cell i whose neighbor exists,
// in N, E, S, W order.
func (m *Maze) eachPassage(i int, fn func(j int)) {
	cell := &m.cells[i]
	for _, d := range directions {
		if cell.Walls[d] {
			continue
		}
		dr, dc := d.Delta()
		nr, nc := cell.Row+dr, cell.Col+dc
		if !m.isValid(nr, nc) {
			continue
		}
		fn(m.index(nr, nc))
	}
}

// AdjacencyList returns, for every cell in row-major order, the indices of
// the cells reachable through an open wall. Each list follows N, E, S, W
// order. A 1×1 maze yields [[]].
// Complexity: O(W×H) time and memory.
func (m *Maze) AdjacencyList() [][]int {
	adj := make([][]int, len(m.cells))
	for i := range m.cells {
		adj[i] = make([]int, 0, len(directions))
		m.eachPassage(i, func(j int) {
			adj[i] = append(adj[i], j)
		})
	}

	return adj
}

// AdjacencyMatrix returns the TotalCells()×TotalCells() 0/1 matrix of the
// maze graph. Both mat[i][j] and mat[j][i] are set for every passage, so the
// result is symmetric.
// Complexity: O((W×H)²) memory.
func (m *Maze) AdjacencyMatrix() [][]uint8 {
	n := len(m.cells)
	backing := make([]uint8, n*n)
	mat := make([][]uint8, n)
	for i := range mat {
		mat[i] = backing[i*n : (i+1)*n : (i+1)*n]
	}
	for i := range m.cells {
		m.eachPassage(i, func(j int) {
			mat[i][j] = 1
			mat[j][i] = 1
		})
	}

	return mat
}

// Edges returns every passage once as an Edge with From < To, sorted by
// (From, To).
func (m *Maze) Edges() []Edge {
	edges := make([]Edge, 0, m.Passages())
	for i := range m.cells {
		// East and South neighbors always have larger indices, and visiting
		// cells in row-major order keeps the slice sorted.
		for _, d := range [...]Direction{East, South} {
			if j, ok := m.passage(i, d); ok {
				edges = append(edges, Edge{From: i, To: j})
			}
		}
	}

	return edges
}

// Passages counts open interior walls. After Generate it equals
// TotalCells()-1.
func (m *Maze) Passages() int {
	count := 0
	for i := range m.cells {
		for _, d := range [...]Direction{East, South} {
			if _, ok := m.passage(i, d); ok {
				count++
			}
		}
	}

	return count
}

// passage reports the index of the neighbor behind the open wall d of cell i.
func (m *Maze) passage(i int, d Direction) (int, bool) {
	cell := &m.cells[i]
	if cell.Walls[d] {
		return 0, false
	}
	dr, dc := d.Delta()
	nr, nc := cell.Row+dr, cell.Col+dc
	if !m.isValid(nr, nc) {
		return 0, false
	}
	return m.index(nr, nc), true
}
