// Package verify checks that an exported maze graph is a spanning tree.
//
// What
//
//   - Works on plain adjacency lists ([][]int) and 0/1 adjacency matrices
//     ([][]uint8), so it does not depend on how the graph was produced.
//   - BFS: breadth-first traversal with visit order, depth and parent links.
//   - Connected: one BFS reaches every vertex.
//   - Acyclic: iterative DFS with parent tracking finds no back edge.
//   - Symmetric / MatrixSymmetric: every arc u→v has its mirror v→u.
//   - Agree: list and matrix describe the same edge set.
//   - SpanningTree: all of the above plus |E| == |V|-1, summarized in a Report.
//
// Why
//
//	A perfect maze over V cells must be connected, acyclic, and have exactly
//	V-1 undirected edges. Any two of connected, acyclic and |E| == V-1
//	imply the third; SpanningTree checks all three to localize failures.
//
// Complexity (V = vertices, E = undirected edges)
//
//   - BFS, Connected, Acyclic, Symmetric: O(V + E) time, O(V) memory.
//   - MatrixSymmetric, Agree:            O(V²) time.
//
// Errors
//
//   - ErrEmptyGraph    the graph has no vertices.
//   - ErrBadIndex      a start vertex or neighbor index is out of range.
//   - ErrAsymmetric    some arc has no mirror.
//   - ErrEdgeCount     |E| != |V|-1.
//   - ErrNotConnected  BFS from vertex 0 misses some vertex.
//   - ErrCycle         a cycle exists.
//   - ErrMismatch      list and matrix disagree, or the matrix is malformed.
package verify
