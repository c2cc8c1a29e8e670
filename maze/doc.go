// Package maze generates perfect rectangular mazes and exports them as graphs.
//
// What:
//
//   - Maze owns a width×height grid of cells, each with four wall flags (N, E, S, W).
//   - Generate carves passages with a randomized, iterative depth-first search.
//   - AdjacencyList and AdjacencyMatrix export the carved maze over the
//     row-major cell index space 0..W·H-1.
//   - Render draws the grid as ASCII art for human inspection.
//
// Why:
//
//   - A perfect maze is a spanning tree of the 4-connected grid graph:
//     every cell is reachable from every other cell by exactly one path.
//   - Exported graphs plug straight into traversal, shortest-path or
//     verification code without any knowledge of walls.
//
// Determinism:
//
//	Every Maze owns its own *rand.Rand. With WithSeed the same (W, H, seed)
//	triple yields the same start cell, the same shuffle of every neighbor list,
//	and therefore the same wall configuration on every run and in every process.
//	Without a seed option the seed is taken from the clock and is still
//	reported by Seed, so any run can be replayed.
//
// Lifecycle:
//
//	New → Generate (exactly once) → AdjacencyList / AdjacencyMatrix / Render (any number of times).
//	Exporting before Generate is allowed and yields W·H isolated vertices.
//
// Concurrency:
//
//	A Maze is not safe for concurrent mutation. After Generate returns it is
//	read-only, and exporters may be called from several goroutines.
//	Independent Maze values share no state and may be generated in parallel.
//
// Complexity:
//
//   - New:             O(W×H) time and memory.
//   - Generate:        O(W×H) time, O(W×H) stack in the worst (serpentine) case.
//   - AdjacencyList:   O(W×H).
//   - AdjacencyMatrix: O((W×H)²) memory.
//
// Errors:
//
//   - ErrInvalidDimension: width or height is not positive, or W·H overflows int.
//   - ErrInvalidCell: a carve step referenced a cell outside the grid or a non-adjacent pair.
//   - ErrAlreadyGenerated: Generate was called a second time.
package maze
